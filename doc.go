// Package declinecodes provides structured, localized information about
// Stripe card decline codes.
//
// The package embeds a fixed dataset of decline codes, each carrying a
// technical description, merchant-facing next steps, and a customer-facing
// message, with Japanese translations where available. All lookups are pure,
// synchronous reads over an immutable in-memory table built once on first
// use; the package performs no I/O and is safe for concurrent use without
// coordination.
//
// Unknown codes are an expected input, not an error: query operations report
// absence through a boolean result (or a nil record) and never panic for any
// input string.
//
//	msg, ok := declinecodes.GetDeclineMessage("insufficient_funds", declinecodes.LocaleJA)
//	if ok {
//		fmt.Println(msg) // 別のお支払い方法を使用してもう一度お試しください。
//	}
//
// Customer-facing messages may contain {{name}} placeholders. Use
// FormatDeclineMessage to substitute them:
//
//	msg, ok := declinecodes.FormatDeclineMessage("insufficient_funds", declinecodes.LocaleEN,
//		map[string]string{"amount": "$25.00"})
//
// Placeholders without a matching variable are left verbatim, and substituted
// values are never re-scanned. The current dataset contains no placeholders,
// so formatting without variables is byte-for-byte identical to
// GetDeclineMessage.
//
// The dataset reflects a specific revision of the upstream decline-codes
// documentation; GetDocVersion reports which one. An offline companion tool,
// cmd/declinedocs, exports the dataset to JSON/YAML artifacts and renders a
// static documentation page. The export is one-way: nothing in this package
// reads those artifacts back.
package declinecodes
