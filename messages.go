package declinecodes

// GetDeclineMessage returns the customer-facing message for code in the
// given locale. An empty locale means DefaultLocale. When the record has no
// translation for the locale the base-locale message is returned; there is
// never more than this single fallback hop. ok is false only when the code
// itself is unknown.
func GetDeclineMessage(code string, locale Locale) (string, bool) {
	rec, ok := getRegistry().get(code)
	if !ok {
		return "", false
	}
	return resolveUserAction(rec, locale), true
}

// resolveUserAction picks the localized next-user-action for rec, falling
// back to the base locale when the requested one has no translation entry.
func resolveUserAction(rec DeclineRecord, locale Locale) string {
	if locale == "" {
		locale = DefaultLocale
	}
	if tr, ok := rec.Translations[locale]; ok {
		return tr.NextUserAction
	}
	return rec.NextUserAction
}

// GetMessageFromStripeError extracts the decline code from a Stripe error
// object and resolves its customer-facing message. ok is false when the
// error is nil, carries no decline code, or carries one that is not in the
// dataset. No other field of the error influences the result.
func GetMessageFromStripeError(stripeErr *StripeError, locale Locale) (string, bool) {
	if stripeErr == nil || stripeErr.DeclineCode == "" {
		return "", false
	}
	return GetDeclineMessage(stripeErr.DeclineCode, locale)
}
