package declinecodes

import "maps"

// Category classifies how a declined payment should be handled.
type Category string

const (
	// CategorySoftDecline marks a transient decline; retrying the payment
	// may succeed.
	CategorySoftDecline Category = "SOFT_DECLINE"
	// CategoryHardDecline marks a permanent decline; the payment must not
	// be retried.
	CategoryHardDecline Category = "HARD_DECLINE"
)

// Locale identifies a supported language for customer-facing text.
type Locale string

const (
	// LocaleEN is English, the base locale every record is written in.
	LocaleEN Locale = "en"
	// LocaleJA is Japanese.
	LocaleJA Locale = "ja"
	// DefaultLocale is used when no locale is given.
	DefaultLocale = LocaleEN
)

// SupportedLocales returns the closed set of locales the dataset covers.
// The returned slice is a copy.
func SupportedLocales() []Locale {
	return []Locale{LocaleEN, LocaleJA}
}

// Translation is a per-locale override of the customer-facing fields of a
// DeclineRecord. NextSteps is merchant-internal guidance and is deliberately
// not localized.
type Translation struct {
	// Description is the localized technical description.
	Description string `json:"description,omitempty"`
	// NextUserAction is the localized customer-facing message.
	NextUserAction string `json:"next_user_action,omitempty"`
}

// DeclineRecord holds everything known about a single decline code. Records
// are immutable value objects: accessors hand out copies, so callers can
// never alter the registry through a returned record.
type DeclineRecord struct {
	// Code is the stable identifier, a lowercase underscore-delimited token.
	Code string `json:"code"`
	// Category tells whether the decline is transient or permanent.
	Category Category `json:"category"`
	// Description is the technical description in the base locale.
	Description string `json:"description"`
	// NextSteps is merchant-facing guidance in the base locale.
	NextSteps string `json:"next_steps"`
	// NextUserAction is the customer-facing message in the base locale.
	NextUserAction string `json:"next_user_action"`
	// Translations maps locales to their overrides. It may be nil or cover
	// only some locales; missing locales fall back to the base fields.
	Translations map[Locale]Translation `json:"translations,omitempty"`
}

// clone returns a copy whose translations map is independent of the original.
func (r DeclineRecord) clone() DeclineRecord {
	if r.Translations != nil {
		r.Translations = maps.Clone(r.Translations)
	}
	return r
}

// DeclineDescription is the result of GetDeclineDescription. DocVersion is
// always populated; Record is nil when the queried code is unknown.
type DeclineDescription struct {
	DocVersion string `json:"doc_version"`
	// Record is the looked-up record, or nil if the code is not in the
	// dataset. A nil record is distinct from a record with empty fields:
	// every record in the dataset has non-empty base-locale text.
	Record *DeclineRecord `json:"record,omitempty"`
}

// StripeError mirrors the shape of an error object returned by Stripe's API.
// Only DeclineCode is consulted by this package; the other fields exist so
// callers can unmarshal a Stripe error directly into this type.
type StripeError struct {
	Type        string `json:"type,omitempty"`
	DeclineCode string `json:"decline_code,omitempty"`
	Message     string `json:"message,omitempty"`
}
