package declinecodes

import (
	"errors"
	"fmt"
	"sync"
)

// Dataset validation failures. These only surface while building the
// registry from the embedded dataset; the query API itself never returns an
// error.
var (
	errEmptyCode        = errors.New("decline code is empty")
	errInvalidCode      = errors.New("decline code must be a lowercase underscore-delimited token")
	errDuplicateCode    = errors.New("duplicate decline code")
	errMissingText      = errors.New("decline record is missing required base-locale text")
	errUnknownCategory  = errors.New("decline record has an unknown category")
	errEmptyTranslation = errors.New("translation is missing a next user action")
)

var (
	defaultRegistry *registry
	registryOnce    sync.Once
)

// registry is the immutable lookup table behind the package API. It keeps
// the dataset's insertion order so that code listings are stable across
// calls.
type registry struct {
	codes   []string
	records map[string]DeclineRecord
}

// getRegistry returns the process-wide registry, building it on first use.
// The embedded dataset is fixed at compile time, so a validation failure here
// is a defect in the dataset itself and panics rather than surfacing to
// callers.
func getRegistry() *registry {
	registryOnce.Do(func() {
		reg, err := newRegistry(declineDataset())
		if err != nil {
			panic(fmt.Sprintf("declinecodes: embedded dataset is invalid: %v", err))
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// newRegistry builds a registry from records, validating every entry and
// preserving the slice order for allCodes.
func newRegistry(records []DeclineRecord) (*registry, error) {
	reg := &registry{
		codes:   make([]string, 0, len(records)),
		records: make(map[string]DeclineRecord, len(records)),
	}
	for _, rec := range records {
		if err := validateRecord(rec); err != nil {
			return nil, err
		}
		if _, exists := reg.records[rec.Code]; exists {
			return nil, fmt.Errorf("%w: %q", errDuplicateCode, rec.Code)
		}
		reg.codes = append(reg.codes, rec.Code)
		reg.records[rec.Code] = rec
	}
	return reg, nil
}

func validateRecord(rec DeclineRecord) error {
	if rec.Code == "" {
		return errEmptyCode
	}
	if !isCodeToken(rec.Code) {
		return fmt.Errorf("%w: %q", errInvalidCode, rec.Code)
	}
	if rec.Description == "" || rec.NextSteps == "" || rec.NextUserAction == "" {
		return fmt.Errorf("%w: %q", errMissingText, rec.Code)
	}
	if rec.Category != CategorySoftDecline && rec.Category != CategoryHardDecline {
		return fmt.Errorf("%w: %q has %q", errUnknownCategory, rec.Code, rec.Category)
	}
	for locale, tr := range rec.Translations {
		if tr.NextUserAction == "" {
			return fmt.Errorf("%w: %q locale %q", errEmptyTranslation, rec.Code, locale)
		}
	}
	return nil
}

// isCodeToken reports whether s consists solely of lowercase letters,
// digits, and underscores.
func isCodeToken(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return s != ""
}

// get returns the stored record without copying. Callers inside the package
// must not hand the record (or its translations map) to API users; lookup
// does that with a defensive copy.
func (r *registry) get(code string) (DeclineRecord, bool) {
	rec, ok := r.records[code]
	return rec, ok
}

// lookup matches code exactly and case-sensitively; no trimming or
// normalization is applied. The returned record is a copy.
func (r *registry) lookup(code string) (DeclineRecord, bool) {
	rec, ok := r.records[code]
	if !ok {
		return DeclineRecord{}, false
	}
	return rec.clone(), true
}

func (r *registry) isValid(code string) bool {
	_, ok := r.records[code]
	return ok
}

// allCodes returns a fresh copy of the code list in dataset order.
func (r *registry) allCodes() []string {
	codes := make([]string, len(r.codes))
	copy(codes, r.codes)
	return codes
}

func (r *registry) categoryOf(code string) (Category, bool) {
	rec, ok := r.records[code]
	if !ok {
		return "", false
	}
	return rec.Category, true
}

// GetDeclineDescription returns the dataset version together with the record
// for code. For an unknown (or empty) code the Record field is nil and the
// version is still populated.
func GetDeclineDescription(code string) DeclineDescription {
	desc := DeclineDescription{DocVersion: docVersion}
	if rec, ok := getRegistry().lookup(code); ok {
		desc.Record = &rec
	}
	return desc
}

// GetAllDeclineCodes returns every known decline code in a stable order. The
// order is identical across calls within a process; the returned slice is a
// copy the caller may modify freely.
func GetAllDeclineCodes() []string {
	return getRegistry().allCodes()
}

// IsValidDeclineCode reports whether code is present in the dataset. The
// match is exact and case-sensitive.
func IsValidDeclineCode(code string) bool {
	return getRegistry().isValid(code)
}

// GetDeclineCategory returns the category of a known code. ok is false for
// any string not present in the dataset.
func GetDeclineCategory(code string) (Category, bool) {
	return getRegistry().categoryOf(code)
}

// IsHardDecline reports whether code is a known, permanently declined code.
// It is false for unknown codes.
func IsHardDecline(code string) bool {
	cat, ok := getRegistry().categoryOf(code)
	return ok && cat == CategoryHardDecline
}

// IsSoftDecline reports whether code is a known, transiently declined code.
// It is false for unknown codes.
func IsSoftDecline(code string) bool {
	cat, ok := getRegistry().categoryOf(code)
	return ok && cat == CategorySoftDecline
}
