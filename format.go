package declinecodes

import "strings"

// Placeholder delimiters recognized by FormatDeclineMessage.
const (
	placeholderOpen  = "{{"
	placeholderClose = "}}"
)

// FormatDeclineMessage resolves the message for code and locale exactly like
// GetDeclineMessage, then substitutes {{name}} placeholders from vars.
// Placeholders whose name is not present in vars stay verbatim. With a nil
// or empty vars map the resolved message is returned unchanged. ok is false
// only when the code is unknown; vars never affect validity.
func FormatDeclineMessage(code string, locale Locale, vars map[string]string) (string, bool) {
	msg, ok := GetDeclineMessage(code, locale)
	if !ok {
		return "", false
	}
	if len(vars) == 0 {
		return msg, true
	}
	return substitutePlaceholders(msg, vars), true
}

// substitutePlaceholders replaces {{name}} tokens in a single left-to-right
// pass. A token spans from an opening "{{" to the next "}}"; an unmatched
// "{{" is literal text. Substituted values are written straight through and
// never re-scanned, so a value containing placeholder syntax cannot expand
// further.
func substitutePlaceholders(msg string, vars map[string]string) string {
	if !strings.Contains(msg, placeholderOpen) {
		return msg
	}

	var b strings.Builder
	b.Grow(len(msg))
	rest := msg
	for {
		open := strings.Index(rest, placeholderOpen)
		if open < 0 {
			b.WriteString(rest)
			break
		}
		nameStart := open + len(placeholderOpen)
		closeOff := strings.Index(rest[nameStart:], placeholderClose)
		if closeOff < 0 {
			b.WriteString(rest)
			break
		}
		end := nameStart + closeOff + len(placeholderClose)
		if val, ok := vars[rest[nameStart:nameStart+closeOff]]; ok {
			b.WriteString(rest[:open])
			b.WriteString(val)
		} else {
			b.WriteString(rest[:end])
		}
		rest = rest[end:]
	}
	return b.String()
}
