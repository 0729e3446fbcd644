package validator

import "regexp"

var (
	// Local part starts alphanumeric; the domain ends in a 2-3 letter TLD
	// optionally followed by up to two 2-letter country segments.
	emailRegex = regexp.MustCompile(`(?i)^[a-z0-9]([a-z0-9_\-\.]*)@([a-z0-9_\-\.]*)(\.[a-z]{2,3}(\.[a-z]{2}){0,2})$`)

	// 12-hour clock: H:MM, H:MM:SS or H:MM:SS.mmm (1-3 fractional digits).
	timeRegex = regexp.MustCompile(`^([1-9]|1[0-2]):[0-5]\d(:[0-5]\d(\.\d{1,3})?)?$`)
)

// IsEmail reports whether s looks like an email address. It is a near-valid
// shape check, not an RFC 5322 parser.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsTime reports whether s is a 12-hour clock time with optional seconds and
// milliseconds.
func IsTime(s string) bool {
	return timeRegex.MatchString(s)
}

// ValidEmail validates an email address shape.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsEmail(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidTime validates a 12-hour clock time.
func ValidTime(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsTime(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a time like 9:30 or 12:05:59",
			TranslationKey: "validation.time",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
