package validator

import "github.com/dmitrymomot/formcheck/pkg/sanitizer"

// IsNotEmpty reports whether s has content once surrounding whitespace is trimmed.
func IsNotEmpty(s string) bool {
	return sanitizer.TrimAll(s) != ""
}

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsNotEmpty(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
