package validator

import "regexp"

var (
	// -12, 12., 12.5, .5 and -.5 are all numeric.
	numericRegex = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)$`)

	integerRegex = regexp.MustCompile(`^-?\d+$`)
)

// IsNumeric reports whether s is a decimal number with an optional leading
// minus and at most one decimal point.
func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// IsInteger reports whether s is a whole number with an optional leading minus.
func IsInteger(s string) bool {
	return integerRegex.MatchString(s)
}

// ValidNumeric validates that value is a decimal number.
func ValidNumeric(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsNumeric(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a number",
			TranslationKey: "validation.numeric",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidInteger validates that value is a whole number.
func ValidInteger(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsInteger(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a whole number",
			TranslationKey: "validation.integer",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
