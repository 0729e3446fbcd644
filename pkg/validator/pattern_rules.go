package validator

import (
	"fmt"

	"github.com/dmitrymomot/formcheck/pkg/pattern"
)

// MatchesPattern reports whether value contains a match of the caller-supplied
// pattern. The search is unanchored; use ^ and $ in expr for a full match.
// Invalid or oversized patterns return an error wrapping
// pattern.ErrInvalidPattern or pattern.ErrPatternTooLong.
func MatchesPattern(value, expr string) (bool, error) {
	re, err := pattern.Compile(expr)
	if err != nil {
		return false, err
	}
	return re.MatchString(value), nil
}

// Pattern builds a rule checking value against a caller-supplied pattern.
// The pattern is compiled up front so a bad pattern is reported here rather
// than turning into a rule that never passes.
func Pattern(field, value, expr string) (Rule, error) {
	re, err := pattern.Compile(expr)
	if err != nil {
		return Rule{}, fmt.Errorf("pattern rule for %q: %w", field, err)
	}

	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "has an invalid format",
			TranslationKey: "validation.pattern",
			TranslationValues: map[string]any{
				"field":   field,
				"pattern": expr,
			},
		},
	}, nil
}
