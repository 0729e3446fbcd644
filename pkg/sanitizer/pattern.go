package sanitizer

import (
	"fmt"

	"github.com/dmitrymomot/formcheck/pkg/pattern"
)

// RemoveCharacters removes every case-insensitive match of a caller-supplied
// pattern from s.
//
// The pattern goes through pattern.CompileFold, so an invalid or oversized
// pattern returns an error wrapping pattern.ErrInvalidPattern or
// pattern.ErrPatternTooLong and s is not modified.
//
//	RemoveCharacters(" sfdf  dfd", `\s*`) // "sfdfdfd"
func RemoveCharacters(s, expr string) (string, error) {
	re, err := pattern.CompileFold(expr)
	if err != nil {
		return s, fmt.Errorf("remove characters: %w", err)
	}
	return re.ReplaceAllString(s, ""), nil
}
