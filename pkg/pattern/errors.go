package pattern

import "errors"

var (
	// ErrInvalidPattern is returned when a pattern is not valid RE2 syntax.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrPatternTooLong is returned when a pattern exceeds the compiler's length bound.
	ErrPatternTooLong = errors.New("pattern too long")
)
