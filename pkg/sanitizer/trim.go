package sanitizer

import (
	"strings"
	"unicode"
)

// isSpace reports whether r is white space as browsers see it: Unicode
// White_Space plus the byte-order mark.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// RightTrim removes trailing whitespace.
func RightTrim(s string) string {
	return strings.TrimRightFunc(s, isSpace)
}

// LeftTrim removes leading whitespace.
func LeftTrim(s string) string {
	return strings.TrimLeftFunc(s, isSpace)
}

// TrimAll removes leading and trailing whitespace. An all-whitespace input
// becomes the empty string.
func TrimAll(s string) string {
	return Apply(s, RightTrim, LeftTrim)
}
