// Package pattern compiles caller-supplied regular expressions behind a size
// bound and a small LRU cache.
//
// A few helpers in this module accept a pattern from the caller and apply it
// to user input (validator.MatchesPattern, sanitizer.RemoveCharacters). Those
// patterns are an injection surface, so they never reach regexp.Compile
// directly. The Compiler rejects patterns above a configurable byte length,
// reports syntax errors as ErrInvalidPattern and memoises successful
// compilations.
//
// Patterns use Go's RE2 syntax. RE2 matches in time linear in the input, so a
// hostile pattern cannot trigger catastrophic backtracking. Features that need
// backtracking (back-references, look-around) fail to compile and surface as
// ErrInvalidPattern.
//
// # Usage
//
//	re, err := pattern.Compile(`^\d{3}$`)
//	if err != nil {
//		if errors.Is(err, pattern.ErrInvalidPattern) {
//			// report bad input to the caller
//		}
//		return err
//	}
//	ok := re.MatchString(value)
//
// CompileFold does the same with case-insensitive matching. A dedicated
// Compiler can be created with New to change the length bound or cache size.
package pattern
