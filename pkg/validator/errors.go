package validator

import "errors"

// ErrValidationFailed is the sentinel every ValidationErrors value matches,
// so callers can tell bad input apart from other failures with errors.Is.
var ErrValidationFailed = errors.New("validation failed")
