package form

import "errors"

var (
	// ErrUnnamedField is returned by Check for a field with an empty name.
	ErrUnnamedField = errors.New("form: field has no name")

	// ErrAliasConflict reports one field name claimed by two categories.
	ErrAliasConflict = errors.New("form: alias claimed by two categories")
)
