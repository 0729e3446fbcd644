package binder

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrMalformedInput    = errors.New("malformed form input")
	ErrInputTooLarge     = errors.New("form input too large")
)
