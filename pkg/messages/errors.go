package messages

import "errors"

var (
	ErrNilSource         = errors.New("messages: source is nil")
	ErrNilParser         = errors.New("messages: parser is nil")
	ErrLoadCancelled     = errors.New("messages: loading cancelled")
	ErrReadFailed        = errors.New("messages: failed to read message file")
	ErrParseFailed       = errors.New("messages: failed to parse message content")
	ErrInvalidStructure  = errors.New("messages: invalid catalogue structure")
	ErrNoMessageFiles    = errors.New("messages: no message files found")
	ErrUnsupportedFormat = errors.New("messages: unsupported file format")
)
