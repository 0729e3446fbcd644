package binder

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// Format names an input encoding.
type Format string

const (
	FormatYAML       Format = "yaml"
	FormatJSON       Format = "json"
	FormatURLEncoded Format = "urlencoded"
)

// ParseFormat validates a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatYAML, FormatJSON, FormatURLEncoded:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "form":
		return FormatURLEncoded, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath infers the format from a file extension: .yaml and .yml,
// .json, or .form and .urlencoded.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".form", ".urlencoded":
		return FormatURLEncoded, nil
	default:
		return "", fmt.Errorf("%w: cannot infer format of %q", ErrUnsupportedFormat, path)
	}
}

// FormatFromContentType infers the format from a Content-Type header value.
// Media type parameters such as charset are ignored.
func FormatFromContentType(contentType string) (Format, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnsupportedFormat, contentType, err)
	}

	switch mediaType {
	case "application/json":
		return FormatJSON, nil
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return FormatYAML, nil
	case "application/x-www-form-urlencoded":
		return FormatURLEncoded, nil
	default:
		return "", fmt.Errorf("%w: media type %s", ErrUnsupportedFormat, mediaType)
	}
}
