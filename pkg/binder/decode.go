package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formcheck/pkg/form"
)

// MaxInputSize is the largest input Decode accepts (10 MB).
const MaxInputSize = 10 << 20

type document struct {
	Fields []form.Field `json:"fields" yaml:"fields"`
}

// Decode reads all of r and decodes it as format.
func Decode(r io.Reader, format Format) ([]form.Field, error) {
	var decode func([]byte) ([]form.Field, error)
	switch format {
	case FormatYAML:
		decode = decodeYAML
	case FormatJSON:
		decode = decodeJSON
	case FormatURLEncoded:
		decode = decodeURLEncoded
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	body, err := io.ReadAll(io.LimitReader(r, MaxInputSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read input: %v", ErrMalformedInput, err)
	}
	if len(body) > MaxInputSize {
		return nil, fmt.Errorf("%w: max %d bytes", ErrInputTooLarge, MaxInputSize)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedInput)
	}

	return decode(body)
}

func decodeJSON(body []byte) ([]form.Field, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	var fields []form.Field
	var err error
	if bytes.TrimSpace(body)[0] == '[' {
		err = dec.Decode(&fields)
	} else {
		var doc document
		err = dec.Decode(&doc)
		fields = doc.Fields
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON value", ErrMalformedInput)
	}
	return fields, nil
}

func decodeYAML(body []byte) ([]form.Field, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedInput)
	}

	dec := yaml.NewDecoder(bytes.NewReader(body))
	dec.KnownFields(true)

	switch root.Content[0].Kind {
	case yaml.SequenceNode:
		var fields []form.Field
		if err := dec.Decode(&fields); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		return fields, nil
	case yaml.MappingNode:
		var doc document
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		return doc.Fields, nil
	default:
		return nil, fmt.Errorf("%w: expected a list of fields or a fields document", ErrMalformedInput)
	}
}

// decodeURLEncoded parses name=value pairs in order. url.ParseQuery is not
// used because it groups values by name and loses the original order. Only
// names present in the body become fields; an unticked checkbox a browser
// omitted does not appear.
func decodeURLEncoded(body []byte) ([]form.Field, error) {
	raw := strings.TrimSpace(string(body))

	var fields []form.Field
	for pair := range strings.SplitSeq(raw, "&") {
		if pair == "" {
			continue
		}

		rawName, rawValue, _ := strings.Cut(pair, "=")
		name, err := url.QueryUnescape(rawName)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrMalformedInput, rawName, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrMalformedInput, name, err)
		}

		fields = append(fields, form.Field{
			Name:    name,
			Value:   value,
			Checked: isChecked(value),
		})
	}
	return fields, nil
}

func isChecked(value string) bool {
	switch strings.ToLower(value) {
	case "on", "true", "1", "yes", "checked":
		return true
	default:
		return false
	}
}
