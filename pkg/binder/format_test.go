package binder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/binder"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]binder.Format{
		"yaml":       binder.FormatYAML,
		"YML":        binder.FormatYAML,
		" json ":     binder.FormatJSON,
		"urlencoded": binder.FormatURLEncoded,
		"form":       binder.FormatURLEncoded,
	}
	for in, want := range tests {
		got, err := binder.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := binder.ParseFormat("xml")
	assert.ErrorIs(t, err, binder.ErrUnsupportedFormat)
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    binder.Format
		wantErr bool
	}{
		{"signup.yaml", binder.FormatYAML, false},
		{"dir/SIGNUP.YML", binder.FormatYAML, false},
		{"order.json", binder.FormatJSON, false},
		{"post.form", binder.FormatURLEncoded, false},
		{"post.urlencoded", binder.FormatURLEncoded, false},
		{"notes.txt", "", true},
		{"-", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			got, err := binder.FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, binder.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		contentType string
		want        binder.Format
		wantErr     bool
	}{
		{"application/json", binder.FormatJSON, false},
		{"application/json; charset=utf-8", binder.FormatJSON, false},
		{"Application/X-WWW-Form-Urlencoded", binder.FormatURLEncoded, false},
		{"application/yaml", binder.FormatYAML, false},
		{"text/yaml", binder.FormatYAML, false},
		{"multipart/form-data; boundary=x", "", true},
		{"", "", true},
		{"not a media type;;", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			t.Parallel()
			got, err := binder.FormatFromContentType(tt.contentType)
			if tt.wantErr {
				assert.ErrorIs(t, err, binder.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
