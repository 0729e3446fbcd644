package messages_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/messages"
)

func TestFileSource(t *testing.T) {
	t.Parallel()

	t.Run("loads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("en:\n  form:\n    city: Where do you live?\n"), 0o600))

		cat, err := messages.New(context.Background(), messages.FileSource(messages.YAMLParser{}, path))
		require.NoError(t, err)
		assert.Equal(t, "Where do you live?", cat.T("en", "form.city"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := messages.New(context.Background(),
			messages.FileSource(messages.YAMLParser{}, filepath.Join(t.TempDir(), "absent.yaml")))
		assert.ErrorIs(t, err, messages.ErrReadFailed)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.json")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		_, err := messages.New(context.Background(), messages.FileSource(messages.JSONParser{}, path))
		assert.ErrorIs(t, err, messages.ErrInvalidStructure)
	})

	t.Run("nil parser", func(t *testing.T) {
		_, err := messages.New(context.Background(), messages.FileSource(nil, "x.yaml"))
		assert.ErrorIs(t, err, messages.ErrNilParser)
	})
}

func TestFSSource(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/a.yaml":     {Data: []byte("en:\n  hello: Hello\n  form:\n    city: City A\n")},
		"locales/b.yaml":     {Data: []byte("en:\n  form:\n    zip: Zip B\n    city: City B\nfr:\n  hello: Bonjour\n")},
		"locales/notes.txt":  {Data: []byte("ignored")},
		"locales/sub/c.yaml": {Data: []byte("en:\n  hello: Nested\n")},
		"broken/bad.yaml":    {Data: []byte("en: [")},
		"empty/readme.md":    {Data: []byte("nothing")},
	}

	t.Run("merges files in name order", func(t *testing.T) {
		cat, err := messages.New(context.Background(), messages.FSSource(messages.YAMLParser{}, fsys, "locales"))
		require.NoError(t, err)

		assert.Equal(t, "Hello", cat.T("en", "hello"), "subdirectories are not read")
		assert.Equal(t, "City B", cat.T("en", "form.city"))
		assert.Equal(t, "Zip B", cat.T("en", "form.zip"))
		assert.Equal(t, "Bonjour", cat.T("fr", "hello"))
	})

	t.Run("parse errors name the file", func(t *testing.T) {
		_, err := messages.New(context.Background(), messages.FSSource(messages.YAMLParser{}, fsys, "broken"))
		assert.ErrorIs(t, err, messages.ErrParseFailed)
		assert.Contains(t, err.Error(), "broken/bad.yaml")
	})

	t.Run("no supported files", func(t *testing.T) {
		_, err := messages.New(context.Background(), messages.FSSource(messages.YAMLParser{}, fsys, "empty"))
		assert.ErrorIs(t, err, messages.ErrNoMessageFiles)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := messages.New(context.Background(), messages.FSSource(messages.YAMLParser{}, fsys, "nowhere"))
		assert.ErrorIs(t, err, messages.ErrReadFailed)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := messages.New(ctx, messages.FSSource(messages.YAMLParser{}, fsys, "locales"))
		assert.ErrorIs(t, err, messages.ErrLoadCancelled)
	})

	t.Run("nil filesystem", func(t *testing.T) {
		_, err := messages.New(context.Background(), messages.FSSource(messages.YAMLParser{}, nil, "locales"))
		assert.ErrorIs(t, err, messages.ErrNilSource)
	})
}
