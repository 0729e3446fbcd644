package messages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// Source supplies the raw message trees a Catalog is built from.
type Source interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapSource is an in-memory source, handy for tests and programmatic overrides.
type MapSource map[string]map[string]any

func (s MapSource) Load(context.Context) (map[string]map[string]any, error) {
	if s == nil {
		return map[string]map[string]any{}, nil
	}
	return s, nil
}

type fileSource struct {
	parser Parser
	path   string
}

// FileSource loads a single catalogue file from disk.
func FileSource(parser Parser, path string) Source {
	return &fileSource{parser: parser, path: path}
}

func (s *fileSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	if s.parser == nil {
		return nil, ErrNilParser
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidStructure, s.path)
	}

	tree, err := s.parser.Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return tree, nil
}

type fsSource struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// FSSource loads every file in dir that parser supports. Files are merged in
// directory order, so a later file overrides keys from an earlier one.
func FSSource(parser Parser, fsys fs.FS, dir string) Source {
	return &fsSource{parser: parser, fsys: fsys, dir: dir}
}

func (s *fsSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	if s.parser == nil {
		return nil, ErrNilParser
	}
	if s.fsys == nil {
		return nil, ErrNilSource
	}

	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}

	all := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadCancelled, err)
		}
		if entry.IsDir() || !s.parser.Supports(path.Ext(entry.Name())) {
			continue
		}

		name := path.Join(s.dir, entry.Name())
		content, err := fs.ReadFile(s.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrReadFailed, err)
		}

		tree, err := s.parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for lang, msgs := range tree {
			if all[lang] == nil {
				all[lang] = make(map[string]any)
			}
			mergeTree(all[lang], msgs)
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoMessageFiles, s.dir)
	}
	return all, nil
}
