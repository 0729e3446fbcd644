package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when no WithEnvFiles option is given. It is
// optional: a missing file is not an error.
const DefaultEnvFile = ".env"

type options struct {
	environ  map[string]string
	files    []string
	optional bool
	prefix   string
}

// Option configures Load.
type Option func(*options)

// WithEnvironment parses env instead of the process environment.
func WithEnvironment(env map[string]string) Option {
	return func(o *options) {
		o.environ = env
	}
}

// WithEnvFiles reads the given dotenv files. Every file must exist. Values
// already present in the environment take precedence over file values, and
// earlier files take precedence over later ones.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.files = paths
		o.optional = false
	}
}

// WithPrefix prepends prefix to every env tag.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// Load parses environment variables into v based on its env tags.
//
//	type Config struct {
//		Lang   string `env:"FORMCHECK_LANG" envDefault:"en"`
//		Strict bool   `env:"FORMCHECK_STRICT"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{files: []string{DefaultEnvFile}, optional: true}
	for _, opt := range opts {
		opt(o)
	}

	environ := o.environ
	if environ == nil {
		environ = EnvironMap(os.Environ())
	} else {
		environ = copyMap(environ)
	}

	for _, path := range o.files {
		values, err := godotenv.Read(path)
		if err != nil {
			if o.optional && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Join(ErrEnvFile, fmt.Errorf("%s: %w", path, err))
		}
		for k, val := range values {
			if _, set := environ[k]; !set {
				environ[k] = val
			}
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Environment: environ, Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// EnvironMap converts KEY=value pairs, as returned by os.Environ, to a map.
// Entries without "=" are skipped.
func EnvironMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		m[k] = v
	}
	return m
}

func copyMap(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
