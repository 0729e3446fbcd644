package pattern

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
)

const (
	// DefaultMaxLength is the default upper bound on pattern size in bytes.
	DefaultMaxLength = 512

	// DefaultCacheSize is the default number of compiled patterns kept in memory.
	DefaultCacheSize = 128

	foldPrefix = "(?i)"
)

// Stats reports cache usage of a Compiler.
type Stats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithMaxLength sets the maximum accepted pattern length in bytes.
// Non-positive values are ignored.
func WithMaxLength(n int) Option {
	return func(c *Compiler) {
		if n > 0 {
			c.maxLength = n
		}
	}
}

// WithCacheSize sets the number of compiled patterns kept in the LRU cache.
// Non-positive values are ignored.
func WithCacheSize(n int) Option {
	return func(c *Compiler) {
		if n > 0 {
			c.cacheSize = n
		}
	}
}

// WithLogger sets the logger used to report rejected patterns.
func WithLogger(l *slog.Logger) Option {
	return func(c *Compiler) {
		if l != nil {
			c.logger = l
		}
	}
}

// Compiler validates and compiles caller-supplied patterns.
// It is safe for concurrent use.
type Compiler struct {
	maxLength int
	cacheSize int
	cache     *regexpCache
	logger    *slog.Logger
}

// New creates a Compiler with the given options applied over the defaults.
func New(opts ...Option) *Compiler {
	c := &Compiler{
		maxLength: DefaultMaxLength,
		cacheSize: DefaultCacheSize,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cache = newRegexpCache(c.cacheSize)
	return c
}

// MaxLength returns the pattern length bound of the compiler.
func (c *Compiler) MaxLength() int {
	return c.maxLength
}

// Compile checks the pattern against the length bound and compiles it.
func (c *Compiler) Compile(expr string) (*regexp.Regexp, error) {
	return c.compile(expr, expr)
}

// CompileFold is like Compile but the resulting expression matches case-insensitively.
// The flag is prepended rather than wrapped around the pattern so an unbalanced
// parenthesis in expr still fails to compile.
func (c *Compiler) CompileFold(expr string) (*regexp.Regexp, error) {
	return c.compile(expr, foldPrefix+expr)
}

func (c *Compiler) compile(expr, source string) (*regexp.Regexp, error) {
	if len(expr) > c.maxLength {
		c.logger.Warn("pattern rejected",
			slog.String("reason", "too long"),
			slog.Int("length", len(expr)),
			slog.Int("max_length", c.maxLength),
		)
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrPatternTooLong, len(expr), c.maxLength)
	}

	if re, ok := c.cache.get(source); ok {
		return re, nil
	}

	re, err := regexp.Compile(source)
	if err != nil {
		c.logger.Warn("pattern rejected", slog.String("reason", "syntax"), slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	c.cache.put(source, re)
	return re, nil
}

// Stats returns a snapshot of cache usage.
func (c *Compiler) Stats() Stats {
	return c.cache.stats()
}

// Reset drops every cached expression.
func (c *Compiler) Reset() {
	c.cache.clear()
}

var defaultCompiler = New()

// Default returns the package-level Compiler used by Compile and CompileFold.
func Default() *Compiler {
	return defaultCompiler
}

// Compile compiles expr with the default Compiler.
func Compile(expr string) (*regexp.Regexp, error) {
	return defaultCompiler.Compile(expr)
}

// CompileFold compiles expr case-insensitively with the default Compiler.
func CompileFold(expr string) (*regexp.Regexp, error) {
	return defaultCompiler.CompileFold(expr)
}
