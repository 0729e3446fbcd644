package messages

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// DefaultLanguage is used when a requested language has no messages.
const DefaultLanguage = "en"

var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Catalog resolves message keys to text. It is safe for concurrent use.
type Catalog struct {
	mu         sync.RWMutex
	entries    map[string]map[string]any
	fallback   string
	logger     *slog.Logger
	logMissing bool
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithFallbackLanguage sets the language consulted when the requested one has
// no messages at all. Defaults to DefaultLanguage.
func WithFallbackLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.fallback = lang
		}
	}
}

// WithLogger sets the logger. A discard logger is used otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMissingLogging logs a warning for every key that cannot be resolved.
func WithMissingLogging(enabled bool) Option {
	return func(c *Catalog) {
		c.logMissing = enabled
	}
}

// New loads a catalogue from source.
func New(ctx context.Context, source Source, opts ...Option) (*Catalog, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	c := &Catalog{
		fallback: DefaultLanguage,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	entries, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, tree := range entries {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidStructure)
		}
		if tree == nil {
			return nil, fmt.Errorf("%w: nil messages for language %q", ErrInvalidStructure, lang)
		}
	}

	c.entries = make(map[string]map[string]any, len(entries))
	for lang, tree := range entries {
		c.entries[lang] = cloneTree(tree)
	}

	c.logger.DebugContext(ctx, "message catalogue loaded", slog.Any("languages", c.languages()))
	return c, nil
}

// Languages returns the language codes with messages, sorted.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.languages()
}

func (c *Catalog) languages() []string {
	return slices.Sorted(maps.Keys(c.entries))
}

// Has reports whether key resolves to a message in lang, without fallback.
func (c *Catalog) Has(lang, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tree, ok := c.entries[lang]
	if !ok {
		return false
	}
	_, ok = lookup(tree, key)
	return ok
}

// T renders key in lang. Placeholder values are passed as name, value pairs:
//
//	cat.T("en", "validation.required", "field", "Email")
//
// An unknown key renders as the key itself.
func (c *Catalog) T(lang, key string, args ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if text, ok := c.resolve(lang, key); ok {
		return substitute(text, args)
	}
	c.missing(lang, key)
	return substitute(key, args)
}

// Td renders key in lang, or fallback when the key is unknown.
func (c *Catalog) Td(lang, key, fallback string, args ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if text, ok := c.resolve(lang, key); ok {
		return substitute(text, args)
	}
	c.missing(lang, key)
	return substitute(fallback, args)
}

// N renders the plural form of key for n. It tries key.zero (for 0), key.one
// (for 1) and key.other, then key itself. A count placeholder is filled with
// n unless args already carries one.
func (c *Catalog) N(lang, key string, n int, args ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !hasArg(args, "count") {
		args = append(slices.Clip(args), "count", strconv.Itoa(n))
	}

	var forms []string
	switch n {
	case 0:
		forms = []string{key + ".zero", key + ".other"}
	case 1:
		forms = []string{key + ".one"}
	default:
		forms = []string{key + ".other"}
	}
	forms = append(forms, key)

	for _, form := range forms {
		if text, ok := c.resolve(lang, form); ok {
			return substitute(text, args)
		}
	}
	c.missing(lang, key)
	return substitute(key, args)
}

// Merge overlays other onto c. Keys present in both take other's text;
// nested groups are merged key by key.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil || other == c {
		return
	}

	other.mu.RLock()
	overlay := make(map[string]map[string]any, len(other.entries))
	for lang, tree := range other.entries {
		overlay[lang] = cloneTree(tree)
	}
	other.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	for lang, tree := range overlay {
		if c.entries[lang] == nil {
			c.entries[lang] = tree
			continue
		}
		mergeTree(c.entries[lang], tree)
	}
}

// resolve looks key up in lang, then in the fallback language when lang has
// no messages at all. Callers hold the read lock.
func (c *Catalog) resolve(lang, key string) (string, bool) {
	tree, ok := c.entries[lang]
	if !ok {
		tree, ok = c.entries[c.fallback]
		if !ok {
			return "", false
		}
	}

	val, ok := lookup(tree, key)
	if !ok {
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case map[string]any:
		return "", false
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}

func (c *Catalog) missing(lang, key string) {
	if c.logMissing {
		c.logger.Warn("message not found", slog.String("lang", lang), slog.String("key", key))
	}
}

// lookup walks a dot-separated key through nested maps.
func lookup(tree map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := tree
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		current, ok = val.(map[string]any)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

func hasArg(args []string, name string) bool {
	for i := 0; i+1 < len(args); i += 2 {
		if args[i] == name {
			return true
		}
	}
	return false
}

func cloneTree(tree map[string]any) map[string]any {
	out := make(map[string]any, len(tree))
	for k, v := range tree {
		if sub, ok := v.(map[string]any); ok {
			out[k] = cloneTree(sub)
			continue
		}
		out[k] = v
	}
	return out
}

// mergeTree copies src into dst, descending into groups present in both.
func mergeTree(dst, src map[string]any) {
	for k, v := range src {
		sub, isMap := v.(map[string]any)
		existing, hasMap := dst[k].(map[string]any)
		if isMap && hasMap {
			mergeTree(existing, sub)
			continue
		}
		if isMap {
			dst[k] = cloneTree(sub)
			continue
		}
		dst[k] = v
	}
}
