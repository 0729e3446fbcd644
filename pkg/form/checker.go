package form

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formcheck/pkg/logger"
	"github.com/dmitrymomot/formcheck/pkg/messages"
	"github.com/dmitrymomot/formcheck/pkg/validator"
)

// Checker validates form fields by category. It holds no per-call state and
// is safe for concurrent use.
type Checker struct {
	catalog     *messages.Catalog
	lang        string
	log         *slog.Logger
	strict      bool
	phoneRegion string
	patterns    map[string][]*regexp.Regexp
}

// Option configures a Checker.
type Option func(*Checker)

// WithCatalog sets the catalogue findings and summaries are rendered from.
func WithCatalog(c *messages.Catalog) Option {
	return func(ch *Checker) {
		if c != nil {
			ch.catalog = c
		}
	}
}

// WithLanguage selects the catalogue language. Defaults to "en".
func WithLanguage(lang string) Option {
	return func(ch *Checker) {
		if lang != "" {
			ch.lang = lang
		}
	}
}

// WithLogger sets the logger. Records carry the pass identifier when the
// logger was built with logger.PassIDExtractor.
func WithLogger(l *slog.Logger) Option {
	return func(ch *Checker) {
		if l != nil {
			ch.log = l
		}
	}
}

// WithStrictFormats checks state, zip and phone fields for shape instead of
// presence: a two-letter state code, a ZIP or ZIP+4 code, and a US phone
// number.
func WithStrictFormats() Option {
	return func(ch *Checker) {
		ch.strict = true
	}
}

// WithPhoneRegion checks phone fields against the numbering plan of an ISO
// 3166-1 region such as "US" or "GB". It takes precedence over the strict
// US phone shape.
func WithPhoneRegion(region string) Option {
	return func(ch *Checker) {
		ch.phoneRegion = strings.ToUpper(strings.TrimSpace(region))
	}
}

// WithPattern adds a pattern check for fields named name, ignoring case.
// Such fields are checked even when their name has no category. The
// pattern only runs when the category checks passed. Compile caller patterns through package pattern.
func WithPattern(name string, re *regexp.Regexp) Option {
	return func(ch *Checker) {
		if name == "" || re == nil {
			return
		}
		if ch.patterns == nil {
			ch.patterns = make(map[string][]*regexp.Regexp)
		}
		key := fold(name)
		ch.patterns[key] = append(ch.patterns[key], re)
	}
}

// New returns a Checker using the embedded English messages unless
// configured otherwise.
func New(opts ...Option) *Checker {
	ch := &Checker{
		lang: messages.DefaultLanguage,
	}
	for _, opt := range opts {
		opt(ch)
	}
	if ch.catalog == nil {
		ch.catalog = messages.Default()
	}
	if ch.log == nil {
		ch.log = logger.Discard()
	}
	return ch
}

// Check runs the category check of every recognised field and collects a
// finding per failed check. Fields with unknown names are skipped.
//
// A field with an empty name is a caller bug: Check stops and returns an
// error wrapping ErrUnnamedField. Cancelling ctx stops the pass between
// fields with ctx.Err().
func (ch *Checker) Check(ctx context.Context, fields []Field) (Result, error) {
	res := Result{PassID: uuid.NewString()}
	ctx = logger.WithPassID(ctx, res.PassID)

	for i, f := range fields {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if f.Name == "" {
			return Result{}, fmt.Errorf("%w: field %d", ErrUnnamedField, i)
		}

		name := fold(f.Name)
		cat, known := index[name]
		patterns := ch.patterns[name]
		if !known && len(patterns) == 0 {
			continue
		}

		var keys []string
		if known {
			keys = ch.failures(cat, f)
		}
		if len(keys) == 0 && !matchesAll(patterns, f.Value) {
			keys = []string{patternKey}
		}

		for _, key := range keys {
			res.Findings = append(res.Findings, Finding{
				Index:    i,
				Field:    f.Name,
				Category: cat,
				Key:      key,
				Message:  ch.message(key, f.Name),
			})
			ch.log.DebugContext(ctx, "field failed",
				logger.FieldName(f.Name),
				logger.Category(string(cat)),
				slog.String("key", key),
			)
		}
	}

	ch.log.InfoContext(ctx, "form checked",
		slog.Int("fields", len(fields)),
		logger.FindingCount(res.Count()),
	)
	return res, nil
}

// failures returns the message keys of the checks f fails for cat, in order.
// A card number is checked for shape and checksum independently, so it can
// fail twice.
func (ch *Checker) failures(cat Category, f Field) []string {
	key := messageKey(cat)

	switch cat {
	case Email:
		return failed(key, validator.IsEmail(f.Value))
	case Terms:
		return failed(key, f.Checked)
	case CCV:
		return failed(key, validator.IsCCV(f.Value))
	case CreditCard:
		var keys []string
		if !validator.IsCreditCard(f.Value) {
			keys = append(keys, key+"_format")
		}
		// An empty number has a zero checksum; the blank complaint covers it.
		if f.Value != "" && !validator.IsLuhn(f.Value) {
			keys = append(keys, key)
		}
		return keys
	case State:
		if ch.strict {
			return failed(key, validator.IsState(strings.TrimSpace(f.Value)))
		}
	case Zip:
		if ch.strict {
			return failed(key, validator.IsUSZip(strings.TrimSpace(f.Value)))
		}
	case Phone:
		if ch.phoneRegion != "" {
			return failed(key, validator.IsPhoneNumber(f.Value, ch.phoneRegion))
		}
		if ch.strict {
			return failed(key, validator.IsUSPhone(f.Value))
		}
	}
	return failed(key, validator.IsNotEmpty(f.Value))
}

func failed(key string, ok bool) []string {
	if ok {
		return nil
	}
	return []string{key}
}

func (ch *Checker) message(key, field string) string {
	if key == patternKey {
		return ch.catalog.T(ch.lang, key, "field", field)
	}
	return ch.catalog.T(ch.lang, key)
}

const patternKey = "validation.pattern"

func matchesAll(patterns []*regexp.Regexp, value string) bool {
	for _, re := range patterns {
		if !re.MatchString(value) {
			return false
		}
	}
	return true
}

func messageKey(cat Category) string {
	return "form." + string(cat)
}

// Summary renders the consolidated message for r: a header chosen by the
// number of findings, one line per finding and a closing blank line. A clean
// result renders as "".
func (ch *Checker) Summary(r Result) string {
	if r.OK() {
		return ""
	}

	var b strings.Builder
	b.WriteString(ch.catalog.N(ch.lang, "form.summary", r.Count()))
	for _, f := range r.Findings {
		b.WriteString(ch.catalog.T(ch.lang, "form.item", "message", f.Message))
	}
	b.WriteString("\n")
	return b.String()
}

var defaultChecker = sync.OnceValue(func() *Checker { return New() })

// Validate checks fields with the default Checker: English messages,
// presence checks and no logging.
func Validate(fields []Field) (Result, error) {
	return defaultChecker().Check(context.Background(), fields)
}

// Summary renders r with the default Checker.
func Summary(r Result) string {
	return defaultChecker().Summary(r)
}
