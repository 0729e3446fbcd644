package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/formcheck/pkg/binder"
	"github.com/dmitrymomot/formcheck/pkg/config"
	"github.com/dmitrymomot/formcheck/pkg/form"
	"github.com/dmitrymomot/formcheck/pkg/logger"
	"github.com/dmitrymomot/formcheck/pkg/messages"
	"github.com/dmitrymomot/formcheck/pkg/pattern"
)

const (
	exitOK       = 0
	exitFindings = 1
	exitError    = 2
)

type options struct {
	input       string
	format      string
	output      string
	lang        string
	strict      bool
	phoneRegion string
	messages    string
	matches     []string
}

type report struct {
	PassID   string         `json:"pass_id"`
	OK       bool           `json:"ok"`
	Count    int            `json:"count"`
	Findings []form.Finding `json:"findings"`
}

// run is the whole command minus process setup, so tests can drive it.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, environ []string) int {
	var cfg appConfig
	if err := config.Load(&cfg, config.WithEnvironment(config.EnvironMap(environ))); err != nil {
		fmt.Fprintf(stderr, "formcheck: %v\n", err)
		return exitError
	}

	opts, err := parseFlags(args, cfg, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitError
	}

	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "formcheck: %v\n", err)
		return exitError
	}
	log = log.With(logger.Component("formcheck"))

	code, err := check(ctx, opts, cfg, stdin, stdout, log)
	if err != nil {
		log.ErrorContext(ctx, "check failed", logger.Error(err))
		fmt.Fprintf(stderr, "formcheck: %v\n", err)
		return exitError
	}
	return code
}

func parseFlags(args []string, cfg appConfig, stderr io.Writer) (options, error) {
	opts := options{
		lang:        cfg.Lang,
		strict:      cfg.Strict,
		phoneRegion: cfg.PhoneRegion,
		messages:    cfg.Messages,
	}

	fs := flag.NewFlagSet("formcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.input, "input", "-", "form file to check, or - for stdin")
	fs.StringVar(&opts.format, "format", "", "input format: yaml, json or urlencoded (default: from the file extension);\n"+
		"urlencoded bodies omit unticked checkboxes, so list them as name=off or use yaml/json")
	fs.StringVar(&opts.output, "output", "text", "output: text or json")
	fs.StringVar(&opts.lang, "lang", opts.lang, "message language")
	fs.BoolVar(&opts.strict, "strict", opts.strict, "check state, zip and phone values for shape")
	fs.StringVar(&opts.phoneRegion, "phone-region", opts.phoneRegion, "check phone numbers against this region's numbering plan, e.g. US")
	fs.StringVar(&opts.messages, "messages", opts.messages, "YAML or JSON file overriding the built-in messages")
	fs.Func("match", "name=pattern: also require fields called name to match pattern (repeatable)", func(s string) error {
		if name, expr, ok := strings.Cut(s, "="); !ok || name == "" || expr == "" {
			return errors.New("expected name=pattern")
		}
		opts.matches = append(opts.matches, s)
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "formcheck: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return options{}, errors.New("unexpected arguments")
	}
	if opts.output != "text" && opts.output != "json" {
		fmt.Fprintf(stderr, "formcheck: invalid -output %q: must be text or json\n", opts.output)
		return options{}, errors.New("invalid output")
	}
	return opts, nil
}

func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "formcheck"),
		logger.WithOutput(w),
		logger.WithContextExtractors(logger.PassIDExtractor()),
	}

	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		logOpts = append(logOpts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		logOpts = append(logOpts, logger.WithFormat(format))
	}
	return logger.New(logOpts...), nil
}

func check(ctx context.Context, opts options, cfg appConfig, stdin io.Reader, stdout io.Writer, log *slog.Logger) (int, error) {
	fields, err := readFields(opts, stdin)
	if err != nil {
		return exitError, err
	}

	checkerOpts := []form.Option{
		form.WithLanguage(opts.lang),
		form.WithLogger(log),
	}
	if opts.strict {
		checkerOpts = append(checkerOpts, form.WithStrictFormats())
	}
	if opts.phoneRegion != "" {
		checkerOpts = append(checkerOpts, form.WithPhoneRegion(opts.phoneRegion))
	}

	cat, err := loadCatalog(ctx, opts.messages, log)
	if err != nil {
		return exitError, err
	}
	checkerOpts = append(checkerOpts, form.WithCatalog(cat))

	compiler := pattern.New(pattern.WithMaxLength(cfg.PatternMaxLength), pattern.WithLogger(log))
	for _, m := range opts.matches {
		name, expr, _ := strings.Cut(m, "=")
		re, err := compiler.Compile(expr)
		if err != nil {
			return exitError, fmt.Errorf("-match %s: %w", name, err)
		}
		checkerOpts = append(checkerOpts, form.WithPattern(name, re))
	}

	checker := form.New(checkerOpts...)
	res, err := checker.Check(ctx, fields)
	if err != nil {
		return exitError, err
	}

	switch opts.output {
	case "json":
		findings := res.Findings
		if findings == nil {
			findings = []form.Finding{}
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report{PassID: res.PassID, OK: res.OK(), Count: res.Count(), Findings: findings}); err != nil {
			return exitError, fmt.Errorf("write report: %w", err)
		}
	default:
		if _, err := io.WriteString(stdout, checker.Summary(res)); err != nil {
			return exitError, fmt.Errorf("write summary: %w", err)
		}
	}

	if !res.OK() {
		return exitFindings, nil
	}
	return exitOK, nil
}

func readFields(opts options, stdin io.Reader) ([]form.Field, error) {
	var (
		format binder.Format
		err    error
	)
	switch {
	case opts.format != "":
		format, err = binder.ParseFormat(opts.format)
	case opts.input == "-":
		return nil, errors.New("-format is required when reading stdin")
	default:
		format, err = binder.FormatFromPath(opts.input)
	}
	if err != nil {
		return nil, err
	}

	if opts.input == "-" {
		return binder.Decode(stdin, format)
	}

	f, err := os.Open(opts.input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fields, err := binder.Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.input, err)
	}
	return fields, nil
}

func loadCatalog(ctx context.Context, path string, log *slog.Logger) (*messages.Catalog, error) {
	cat := messages.Default(messages.WithLogger(log))
	if path == "" {
		return cat, nil
	}

	parser, err := messages.ParserFor(path)
	if err != nil {
		return nil, err
	}
	overlay, err := messages.New(ctx, messages.FileSource(parser, path), messages.WithLogger(log))
	if err != nil {
		return nil, err
	}
	cat.Merge(overlay)
	return cat, nil
}
