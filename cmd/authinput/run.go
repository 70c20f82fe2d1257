package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/dmitrymomot/authinput/pkg/config"
	"github.com/dmitrymomot/authinput/pkg/connection"
	"github.com/dmitrymomot/authinput/pkg/i18n"
	"github.com/dmitrymomot/authinput/pkg/logger"
	"github.com/dmitrymomot/authinput/pkg/message"
	"github.com/dmitrymomot/authinput/pkg/passwordpolicy"
	"github.com/dmitrymomot/authinput/pkg/validator"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitUsage   = 2
)

// Report is the JSON document printed for every validated value.
type Report struct {
	Field     string                      `json:"field"`
	Valid     bool                        `json:"valid"`
	Kind      string                      `json:"kind,omitempty"`
	Message   string                      `json:"message,omitempty"`
	Checklist []passwordpolicy.RuleResult `json:"checklist,omitempty"`
}

type options struct {
	field        string
	value        string
	locale       string
	connection   string
	translations string
	fromStdin    bool
}

func parseFlags(args []string, cfg Config, stderr io.Writer) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("authinput", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.field, "field", "f", "", "field to validate: email, username, password, otp or text")
	fs.StringVarP(&opts.value, "value", "v", "", "value to validate; read from stdin when omitted")
	fs.StringVarP(&opts.locale, "locale", "l", cfg.Locale, "preferred locale, e.g. es-AR")
	fs.StringVar(&opts.connection, "connection", cfg.Connection, "database connection settings file (json or yaml)")
	fs.StringVar(&opts.translations, "translations", cfg.Translations, "translation catalog file or directory")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.field == "" {
		return opts, errors.New("--field is required")
	}
	opts.fromStdin = !fs.Changed("value")
	return opts, nil
}

func newLogger(cfg Config, stderr io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "authinput"),
		logger.WithOutput(stderr),
		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
			if locale, ok := i18n.LocaleFromContext(ctx); ok {
				return logger.Locale(locale), true
			}
			return slog.Attr{}, false
		}),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}

// localizer returns the lookup service for the negotiated locale, or the
// default texts when no catalogs are configured.
func localizer(ctx context.Context, path, locale string, log *slog.Logger) (i18n.Localizer, string, error) {
	if path == "" {
		return i18n.Defaults, i18n.DefaultLanguage, nil
	}

	adapter, err := i18n.NewAdapterForPath(path)
	if err != nil {
		return nil, "", err
	}
	tr, err := i18n.NewTranslator(ctx, adapter,
		i18n.WithLogger(log.With(logger.Component("i18n"))),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		return nil, "", err
	}
	lang := tr.Match(locale)
	return tr.Localizer(lang), lang, nil
}

func loadConnection(ctx context.Context, path string) (connection.Database, error) {
	if path == "" {
		return connection.Database{Name: "default"}, nil
	}
	return connection.Load(ctx, path)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	opts, err := parseFlags(args, cfg, stderr)
	if err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			log.ErrorContext(ctx, "invalid arguments", logger.Error(err))
		}
		return exitUsage
	}

	loc, lang, err := localizer(ctx, opts.translations, opts.locale, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to load translations", logger.Error(err))
		return exitUsage
	}
	ctx = i18n.SetLocale(ctx, lang)

	db, err := loadConnection(ctx, opts.connection)
	if err != nil {
		log.ErrorContext(ctx, "failed to load connection settings", logger.Error(err))
		return exitUsage
	}
	validators, err := db.Validators(loc)
	if err != nil {
		log.ErrorContext(ctx, "failed to build validators", logger.Error(err))
		return exitUsage
	}

	v, ok := validators.ByField(opts.field)
	if !ok {
		log.ErrorContext(ctx, "unknown field", logger.Field(opts.field))
		return exitUsage
	}

	value := opts.value
	if opts.fromStdin {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			log.ErrorContext(ctx, "failed to read value", logger.Error(err))
			return exitUsage
		}
		value = string(raw)
	}

	report := Report{Field: opts.field, Valid: true}
	if opts.field == "password" {
		report.Checklist = validators.Password.Checklist(value)
	}

	if err := v.Validate(value); err != nil {
		verr, _ := validator.AsValidationError(err)
		report.Valid = false
		report.Kind = verr.Kind.String()
		report.Message = message.Resolve(verr, db.MessageContext(loc))
		log.DebugContext(ctx, "value rejected", logger.Field(opts.field), logger.Kind(verr.Kind))
	} else {
		log.DebugContext(ctx, "value accepted", logger.Field(opts.field))
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.ErrorContext(ctx, "failed to write report", logger.Error(err))
		return exitUsage
	}

	if !report.Valid {
		return exitInvalid
	}
	return exitValid
}
