package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Translator resolves messages against catalogs loaded from an adapter.
// It is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	missingLogMode bool
	logger         *slog.Logger
	matcher        language.Matcher
	ordered        []string
	mu             sync.RWMutex
}

// NewTranslator loads catalogs from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.matcher, t.ordered = newMatcher(t.supportedLanguages(), t.defaultLang)
	t.logger.InfoContext(ctx, "translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

func validateTranslations(trans map[string]map[string]any) error {
	for lang, entries := range trans {
		if lang == "" {
			return fmt.Errorf("empty language code found")
		}
		if entries == nil {
			return fmt.Errorf("nil translations map for language: %s", lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the loaded language codes in sorted order.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the configured fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match returns the supported language that best fits the preferences, or
// the default language when nothing matches.
func (t *Translator) Match(preferred ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.ordered) == 0 {
		return t.defaultLang
	}
	tags := ParsePreferences(preferred...)
	if len(tags) == 0 {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(t.ordered) {
		return t.defaultLang
	}
	return t.ordered[idx]
}

// lookup tries key as a flat entry first, then as a dot-separated path.
func lookup(m map[string]any, key string) (any, bool) {
	if val, ok := m[key]; ok {
		return val, true
	}

	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return next, true
		}
		current, ok = next.(map[string]any)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

// Lookup returns the raw template stored for key in lang.
func (t *Translator) Lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	val, ok := lookup(langMap, key)
	if !ok {
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}

// HasTranslation reports whether lang has a string template for key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.Lookup(lang, key)
	return ok
}

// Td translates key for lang, falling back to defaultValue. Args are
// key/value pairs substituted into `%{name}` placeholders.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	tmpl, ok := t.Lookup(lang, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", "lang", lang, "key", key)
		}
		tmpl = defaultValue
	}
	return Format(tmpl, args...)
}

// Localize renders msg in lang.
func (t *Translator) Localize(lang string, msg Message) string {
	return t.Td(lang, msg.Key, msg.Default, msg.Args...)
}

// Localizer binds the translator to lang.
func (t *Translator) Localizer(lang string) Localizer {
	return LocalizerFunc(func(msg Message) string {
		return t.Localize(lang, msg)
	})
}

// LocalizerContext binds the translator to the locale stored in ctx.
func (t *Translator) LocalizerContext(ctx context.Context) Localizer {
	return t.Localizer(GetLocale(ctx))
}
