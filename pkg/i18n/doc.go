// Package i18n is the string-resource lookup used to turn validation feedback
// into display text. It never owns message catalogs: callers load them through
// a TranslationAdapter (in-memory map, single file or a directory of YAML/JSON
// files) and the package resolves (locale, key, default) triples against them.
//
// # Architecture
//
// Every user-facing string is described by a Message value: a stable lookup
// key, the default text shown when no translation exists and optional named
// arguments. Message producers depend only on the Localizer interface, so a
// validator or resolver can be used with the bare default text (Defaults) or
// with a Translator bound to a locale (Translator.Localizer).
//
// Translator keeps the loaded catalogs in memory behind a sync.RWMutex. Keys
// are looked up verbatim first ("com.auth0.lock.input.empty.error" as a flat
// key) and then as a dot-separated path through nested maps. Placeholders use
// the `%{name}` form and are filled from key/value argument pairs.
//
// Locale negotiation is delegated to golang.org/x/text/language: Match picks
// the best supported catalog for a list of preferred tags, falling back to the
// default language.
//
// # Usage
//
//	adapter := i18n.NewFileAdapter(i18n.NewYAMLParser(), "./locales/lock.yaml")
//	tr, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//		return err
//	}
//
//	loc := tr.Localizer(tr.Match("es-MX", "en"))
//	text := loc.Localize(i18n.NewMessage("greeting", "Hello, %{name}!", "name", "Ana"))
//
// # Error Handling
//
// Loading errors wrap package sentinels with errors.Join, so callers can test
// them with errors.Is:
//
//	if errors.Is(err, i18n.ErrFailedToParseYAML) {
//		// broken catalog
//	}
//
// Lookups never fail: a missing locale or key yields the message default.
package i18n
