package i18n

import (
	"slices"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no locale is requested or none matches.
const DefaultLanguage = "en"

// maxPreferenceLength caps raw preference strings before parsing so an
// oversized Accept-Language value cannot blow up the parser.
const maxPreferenceLength = 4096

// ParsePreferences parses Accept-Language style values ("es-MX,es;q=0.9")
// or bare tags ("fr") into language tags ordered by preference. Malformed
// values are skipped.
func ParsePreferences(prefs ...string) []language.Tag {
	var tags []language.Tag
	for _, p := range prefs {
		if p == "" {
			continue
		}
		if len(p) > maxPreferenceLength {
			p = p[:maxPreferenceLength]
		}
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	return tags
}

// newMatcher ranks defaultLang first so the matcher falls back to it.
func newMatcher(langs []string, defaultLang string) (language.Matcher, []string) {
	ordered := make([]string, 0, len(langs))
	if slices.Contains(langs, defaultLang) {
		ordered = append(ordered, defaultLang)
	}
	for _, lang := range langs {
		if lang != defaultLang {
			ordered = append(ordered, lang)
		}
	}

	tags := make([]language.Tag, len(ordered))
	for i, lang := range ordered {
		tags[i] = language.Make(lang)
	}
	return language.NewMatcher(tags), ordered
}
