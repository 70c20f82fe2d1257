package i18n_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authinput/pkg/i18n"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"com.auth0.lock.input.empty.error": "Must not be empty",
			"password": map[string]any{
				"length": "At least %{count} characters in length",
			},
		},
		"es": {
			"com.auth0.lock.input.empty.error":    "No puede estar vacío",
			"com.auth0.lock.input.username.error": "Entre %{min} y %{max} caracteres alfanuméricos y '_'.",
		},
		"fr-CA": {
			"com.auth0.lock.input.empty.error": "Ne doit pas être vide",
		},
	}}

	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

type failingAdapter struct{ err error }

func (a failingAdapter) Load(context.Context) (map[string]map[string]any, error) {
	return nil, a.err
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	t.Run("nil adapter", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("adapter error is returned", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := i18n.NewTranslator(context.Background(), failingAdapter{err: boom})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("rejects empty language code", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"": {"k": "v"}}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		assert.Error(t, err)
	})

	t.Run("rejects nil catalog", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"en": nil}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		assert.Error(t, err)
	})

	t.Run("empty catalogs are allowed", func(t *testing.T) {
		tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{})
		require.NoError(t, err)
		assert.Empty(t, tr.SupportedLanguages())
		assert.Equal(t, "en", tr.Match("es"))
	})
}

func TestTranslator_SupportedLanguages(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)
	assert.Equal(t, []string{"en", "es", "fr-CA"}, tr.SupportedLanguages())
	assert.Equal(t, "en", tr.DefaultLanguage())
}

func TestTranslator_Td(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	tests := []struct {
		name string
		lang string
		key  string
		def  string
		args []string
		want string
	}{
		{"flat dotted key", "es", "com.auth0.lock.input.empty.error", "Must not be empty", nil, "No puede estar vacío"},
		{"nested key", "en", "password.length", "At least %{count}", []string{"count", "8"}, "At least 8 characters in length"},
		{"placeholders", "es", "com.auth0.lock.input.username.error", "x", []string{"min", "1", "max", "15"}, "Entre 1 y 15 caracteres alfanuméricos y '_'."},
		{"missing key falls back to default", "es", "com.auth0.lock.input.otp.error", "Must be a valid numeric code", nil, "Must be a valid numeric code"},
		{"missing language falls back to default", "de", "com.auth0.lock.input.empty.error", "Must not be empty", nil, "Must not be empty"},
		{"default gets args too", "de", "missing", "%{min}-%{max}", []string{"min", "3", "max", "8"}, "3-8"},
		{"non-string entry falls back", "en", "password", "fallback", nil, "fallback"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tr.Td(tt.lang, tt.key, tt.def, tt.args...))
		})
	}
}

func TestTranslator_HasTranslation(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	assert.True(t, tr.HasTranslation("en", "password.length"))
	assert.True(t, tr.HasTranslation("es", "com.auth0.lock.input.empty.error"))
	assert.False(t, tr.HasTranslation("en", "password"))
	assert.False(t, tr.HasTranslation("en", "password.length.extra"))
	assert.False(t, tr.HasTranslation("de", "password.length"))
}

func TestTranslator_Localizer(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)
	msg := i18n.NewMessage("com.auth0.lock.input.empty.error", "Must not be empty")

	assert.Equal(t, "No puede estar vacío", tr.Localizer("es").Localize(msg))
	assert.Equal(t, "Must not be empty", tr.Localize("en", msg))

	ctx := i18n.SetLocale(context.Background(), "fr-CA")
	assert.Equal(t, "Ne doit pas être vide", tr.LocalizerContext(ctx).Localize(msg))
	assert.Equal(t, "Must not be empty", tr.LocalizerContext(context.Background()).Localize(msg))
}

func TestTranslator_Match(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	tests := []struct {
		name  string
		prefs []string
		want  string
	}{
		{"exact", []string{"es"}, "es"},
		{"regional variant", []string{"es-MX"}, "es"},
		{"accept-language header", []string{"de-DE,es;q=0.8,en;q=0.5"}, "es"},
		{"unsupported falls back to default", []string{"ja"}, "en"},
		{"no preferences", nil, "en"},
		{"malformed input", []string{"!!!"}, "en"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tr.Match(tt.prefs...))
		})
	}
}

func TestTranslator_MissingTranslationsLogging(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))
	tr := newTestTranslator(t, i18n.WithLogger(logger), i18n.WithMissingTranslationsLogging(true))

	tr.Td("es", "nope", "default")
	assert.Contains(t, buf.String(), "translation not found")
	assert.Contains(t, buf.String(), "key=nope")
}

func TestTranslator_Concurrency(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)
	msg := i18n.NewMessage("com.auth0.lock.input.empty.error", "Must not be empty")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "No puede estar vacío", tr.Localize("es", msg))
			assert.Equal(t, "es", tr.Match("es-AR"))
		}()
	}
	wg.Wait()
}
