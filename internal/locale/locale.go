package locale

import (
	"embed"
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/untd/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator wraps the i18n bundle and the active localizer for CLI messages.
type Translator struct {
	Bundle             *i18n.Bundle
	Localizer          *i18n.Localizer
	SupportedLanguages []string
}

// New initializes the translation bundle from the embedded locale files and
// selects the active message language. langs are tried in order; the default
// language is always the final fallback.
func New(langs ...string) *Translator {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	tr := &Translator{Bundle: bundle}

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		tr.Localizer = i18n.NewLocalizer(bundle, config.DefaultLanguage)
		return tr
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		trimmed := strings.TrimPrefix(name, "active.")
		langCode := strings.TrimSuffix(trimmed, ".json")

		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		path := "locales/" + name
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		tr.SupportedLanguages = append(tr.SupportedLanguages, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	langs = append(langs, config.DefaultLanguage)
	tr.Localizer = i18n.NewLocalizer(bundle, langs...)
	return tr
}

// Message translates key through the active localizer. It returns the key
// itself when no translation exists, so output never goes blank.
func (t *Translator) Message(key string) string {
	if t.Localizer == nil {
		return key
	}
	msg, err := t.Localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// WeekdayGlyphs returns the seven short weekday forms for lang, indexed by
// time.Weekday (Sunday first). A missing entry falls back to its key, which
// the locale integrity test guards against.
func (t *Translator) WeekdayGlyphs(lang string) [7]string {
	loc := i18n.NewLocalizer(t.Bundle, lang)

	var glyphs [7]string
	for i, key := range config.TKeysWeekdays {
		msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: key})
		if err != nil {
			slog.Debug(config.MsgTransMissing,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyKey, key,
				config.LogKeyError, err,
			)
			msg = key
		}
		glyphs[i] = msg
	}
	return glyphs
}

// SystemLanguages builds the message-language preference list: the explicit
// -lang value first, then the environment, normalized from POSIX locale
// names ("ja_JP.UTF-8") to BCP 47 tags ("ja-JP").
func SystemLanguages(explicit string) []string {
	candidates := []string{explicit, os.Getenv(config.EnvLang), os.Getenv(config.EnvLangSystem)}

	var langs []string
	for _, candidate := range candidates {
		if i := strings.IndexByte(candidate, '.'); i >= 0 {
			candidate = candidate[:i]
		}
		candidate = strings.ReplaceAll(candidate, "_", "-")
		if candidate != "" {
			langs = append(langs, candidate)
		}
	}
	return langs
}
