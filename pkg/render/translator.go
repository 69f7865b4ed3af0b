package render

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrMissingTranslator is reported to MissingTranslationHandler when a lookup
// is attempted without a configured Translator.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message key for a locale. Keys are the source-language
// strings, mirroring gettext style catalogs.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// DomainTranslator is implemented by translators that scope catalogs by text
// domain (e.g. "kb-support"). Lookup prefers it when available.
type DomainTranslator interface {
	TranslateDomain(locale, domain, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a plain function into a Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate implements Translator.
func (fn TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	if fn == nil {
		return "", ErrMissingTranslator
	}
	return fn(locale, key, args...)
}

// MissingTranslationHandler decides what string to emit when a key cannot be
// resolved. params carries the call arguments; err explains the miss.
type MissingTranslationHandler func(locale, key string, params []any, err error) string

func missingTranslationDefault(_ string, key string, params []any, _ error) string {
	if len(params) == 0 {
		return key
	}
	if strings.Contains(key, "%") {
		return fmt.Sprintf(key, params...)
	}
	return key
}

// Lookup translates key for locale within domain. A nil translator, an error or
// an empty result routes through onMissing (the key itself by default).
func Lookup(t Translator, locale, domain, key string, onMissing MissingTranslationHandler, args ...any) string {
	if key == "" {
		return ""
	}
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	if t == nil {
		return onMissing(locale, key, args, ErrMissingTranslator)
	}

	var (
		msg string
		err error
	)
	if scoped, ok := t.(DomainTranslator); ok && domain != "" {
		msg, err = scoped.TranslateDomain(locale, domain, key, args...)
	} else {
		msg, err = t.Translate(locale, key, args...)
	}
	if err != nil || strings.TrimSpace(msg) == "" {
		return onMissing(locale, key, args, err)
	}
	return msg
}

// NormalizeLocale canonicalises BCP 47 and WordPress style (en_US) locale
// identifiers. Unparseable input is returned trimmed.
func NormalizeLocale(locale string) string {
	trimmed := strings.TrimSpace(locale)
	if trimmed == "" {
		return ""
	}
	tag, err := language.Parse(strings.ReplaceAll(trimmed, "_", "-"))
	if err != nil {
		return trimmed
	}
	return tag.String()
}
