package render

import "strings"

// TranslateFuncs returns the translate template helper bound to domain:
//
//	{{ translate(locale, "Total Open") }}
//	{{ translate(locale, "Most Popular %s", label) }}
//
// The first argument is either a locale string or the template's data map,
// in which case its "locale" entry is used. onMissing may be nil.
func TranslateFuncs(t Translator, domain string, onMissing MissingTranslationHandler) map[string]any {
	return map[string]any{
		"translate": func(locale any, key string, args ...any) string {
			key = strings.TrimSpace(key)
			if key == "" {
				return ""
			}
			return Lookup(t, localeOf(locale), domain, key, onMissing, args...)
		},
	}
}

func localeOf(src any) string {
	switch v := src.(type) {
	case string:
		return v
	case map[string]any:
		locale, _ := v["locale"].(string)
		return locale
	default:
		return ""
	}
}
