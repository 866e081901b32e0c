package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used when neither an explicit nor an ambient locale resolves.
const DefaultLocale = "en"

// normalizeLocale normalizes a locale identifier by replacing underscores
// with hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// resolveLocale picks the first non-empty candidate: explicit, ambient, default.
func resolveLocale(explicit, ambient string) string {
	if explicit = normalizeLocale(explicit); explicit != "" {
		return explicit
	}
	if ambient = normalizeLocale(ambient); ambient != "" {
		return ambient
	}
	return DefaultLocale
}

// baseLanguage strips region and script from a locale tag, so "en-GB"
// becomes "en". Returns the input unchanged when there is no subtag.
func baseLanguage(locale string) string {
	if idx := strings.IndexByte(locale, '-'); idx > 0 {
		return locale[:idx]
	}
	return locale
}

// parseTag parses a locale into a language tag, reporting whether the
// runtime knows enough about it to apply CLDR rules.
func parseTag(locale string) (language.Tag, bool) {
	if locale == "" {
		return language.Und, false
	}

	tag, err := language.Parse(locale)
	if err != nil || tag == language.Und {
		return language.Und, false
	}
	return tag, true
}
