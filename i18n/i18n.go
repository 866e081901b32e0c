package i18n

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var placeholderPattern = regexp.MustCompile(`%\{([a-zA-Z0-9_]+)\}`)

// Translations maps lookup keys to display strings. Plural forms use dotted
// keys, e.g. "sections.one" and "sections.other".
type Translations map[string]string

// Params carries the count and placeholder values for a single T call.
type Params map[string]any

// I18n resolves lookup keys into display strings for one locale. It is
// immutable after construction and safe for concurrent use.
type I18n struct {
	translations Translations
	locale       string
	ambient      string
	tag          language.Tag
	tagOK        bool
	printer      *message.Printer
	logger       *slog.Logger
}

// Option mutates the engine during construction.
type Option func(*I18n) error

// New builds an engine over the given translation table. The locale resolves
// in order: WithLocale, WithAmbientLanguage, DefaultLocale.
func New(translations Translations, opts ...Option) (*I18n, error) {
	t := &I18n{
		translations: make(Translations, len(translations)),
		logger:       discardLogger(),
	}
	for key, value := range translations {
		t.translations[key] = value
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	t.locale = resolveLocale(t.locale, t.ambient)
	t.tag, t.tagOK = parseTag(t.locale)
	if t.tagOK {
		t.printer = message.NewPrinter(t.tag)
	}

	return t, nil
}

// WithLocale sets the explicit locale.
func WithLocale(locale string) Option {
	return func(t *I18n) error {
		t.locale = normalizeLocale(locale)
		return nil
	}
}

// WithAmbientLanguage sets the surrounding document's language, used when no
// explicit locale is given.
func WithAmbientLanguage(lang string) Option {
	return func(t *I18n) error {
		t.ambient = normalizeLocale(lang)
		return nil
	}
}

// WithLogger sets the logger used for recoverable degradations.
func WithLogger(logger *slog.Logger) Option {
	return func(t *I18n) error {
		if logger != nil {
			t.logger = logger
		}
		return nil
	}
}

// Locale returns the resolved locale.
func (t *I18n) Locale() string {
	return t.locale
}

// HasKey reports whether the table holds an entry for key.
func (t *I18n) HasKey(key string) bool {
	_, ok := t.translations[key]
	return ok
}

// T resolves a lookup key into a display string. A numeric "count" param
// redirects the lookup to the matching plural form before resolution.
// A missing key resolves to the key itself; placeholder contract violations
// and a missing "other" plural form are errors.
func (t *I18n) T(key string, params Params) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	lookup := key
	if count, ok := countParam(params); ok {
		suffix, err := t.PluralSuffix(key, count)
		if err != nil {
			return "", err
		}
		lookup = key + "." + string(suffix)
	}

	template, ok := t.translations[lookup]
	if !ok {
		return lookup, nil
	}

	return t.interpolate(key, template, params)
}

// PluralSuffix selects the plural category for count, preferring an exact
// form in the table and falling back to "other". A key with no "other" form
// cannot be pluralised.
func (t *I18n) PluralSuffix(key string, count float64) (PluralCategory, error) {
	category := t.pluralCategory(count)

	if t.HasKey(key + "." + string(category)) {
		return category, nil
	}
	if t.HasKey(key + "." + string(PluralOther)) {
		t.logger.Warn("i18n: missing plural form, falling back to other",
			"key", key, "category", string(category), "locale", t.locale)
		return PluralOther, nil
	}
	return "", fmt.Errorf("%w: %q (%s)", ErrMissingOtherForm, key, category)
}

func countParam(params Params) (float64, bool) {
	if params == nil {
		return 0, false
	}
	return asNumber(params["count"])
}

func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// interpolate substitutes every %{name} marker in template. Every marker
// must have an entry in params; values that are neither string nor number
// substitute the empty string.
func (t *I18n) interpolate(key, template string, params Params) (string, error) {
	matches := placeholderPattern.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return template, nil
	}

	if params == nil {
		return "", fmt.Errorf("%w: %q", ErrMissingParams, key)
	}

	var out strings.Builder
	last := 0
	for _, m := range matches {
		name := template[m[2]:m[3]]
		value, ok := params[name]
		if !ok {
			return "", fmt.Errorf("%w: %q in %q", ErrMissingPlaceholder, name, key)
		}

		out.WriteString(template[last:m[0]])
		out.WriteString(t.placeholderValue(value))
		last = m[1]
	}
	out.WriteString(template[last:])

	return out.String(), nil
}

func (t *I18n) placeholderValue(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	if n, ok := asNumber(value); ok {
		return t.formatNumber(n)
	}
	// booleans included: false means "suppress output", and true has no
	// textual rendering either
	return ""
}

// formatNumber renders n with the locale's digit grouping when CLDR data is
// available, else plain coercion.
func (t *I18n) formatNumber(n float64) string {
	if t.printer != nil {
		return t.printer.Sprintf("%v", number.Decimal(n))
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
