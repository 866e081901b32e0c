package accordion

import (
	"io"
	"log/slog"

	"github.com/goliatone/go-accordion/storage"
)

// Translation keys the accordion consults on every state change.
const (
	KeyShowSection          = "showSection"
	KeyHideSection          = "hideSection"
	KeyShowSectionAriaLabel = "showSectionAriaLabel"
	KeyHideSectionAriaLabel = "hideSectionAriaLabel"
	KeyShowAllSections      = "showAllSections"
	KeyHideAllSections      = "hideAllSections"
)

var defaultTranslations = map[string]string{
	KeyShowSection:          "Show",
	KeyHideSection:          "Hide",
	KeyShowSectionAriaLabel: "Show this section",
	KeyHideSectionAriaLabel: "Hide this section",
	KeyShowAllSections:      "Show all sections",
	KeyHideAllSections:      "Hide all sections",
}

// Config captures accordion setup. Build it through Options; zero values
// fall back to defaults.
type Config struct {
	Translations     map[string]string
	Locale           string
	RememberExpanded bool
	Store            storage.Store
	Probe            *storage.Probe
	View             View
	Logger           *slog.Logger
}

// Option mutates Config during construction.
type Option func(*Config) error

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		RememberExpanded: true,
		Probe:            storage.NewProbe(),
		View:             NopView{},
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// WithTranslations overrides translation strings. Unknown keys are kept, so
// hosts can pass a whole locale bundle; missing keys keep English defaults.
func WithTranslations(translations map[string]string) Option {
	return func(c *Config) error {
		if len(translations) == 0 {
			return nil
		}
		if c.Translations == nil {
			c.Translations = make(map[string]string, len(translations))
		}
		for key, value := range translations {
			c.Translations[key] = value
		}
		return nil
	}
}

// WithLocale sets the explicit locale. When empty, the document language is
// used, then "en".
func WithLocale(locale string) Option {
	return func(c *Config) error {
		c.Locale = locale
		return nil
	}
}

// WithRememberExpanded toggles persistence of per-section state.
func WithRememberExpanded(remember bool) Option {
	return func(c *Config) error {
		c.RememberExpanded = remember
		return nil
	}
}

// WithStore sets the session store used to remember section state.
func WithStore(store storage.Store) Option {
	return func(c *Config) error {
		c.Store = store
		return nil
	}
}

// WithProbe injects the store availability probe. Mainly for tests that
// need to reset the once-per-lifetime self-test.
func WithProbe(probe *storage.Probe) Option {
	return func(c *Config) error {
		if probe != nil {
			c.Probe = probe
		}
		return nil
	}
}

// WithView sets the render target.
func WithView(view View) Option {
	return func(c *Config) error {
		if view != nil {
			c.View = view
		}
		return nil
	}
}

// WithLogger sets the logger used for recoverable degradations.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		if logger != nil {
			c.Logger = logger
		}
		return nil
	}
}

// translationTable merges configured strings over the English defaults.
func (c *Config) translationTable() map[string]string {
	table := make(map[string]string, len(defaultTranslations)+len(c.Translations))
	for key, value := range defaultTranslations {
		table[key] = value
	}
	for key, value := range c.Translations {
		table[key] = value
	}
	return table
}
