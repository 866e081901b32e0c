package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Bundles groups translation tables by locale.
type Bundles map[string]Translations

// Loader retrieves translation bundles from some source.
type Loader interface {
	Load() (Bundles, error)
}

// LoaderFunc adapters allow bare functions to implement Loader.
type LoaderFunc func() (Bundles, error)

// Load implements Loader for LoaderFunc.
func (fn LoaderFunc) Load() (Bundles, error) {
	return fn()
}

// FileLoader reads translation bundles from YAML or JSON files. Each file
// maps locale to key to either a display string or a plural-forms map; plural
// maps are flattened into dotted keys ("key.one", "key.other").
type FileLoader struct {
	paths []string
}

// NewFileLoader builds a loader over the given file paths. Later files
// override earlier ones on key collisions.
func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

// Load implements Loader.
func (l *FileLoader) Load() (Bundles, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("i18n: no loader paths configured")
	}

	bundles := make(Bundles)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", path, err)
		}

		src, err := decodeTranslationFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("i18n: decode %s: %w", path, err)
		}
		mergeBundles(bundles, src)
	}

	return bundles, nil
}

func decodeTranslationFile(path string, data []byte) (Bundles, error) {
	var raw map[string]map[string]any

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	if len(raw) == 0 {
		return nil, errors.New("empty translation file")
	}

	bundles := make(Bundles, len(raw))
	for locale, entries := range raw {
		if locale == "" {
			return nil, fmt.Errorf("empty locale in %s", path)
		}

		table := make(Translations, len(entries))
		for key, value := range entries {
			if key == "" {
				return nil, fmt.Errorf("empty key in %s/%s", locale, path)
			}
			if err := flattenEntry(table, key, value); err != nil {
				return nil, fmt.Errorf("%s/%s: %w", locale, key, err)
			}
		}
		bundles[normalizeLocale(locale)] = table
	}

	return bundles, nil
}

// flattenEntry writes a single key into table, expanding plural-forms maps
// into dotted keys. A plural map must carry the "other" form.
func flattenEntry(table Translations, key string, value any) error {
	switch v := value.(type) {
	case string:
		table[key] = v
		return nil
	case map[string]any:
		if len(v) == 0 {
			return fmt.Errorf("no plural forms defined")
		}
		hasOther := false
		for category, form := range v {
			cat, err := parsePluralCategory(category)
			if err != nil {
				return err
			}
			text, ok := form.(string)
			if !ok {
				return fmt.Errorf("plural form %s must be a string, got %T", category, form)
			}
			if cat == PluralOther {
				hasOther = true
			}
			table[key+"."+string(cat)] = text
		}
		if !hasOther {
			return fmt.Errorf("%w: %q", ErrMissingOtherForm, key)
		}
		return nil
	default:
		return fmt.Errorf("unsupported message value type: %T", value)
	}
}

func parsePluralCategory(raw string) (PluralCategory, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "zero":
		return PluralZero, nil
	case "one":
		return PluralOne, nil
	case "two":
		return PluralTwo, nil
	case "few":
		return PluralFew, nil
	case "many":
		return PluralMany, nil
	case "other":
		return PluralOther, nil
	default:
		return "", fmt.Errorf("unknown plural category %q", raw)
	}
}

func mergeBundles(dst, src Bundles) {
	for locale, table := range src {
		target := dst[locale]
		if target == nil {
			target = make(Translations, len(table))
			dst[locale] = target
		}
		for key, value := range table {
			target[key] = value
		}
	}
}
