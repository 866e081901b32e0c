package i18n

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFileLoaderYAML(t *testing.T) {
	path := writeFile(t, "accordion.yaml", `
en:
  showSection: Show
  sections:
    one: "%{count} section"
    other: "%{count} sections"
cy:
  showSection: Dangos
`)

	bundles, err := NewFileLoader(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	en, ok := bundles["en"]
	if !ok {
		t.Fatal("missing en bundle")
	}
	if got := en["showSection"]; got != "Show" {
		t.Fatalf("showSection = %q", got)
	}
	if got := en["sections.one"]; got != "%{count} section" {
		t.Fatalf("sections.one = %q", got)
	}
	if got := en["sections.other"]; got != "%{count} sections" {
		t.Fatalf("sections.other = %q", got)
	}

	if got := bundles["cy"]["showSection"]; got != "Dangos" {
		t.Fatalf("cy showSection = %q", got)
	}
}

func TestFileLoaderJSON(t *testing.T) {
	path := writeFile(t, "accordion.json", `{
		"en": {
			"hideSection": "Hide",
			"items": {"one": "item", "other": "items"}
		}
	}`)

	bundles, err := NewFileLoader(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := bundles["en"]["hideSection"]; got != "Hide" {
		t.Fatalf("hideSection = %q", got)
	}
	if got := bundles["en"]["items.other"]; got != "items" {
		t.Fatalf("items.other = %q", got)
	}
}

func TestFileLoaderMergesLaterFiles(t *testing.T) {
	base := writeFile(t, "base.yaml", "en:\n  showSection: Show\n")
	override := writeFile(t, "override.yaml", "en:\n  showSection: Open\n")

	bundles, err := NewFileLoader(base, override).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := bundles["en"]["showSection"]; got != "Open" {
		t.Fatalf("showSection = %q want override to win", got)
	}
}

func TestFileLoaderRejectsPluralWithoutOther(t *testing.T) {
	path := writeFile(t, "bad.yaml", `
en:
  items:
    one: item
`)

	if _, err := NewFileLoader(path).Load(); !errors.Is(err, ErrMissingOtherForm) {
		t.Fatalf("expected ErrMissingOtherForm, got %v", err)
	}
}

func TestFileLoaderRejectsUnknownExtension(t *testing.T) {
	path := writeFile(t, "bad.toml", "en = 1\n")

	if _, err := NewFileLoader(path).Load(); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestFileLoaderNoPaths(t *testing.T) {
	if _, err := NewFileLoader().Load(); err == nil {
		t.Fatal("expected error when no paths configured")
	}
}
