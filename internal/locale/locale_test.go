package locale

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeLocale(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestLoadAndTranslate(t *testing.T) {
	dir := t.TempDir()
	writeLocale(t, dir, "en_us.json", `{"menu.play": "Play", "language.name": "English"}`)
	writeLocale(t, dir, "ru_ru.json", `{"menu.play": "Играть"}`)
	writeLocale(t, dir, "notes.txt", `ignored`)
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0o755); err != nil {
		t.Fatalf("Mkdir() failed: %v", err)
	}

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if got := c.Languages(); !reflect.DeepEqual(got, []string{"en_us", "ru_ru"}) {
		t.Errorf("Languages() = %v, expected [en_us ru_ru]", got)
	}

	tests := []struct {
		lang, key, expected string
	}{
		{"en_us", "menu.play", "Play"},
		{"ru_ru", "menu.play", "Играть"},
		{"ru_ru", "menu.quit", Missing}, // unknown key
		{"de_de", "menu.play", Missing}, // unknown language
	}

	for _, tc := range tests {
		if got := c.Translate(tc.lang, tc.key); got != tc.expected {
			t.Errorf("Translate(%q, %q) = %q, expected %q", tc.lang, tc.key, got, tc.expected)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Load() should fail for a missing directory")
	}

	dir := t.TempDir()
	writeLocale(t, dir, "en_us.json", `{"nested": {"not": "flat"}}`)
	if _, err := Load(dir); err == nil {
		t.Error("Load() should fail for a non-flat locale file")
	}
}

func TestNilCatalogFallsBack(t *testing.T) {
	var c *Catalog

	if got := c.Translate("en_us", "menu.play"); got != Missing {
		t.Errorf("Translate() on nil catalog = %q, expected %q", got, Missing)
	}
	if c.Languages() != nil {
		t.Error("Languages() on nil catalog should be nil")
	}
	if c.Has("en_us") {
		t.Error("Has() on nil catalog should be false")
	}
}

func TestNewCatalogCopiesInput(t *testing.T) {
	tables := map[string]map[string]string{"en_us": {"k": "v"}}
	c := NewCatalog(tables)
	tables["en_us"]["k"] = "changed"

	if got := c.Translate("en_us", "k"); got != "v" {
		t.Errorf("catalog should not alias caller tables, got %q", got)
	}
}

func TestDisplayName(t *testing.T) {
	c := NewCatalog(map[string]map[string]string{
		"en_us": {NameKey: "English (US)"},
		"ru_ru": {},
	})

	tests := []struct {
		lang, expected string
	}{
		{"en_us", "English (US)"}, // explicit entry
		{"ru", "русский"},         // CLDR self name
		{"!!", "!!"},              // unparseable
	}

	for _, tc := range tests {
		if got := c.DisplayName(tc.lang); got != tc.expected {
			t.Errorf("DisplayName(%q) = %q, expected %q", tc.lang, got, tc.expected)
		}
	}

	// Region-qualified codes without an entry still get a CLDR name
	if got := c.DisplayName("ru_ru"); got == "ru_ru" || got == "" {
		t.Errorf("DisplayName(%q) = %q, expected a language name", "ru_ru", got)
	}
}
