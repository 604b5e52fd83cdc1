// Package locale loads per-language translation tables and resolves
// translation keys with a visible fallback instead of an error.
package locale

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Missing is returned by Translate when the language or key is unknown.
const Missing = "404"

// NameKey is the translation key a locale may use to name itself.
const NameKey = "language.name"

// Catalog maps a language code to its flat key/value table.
// It is immutable after Load.
type Catalog struct {
	tables map[string]map[string]string
	codes  []string
}

// NewCatalog builds a catalog from in-memory tables.
func NewCatalog(tables map[string]map[string]string) *Catalog {
	c := &Catalog{tables: make(map[string]map[string]string, len(tables))}
	for code, table := range tables {
		copied := make(map[string]string, len(table))
		for k, v := range table {
			copied[k] = v
		}
		c.tables[code] = copied
		c.codes = append(c.codes, code)
	}
	sort.Strings(c.codes)
	return c
}

// Load reads every *.json file in dir. The file stem is the language code
// and the content is a flat object of translation key to display string.
func Load(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("locale: cannot read %s: %w", dir, err)
	}

	tables := make(map[string]map[string]string)
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("locale: cannot read %s: %w", path, err)
		}
		var table map[string]string
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("locale: cannot parse %s: %w", path, err)
		}
		tables[strings.TrimSuffix(e.Name(), ".json")] = table
	}

	return NewCatalog(tables), nil
}

// Translate returns the string for key in lang, or Missing.
func (c *Catalog) Translate(lang, key string) string {
	if c == nil {
		return Missing
	}
	if v, ok := c.tables[lang][key]; ok {
		return v
	}
	return Missing
}

// Languages returns the available language codes in sorted order.
func (c *Catalog) Languages() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

// Has reports whether a table exists for lang.
func (c *Catalog) Has(lang string) bool {
	if c == nil {
		return false
	}
	_, ok := c.tables[lang]
	return ok
}

// DisplayName returns the name of a language in that language.
// The locale's own language.name entry wins; otherwise the code is parsed
// as a BCP 47 tag ("en_us" -> "en-US") and named by CLDR data.
// Unparseable codes are returned unchanged.
func (c *Catalog) DisplayName(lang string) string {
	if c != nil {
		if v, ok := c.tables[lang][NameKey]; ok {
			return v
		}
	}
	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return lang
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return lang
}
