package locale_test

import (
	"strings"
	"testing"

	"github.com/bytedspace/byted-space/internal/locale"
	"github.com/bytedspace/byted-space/internal/modifier"
)

const assetDir = "../../assets/locales"

func TestShippedLocalesCoverModifiers(t *testing.T) {
	c, err := locale.Load(assetDir)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", assetDir, err)
	}

	for _, lang := range c.Languages() {
		for _, d := range modifier.Default().All() {
			for _, key := range []string{d.NameKey, d.DescriptionKey} {
				if got := c.Translate(lang, key); got == locale.Missing {
					t.Errorf("Translate(%q, %q) = %q, expected a string", lang, key, got)
				}
			}
		}
	}
}

func TestAccelerationDescriptionMatchesEffects(t *testing.T) {
	c, err := locale.Load(assetDir)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", assetDir, err)
	}
	d, ok := modifier.Default().Get("acceleration")
	if !ok {
		t.Fatal("acceleration modifier missing from the catalog")
	}
	if d.Action != modifier.Multiply || d.Effects["movement_speed"] != 1.5 {
		t.Fatalf("acceleration = %+v, expected a 1.5x movement speed multiplier", d)
	}

	desc := c.Translate("en_us", d.DescriptionKey)
	if !strings.Contains(desc, "1.5") || strings.Contains(desc, "fixed") {
		t.Errorf("description = %q, expected it to describe a 1.5x multiplier", desc)
	}
}
