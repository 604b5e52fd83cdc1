package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	embedded := embeddedDefault()
	hard := DefaultConfig()

	if embedded != hard {
		t.Errorf("embedded default = %+v, expected %+v", embedded, hard)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("loadout:\n  budget:\n    min: 0\n    max: 5\nrender:\n  bloom:\n    threshold: 0.5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Loadout.Budget.Min != 0 || cfg.Loadout.Budget.Max != 5 {
		t.Errorf("Budget = %+v, expected {0 5}", cfg.Loadout.Budget)
	}
	if cfg.Render.Bloom.Threshold != 0.5 {
		t.Errorf("Bloom.Threshold = %v, expected 0.5", cfg.Render.Bloom.Threshold)
	}
	// Untouched fields keep their defaults
	if cfg.Render.Bloom.BlurRadius != 2 {
		t.Errorf("Bloom.BlurRadius = %d, expected 2", cfg.Render.Bloom.BlurRadius)
	}
	if cfg.Paths.Locales != "assets/locales" {
		t.Errorf("Paths.Locales = %q, expected default", cfg.Paths.Locales)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("paths: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	inverted := filepath.Join(dir, "inverted.yaml")
	if err := os.WriteFile(inverted, []byte("loadout:\n  budget:\n    min: 5\n    max: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(inverted); err == nil {
		t.Error("Load() should reject min > max")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"equal budget bounds", func(c *Config) { c.Loadout.Budget.Min, c.Loadout.Budget.Max = 3, 3 }, true},
		{"negative blur", func(c *Config) { c.Render.Bloom.BlurRadius = -1 }, false},
		{"negative intensity", func(c *Config) { c.Render.Bloom.Intensity = -0.1 }, false},
		{"negative timeout", func(c *Config) { c.SSH.IdleTimeoutMinutes = -1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"relative/path", "relative/path"},
		{"/abs/path", "/abs/path"},
		{"~/.byted/x.db", filepath.Join(home, ".byted", "x.db")},
	}

	for _, tc := range tests {
		if got := ExpandHome(tc.in); got != tc.expected {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
