package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file in search directories.
const FileName = "byted.yaml"

// Load loads the application configuration.
// Search order: customPath -> ~/.byted/config.yaml -> ./configs/byted.yaml -> embedded default.
// Files are applied over the embedded default, so a file may set only the
// fields it cares about.
func Load(customPath string) (Config, error) {
	cfg := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(ExpandHome(customPath))
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if c, ok := tryFile(userCfgPath, cfg); ok {
			return c, c.Validate()
		}
	}

	// Try local configs directory
	if c, ok := tryFile(filepath.Join("configs", FileName), cfg); ok {
		return c, c.Validate()
	}

	return cfg, nil
}

// tryFile overlays the file at path onto base. It reports false when the
// file is missing or unparsable, leaving the search to continue.
func tryFile(path string, base Config) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	return cfg, true
}

// embeddedDefault parses the embedded default YAML.
func embeddedDefault() Config {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// Validate rejects values the components cannot work with.
func (c Config) Validate() error {
	if c.Loadout.Budget.Min > c.Loadout.Budget.Max {
		return fmt.Errorf("config: loadout budget min %d exceeds max %d",
			c.Loadout.Budget.Min, c.Loadout.Budget.Max)
	}
	if c.Render.Bloom.BlurRadius < 0 {
		return fmt.Errorf("config: bloom blur_radius must not be negative, got %d", c.Render.Bloom.BlurRadius)
	}
	if c.Render.Bloom.Intensity < 0 {
		return fmt.Errorf("config: bloom intensity must not be negative, got %v", c.Render.Bloom.Intensity)
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: ssh idle_timeout_minutes must not be negative, got %d", c.SSH.IdleTimeoutMinutes)
	}
	return nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".byted", "config.yaml")
}

// ExpandHome replaces a leading ~ with the user's home directory.
// The path is returned unchanged when the home directory is unknown.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
