// Package config provides YAML-based application configuration for the
// byted front end: asset locations, renderer tuning and loadout limits.
package config

import "github.com/bytedspace/byted-space/internal/modifier"

// Config is the complete application configuration.
type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	Render  RenderConfig  `yaml:"render"`
	Loadout LoadoutConfig `yaml:"loadout"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// PathsConfig locates assets and state on disk. A leading ~ is expanded.
type PathsConfig struct {
	Textures string `yaml:"textures"` // root of the texture tree
	Locales  string `yaml:"locales"`  // directory of <lang>.json files
	Settings string `yaml:"settings"` // settings.json location
	Database string `yaml:"database"` // loadout preset store
	LogFile  string `yaml:"log_file"` // log destination while the TUI owns the terminal
}

// RenderConfig tunes the terminal renderer.
type RenderConfig struct {
	OriginX float64     `yaml:"origin_x"` // menu origin in logical pixels
	OriginY float64     `yaml:"origin_y"`
	Bloom   BloomConfig `yaml:"bloom"`
}

// BloomConfig defines the glow post-process.
type BloomConfig struct {
	Threshold  float64 `yaml:"threshold"`   // minimum luminance that emits glow
	Intensity  float64 `yaml:"intensity"`   // glow added at distance zero
	BlurRadius int     `yaml:"blur_radius"` // cells until the glow fades out
}

// LoadoutConfig bounds loadout cost.
type LoadoutConfig struct {
	Budget modifier.Budget `yaml:"budget"`
}

// SSHConfig configures `byted serve`.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
	SettingsDir        string `yaml:"settings_dir"` // one settings file per SSH user
}
