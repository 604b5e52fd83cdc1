package config

import (
	_ "embed"

	"github.com/bytedspace/byted-space/internal/modifier"
)

//go:embed defaults/byted.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration used when the embedded
// default cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			Textures: "assets/textures",
			Locales:  "assets/locales",
			Settings: "~/.byted/settings.json",
			Database: "~/.byted/byted.db",
			LogFile:  "~/.byted/byted.log",
		},
		Render: RenderConfig{
			OriginX: 100,
			OriginY: 100,
			Bloom: BloomConfig{
				Threshold:  0.8,
				Intensity:  0.6,
				BlurRadius: 2,
			},
		},
		Loadout: LoadoutConfig{
			Budget: modifier.Budget{Min: -10, Max: 10},
		},
		SSH: SSHConfig{
			Address:            ":23234",
			HostKey:            "~/.byted/ssh_host_ed25519",
			IdleTimeoutMinutes: 10,
			SettingsDir:        "~/.byted/users",
		},
	}
}
