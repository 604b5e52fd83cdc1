// Package settings holds the player's persisted preferences and the JSON
// file contract used to load and save them.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Settings is the full set of user preferences.
type Settings struct {
	Lang                   string  `json:"lang"`
	FPS                    int     `json:"fps"`
	Bloom                  bool    `json:"bloom"`
	ChromaticAberration    bool    `json:"chromatic_aberration"`
	AntiAliasing           bool    `json:"anti_aliasing"`
	OtherDistortionEffects bool    `json:"other_distortion_effects"`
	ScreenShake            float64 `json:"screen_shake"`
	Music                  int     `json:"music"`
	Sound                  int     `json:"sound"`
}

// Defaults returns the settings written when no settings file exists.
func Defaults() Settings {
	return Settings{
		Lang:                   "en_us",
		FPS:                    60,
		Bloom:                  true,
		ChromaticAberration:    true,
		AntiAliasing:           true,
		OtherDistortionEffects: true,
		ScreenShake:            1.0,
		Music:                  100,
		Sound:                  100,
	}
}

// Load reads settings from path.
// A missing file is created from Defaults and the defaults are returned.
// A file that exists but cannot be parsed is reported as an error and left untouched.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s := Defaults()
		if err := Save(s, path); err != nil {
			return s, err
		}
		return s, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("settings: cannot read %s: %w", path, err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("settings: cannot parse %s: %w", path, err)
	}
	return s, nil
}

// Save writes the full settings record to path, replacing any existing file.
// The record is written to a temporary file first and renamed into place,
// so a failed write never leaves a truncated file behind.
func Save(s Settings, path string) error {
	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return fmt.Errorf("settings: cannot encode: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("settings: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.json")
	if err != nil {
		return fmt.Errorf("settings: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("settings: cannot write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("settings: cannot write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("settings: cannot replace %s: %w", path, err)
	}
	return nil
}

// Store binds Load and Save to a single file path.
type Store struct {
	Path string
}

// NewStore returns a store for the settings file at path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads the store's file, creating it from defaults if needed.
func (s *Store) Load() (Settings, error) {
	return Load(s.Path)
}

// Save overwrites the store's file with settings.
func (s *Store) Save(settings Settings) error {
	return Save(settings, s.Path)
}
