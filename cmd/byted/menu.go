package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bytedspace/byted-space/internal/config"
	"github.com/bytedspace/byted-space/internal/core"
	"github.com/bytedspace/byted-space/internal/menu"
	"github.com/bytedspace/byted-space/internal/platform/tui"
	"github.com/bytedspace/byted-space/internal/settings"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive menu",
	Long: `Run the main and options menus in the terminal.

Settings are loaded from the settings file (created with defaults if
missing) and saved when leaving the options menu.

Controls:
  Up/Down/W/S     - Move the cursor
  Left/Right/A/D  - Change the selected value
  Enter/Space     - Activate
  Q               - Quit

Examples:
  byted menu
  byted menu --fps 30
  byted menu --config ./byted.yaml`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if err := runMenuSession(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runMenuSession runs the menu until it quits. The log file is closed on
// every return path.
func runMenuSession(cfg config.Config) error {
	// Logs go to a file while the menu owns the terminal
	logOut, closeLog := openLogFile(cfg.Paths.LogFile)
	defer closeLog()
	logger := newLogger(logOut)

	store := settings.NewStore(config.ExpandHome(cfg.Paths.Settings))
	prefs, err := store.Load()
	if err != nil {
		logger.Error("cannot load settings", "error", err)
		return err
	}

	locales, atlas := loadAssets(cfg, logger)

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	tickRate := flagFPS
	if tickRate <= 0 {
		tickRate = prefs.FPS
	}

	machine := menu.NewMachine(menu.Default(), prefs, store, locales.Languages())
	opts := tui.Options{
		Translator: locales,
		Atlas:      atlas,
		Layout:     menu.DefaultLayout(menu.Point{X: cfg.Render.OriginX, Y: cfg.Render.OriginY}),
		Bloom:      cfg.Render.Bloom,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: tickRate,
		},
		Logger: logger,
	}

	logger.Info("menu started", "lang", prefs.Lang, "fps", tickRate)
	if err := tui.Run(machine, opts); err != nil {
		logger.Error("menu failed", "error", err)
		return fmt.Errorf("menu: %w", err)
	}
	return nil
}
