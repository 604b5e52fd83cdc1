// byted is the terminal front end of the byted space shooter: the main and
// options menus, persisted settings and ship loadout tools.
//
// Usage:
//
//	byted menu                     - Run the interactive menu
//	byted serve                    - Serve the menu over SSH
//	byted modifiers                - List loadout modifiers
//	byted hulls                    - List ship hulls
//	byted loadout validate <ids>   - Check a modifier selection
//	byted loadout resolve <ids>    - Apply a selection to a hull
//	byted loadout save <name> <ids>- Save a loadout preset
//	byted loadout list|show|delete - Manage saved presets
//	byted loadout browse           - Browse presets interactively
//
// Global flags:
//
//	--config <path>     - Configuration file (default: search path)
//	--fps <rate>        - Override the frame rate from settings
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bytedspace/byted-space/internal/config"
	"github.com/bytedspace/byted-space/internal/locale"
	"github.com/bytedspace/byted-space/internal/texture"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "byted",
	Short: "byted - space shooter front end",
	Long: `byted runs the front end of a space shooter in your terminal:
the main and options menus, persisted settings and loadout tools.

Available commands:
  menu       - Interactive menu
  serve      - Start SSH server for remote menus
  modifiers  - List loadout modifiers
  hulls      - List ship hulls
  loadout    - Validate, resolve and store loadouts

Examples:
  byted menu
  byted menu --fps 30
  byted loadout resolve --hull frigate high_shield low_damage
  byted serve`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate override (0 = use settings)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(modifiersCmd)
	rootCmd.AddCommand(hullsCmd)
	rootCmd.AddCommand(loadoutCmd)
}

// loadConfig loads the configuration or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "byted",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile opens the log file used while a full-screen program owns the
// terminal. It falls back to discarding logs if the file cannot be opened.
func openLogFile(path string) (io.Writer, func()) {
	path = config.ExpandHome(path)
	if path == "" {
		return io.Discard, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot create log directory: %v\n", err)
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

// loadAssets loads locales and textures. Missing assets are logged and
// replaced by empty providers so the menu still runs.
func loadAssets(cfg config.Config, logger *log.Logger) (*locale.Catalog, *texture.Atlas) {
	locales, err := locale.Load(config.ExpandHome(cfg.Paths.Locales))
	if err != nil {
		logger.Warn("cannot load locales", "path", cfg.Paths.Locales, "error", err)
		locales = locale.NewCatalog(nil)
	}
	logger.Debug("locales loaded", "languages", locales.Languages())

	atlas, err := texture.Load(config.ExpandHome(cfg.Paths.Textures))
	if err != nil {
		logger.Warn("cannot load textures", "path", cfg.Paths.Textures, "error", err)
		atlas = texture.NewAtlas(nil)
	}
	logger.Debug("textures loaded", "count", len(atlas.Keys()))

	return locales, atlas
}
