package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bytedspace/byted-space/internal/config"
	"github.com/bytedspace/byted-space/internal/menu"
	"github.com/bytedspace/byted-space/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the byted SSH server",
	Long: `Start an SSH server that serves the menu to remote users.

Each SSH connection gets its own menu. Settings are stored per user in
the configured settings directory, so every user keeps their own language
and volume choices.

Flags override the ssh section of the configuration file.

Examples:
  byted serve                           # Listen on the configured address
  byted serve --ssh :2222               # Listen on port 2222
  byted serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if missing)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr)

	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.SSH.IdleTimeoutMinutes = flagIdleTimeout
	}

	locales, atlas := loadAssets(cfg, logger)

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: config.ExpandHome(cfg.SSH.HostKey),
		SettingsDir: config.ExpandHome(cfg.SSH.SettingsDir),
		IdleTimeout: time.Duration(cfg.SSH.IdleTimeoutMinutes) * time.Minute,
		TickRate:    flagFPS,
	}, locales, tui.Options{
		Translator: locales,
		Atlas:      atlas,
		Layout:     menu.DefaultLayout(menu.Point{X: cfg.Render.OriginX, Y: cfg.Render.OriginY}),
		Bloom:      cfg.Render.Bloom,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting byted SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
