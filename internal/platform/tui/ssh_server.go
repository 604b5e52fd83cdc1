package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/bytedspace/byted-space/internal/core"
	"github.com/bytedspace/byted-space/internal/locale"
	"github.com/bytedspace/byted-space/internal/menu"
	"github.com/bytedspace/byted-space/internal/settings"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// A key is generated there if it does not exist.
	HostKeyPath string

	// SettingsDir holds one settings file per SSH user.
	SettingsDir string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate overrides the per-user frame rate when positive.
	TickRate int
}

// SSHServer serves the menu over SSH. Every session gets its own machine
// and its own settings file, while locales and textures are shared.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	locales *locale.Catalog
	opts    Options
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
// opts supplies the shared translator, atlas, layout and bloom; its
// Runtime is replaced per session.
func NewSSHServer(cfg SSHServerConfig, locales *locale.Catalog, opts Options) (*SSHServer, error) {
	if cfg.HostKeyPath == "" {
		return nil, fmt.Errorf("tui: host key path must be set")
	}
	if cfg.SettingsDir == "" {
		return nil, fmt.Errorf("tui: settings directory must be set")
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "byted-ssh",
		})
		opts.Logger = logger
	}

	srv := &SSHServer{
		config:  cfg,
		locales: locales,
		opts:    opts,
		logger:  logger,
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(cfg.HostKeyPath)
	if err := os.MkdirAll(hostKeyDir, 0o700); err != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", err)
	}
	if err := os.MkdirAll(cfg.SettingsDir, 0o755); err != nil {
		return nil, fmt.Errorf("tui: cannot create settings directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// UserSettingsPath returns the settings file of an SSH user inside dir.
// Names that cannot be used as a file name share the "anonymous" file.
func UserSettingsPath(dir, user string) string {
	name := filepath.Base(strings.TrimSpace(user))
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		name = "anonymous"
	}
	return filepath.Join(dir, name+".json")
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	store := settings.NewStore(UserSettingsPath(s.config.SettingsDir, sshSession.User()))
	prefs, err := store.Load()
	if err != nil {
		s.logger.Warn("cannot load user settings, using defaults",
			"user", sshSession.User(), "error", err)
		prefs = settings.Defaults()
		// Never overwrite a file we could not parse
		store = nil
	}

	tickRate := s.config.TickRate
	if tickRate <= 0 {
		tickRate = prefs.FPS
	}

	opts := s.opts
	opts.Runtime = core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: tickRate,
	}
	opts.Logger = s.logger.With("user", sshSession.User())

	var saver menu.Saver
	if store != nil {
		saver = store
	}
	machine := menu.NewMachine(menu.Default(), prefs, saver, s.locales.Languages())

	return NewModel(machine, opts), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
