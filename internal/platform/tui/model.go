package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bytedspace/byted-space/internal/config"
	"github.com/bytedspace/byted-space/internal/core"
	"github.com/bytedspace/byted-space/internal/menu"
	"github.com/bytedspace/byted-space/internal/texture"
)

// footerLines is the number of rows below the menu screen: status and help.
const footerLines = 2

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Options configures a menu program.
type Options struct {
	Translator menu.Translator
	Atlas      *texture.Atlas
	Layout     menu.Layout
	Bloom      config.BloomConfig
	Runtime    core.RuntimeConfig // screen size and frame rate
	Logger     *log.Logger
}

// Model is the Bubble Tea model that drives the menu state machine:
// keys become commands, ticks animate the pointer, View rasterizes a frame.
type Model struct {
	machine  *menu.Machine
	tr       menu.Translator
	layout   menu.Layout
	raster   *Rasterizer
	screen   *core.Screen
	keys     *KeyMapper
	help     help.Model
	logger   *log.Logger
	config   core.RuntimeConfig
	status   string
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given machine.
func NewModel(machine *menu.Machine, opts Options) Model {
	cfg := opts.Runtime
	def := core.DefaultConfig()
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		machine: machine,
		tr:      opts.Translator,
		layout:  opts.Layout,
		raster:  NewRasterizer(opts.Bloom, PointerColor(opts.Atlas)),
		screen:  core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-footerLines, 1)),
		keys:    NewKeyMapper(),
		help:    help.New(),
		logger:  logger,
		config:  cfg,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-footerLines, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.machine.Tick()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey feeds the mapped action to the machine and acts on its result.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionNone {
		return m, nil
	}

	res, err := m.machine.Handle(action)
	if err != nil {
		m.status = err.Error()
		m.logger.Warn("menu command failed", "action", action, "error", err)
		return m, nil
	}

	switch res.Outcome {
	case menu.Terminate:
		m.logger.Info("menu closed")
		m.quitting = true
		return m, tea.Quit
	case menu.Navigated:
		m.status = ""
		m.logger.Debug("navigated", "menu", res.Target)
	case menu.Continue:
	}
	return m, nil
}

// View renders the current frame to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	f := m.machine.Frame(m.tr, m.layout)
	m.raster.Draw(m.screen, f, m.machine.Settings().Bloom)

	return RenderScreen(m.screen) + "\n" +
		statusStyle.Render(m.status) + "\n" +
		helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Machine returns the driven state machine.
func (m Model) Machine() *menu.Machine {
	return m.machine
}

// Status returns the last error shown in the status line.
func (m Model) Status() string {
	return m.status
}

// IsQuitting returns true if the menu asked to terminate.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for machine and blocks until it exits.
func Run(machine *menu.Machine, opts Options) error {
	p := tea.NewProgram(
		NewModel(machine, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
