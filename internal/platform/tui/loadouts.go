package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bytedspace/byted-space/internal/hull"
	"github.com/bytedspace/byted-space/internal/modifier"
	"github.com/bytedspace/byted-space/internal/storage"
)

// Browser layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show loadout list sidebar
	sidebarWidth       = 24 // Width of loadout list sidebar
)

// BrowserKeyMap defines the key bindings for the loadout browser.
type BrowserKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextLoadout key.Binding
	PrevLoadout key.Binding
	NextHull    key.Binding
	PrevHull    key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLoadout, k.NextHull, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLoadout, k.PrevLoadout},
		{k.NextHull, k.PrevHull, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLoadout: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next loadout"),
		),
		PrevLoadout: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev loadout"),
		),
		NextHull: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next hull"),
		),
		PrevHull: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "prev hull"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel shows saved loadouts resolved against a hull: the sidebar
// lists presets and the table compares base and resolved stats.
type BrowserModel struct {
	loadouts      []storage.Loadout
	hulls         []hull.Hull
	resolver      *modifier.Resolver
	budget        modifier.Budget
	loadoutCursor int
	hullCursor    int
	resolution    modifier.Resolution
	resolveErr    error
	table         table.Model
	help          help.Model
	keys          BrowserKeyMap
	width         int
	height        int
	quitting      bool
	showSidebar   bool
}

// NewBrowserModel creates a new loadout browser.
func NewBrowserModel(loadouts []storage.Loadout, hulls []hull.Hull, resolver *modifier.Resolver, budget modifier.Budget, width, height int) BrowserModel {
	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		loadouts:    loadouts,
		hulls:       hulls,
		resolver:    resolver,
		budget:      budget,
		keys:        DefaultBrowserKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.resolve()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Stat", Width: 20},
		{Title: "Base", Width: 10},
		{Title: "Resolved", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Current returns the selected loadout and hull.
func (m BrowserModel) Current() (storage.Loadout, hull.Hull, bool) {
	if len(m.loadouts) == 0 || len(m.hulls) == 0 {
		return storage.Loadout{}, hull.Hull{}, false
	}
	return m.loadouts[m.loadoutCursor], m.hulls[m.hullCursor], true
}

// Resolution returns the last resolution and its error.
func (m BrowserModel) Resolution() (modifier.Resolution, error) {
	return m.resolution, m.resolveErr
}

// resolve recomputes stats for the current selection and refreshes the table.
func (m *BrowserModel) resolve() {
	m.resolution, m.resolveErr = modifier.Resolution{}, nil

	l, h, ok := m.Current()
	if !ok {
		m.updateTableRows(nil)
		return
	}

	budget := m.budget
	m.resolution, m.resolveErr = m.resolver.Resolve(h.Stats, modifier.NewSelection(l.Modifiers...), &budget)
	m.updateTableRows(h.Stats)
}

// updateTableRows fills the table with base and resolved stats.
func (m *BrowserModel) updateTableRows(base modifier.Stats) {
	names := make(map[string]struct{}, len(base))
	for k := range base {
		names[k] = struct{}{}
	}
	for k := range m.resolution.Stats {
		names[k] = struct{}{}
	}
	sorted := make([]string, 0, len(names))
	for k := range names {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	rows := make([]table.Row, 0, len(sorted))
	for _, name := range sorted {
		rows = append(rows, table.Row{
			name,
			formatStat(base, name),
			formatStat(m.resolution.Stats, name),
		})
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

func formatStat(s modifier.Stats, name string) string {
	v, ok := s[name]
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLoadout):
			if len(m.loadouts) > 0 {
				m.loadoutCursor = (m.loadoutCursor + 1) % len(m.loadouts)
				m.resolve()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLoadout):
			if len(m.loadouts) > 0 {
				m.loadoutCursor = (m.loadoutCursor - 1 + len(m.loadouts)) % len(m.loadouts)
				m.resolve()
			}
			return m, nil

		case key.Matches(msg, m.keys.NextHull):
			if len(m.hulls) > 0 {
				m.hullCursor = (m.hullCursor + 1) % len(m.hulls)
				m.resolve()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevHull):
			if len(m.hulls) > 0 {
				m.hullCursor = (m.hullCursor - 1 + len(m.hulls)) % len(m.hulls)
				m.resolve()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.resolve()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "LOADOUTS"
	if l, h, ok := m.Current(); ok {
		title = fmt.Sprintf("LOADOUT - %s on %s", l.Name, h.Title)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderContent())
	}

	// Help bar
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the table with a sidebar listing loadouts.
func (m BrowserModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Loadouts\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, l := range m.loadouts {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.loadoutCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := l.Name
		maxLen := sidebarWidth - 6
		if len([]rune(name)) > maxLen {
			name = string([]rune(name)[:maxLen-1]) + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	contentStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", contentStyle.Render(m.renderContent()))
}

// renderContent renders the cost line and table, or a message.
func (m BrowserModel) renderContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if len(m.loadouts) == 0 {
		return emptyStyle.Render("No loadouts saved yet.\nUse `byted loadout save` to create one!")
	}
	if m.resolveErr != nil {
		return statusStyle.Render(m.resolveErr.Error()) + "\n\n" + m.table.View()
	}

	cost := fmt.Sprintf("Cost: %d DP (budget %d..%d)", m.resolution.Cost, m.budget.Min, m.budget.Max)
	return cost + "\n\n" + m.table.View()
}

// IsQuitting returns true if user wants to quit.
func (m BrowserModel) IsQuitting() bool {
	return m.quitting
}

// RunBrowser runs the loadout browser screen.
func RunBrowser(loadouts []storage.Loadout, hulls []hull.Hull, resolver *modifier.Resolver, budget modifier.Budget, width, height int) error {
	p := tea.NewProgram(
		NewBrowserModel(loadouts, hulls, resolver, budget, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
