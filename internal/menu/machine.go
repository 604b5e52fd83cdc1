package menu

import (
	"fmt"
	"math"

	"github.com/bytedspace/byted-space/internal/core"
	"github.com/bytedspace/byted-space/internal/settings"
)

// Animation and layout constants, in logical pixels.
const (
	PhaseStep  = 0.05        // radians per tick
	FullCycle  = 2 * math.Pi // phase wraps past this
	RowHeight  = 30.0        // vertical pitch of items
	CursorBase = 58.0        // cursor target offset of row 0
	Smoothing  = 0.1         // fraction of the remaining distance covered per tick
)

// Saver persists settings. *settings.Store satisfies it.
type Saver interface {
	Save(settings.Settings) error
}

// Outcome tells the owning loop what a command requires of it.
type Outcome int

const (
	// Continue means nothing beyond the machine's own state changed.
	Continue Outcome = iota
	// Navigated means the current node changed.
	Navigated
	// Terminate means the owner should stop the session.
	Terminate
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "Continue"
	case Navigated:
		return "Navigated"
	case Terminate:
		return "Terminate"
	default:
		return "Unknown"
	}
}

// Result is returned by commands that may need action from the owner.
type Result struct {
	Outcome Outcome
	Target  string // new node id when Outcome is Navigated
}

// State is a snapshot of the machine's position and animation.
type State struct {
	Menu     string
	Selected int
	CursorY  float64
	Phase    float64
}

// Machine is the menu state machine. It is driven from a single goroutine.
type Machine struct {
	catalog   *Catalog
	settings  settings.Settings
	saver     Saver
	languages []string
	state     State
}

// NewMachine starts at the catalog root with the cursor on the first item.
// languages is the ordered list CycleLanguage walks through.
func NewMachine(catalog *Catalog, s settings.Settings, saver Saver, languages []string) *Machine {
	return &Machine{
		catalog:   catalog,
		settings:  s,
		saver:     saver,
		languages: append([]string(nil), languages...),
		state:     State{Menu: catalog.Root()},
	}
}

// State returns a snapshot of the current state.
func (m *Machine) State() State {
	return m.state
}

// Settings returns a copy of the settings as edited so far.
func (m *Machine) Settings() settings.Settings {
	return m.settings
}

// Current returns the node the cursor is in.
func (m *Machine) Current() Node {
	n, _ := m.catalog.Node(m.state.Menu)
	return n
}

// SelectedItem returns the item under the cursor.
func (m *Machine) SelectedItem() Item {
	return m.Current().Items[m.state.Selected]
}

// CursorTarget is the y offset the animated cursor converges to.
func (m *Machine) CursorTarget() float64 {
	return float64(m.state.Selected)*RowHeight + CursorBase
}

// MoveUp selects the previous item, wrapping to the last.
func (m *Machine) MoveUp() {
	m.state.Selected = core.Wrap(m.state.Selected-1, len(m.Current().Items))
}

// MoveDown selects the next item, wrapping to the first.
func (m *Machine) MoveDown() {
	m.state.Selected = core.Wrap(m.state.Selected+1, len(m.Current().Items))
}

// Increase steps the selected item's value up.
func (m *Machine) Increase() {
	m.adjust(1)
}

// Decrease steps the selected item's value down.
func (m *Machine) Decrease() {
	m.adjust(-1)
}

func (m *Machine) adjust(dir int) {
	switch it := m.SelectedItem().(type) {
	case EditNumeric:
		v := m.settings.Number(it.Field) + float64(dir)*it.Step
		m.settings.SetNumber(it.Field, core.ClampF(core.Snap(v, it.Step), it.Min, it.Max))
	case ToggleBool:
		// Both directions flip the flag.
		m.settings.SetFlag(it.Field, !m.settings.Flag(it.Field))
	case CycleLanguage:
		m.cycleLanguage(dir)
	case Navigate, NavigateAndSave, Quit, ConnectStub:
	}
}

func (m *Machine) cycleLanguage(dir int) {
	n := len(m.languages)
	if n == 0 {
		return
	}
	idx := -1
	for i, code := range m.languages {
		if code == m.settings.Lang {
			idx = i
			break
		}
	}
	switch {
	case idx >= 0:
		idx = core.Wrap(idx+dir, n)
	case dir > 0:
		idx = 0
	default:
		idx = n - 1
	}
	m.settings.Lang = m.languages[idx]
}

// Confirm activates the selected item.
// For NavigateAndSave the settings are saved first; if saving fails the
// transition does not happen and the error is returned.
func (m *Machine) Confirm() (Result, error) {
	switch it := m.SelectedItem().(type) {
	case Navigate:
		return m.navigate(it.Target), nil
	case NavigateAndSave:
		if m.saver != nil {
			if err := m.saver.Save(m.settings); err != nil {
				return Result{Outcome: Continue}, fmt.Errorf("menu: save settings: %w", err)
			}
		}
		return m.navigate(it.Target), nil
	case Quit:
		return Result{Outcome: Terminate}, nil
	case EditNumeric, ToggleBool, CycleLanguage, ConnectStub:
	}
	return Result{Outcome: Continue}, nil
}

func (m *Machine) navigate(target string) Result {
	m.state.Menu = target
	m.state.Selected = 0
	return Result{Outcome: Navigated, Target: target}
}

// Tick advances the pointer animation by one frame. The phase moves a fixed
// step and the cursor covers a fixed fraction of its remaining distance,
// so it approaches the target row without overshooting.
func (m *Machine) Tick() {
	m.state.Phase += PhaseStep
	if m.state.Phase >= FullCycle {
		m.state.Phase -= FullCycle
	}
	m.state.CursorY = core.Lerp(m.state.CursorY, m.CursorTarget(), Smoothing)
}

// Handle maps an input action onto the matching command.
// ActionQuit terminates regardless of the selected item.
func (m *Machine) Handle(a core.Action) (Result, error) {
	switch a {
	case core.ActionUp:
		m.MoveUp()
	case core.ActionDown:
		m.MoveDown()
	case core.ActionLeft:
		m.Decrease()
	case core.ActionRight:
		m.Increase()
	case core.ActionConfirm:
		return m.Confirm()
	case core.ActionQuit:
		return Result{Outcome: Terminate}, nil
	}
	return Result{Outcome: Continue}, nil
}
