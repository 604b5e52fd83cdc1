package menu

import (
	"math"
	"strconv"
)

// Translation keys for boolean values.
const (
	KeyEnabled  = "menu.enabled"
	KeyDisabled = "menu.disabled"
)

// Translator resolves display strings. *locale.Catalog satisfies it.
type Translator interface {
	Translate(lang, key string) string
	DisplayName(lang string) string
}

// Point is a position in logical pixels.
type Point struct {
	X, Y float64
}

// Layout places frame elements relative to an origin.
type Layout struct {
	Origin       Point
	LabelOffset  Point   // first item label, relative to Origin
	LeftArrowX   float64 // value affordances, relative to Origin.X
	ValueCenterX float64
	RightArrowX  float64
	Wobble       float64 // horizontal pointer swing amplitude
}

// DefaultLayout returns the standard layout anchored at origin.
func DefaultLayout(origin Point) Layout {
	return Layout{
		Origin:       origin,
		LabelOffset:  Point{X: 30, Y: 50},
		LeftArrowX:   330,
		ValueCenterX: 410,
		RightArrowX:  490,
		Wobble:       5,
	}
}

// ValueView is the current value of an adjustable item with its affordances.
type ValueView struct {
	Text   string
	Left   Point // position of the decrease glyph
	Center Point // Text is centered here
	Right  Point // position of the increase glyph
}

// Row is one drawn item.
type Row struct {
	Label       string
	Pos         Point
	Highlighted bool
	Value       *ValueView // nil for items without a value
}

// Frame is everything the renderer needs to draw the menu once.
type Frame struct {
	Title    string
	HasTitle bool
	TitlePos Point
	Rows     []Row
	Pointer  Point
}

// Frame builds the draw list for the current state using the settings'
// language for every translated string.
func (m *Machine) Frame(tr Translator, l Layout) Frame {
	lang := m.settings.Lang
	node := m.Current()

	f := Frame{
		TitlePos: l.Origin,
		Rows:     make([]Row, 0, len(node.Items)),
		Pointer: Point{
			X: l.Origin.X + math.Sin(m.state.Phase)*l.Wobble,
			Y: l.Origin.Y + m.state.CursorY,
		},
	}
	if node.TitleKey != "" {
		f.Title = tr.Translate(lang, node.TitleKey)
		f.HasTitle = true
	}

	for i, item := range node.Items {
		y := l.Origin.Y + l.LabelOffset.Y + float64(i)*RowHeight
		row := Row{
			Label:       tr.Translate(lang, item.Label()),
			Pos:         Point{X: l.Origin.X + l.LabelOffset.X, Y: y},
			Highlighted: i == m.state.Selected,
		}
		if text, ok := m.valueText(tr, item); ok {
			row.Value = &ValueView{
				Text:   text,
				Left:   Point{X: l.Origin.X + l.LeftArrowX, Y: y},
				Center: Point{X: l.Origin.X + l.ValueCenterX, Y: y},
				Right:  Point{X: l.Origin.X + l.RightArrowX, Y: y},
			}
		}
		f.Rows = append(f.Rows, row)
	}

	return f
}

func (m *Machine) valueText(tr Translator, item Item) (string, bool) {
	switch it := item.(type) {
	case EditNumeric:
		return FormatNumber(m.settings.Number(it.Field), it.Field.Integral()), true
	case ToggleBool:
		if m.settings.Flag(it.Field) {
			return tr.Translate(m.settings.Lang, KeyEnabled), true
		}
		return tr.Translate(m.settings.Lang, KeyDisabled), true
	case CycleLanguage:
		return tr.DisplayName(m.settings.Lang), true
	case Navigate, NavigateAndSave, Quit, ConnectStub:
	}
	return "", false
}

// FormatNumber renders a setting value: integers without a fraction,
// everything else rounded to two decimals with trailing zeros dropped.
func FormatNumber(v float64, integral bool) string {
	if integral {
		return strconv.FormatInt(int64(math.Round(v)), 10)
	}
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
