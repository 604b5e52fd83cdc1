// Package menu implements the data-driven menu: an immutable catalog of
// menu nodes and a state machine that moves a cursor through them, edits
// settings and reports navigation or termination to its owner.
package menu

import (
	"fmt"

	"github.com/bytedspace/byted-space/internal/settings"
)

// Item is a single entry of a menu node.
// The set of implementations is closed; see the types below.
type Item interface {
	// Label returns the translation key shown for the item.
	Label() string
	isItem()
}

// Navigate moves to another node on Confirm.
type Navigate struct {
	LabelKey string
	Target   string
}

// NavigateAndSave persists settings, then moves to another node on Confirm.
type NavigateAndSave struct {
	LabelKey string
	Target   string
}

// Quit asks the owner to terminate on Confirm.
type Quit struct {
	LabelKey string
}

// EditNumeric steps a numeric setting within [Min, Max].
type EditNumeric struct {
	LabelKey string
	Field    settings.NumericField
	Min      float64
	Max      float64
	Step     float64
}

// ToggleBool flips a boolean setting.
type ToggleBool struct {
	LabelKey string
	Field    settings.BoolField
}

// CycleLanguage walks the list of available locales.
type CycleLanguage struct {
	LabelKey string
}

// ConnectStub is an inert placeholder for online play.
type ConnectStub struct {
	LabelKey string
}

func (i Navigate) Label() string { return i.LabelKey }
func (i NavigateAndSave) Label() string { return i.LabelKey }
func (i Quit) Label() string { return i.LabelKey }
func (i EditNumeric) Label() string { return i.LabelKey }
func (i ToggleBool) Label() string { return i.LabelKey }
func (i CycleLanguage) Label() string { return i.LabelKey }
func (i ConnectStub) Label() string { return i.LabelKey }

func (Navigate) isItem() {}
func (NavigateAndSave) isItem() {}
func (Quit) isItem() {}
func (EditNumeric) isItem() {}
func (ToggleBool) isItem() {}
func (CycleLanguage) isItem() {}
func (ConnectStub) isItem() {}

// Node is one screen of the menu. TitleKey is empty when the node has no title.
type Node struct {
	TitleKey string
	Items    []Item
}

// Catalog maps menu ids to nodes. It is immutable once built.
type Catalog struct {
	nodes map[string]Node
	root  string
}

// NewCatalog validates nodes and builds a catalog that starts at root.
// Every node needs at least one item, every navigation target must exist
// and numeric items need a positive step and Min <= Max.
func NewCatalog(root string, nodes map[string]Node) (*Catalog, error) {
	if _, ok := nodes[root]; !ok {
		return nil, fmt.Errorf("menu: root %q is not defined", root)
	}

	c := &Catalog{nodes: make(map[string]Node, len(nodes)), root: root}
	for id, n := range nodes {
		if len(n.Items) == 0 {
			return nil, fmt.Errorf("menu: node %q has no items", id)
		}
		for i, item := range n.Items {
			if err := checkItem(nodes, item); err != nil {
				return nil, fmt.Errorf("menu: node %q item %d: %w", id, i, err)
			}
		}
		c.nodes[id] = Node{
			TitleKey: n.TitleKey,
			Items:    append([]Item(nil), n.Items...),
		}
	}
	return c, nil
}

func checkItem(nodes map[string]Node, item Item) error {
	switch it := item.(type) {
	case Navigate:
		if _, ok := nodes[it.Target]; !ok {
			return fmt.Errorf("unknown target %q", it.Target)
		}
	case NavigateAndSave:
		if _, ok := nodes[it.Target]; !ok {
			return fmt.Errorf("unknown target %q", it.Target)
		}
	case EditNumeric:
		if it.Step <= 0 {
			return fmt.Errorf("step must be positive, got %v", it.Step)
		}
		if it.Min > it.Max {
			return fmt.Errorf("min %v exceeds max %v", it.Min, it.Max)
		}
	case Quit, ToggleBool, CycleLanguage, ConnectStub:
	case nil:
		return fmt.Errorf("nil item")
	default:
		return fmt.Errorf("unsupported item %T", item)
	}
	return nil
}

// Root returns the id of the starting node.
func (c *Catalog) Root() string {
	return c.root
}

// Node returns the node for id.
func (c *Catalog) Node(id string) (Node, bool) {
	n, ok := c.nodes[id]
	return n, ok
}

// Menu ids of the built-in catalog.
const (
	MenuMain    = "main"
	MenuOptions = "options"
	MenuPlay    = "play"
)

// Default returns the built-in front-end menu tree.
//
// The "menu.fps" entry edits the sound volume with frame-rate bounds.
// Existing settings files depend on that behavior, so it is kept as is.
func Default() *Catalog {
	c, err := NewCatalog(MenuMain, map[string]Node{
		MenuMain: {
			TitleKey: "game.name",
			Items: []Item{
				Navigate{LabelKey: "menu.play", Target: MenuPlay},
				Navigate{LabelKey: "menu.options", Target: MenuOptions},
				ConnectStub{LabelKey: "menu.connect"},
				Quit{LabelKey: "menu.quit"},
			},
		},
		MenuOptions: {
			TitleKey: "menu.options",
			Items: []Item{
				CycleLanguage{LabelKey: "menu.language"},
				EditNumeric{LabelKey: "menu.fps", Field: settings.FieldSound, Min: 30, Max: 240, Step: 10},
				ToggleBool{LabelKey: "menu.bloom", Field: settings.FieldBloom},
				ToggleBool{LabelKey: "menu.chromatic_aberration", Field: settings.FieldChromaticAberration},
				ToggleBool{LabelKey: "menu.anti_aliasing", Field: settings.FieldAntiAliasing},
				ToggleBool{LabelKey: "menu.other_distortion_effects", Field: settings.FieldOtherDistortionEffects},
				EditNumeric{LabelKey: "menu.screen_shake", Field: settings.FieldScreenShake, Min: 0, Max: 1, Step: 0.1},
				EditNumeric{LabelKey: "menu.music", Field: settings.FieldMusic, Min: 0, Max: 100, Step: 10},
				EditNumeric{LabelKey: "menu.sound", Field: settings.FieldSound, Min: 0, Max: 100, Step: 10},
				NavigateAndSave{LabelKey: "menu.back", Target: MenuMain},
			},
		},
		MenuPlay: {
			TitleKey: "menu.play",
			Items: []Item{
				Navigate{LabelKey: "menu.back", Target: MenuMain},
			},
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}
