package menu

import (
	"testing"

	"github.com/bytedspace/byted-space/internal/settings"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if c.Root() != MenuMain {
		t.Errorf("Root() = %q, expected %q", c.Root(), MenuMain)
	}

	tests := []struct {
		id    string
		title string
		items int
	}{
		{MenuMain, "game.name", 4},
		{MenuOptions, "menu.options", 10},
		{MenuPlay, "menu.play", 1},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			n, ok := c.Node(tc.id)
			if !ok {
				t.Fatalf("Node(%q) not found", tc.id)
			}
			if n.TitleKey != tc.title {
				t.Errorf("TitleKey = %q, expected %q", n.TitleKey, tc.title)
			}
			if len(n.Items) != tc.items {
				t.Errorf("len(Items) = %d, expected %d", len(n.Items), tc.items)
			}
		})
	}

	options, _ := c.Node(MenuOptions)
	if _, ok := options.Items[len(options.Items)-1].(NavigateAndSave); !ok {
		t.Error("leaving options should save settings")
	}
}

func TestNewCatalogValidation(t *testing.T) {
	tests := []struct {
		name  string
		root  string
		nodes map[string]Node
	}{
		{"missing root", "nope", map[string]Node{"a": {Items: []Item{Quit{}}}}},
		{"empty node", "a", map[string]Node{"a": {}}},
		{"dangling navigate", "a", map[string]Node{"a": {Items: []Item{Navigate{Target: "b"}}}}},
		{"dangling save", "a", map[string]Node{"a": {Items: []Item{NavigateAndSave{Target: "b"}}}}},
		{"zero step", "a", map[string]Node{"a": {Items: []Item{EditNumeric{Field: settings.FieldMusic, Max: 10}}}}},
		{"inverted range", "a", map[string]Node{"a": {Items: []Item{EditNumeric{Field: settings.FieldMusic, Min: 10, Max: 0, Step: 1}}}}},
		{"nil item", "a", map[string]Node{"a": {Items: []Item{nil}}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewCatalog(tc.root, tc.nodes); err == nil {
				t.Error("NewCatalog() should fail")
			}
		})
	}
}

func TestNewCatalogCopiesItems(t *testing.T) {
	items := []Item{Quit{LabelKey: "menu.quit"}}
	c, err := NewCatalog("a", map[string]Node{"a": {Items: items}})
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}

	items[0] = Quit{LabelKey: "changed"}

	n, _ := c.Node("a")
	if n.Items[0].Label() != "menu.quit" {
		t.Error("catalog should not alias caller items")
	}
}

func TestOutcomeString(t *testing.T) {
	if Continue.String() != "Continue" || Navigated.String() != "Navigated" || Terminate.String() != "Terminate" {
		t.Error("unexpected Outcome names")
	}
}
