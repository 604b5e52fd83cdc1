// Package modifier implements the ship loadout engine: a fixed catalog of
// stat modifiers with symmetric incompatibilities and difficulty point
// costs, and a resolver that validates selections and composes effects.
package modifier

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Action is how a modifier's effects are applied to a stat.
type Action int

const (
	// Multiply scales the stat by the effect factor.
	Multiply Action = iota
	// SetValue overwrites the stat with the effect value.
	SetValue
)

// String returns the catalog spelling of the action.
func (a Action) String() string {
	switch a {
	case Multiply:
		return "multiply"
	case SetValue:
		return "set"
	default:
		return "unknown"
	}
}

// UnmarshalYAML accepts "multiply"/"mul" and "set".
func (a *Action) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "multiply", "mul":
		*a = Multiply
	case "set":
		*a = SetValue
	default:
		return fmt.Errorf("line %d: unknown action %q", node.Line, s)
	}
	return nil
}

// Definition describes a single modifier.
type Definition struct {
	ID             string             `yaml:"id"`
	NameKey        string             `yaml:"name"`
	DescriptionKey string             `yaml:"description"`
	TextureKey     string             `yaml:"texture"`
	Incompatible   []string           `yaml:"incompatible"`
	Action         Action             `yaml:"action"`
	Effects        map[string]float64 `yaml:"effects"`
	DP             int                `yaml:"dp"`
}

// Catalog is the immutable, ordered table of modifier definitions.
// Declaration order decides which SetValue effect wins on a shared stat.
type Catalog struct {
	defs      []Definition
	index     map[string]int
	conflicts map[string]map[string]bool
}

// New builds a catalog from definitions in declaration order.
// Ids must be unique and every incompatibility must name a known id.
// A one-sided incompatibility is recorded in both directions.
func New(defs []Definition) (*Catalog, error) {
	c := &Catalog{
		defs:      make([]Definition, len(defs)),
		index:     make(map[string]int, len(defs)),
		conflicts: make(map[string]map[string]bool),
	}

	for i, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("modifier: definition %d has no id", i)
		}
		if _, dup := c.index[d.ID]; dup {
			return nil, fmt.Errorf("modifier: duplicate id %q", d.ID)
		}
		c.index[d.ID] = i
		c.defs[i] = cloneDefinition(d)
	}

	for _, d := range c.defs {
		for _, other := range d.Incompatible {
			if _, ok := c.index[other]; !ok {
				return nil, fmt.Errorf("modifier: %q is incompatible with unknown id %q", d.ID, other)
			}
			if other == d.ID {
				return nil, fmt.Errorf("modifier: %q is incompatible with itself", d.ID)
			}
			c.addConflict(d.ID, other)
			c.addConflict(other, d.ID)
		}
	}

	return c, nil
}

func (c *Catalog) addConflict(a, b string) {
	if c.conflicts[a] == nil {
		c.conflicts[a] = make(map[string]bool)
	}
	c.conflicts[a][b] = true
}

func cloneDefinition(d Definition) Definition {
	out := d
	out.Incompatible = append([]string(nil), d.Incompatible...)
	out.Effects = make(map[string]float64, len(d.Effects))
	for k, v := range d.Effects {
		out.Effects[k] = v
	}
	return out
}

// Parse decodes a YAML catalog document with a top-level "modifiers" list.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Modifiers []Definition `yaml:"modifiers"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("modifier: cannot parse catalog: %w", err)
	}
	return New(doc.Modifiers)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. It panics if the embedded data is invalid.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultCatalogYAML)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// Get returns the definition for id.
// The returned value is a copy; changing it does not affect the catalog.
func (c *Catalog) Get(id string) (Definition, bool) {
	i, ok := c.index[id]
	if !ok {
		return Definition{}, false
	}
	return cloneDefinition(c.defs[i]), true
}

// Has reports whether id is in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// All returns copies of every definition in declaration order.
func (c *Catalog) All() []Definition {
	out := make([]Definition, len(c.defs))
	for i, d := range c.defs {
		out[i] = cloneDefinition(d)
	}
	return out
}

// IDs returns every id in declaration order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.defs))
	for i, d := range c.defs {
		out[i] = d.ID
	}
	return out
}

// Incompatible reports whether a and b conflict, whichever side declared it.
func (c *Catalog) Incompatible(a, b string) bool {
	return c.conflicts[a][b]
}

// order returns the declaration position of id, or -1.
func (c *Catalog) order(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// lookup returns the stored definition without copying it.
// Callers must not modify the result.
func (c *Catalog) lookup(id string) (*Definition, bool) {
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return &c.defs[i], true
}

// Suggest returns the known id closest to id by edit distance, if any is
// close enough to be a plausible typo.
func (c *Catalog) Suggest(id string) (string, bool) {
	best := ""
	bestDist := -1
	for _, d := range c.defs {
		dist := levenshtein.ComputeDistance(id, d.ID)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d.ID, dist
		}
	}
	limit := len(id) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist < 0 || bestDist > limit {
		return "", false
	}
	return best, true
}

// Selection is a set of modifier ids.
type Selection map[string]struct{}

// NewSelection builds a selection; duplicate ids collapse.
func NewSelection(ids ...string) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is selected.
func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the selected ids in lexical order.
func (s Selection) IDs() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
