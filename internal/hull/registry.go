// Package hull provides a global registry of ship hulls and their base
// statistics. The built-in hulls register themselves from embedded data,
// and callers may register more before resolving loadouts.
package hull

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/bytedspace/byted-space/internal/modifier"
)

//go:embed hulls.yaml
var builtinYAML []byte

// Hull is a named table of base stats.
type Hull struct {
	ID    string         `yaml:"id"`
	Title string         `yaml:"title"`
	Stats modifier.Stats `yaml:"stats"`
}

var (
	hulls = make(map[string]Hull)
	mu    sync.RWMutex
)

func init() {
	parsed, err := Parse(builtinYAML)
	if err != nil {
		panic(err)
	}
	for _, h := range parsed {
		Register(h)
	}
}

// Parse decodes a YAML document with a top-level "hulls" list.
func Parse(data []byte) ([]Hull, error) {
	var doc struct {
		Hulls []Hull `yaml:"hulls"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("hull: cannot parse: %w", err)
	}
	for i, h := range doc.Hulls {
		if h.ID == "" {
			return nil, fmt.Errorf("hull: entry %d has no id", i)
		}
	}
	return doc.Hulls, nil
}

// Register adds a hull to the registry.
// Panics if a hull with the same ID is already registered.
func Register(h Hull) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := hulls[h.ID]; exists {
		panic(fmt.Sprintf("hull: %q already registered", h.ID))
	}

	h.Stats = h.Stats.Clone()
	hulls[h.ID] = h
}

// List returns all registered hulls, sorted by ID.
func List() []Hull {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Hull, 0, len(hulls))
	for _, h := range hulls {
		h.Stats = h.Stats.Clone()
		result = append(result, h)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a copy of the hull with the given ID.
// Returns an error if the ID is not registered.
func Get(id string) (Hull, error) {
	mu.RLock()
	defer mu.RUnlock()

	h, ok := hulls[id]
	if !ok {
		return Hull{}, fmt.Errorf("hull: unknown hull %q", id)
	}

	h.Stats = h.Stats.Clone()
	return h, nil
}

// Exists checks if a hull with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := hulls[id]
	return ok
}
