package modifier

import "sort"

// Stats maps a stat name to its value.
type Stats map[string]float64

// Clone returns an independent copy of s.
func (s Stats) Clone() Stats {
	out := make(Stats, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Budget is an inclusive range of allowed total DP cost.
type Budget struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Contains reports whether cost lies in [Min, Max].
func (b Budget) Contains(cost int) bool {
	return cost >= b.Min && cost <= b.Max
}

// Resolution is the outcome of a successful Resolve.
type Resolution struct {
	Stats Stats
	Cost  int
}

// Resolver validates loadout selections against a catalog and computes
// resolved stats. It holds no mutable state and is safe to share.
type Resolver struct {
	catalog *Catalog
}

// NewResolver returns a resolver over catalog.
func NewResolver(catalog *Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Catalog returns the catalog the resolver reads from.
func (r *Resolver) Catalog() *Catalog {
	return r.catalog
}

// ordered returns the selected ids that exist in the catalog, in declaration order.
func (r *Resolver) ordered(sel Selection) []string {
	ids := make([]string, 0, len(sel))
	for id := range sel {
		if r.catalog.Has(id) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		return r.catalog.order(ids[i]) < r.catalog.order(ids[j])
	})
	return ids
}

// Validate checks that every id is known and that no two selected ids
// conflict in either direction. Unknown ids are reported first, in lexical
// order; conflicts are reported with the pair in declaration order.
func (r *Resolver) Validate(sel Selection) error {
	for _, id := range sel.IDs() {
		if !r.catalog.Has(id) {
			suggestion, _ := r.catalog.Suggest(id)
			return &UnknownModifierError{ID: id, Suggestion: suggestion}
		}
	}

	ids := r.ordered(sel)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if r.catalog.Incompatible(ids[i], ids[j]) {
				return &IncompatiblePairError{A: ids[i], B: ids[j]}
			}
		}
	}
	return nil
}

// TotalCost sums the DP of the selected ids. Unknown ids contribute nothing.
func (r *Resolver) TotalCost(sel Selection) int {
	total := 0
	for id := range sel {
		if d, ok := r.catalog.lookup(id); ok {
			total += d.DP
		}
	}
	return total
}

// WithinBudget reports whether the total cost of sel lies in budget.
func (r *Resolver) WithinBudget(sel Selection, budget Budget) bool {
	return budget.Contains(r.TotalCost(sel))
}

// CheckBudget is WithinBudget as an error value.
func (r *Resolver) CheckBudget(sel Selection, budget Budget) error {
	cost := r.TotalCost(sel)
	if !budget.Contains(cost) {
		return &BudgetError{Cost: cost, Budget: budget}
	}
	return nil
}

// ApplyEffects returns fresh stats computed from base and sel in two passes.
// First every Multiply effect scales its stat (a stat missing from base
// starts at 1). Then every SetValue effect overwrites its stat, walking the
// catalog in declaration order so the last declared modifier wins.
// Neither base nor the catalog is modified. Unknown ids are ignored.
func (r *Resolver) ApplyEffects(base Stats, sel Selection) Stats {
	out := base.Clone()
	ids := r.ordered(sel)

	for _, id := range ids {
		d, _ := r.catalog.lookup(id)
		if d.Action != Multiply {
			continue
		}
		for stat, factor := range d.Effects {
			v, ok := out[stat]
			if !ok {
				v = 1
			}
			out[stat] = v * factor
		}
	}

	for _, id := range ids {
		d, _ := r.catalog.lookup(id)
		if d.Action != SetValue {
			continue
		}
		for stat, value := range d.Effects {
			out[stat] = value
		}
	}

	return out
}

// Resolve validates sel, checks it against budget when one is given, and
// applies its effects to base. On failure no stats are returned.
func (r *Resolver) Resolve(base Stats, sel Selection, budget *Budget) (Resolution, error) {
	if err := r.Validate(sel); err != nil {
		return Resolution{}, err
	}
	if budget != nil {
		if err := r.CheckBudget(sel, *budget); err != nil {
			return Resolution{}, err
		}
	}
	return Resolution{
		Stats: r.ApplyEffects(base, sel),
		Cost:  r.TotalCost(sel),
	}, nil
}
