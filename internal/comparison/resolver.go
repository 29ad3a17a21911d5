package comparison

// Resolver looks up the reference baseline of a computed space.
type Resolver struct {
	mapping Mapping
}

// NewResolver creates a Resolver over a copy of mapping. A nil mapping disables folding.
func NewResolver(mapping Mapping) *Resolver {
	return &Resolver{mapping: mapping.Clone()}
}

// Resolve returns the baseline area for the space (category, name) within data.
//
// A mapped name sums the first item matching each listed reference name, ignoring
// names absent from data. An unmapped name uses the item with the same category and
// name. Anything else resolves to 0.
func (r *Resolver) Resolve(category, name string, data []Item) float64 {
	if refs, ok := r.mapping[name]; ok {
		var total float64
		for _, ref := range refs {
			if item, found := findByName(data, ref); found {
				total += item.Area
			}
		}
		return total
	}

	for _, item := range data {
		if item.Category == category && item.Name == name {
			return item.Area
		}
	}
	return 0
}

func findByName(data []Item, name string) (Item, bool) {
	for _, item := range data {
		if item.Name == name {
			return item, true
		}
	}
	return Item{}, false
}
