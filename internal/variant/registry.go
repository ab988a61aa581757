package variant

import "sort"

// registry holds all available variants keyed by ID.
var registry = make(map[string]Variant)

// Register adds a variant to the registry.
func Register(v Variant) {
	registry[v.Spec().ID] = v
}

// Get retrieves a variant by ID.
func Get(id string) (Variant, bool) {
	v, ok := registry[id]
	return v, ok
}

// List returns all registered variant IDs, sorted.
func List() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func init() {
	Register(FiveCardDraw{})
	Register(DeucesWild{})
	Register(SevenCardStud{})
	Register(Baseball{})
	Register(FollowTheQueen{})
	Register(KingsAndLittleOnes{})
}
