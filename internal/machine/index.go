package machine

import (
	"slices"
	"sync"

	"github.com/farmhand/go-automate/internal/storage"
)

// RecipeIndex is the per-kind lookup table derived from the recipe store.
// It is built eagerly and invalidated explicitly with Reset so the timing of
// invalidation is observable, rather than rebuilding lazily on first access.
type RecipeIndex struct {
	mu      sync.RWMutex
	store   storage.Storer[*Recipe]
	version uint64
	byKind  map[string][]*Recipe
}

func NewRecipeIndex(store storage.Storer[*Recipe]) *RecipeIndex {
	ri := &RecipeIndex{store: store}
	ri.Reset()
	return ri
}

// ForKind returns the recipes for a machine kind, in stable (recipe id)
// order. Returns nil for kinds with no recipes.
func (ri *RecipeIndex) ForKind(kind string) []*Recipe {
	ri.mu.RLock()
	defer ri.mu.RUnlock()

	return ri.byKind[kind]
}

// Reset rebuilds the index from the backing store and bumps the data
// version. Call it after any recipe reload.
func (ri *RecipeIndex) Reset() {
	byKind := map[string][]*Recipe{}

	all := ri.store.GetAll()
	ids := make([]storage.Identifier, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		r := all[id]
		byKind[r.Machine] = append(byKind[r.Machine], r)
	}

	ri.mu.Lock()
	ri.byKind = byKind
	ri.version++
	ri.mu.Unlock()
}

// Version identifies the data generation the index was built from.
func (ri *RecipeIndex) Version() uint64 {
	ri.mu.RLock()
	defer ri.mu.RUnlock()

	return ri.version
}
