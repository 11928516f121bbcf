package world

import (
	"context"
	"fmt"
	"sync"

	"github.com/farmhand/go-automate/internal/storage"
)

// World is the single source of truth for all mutable world state. The
// automation engine only reads it; mutation happens here, and every mutation
// fires the matching change hook so topology can be rebuilt.
type World struct {
	mu        sync.RWMutex
	locations map[storage.Identifier]*Location
	order     []storage.Identifier

	onSetChanged      []func()
	onContentsChanged []func(storage.Identifier)
}

func NewWorld() *World {
	return &World{
		locations: map[storage.Identifier]*Location{},
	}
}

// OnLocationsChanged registers a hook fired whenever a location is added to
// or removed from the world.
func (w *World) OnLocationsChanged(fn func()) {
	w.onSetChanged = append(w.onSetChanged, fn)
}

// OnContentsChanged registers a hook fired whenever a single location's
// entity set changes.
func (w *World) OnContentsChanged(fn func(storage.Identifier)) {
	w.onContentsChanged = append(w.onContentsChanged, fn)
}

// AddLocation puts a location into the world, replacing any existing location
// with the same id.
func (w *World) AddLocation(loc *Location) {
	w.mu.Lock()
	if _, exists := w.locations[loc.Id]; !exists {
		w.order = append(w.order, loc.Id)
	}
	w.locations[loc.Id] = loc
	w.mu.Unlock()

	w.fireSetChanged()
}

// RemoveLocation drops a location from the world.
func (w *World) RemoveLocation(id storage.Identifier) {
	w.mu.Lock()
	if _, exists := w.locations[id]; !exists {
		w.mu.Unlock()
		return
	}
	delete(w.locations, id)
	for i, oid := range w.order {
		if oid == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	w.mu.Unlock()

	w.fireSetChanged()
}

// Location returns the location with the given id, or nil.
func (w *World) Location(id storage.Identifier) *Location {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.locations[id]
}

// Locations returns a snapshot of all known locations, in the order they
// were added.
func (w *World) Locations() []*Location {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]*Location, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.locations[id])
	}
	return out
}

// PlaceEntity adds an entity to a location and fires the contents hook.
func (w *World) PlaceEntity(id storage.Identifier, e *Entity) error {
	w.mu.Lock()
	loc, ok := w.locations[id]
	if !ok {
		w.mu.Unlock()
		return fmt.Errorf("unknown location %q", id)
	}
	err := loc.Place(e)
	w.mu.Unlock()

	if err != nil {
		return err
	}

	w.fireContentsChanged(id)
	return nil
}

// RemoveEntity removes an entity from a location and fires the contents hook.
func (w *World) RemoveEntity(id storage.Identifier, instanceId string) error {
	w.mu.Lock()
	loc, ok := w.locations[id]
	if !ok {
		w.mu.Unlock()
		return fmt.Errorf("unknown location %q", id)
	}
	removed := loc.Remove(instanceId)
	w.mu.Unlock()

	if removed == nil {
		return fmt.Errorf("no entity %q in location %q", instanceId, id)
	}

	w.fireContentsChanged(id)
	return nil
}

// Tick advances every machine timer by one tick. The Processing -> Done
// transition is implicit: an entity whose timer reaches zero while holding an
// output is done. Runs under the world write lock; concurrent readers of
// entity state go through View.
func (w *World) Tick(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, loc := range w.locations {
		for _, e := range loc.Entities() {
			if e.TicksLeft > 0 {
				e.TicksLeft--
			}
		}
	}
	return nil
}

// View runs fn under the world read lock. Anything reading entity fields the
// sim tick mutates from outside the tick goroutine goes through here.
func (w *World) View(fn func()) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	fn()
}

// Hooks run outside the world lock: rebuild handlers read the world back.
func (w *World) fireSetChanged() {
	for _, fn := range w.onSetChanged {
		fn()
	}
}

func (w *World) fireContentsChanged(id storage.Identifier) {
	for _, fn := range w.onContentsChanged {
		fn(id)
	}
}
