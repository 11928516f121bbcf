package engine

import (
	"github.com/farmhand/go-automate/internal/container"
	"github.com/farmhand/go-automate/internal/item"
	"github.com/farmhand/go-automate/internal/machine"
	"github.com/farmhand/go-automate/internal/storage"
	"github.com/farmhand/go-automate/internal/world"
)

// DefaultSearchRadius bounds the connectivity search around each machine,
// in tiles.
const DefaultSearchRadius = 3

// Factory scans locations for automatable machines and computes each
// machine's connected storage. It holds no state of its own beyond wiring;
// every Build call reads the world fresh.
type Factory struct {
	world   *world.World
	kinds   storage.Storer[*machine.Kind]
	items   storage.Storer[*item.Definition]
	recipes *machine.RecipeIndex
	radius  int
}

type FactoryOpt func(*Factory)

// WithSearchRadius overrides the connectivity search radius.
func WithSearchRadius(radius int) FactoryOpt {
	return func(f *Factory) {
		if radius > 0 {
			f.radius = radius
		}
	}
}

func NewFactory(w *world.World, kinds storage.Storer[*machine.Kind], items storage.Storer[*item.Definition], recipes *machine.RecipeIndex, opts ...FactoryOpt) *Factory {
	f := &Factory{
		world:   w,
		kinds:   kinds,
		items:   items,
		recipes: recipes,
		radius:  DefaultSearchRadius,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Locations is a read-through to the world's current location set.
func (f *Factory) Locations() []*world.Location {
	return f.world.Locations()
}

// Location is a read-through lookup of a single location.
func (f *Factory) Location(id storage.Identifier) *world.Location {
	return f.world.Location(id)
}

// BuildLocation wraps every recognized machine in the location and computes
// its storage group. Entities that are neither machines nor containers are
// skipped silently. The result order is the location's entity placement
// order.
func (f *Factory) BuildLocation(loc *world.Location) []*MachineMetadata {
	var metas []*MachineMetadata

	for _, ent := range loc.Entities() {
		m := machine.Wrap(ent, f.kinds, f.recipes)
		if m == nil {
			continue
		}

		metas = append(metas, &MachineMetadata{
			Machine:   m,
			Connected: f.connectedStorage(loc, ent.Tile),
			Location:  loc,
		})
	}

	return metas
}

// connectedStorage runs a bounded breadth-first expansion over tiles around
// origin, collecting container entities in discovery order. Orthogonal
// neighbors are visited before diagonal ones at each step, so nearer chests
// always rank ahead of farther ones.
func (f *Factory) connectedStorage(loc *world.Location, origin world.Tile) *container.Group {
	visited := map[world.Tile]bool{origin: true}
	queue := []world.Tile{origin}
	var endpoints []container.Endpoint

	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]

		for _, n := range t.Neighbors() {
			if visited[n] || origin.Chebyshev(n) > f.radius {
				continue
			}
			visited[n] = true
			queue = append(queue, n)

			if ent := loc.At(n); ent != nil && container.IsContainer(ent) {
				endpoints = append(endpoints, container.NewChest(ent, f.items))
			}
		}
	}

	return container.NewGroup(endpoints...)
}
