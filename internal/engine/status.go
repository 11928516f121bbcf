package engine

import "github.com/farmhand/go-automate/internal/world"

// MachineStatus is a point-in-time view of one registered machine.
type MachineStatus struct {
	Kind        string
	DisplayName string
	Tile        world.Tile
	State       string
	Stores      int
}

// LocationStatus is a point-in-time view of one location's registry entry.
type LocationStatus struct {
	Id       string
	Name     string
	Machines []MachineStatus
}

// Status snapshots the registry for inspection, ordered by the world's
// location order. Machine state derives from entity fields the sim tick
// mutates, so the read happens under the world lock.
func (e *Engine) Status() []LocationStatus {
	e.mu.Lock()
	defer e.mu.Unlock()

	locs := e.factory.Locations()

	var out []LocationStatus
	e.factory.world.View(func() {
		for _, loc := range locs {
			metas, ok := e.registry[loc.Id]
			if !ok {
				continue
			}

			ls := LocationStatus{
				Id:   loc.Id.String(),
				Name: loc.Name,
			}
			for _, meta := range metas {
				ls.Machines = append(ls.Machines, MachineStatus{
					Kind:        meta.Machine.Kind(),
					DisplayName: meta.Machine.DisplayName(),
					Tile:        meta.Machine.Tile(),
					State:       meta.Machine.State().String(),
					Stores:      meta.Connected.Len(),
				})
			}
			out = append(out, ls)
		}
	})

	return out
}
