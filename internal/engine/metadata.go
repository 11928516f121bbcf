package engine

import (
	"github.com/farmhand/go-automate/internal/container"
	"github.com/farmhand/go-automate/internal/machine"
	"github.com/farmhand/go-automate/internal/world"
)

// MachineMetadata binds a machine to the storage it can reach and the
// location both live in. Metadata is created during a rebuild pass and
// replaced wholesale by the next one, never mutated in place.
type MachineMetadata struct {
	Machine   machine.Machine
	Connected *container.Group
	Location  *world.Location
}
