package world

import (
	"github.com/google/uuid"

	"github.com/farmhand/go-automate/internal/item"
)

// KindChest is the entity type tag for storage containers.
const KindChest = "chest"

// DefaultChestSlots is the slot count for chests placed without one.
const DefaultChestSlots = 36

// Entity is a single placed thing in a location: a machine, a chest, or
// scenery the automation engine ignores. The world owns this data outright;
// machine wrappers read and write the production fields directly.
type Entity struct {
	InstanceId string
	Kind       string
	Tile       Tile

	// Production state, meaningful only for machine kinds. Input is the stack
	// the machine is working on, Output the stack it will yield (or has
	// yielded, once TicksLeft reaches zero).
	Input     *item.Stack
	Output    *item.Stack
	TicksLeft int

	// Container state, meaningful only for storage kinds.
	Contents []*item.Stack
	Slots    int
}

// NewEntity creates an entity of the given kind at a tile with a fresh
// instance id. Chests get the default slot count.
func NewEntity(kind string, tile Tile) *Entity {
	e := &Entity{
		InstanceId: uuid.New().String(),
		Kind:       kind,
		Tile:       tile,
	}
	if kind == KindChest {
		e.Slots = DefaultChestSlots
	}
	return e
}
