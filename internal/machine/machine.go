package machine

import (
	"github.com/farmhand/go-automate/internal/container"
	"github.com/farmhand/go-automate/internal/item"
	"github.com/farmhand/go-automate/internal/storage"
	"github.com/farmhand/go-automate/internal/world"
)

// Machine is the automatable view over a world entity.
//
// State is a pure read. Pull is only called on an empty machine and consumes
// at most one input from the group. Output peeks at the finished item without
// removing it; removal happens through TakeOutput, which the caller invokes
// only after the output has landed somewhere.
type Machine interface {
	InstanceId() string
	Kind() string
	DisplayName() string
	Tile() world.Tile

	State() State
	Pull(stores *container.Group) bool
	Output() *item.Stack
	TakeOutput() *item.Stack
}

// Wrap returns the Machine view of an entity, or nil when the entity's type
// tag has no machine kind on file. Unrecognized entities are not an error;
// they just aren't machines.
func Wrap(ent *world.Entity, kinds storage.Storer[*Kind], recipes *RecipeIndex) Machine {
	def := kinds.Get(storage.Identifier(ent.Kind))
	if def == nil {
		return nil
	}

	return &processor{
		ent:     ent,
		def:     def,
		recipes: recipes,
	}
}
