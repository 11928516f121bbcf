package container

import (
	"github.com/farmhand/go-automate/internal/item"
	"github.com/farmhand/go-automate/internal/storage"
	"github.com/farmhand/go-automate/internal/world"
)

// Endpoint is a single storage container a machine can interact with.
type Endpoint interface {
	// TryPush adds the whole stack, or nothing. It never splits a stack
	// across slots, so a push either fully lands or fully fails.
	TryPush(st *item.Stack) bool

	// TakeMatching removes qty of the given item if a single stack can cover
	// it, returning the removed stack, or nil.
	TakeMatching(id item.ID, qty int) *item.Stack
}

// IsContainer reports whether an entity can act as a storage endpoint.
func IsContainer(ent *world.Entity) bool {
	return ent.Kind == world.KindChest
}

// Chest wraps a container entity. Capacity is slot-based: a chest holds up
// to Slots stacks, each capped at the item's max stack size.
type Chest struct {
	ent   *world.Entity
	items storage.Storer[*item.Definition]
}

func NewChest(ent *world.Entity, items storage.Storer[*item.Definition]) *Chest {
	return &Chest{
		ent:   ent,
		items: items,
	}
}

// Entity exposes the underlying entity for inspection (status console).
func (c *Chest) Entity() *world.Entity {
	return c.ent
}

func (c *Chest) TryPush(st *item.Stack) bool {
	if st == nil || st.Qty < 1 {
		return false
	}

	// Top up an existing stack if the whole push fits.
	limit := c.maxStack(st.Item)
	for _, held := range c.ent.Contents {
		if held.Item == st.Item && held.Qty+st.Qty <= limit {
			held.Qty += st.Qty
			return true
		}
	}

	// Otherwise start a new stack in a free slot.
	if len(c.ent.Contents) < c.ent.Slots && st.Qty <= limit {
		c.ent.Contents = append(c.ent.Contents, st.Clone())
		return true
	}

	return false
}

func (c *Chest) TakeMatching(id item.ID, qty int) *item.Stack {
	for i, held := range c.ent.Contents {
		if held.Item != id || held.Qty < qty {
			continue
		}

		held.Qty -= qty
		if held.Qty == 0 {
			c.ent.Contents = append(c.ent.Contents[:i], c.ent.Contents[i+1:]...)
		}
		return item.NewStack(id, qty)
	}

	return nil
}

func (c *Chest) maxStack(id item.ID) int {
	def := c.items.Get(storage.Identifier(id))
	if def == nil {
		return item.DefaultMaxStack
	}
	return def.MaxStack
}
