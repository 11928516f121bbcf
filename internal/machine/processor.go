package machine

import (
	"github.com/farmhand/go-automate/internal/container"
	"github.com/farmhand/go-automate/internal/item"
	"github.com/farmhand/go-automate/internal/world"
)

// processor drives every machine kind. Variant behavior is data: the kind
// definition and its recipes, not a subtype hierarchy.
type processor struct {
	ent     *world.Entity
	def     *Kind
	recipes *RecipeIndex
}

func (p *processor) InstanceId() string {
	return p.ent.InstanceId
}

func (p *processor) Kind() string {
	return p.ent.Kind
}

func (p *processor) DisplayName() string {
	return p.def.DisplayName
}

func (p *processor) Tile() world.Tile {
	return p.ent.Tile
}

func (p *processor) State() State {
	if p.ent.Output == nil {
		return StateEmpty
	}
	if p.ent.TicksLeft > 0 {
		return StateProcessing
	}
	return StateDone
}

// Pull scans the group in priority order for the first recipe input it can
// take. On success the machine starts processing; on failure nothing in the
// group changes.
func (p *processor) Pull(stores *container.Group) bool {
	for _, r := range p.recipes.ForKind(p.ent.Kind) {
		taken := stores.TakeMatching(r.Input, r.InputQty)
		if taken == nil {
			continue
		}

		p.ent.Input = taken
		p.ent.Output = item.NewStack(r.Output, r.OutputQty)
		p.ent.TicksLeft = r.Ticks
		return true
	}

	return false
}

func (p *processor) Output() *item.Stack {
	return p.ent.Output
}

// TakeOutput removes the finished stack. Replicating kinds keep their input
// and immediately start another cycle on it; everything else goes empty.
func (p *processor) TakeOutput() *item.Stack {
	out := p.ent.Output
	p.ent.Output = nil

	if p.def.Replicates && p.ent.Input != nil {
		if r := p.recipeFor(p.ent.Input.Item); r != nil {
			p.ent.Output = item.NewStack(r.Output, r.OutputQty)
			p.ent.TicksLeft = r.Ticks
			return out
		}
	}

	p.ent.Input = nil
	p.ent.TicksLeft = 0
	return out
}

func (p *processor) recipeFor(input item.ID) *Recipe {
	for _, r := range p.recipes.ForKind(p.ent.Kind) {
		if r.Input == input {
			return r
		}
	}
	return nil
}
