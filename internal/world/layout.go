package world

import (
	"fmt"

	"github.com/pixil98/go-errors"

	"github.com/farmhand/go-automate/internal/item"
	"github.com/farmhand/go-automate/internal/storage"
)

// Placement is one entity in a location layout asset.
type Placement struct {
	Kind  string        `json:"kind"`
	X     int           `json:"x"`
	Y     int           `json:"y"`
	Slots int           `json:"slots,omitempty"` // containers only; defaults per kind
	Items []*item.Stack `json:"items,omitempty"` // starting container contents
}

// Layout is the asset a location is built from. Layout is definition data;
// Location is the live instance.
type Layout struct {
	Name     string      `json:"name"`
	Entities []Placement `json:"entities"`
}

// Validate satisfies storage.ValidatingSpec.
func (l *Layout) Validate() error {
	el := errors.NewErrorList()

	if l.Name == "" {
		el.Add(fmt.Errorf("location name is required"))
	}

	seen := map[Tile]bool{}
	for i, p := range l.Entities {
		if p.Kind == "" {
			el.Add(fmt.Errorf("entity %d: kind is required", i))
		}
		t := Tile{p.X, p.Y}
		if seen[t] {
			el.Add(fmt.Errorf("entity %d: tile %s is placed twice", i, t))
		}
		seen[t] = true
		if p.Slots < 0 {
			el.Add(fmt.Errorf("entity %d: slots must not be negative", i))
		}
		for j, st := range p.Items {
			if err := st.Validate(); err != nil {
				el.Add(fmt.Errorf("entity %d item %d: %w", i, j, err))
			}
		}
	}

	return el.Err()
}

// Build instantiates a live Location from the layout.
func (l *Layout) Build(id storage.Identifier) (*Location, error) {
	loc := NewLocation(id, l.Name)

	for _, p := range l.Entities {
		e := NewEntity(p.Kind, Tile{p.X, p.Y})
		if p.Slots > 0 {
			e.Slots = p.Slots
		}
		for _, st := range p.Items {
			e.Contents = append(e.Contents, st.Clone())
		}
		if err := loc.Place(e); err != nil {
			return nil, fmt.Errorf("building location %q: %w", id, err)
		}
	}

	return loc, nil
}
