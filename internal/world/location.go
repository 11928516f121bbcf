package world

import (
	"fmt"

	"github.com/farmhand/go-automate/internal/storage"
)

// Location is an identifiable container of placed entities. Entities keep
// their placement order so enumeration (and everything derived from it, like
// machine evaluation order) is deterministic.
type Location struct {
	Id   storage.Identifier
	Name string

	entities []*Entity
	byTile   map[Tile]*Entity
}

func NewLocation(id storage.Identifier, name string) *Location {
	return &Location{
		Id:     id,
		Name:   name,
		byTile: map[Tile]*Entity{},
	}
}

// Place adds an entity to the location. Tiles hold at most one entity.
func (l *Location) Place(e *Entity) error {
	if _, ok := l.byTile[e.Tile]; ok {
		return fmt.Errorf("tile %s in %q is already occupied", e.Tile, l.Id)
	}

	l.entities = append(l.entities, e)
	l.byTile[e.Tile] = e
	return nil
}

// Remove takes an entity out of the location by instance id.
// Returns the removed entity, or nil if not found.
func (l *Location) Remove(instanceId string) *Entity {
	for i, e := range l.entities {
		if e.InstanceId == instanceId {
			l.entities = append(l.entities[:i], l.entities[i+1:]...)
			delete(l.byTile, e.Tile)
			return e
		}
	}
	return nil
}

// Entities returns the placed entities in placement order.
func (l *Location) Entities() []*Entity {
	out := make([]*Entity, len(l.entities))
	copy(out, l.entities)
	return out
}

// At returns the entity occupying a tile, or nil.
func (l *Location) At(t Tile) *Entity {
	return l.byTile[t]
}
