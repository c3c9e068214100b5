package grid

import (
	"github.com/KirkDiggler/rpg-grid/internal/entities"
)

// Cell is the occupancy record of one grid coordinate. It holds non-owning
// references: a floor slot and an object slot stacked on top of it.
type Cell struct {
	coord  entities.Coord
	floor  *entities.Entity
	object *entities.Entity
}

// Coord is the cell's position in its grid
func (c *Cell) Coord() entities.Coord {
	return c.coord
}

// Occupant returns the topmost entity, or nil when the cell is empty
func (c *Cell) Occupant() *entities.Entity {
	if c.object != nil {
		return c.object
	}
	return c.floor
}

// Floor returns the floor entity under any stacked object
func (c *Cell) Floor() *entities.Entity {
	return c.floor
}

// Object returns the non-floor occupant
func (c *Cell) Object() *entities.Entity {
	return c.object
}

// IsEmpty reports whether nothing occupies the cell
func (c *Cell) IsEmpty() bool {
	return c.floor == nil && c.object == nil
}

// CanBuild reports whether an entity of category can be placed into the
// cell. An empty cell accepts any category; a cell holding only a floor
// accepts a grid object on top of it.
func (c *Cell) CanBuild(category entities.Category) bool {
	if c.IsEmpty() {
		return true
	}
	return c.object == nil && category == entities.GridObject
}

// Entities returns the occupants bottom to top
func (c *Cell) Entities() []*entities.Entity {
	var out []*entities.Entity
	if c.floor != nil {
		out = append(out, c.floor)
	}
	if c.object != nil {
		out = append(out, c.object)
	}
	return out
}

// Has reports whether e occupies the cell in either slot
func (c *Cell) Has(e *entities.Entity) bool {
	return e != nil && (c.floor == e || c.object == e)
}

func (c *Cell) set(e *entities.Entity) bool {
	if e == nil || !e.Category().OccupiesCells() || !c.CanBuild(e.Category()) {
		return false
	}
	if e.Category() == entities.FloorObject {
		c.floor = e
	} else {
		c.object = e
	}
	return true
}

func (c *Cell) clear(e *entities.Entity) bool {
	switch {
	case e == nil:
		return false
	case c.object == e:
		c.object = nil
	case c.floor == e:
		c.floor = nil
	default:
		return false
	}
	return true
}
