package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Entity is one placed instance of a template. Grid cells hold non-owning
// pointers to it; the placement controller owns its lifecycle.
type Entity struct {
	ID          string
	Template    *Template
	Origin      Coord
	Orientation Direction
	Layer       int
	Position    Vec3
	// Yaw is the free rotation of loose objects in degrees
	Yaw float64
	// Cells is the footprint written into the grid; empty for walls and loose objects
	Cells []Coord

	// Owner is the floor a wall is attached to
	Owner *Entity
	// Edge is the owner's slot a wall occupies
	Edge EdgeSlot

	walls [4]*Entity
}

var _ core.Entity = (*Entity)(nil)

// GetID implements core.Entity
func (e *Entity) GetID() string {
	return e.ID
}

// GetType implements core.Entity with the category name
func (e *Entity) GetType() string {
	return e.Category().String()
}

// Category is the template category
func (e *Entity) Category() Category {
	if e.Template == nil {
		return GridObject
	}
	return e.Template.Category
}

// Wall returns the wall attached at slot, if any
func (e *Entity) Wall(slot EdgeSlot) *Entity {
	if !slot.Valid() {
		return nil
	}
	return e.walls[slot]
}

// AttachWall stores wall in slot and returns the previous occupant
func (e *Entity) AttachWall(slot EdgeSlot, wall *Entity) *Entity {
	prev := e.walls[slot]
	e.walls[slot] = wall
	if wall != nil {
		wall.Owner = e
		wall.Edge = slot
	}
	return prev
}

// DetachWall empties slot and returns what was there
func (e *Entity) DetachWall(slot EdgeSlot) *Entity {
	if !slot.Valid() {
		return nil
	}
	prev := e.walls[slot]
	e.walls[slot] = nil
	return prev
}

// Walls returns the attached walls in slot order
func (e *Entity) Walls() []*Entity {
	var walls []*Entity
	for _, w := range e.walls {
		if w != nil {
			walls = append(walls, w)
		}
	}
	return walls
}
