package placement

import (
	"github.com/KirkDiggler/rpg-grid/internal/entities"
)

// Remove destroys what is at target on the active layer. A loose object
// under the target wins over the cell occupant; a target with an edge
// removes the wall in that slot of the cell's floor. Categories outside
// RemovableCategories are refused with Filtered.
func (c *Controller) Remove(target Target) Result {
	e, res, ok := c.locate(target)
	if !ok {
		return res
	}
	if !c.removable.Has(e.Category()) {
		res := failure(Filtered, e.Layer)
		res.Neighbor = e
		return res
	}
	return c.removeEntity(e)
}

// Edit removes what is at target and selects its template with the removed
// entity's orientation or yaw, so it can be placed again elsewhere.
func (c *Controller) Edit(target Target) Result {
	res := c.Remove(target)
	if !res.OK {
		return res
	}

	e := res.Entity
	if e.Category() == entities.LooseObject {
		c.looseYaw = e.Yaw
	} else {
		c.orientation = e.Orientation
	}
	c.selectTemplate(e.Template)
	return res
}

// RemoveEntity destroys a placed entity by ID regardless of the removal filter
func (c *Controller) RemoveEntity(id string) Result {
	e, ok := c.byID[id]
	if !ok {
		return failure(NotFound, c.active)
	}
	return c.removeEntity(e)
}

// RemoveWall destroys the wall in a floor's edge slot
func (c *Controller) RemoveWall(floorID string, slot entities.EdgeSlot) Result {
	floor, ok := c.byID[floorID]
	if !ok || floor.Category() != entities.FloorObject {
		return failure(NotFound, c.active)
	}
	wall := floor.Wall(slot)
	if wall == nil {
		res := failure(NotFound, floor.Layer)
		res.Neighbor = floor
		return res
	}
	return c.removeEntity(wall)
}

// locate finds the entity a removal target addresses
func (c *Controller) locate(target Target) (*entities.Entity, Result, bool) {
	g := c.ActiveGrid()
	cell := c.cellOf(target)

	if loose := c.pickLoose(target, cell); loose != nil {
		return loose, Result{}, true
	}

	at := g.Cell(cell)
	if at == nil {
		res := failure(OutOfBounds, c.active)
		res.Cell = cell
		return nil, res, false
	}

	if target.Edge != nil {
		floor := at.Floor()
		if floor == nil || floor.Wall(*target.Edge) == nil {
			res := failure(NotFound, c.active)
			res.Cell = cell
			return nil, res, false
		}
		return floor.Wall(*target.Edge), Result{}, true
	}

	e := at.Occupant()
	if e == nil {
		res := failure(NotFound, c.active)
		res.Cell = cell
		return nil, res, false
	}
	return e, Result{}, true
}

// pickLoose returns the most recently placed loose object on the active
// layer within the pick radius of a world target, or inside a cell target
func (c *Controller) pickLoose(target Target, cell entities.Coord) *entities.Entity {
	if target.Edge != nil {
		return nil
	}
	g := c.ActiveGrid()
	list := c.loose[c.active]
	for i := len(list) - 1; i >= 0; i-- {
		e := list[i]
		if target.IsWorld {
			if e.Position.DistanceXZ(target.World) <= c.pickRadius {
				return e
			}
			continue
		}
		if g.WorldToCell(e.Position) == cell {
			return e
		}
	}
	return nil
}

// removeEntity clears e from every cell first and then destroys it. A
// floor under stacked objects is refused; a floor's walls go with it.
func (c *Controller) removeEntity(e *entities.Entity) Result {
	switch e.Category() {
	case entities.FloorObject:
		g := c.layers[e.Layer]
		for _, cell := range e.Cells {
			if obj := g.Cell(cell).Object(); obj != nil {
				res := failure(CellOccupied, e.Layer)
				res.Cell = cell
				res.Neighbor = obj
				return res
			}
		}
	case entities.WallObject:
		if e.Owner != nil {
			e.Owner.DetachWall(e.Edge)
		}
	}

	g := c.layers[e.Layer]
	for _, cell := range e.Cells {
		g.ClearOccupant(cell, e)
	}

	res := success(e, e.Layer)
	for _, slot := range entities.AllEdgeSlots() {
		if wall := e.DetachWall(slot); wall != nil {
			c.destroy(wall)
			res.Removed = append(res.Removed, wall)
		}
	}
	c.destroy(e)

	return res
}

// destroy drops an entity that no longer occupies any cell
func (c *Controller) destroy(e *entities.Entity) {
	if e.Category() == entities.LooseObject {
		list := c.loose[e.Layer]
		for i, l := range list {
			if l == e {
				c.loose[e.Layer] = append(list[:i], list[i+1:]...)
				break
			}
		}
	}
	e.Owner = nil
	c.unregister(e)
	c.emitEntity(ObjectRemoved, e)
}
