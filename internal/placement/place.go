package placement

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/rpg-grid/internal/entities"
	"github.com/KirkDiggler/rpg-grid/internal/grid"
)

// Place puts the selected template at target on the active layer using the
// current orientation or loose yaw. With AutoDeselect a success returns the
// controller to Idle.
func (c *Controller) Place(target Target) Result {
	if c.template == nil {
		return failure(NoTemplate, c.active)
	}

	var result Result
	switch c.template.Category {
	case entities.WallObject:
		result = c.placeWallAt(c.template, target)
	case entities.LooseObject:
		result = c.PlaceLooseObject(c.template, c.worldOf(target), c.looseYaw)
	default:
		result = c.PlaceGridObject(c.template, c.cellOf(target), c.orientation)
	}

	if result.OK && c.autoDeselect {
		c.Deselect()
	}
	return result
}

// PlaceGridObject validates and writes a grid or floor template into the
// active layer. The origin is clamped into the layer first. Nothing changes
// unless every footprint cell accepts the template and every neighbor
// passes the constraint check.
func (c *Controller) PlaceGridObject(tpl *entities.Template, origin entities.Coord, dir entities.Direction) Result {
	if tpl == nil {
		return failure(NoTemplate, c.active)
	}
	if !tpl.Category.OccupiesCells() {
		return failure(WrongCategory, c.active)
	}

	g := c.ActiveGrid()
	origin = g.Clamp(origin)
	cells := entities.Footprint(origin, tpl.Width, tpl.Height, dir)

	prev := c.state
	c.state = Placing
	res, ok := c.validateFootprint(g, tpl, cells)
	c.state = prev
	if !ok {
		return res
	}

	entity := &entities.Entity{
		ID:          c.idGen.Generate(),
		Template:    tpl,
		Origin:      origin,
		Orientation: dir,
		Layer:       c.active,
		Position:    c.pivotPosition(g, tpl, origin, dir),
		Yaw:         float64(dir.Angle()),
		Cells:       cells,
	}
	for _, cell := range cells {
		g.SetOccupant(cell, entity)
	}
	c.register(entity)
	c.emitEntity(ObjectPlaced, entity)

	return success(entity, c.active)
}

func (c *Controller) validateFootprint(g *grid.Grid, tpl *entities.Template, cells []entities.Coord) (Result, bool) {
	footprint := mapset.New[entities.Coord]()
	for _, cell := range cells {
		footprint.Put(cell)
	}

	for _, cell := range cells {
		target := g.Cell(cell)
		if target == nil {
			res := failure(OutOfBounds, c.active)
			res.Cell = cell
			return res, false
		}
		if !target.CanBuild(tpl.Category) {
			res := failure(CellOccupied, c.active)
			res.Cell = cell
			res.Neighbor = target.Occupant()
			return res, false
		}
	}

	checked := mapset.New[string]()
	for _, cell := range cells {
		for _, n := range cell.Neighbors() {
			if footprint.Has(n) {
				continue
			}
			neighbor := c.neighborOccupant(g.Cell(n), tpl.Category)
			if neighbor == nil || checked.Has(neighbor.ID) {
				continue
			}
			checked.Put(neighbor.ID)

			verdict := c.engine.Check(tpl, neighbor.Template)
			if !verdict.Allowed {
				res := failure(ConstraintViolation, c.active)
				res.Cell = n
				res.Neighbor = neighbor
				res.RuleID = verdict.RuleID
				return res, false
			}
		}
	}

	return Result{}, true
}

// neighborOccupant is the entity of cell a candidate of category is
// checked against
func (c *Controller) neighborOccupant(cell *grid.Cell, category entities.Category) *entities.Entity {
	if cell == nil {
		return nil
	}
	if c.neighbors == CheckTopOccupant {
		return cell.Occupant()
	}
	if category == entities.FloorObject {
		return cell.Floor()
	}
	return cell.Object()
}

// pivotPosition is the world position of the rotated pivot of a footprint.
// Floors are lifted by the floor offset.
func (c *Controller) pivotPosition(g *grid.Grid, tpl *entities.Template, origin entities.Coord, dir entities.Direction) entities.Vec3 {
	offset := dir.RotationOffset(tpl.Width, tpl.Height)
	base := g.CellToWorld(origin)
	pos := entities.Vec3{
		X: base.X + float64(offset.X)*g.CellSize(),
		Y: base.Y,
		Z: base.Z + float64(offset.Z)*g.CellSize(),
	}
	if tpl.Category == entities.FloorObject {
		pos.Y += c.floorYOffset
	}
	return pos
}

// PlaceWallObject attaches a wall template to a floor's edge slot. An
// existing wall in the slot is destroyed and reported in Result.Removed.
func (c *Controller) PlaceWallObject(tpl *entities.Template, floorID string, slot entities.EdgeSlot) Result {
	if tpl == nil {
		return failure(NoTemplate, c.active)
	}
	if tpl.Category != entities.WallObject {
		return failure(WrongCategory, c.active)
	}

	floor, ok := c.byID[floorID]
	if !ok || floor.Category() != entities.FloorObject {
		return failure(NotFound, c.active)
	}
	if !floor.Template.SupportsEdge(slot) || !tpl.SupportsEdge(slot) {
		res := failure(SlotUnavailable, floor.Layer)
		res.Neighbor = floor
		return res
	}

	var replaced []*entities.Entity
	if old := floor.DetachWall(slot); old != nil {
		c.destroy(old)
		replaced = append(replaced, old)
	}

	g := c.layers[floor.Layer]
	wall := &entities.Entity{
		ID:          c.idGen.Generate(),
		Template:    tpl,
		Origin:      floor.Origin,
		Orientation: floor.Orientation,
		Layer:       floor.Layer,
		Position:    edgePosition(g, floor, slot),
		Yaw:         edgeYaw(slot),
	}
	floor.AttachWall(slot, wall)
	c.register(wall)
	c.emitEntity(ObjectPlaced, wall)

	res := success(wall, floor.Layer)
	res.Removed = replaced
	return res
}

func (c *Controller) placeWallAt(tpl *entities.Template, target Target) Result {
	g := c.ActiveGrid()
	cell := c.cellOf(target)
	at := g.Cell(cell)
	if at == nil {
		res := failure(OutOfBounds, c.active)
		res.Cell = cell
		return res
	}
	floor := at.Floor()
	if floor == nil {
		res := failure(NotFound, c.active)
		res.Cell = cell
		return res
	}

	slot := entities.EdgeUp
	switch {
	case target.Edge != nil:
		slot = *target.Edge
	case target.IsWorld:
		slot = nearestEdge(g, cell, target.World)
	}

	return c.PlaceWallObject(tpl, floor.ID, slot)
}

// PlaceLooseObject puts a loose template at a free world position on the
// active layer. The height is taken from the layer. Loose objects never
// touch grid cells.
func (c *Controller) PlaceLooseObject(tpl *entities.Template, pos entities.Vec3, yaw float64) Result {
	if tpl == nil {
		return failure(NoTemplate, c.active)
	}
	if tpl.Category != entities.LooseObject {
		return failure(WrongCategory, c.active)
	}

	g := c.ActiveGrid()
	cell := g.WorldToCell(pos)
	if !g.InBounds(cell) {
		res := failure(OutOfBounds, c.active)
		res.Cell = cell
		return res
	}

	pos.Y = g.Origin().Y
	entity := &entities.Entity{
		ID:       c.idGen.Generate(),
		Template: tpl,
		Origin:   cell,
		Layer:    c.active,
		Position: pos,
		Yaw:      normalizeYaw(yaw),
	}
	c.loose[c.active] = append(c.loose[c.active], entity)
	c.register(entity)
	c.emitEntity(ObjectPlaced, entity)

	return success(entity, c.active)
}

func (c *Controller) cellOf(target Target) entities.Coord {
	if target.IsWorld {
		return c.ActiveGrid().WorldToCell(target.World)
	}
	return target.Cell
}

// worldOf returns the target position, using the center of a target cell
func (c *Controller) worldOf(target Target) entities.Vec3 {
	if target.IsWorld {
		return target.World
	}
	g := c.ActiveGrid()
	pos := g.CellToWorld(target.Cell)
	pos.X += g.CellSize() / 2
	pos.Z += g.CellSize() / 2
	return pos
}

// floorBounds is the world-space rectangle covered by a floor's cells
func floorBounds(g *grid.Grid, floor *entities.Entity) (minX, minZ, maxX, maxZ float64) {
	minX, minZ = math.Inf(1), math.Inf(1)
	maxX, maxZ = math.Inf(-1), math.Inf(-1)
	for _, cell := range floor.Cells {
		p := g.CellToWorld(cell)
		minX, minZ = math.Min(minX, p.X), math.Min(minZ, p.Z)
		maxX, maxZ = math.Max(maxX, p.X+g.CellSize()), math.Max(maxZ, p.Z+g.CellSize())
	}
	return minX, minZ, maxX, maxZ
}

// edgePosition is the midpoint of a floor's edge. Up faces +Z and Right faces +X.
func edgePosition(g *grid.Grid, floor *entities.Entity, slot entities.EdgeSlot) entities.Vec3 {
	minX, minZ, maxX, maxZ := floorBounds(g, floor)
	midX, midZ := (minX+maxX)/2, (minZ+maxZ)/2
	pos := entities.Vec3{X: midX, Y: floor.Position.Y, Z: midZ}

	switch slot {
	case entities.EdgeUp:
		pos.Z = maxZ
	case entities.EdgeDown:
		pos.Z = minZ
	case entities.EdgeLeft:
		pos.X = minX
	case entities.EdgeRight:
		pos.X = maxX
	}
	return pos
}

func edgeYaw(slot entities.EdgeSlot) float64 {
	if slot == entities.EdgeLeft || slot == entities.EdgeRight {
		return 90
	}
	return 0
}

// nearestEdge picks the slot of cell whose edge is closest to pos
func nearestEdge(g *grid.Grid, cell entities.Coord, pos entities.Vec3) entities.EdgeSlot {
	corner := g.CellToWorld(cell)
	size := g.CellSize()
	lx, lz := pos.X-corner.X, pos.Z-corner.Z

	best, dist := entities.EdgeUp, size-lz
	for _, cand := range []struct {
		slot entities.EdgeSlot
		d    float64
	}{
		{entities.EdgeDown, lz},
		{entities.EdgeLeft, lx},
		{entities.EdgeRight, size - lx},
	} {
		if cand.d < dist {
			best, dist = cand.slot, cand.d
		}
	}
	return best
}
