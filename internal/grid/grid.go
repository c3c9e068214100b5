// Package grid implements the fixed-size spatial grid that backs one
// building layer: coordinate transforms, clamping and per-cell occupancy.
package grid

import (
	"context"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-grid/internal/entities"
	"github.com/KirkDiggler/rpg-grid/internal/errors"
)

// Config holds the dimensions of a grid. They are fixed for its lifetime.
type Config struct {
	Width    int
	Depth    int
	CellSize float64
	Origin   entities.Vec3
	// Index is the layer number reported in cell change notifications
	Index int
	// EventBus carries cell change notifications. Layers built from one
	// base config share it; nil allocates a bus per grid.
	EventBus events.EventBus
}

// Validate ensures the grid can be allocated
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidatePositive("width", c.Width, vb)
	errors.ValidatePositive("depth", c.Depth, vb)
	errors.ValidatePositiveFloat("cell_size", c.CellSize, vb)

	return vb.Build()
}

// CellChange describes one occupancy mutation
type CellChange struct {
	Layer  int
	Coord  entities.Coord
	Entity *entities.Entity
	// Cleared is true when Entity left the cell
	Cleared bool
}

// CellObserver receives cell change notifications
type CellObserver func(CellChange)

// EventCellChanged is the bus topic of cell occupancy changes
const EventCellChanged = "grid.cell_changed"

const (
	keyLayer   = "layer"
	keyCoord   = "coord"
	keyCleared = "cleared"
)

// Grid is a width x depth array of cells with a world-space origin
type Grid struct {
	width    int
	depth    int
	cellSize float64
	origin   entities.Vec3
	index    int

	cells []Cell

	bus events.EventBus
}

// New allocates a grid of empty cells
func New(cfg *Config) (*Grid, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid grid config")
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}

	g := &Grid{
		width:    cfg.Width,
		depth:    cfg.Depth,
		cellSize: cfg.CellSize,
		origin:   cfg.Origin,
		index:    cfg.Index,
		cells:    make([]Cell, cfg.Width*cfg.Depth),
		bus:      bus,
	}
	for z := 0; z < g.depth; z++ {
		for x := 0; x < g.width; x++ {
			g.cells[g.offset(entities.Coord{X: x, Z: z})].coord = entities.Coord{X: x, Z: z}
		}
	}

	return g, nil
}

// Width is the number of cells along X
func (g *Grid) Width() int { return g.width }

// Depth is the number of cells along Z
func (g *Grid) Depth() int { return g.depth }

// CellSize is the world-space edge length of one cell
func (g *Grid) CellSize() float64 { return g.cellSize }

// Origin is the world position of cell (0,0)
func (g *Grid) Origin() entities.Vec3 { return g.origin }

// Index is the layer number of the grid
func (g *Grid) Index() int { return g.index }

// WorldToCell converts a world position to the cell containing it. It does
// not check bounds.
func (g *Grid) WorldToCell(pos entities.Vec3) entities.Coord {
	local := pos.Sub(g.origin)
	return entities.Coord{
		X: int(math.Floor(local.X / g.cellSize)),
		Z: int(math.Floor(local.Z / g.cellSize)),
	}
}

// CellToWorld returns the world position of a cell's corner at the grid's height
func (g *Grid) CellToWorld(c entities.Coord) entities.Vec3 {
	return entities.Vec3{
		X: float64(c.X)*g.cellSize + g.origin.X,
		Y: g.origin.Y,
		Z: float64(c.Z)*g.cellSize + g.origin.Z,
	}
}

// Clamp pulls each axis of c into the grid
func (g *Grid) Clamp(c entities.Coord) entities.Coord {
	return entities.Coord{
		X: clamp(c.X, 0, g.width-1),
		Z: clamp(c.Z, 0, g.depth-1),
	}
}

// InBounds reports whether c addresses a cell of the grid
func (g *Grid) InBounds(c entities.Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Z >= 0 && c.Z < g.depth
}

// Cell returns the cell at c, or nil when c is out of bounds
func (g *Grid) Cell(c entities.Coord) *Cell {
	if !g.InBounds(c) {
		return nil
	}
	return &g.cells[g.offset(c)]
}

// OccupantAt returns the top entity at c, nil when empty or out of bounds
func (g *Grid) OccupantAt(c entities.Coord) *entities.Entity {
	cell := g.Cell(c)
	if cell == nil {
		return nil
	}
	return cell.Occupant()
}

// SetOccupant writes e into the cell at c. It returns false without mutating
// anything when c is out of bounds or the cell cannot accept e.
func (g *Grid) SetOccupant(c entities.Coord, e *entities.Entity) bool {
	cell := g.Cell(c)
	if cell == nil || !cell.set(e) {
		return false
	}
	g.notify(CellChange{Layer: g.index, Coord: c, Entity: e})
	return true
}

// ClearOccupant removes e from the cell at c. It returns false when e was
// not there.
func (g *Grid) ClearOccupant(c entities.Coord, e *entities.Entity) bool {
	cell := g.Cell(c)
	if cell == nil || !cell.clear(e) {
		return false
	}
	g.notify(CellChange{Layer: g.index, Coord: c, Entity: e, Cleared: true})
	return true
}

// Reset empties every cell
func (g *Grid) Reset() {
	for i := range g.cells {
		cell := &g.cells[i]
		for _, e := range cell.Entities() {
			cell.clear(e)
			g.notify(CellChange{Layer: g.index, Coord: cell.coord, Entity: e, Cleared: true})
		}
	}
}

// Occupied lists non-empty cells in row-major order
func (g *Grid) Occupied() []entities.Coord {
	var out []entities.Coord
	for i := range g.cells {
		if !g.cells[i].IsEmpty() {
			out = append(out, g.cells[i].coord)
		}
	}
	return out
}

// OnCellChanged subscribes fn to this layer's cell changes and returns the
// subscription ID for RemoveCellObserver
func (g *Grid) OnCellChanged(fn CellObserver) string {
	return g.bus.SubscribeFunc(EventCellChanged, 0, func(_ context.Context, e events.Event) error {
		change := cellChangeOf(e)
		if change.Layer == g.index {
			fn(change)
		}
		return nil
	})
}

// RemoveCellObserver cancels a subscription made by OnCellChanged
func (g *Grid) RemoveCellObserver(id string) error {
	if err := g.bus.Unsubscribe(id); err != nil {
		return errors.WrapWithCode(err, errors.CodeNotFound, "failed to remove cell observer")
	}
	return nil
}

func (g *Grid) notify(change CellChange) {
	var source core.Entity
	if change.Entity != nil {
		source = change.Entity
	}
	e := events.NewGameEvent(EventCellChanged, source, nil)
	e.Context().Set(keyLayer, change.Layer)
	e.Context().Set(keyCoord, change.Coord)
	e.Context().Set(keyCleared, change.Cleared)

	// cell observers cannot fail
	_ = g.bus.Publish(context.Background(), e)
}

func cellChangeOf(e events.Event) CellChange {
	var change CellChange
	if v, ok := e.Context().Get(keyLayer); ok {
		change.Layer, _ = v.(int)
	}
	if v, ok := e.Context().Get(keyCoord); ok {
		change.Coord, _ = v.(entities.Coord)
	}
	if v, ok := e.Context().Get(keyCleared); ok {
		change.Cleared, _ = v.(bool)
	}
	change.Entity, _ = e.Source().(*entities.Entity)
	return change
}

func (g *Grid) offset(c entities.Coord) int {
	return c.Z*g.width + c.X
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
