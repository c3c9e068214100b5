// Package placement implements the controller that validates and mutates
// placement state across the stacked grid layers of one building session.
//
// A Controller is not safe for concurrent use. Every operation runs to
// completion and either succeeds or leaves all state unchanged.
package placement

import (
	"math"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/rpg-grid/internal/catalog"
	"github.com/KirkDiggler/rpg-grid/internal/constraints"
	"github.com/KirkDiggler/rpg-grid/internal/entities"
	"github.com/KirkDiggler/rpg-grid/internal/errors"
	"github.com/KirkDiggler/rpg-grid/internal/grid"
	"github.com/KirkDiggler/rpg-grid/internal/pkg/idgen"
)

// NeighborCheck picks which occupant of a neighboring cell adjacency rules
// run against
type NeighborCheck int

const (
	// CheckTopOccupant checks the neighbor cell's topmost occupant, whatever
	// its category
	CheckTopOccupant NeighborCheck = iota
	// CheckSameSlot checks floors against floors and stacked objects against
	// objects only
	CheckSameSlot
)

func (n NeighborCheck) String() string {
	if n == CheckSameSlot {
		return "same_slot"
	}
	return "top"
}

// ParseNeighborCheck accepts "top" or "same_slot"
func ParseNeighborCheck(s string) (NeighborCheck, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "top":
		return CheckTopOccupant, nil
	case "same_slot":
		return CheckSameSlot, nil
	default:
		return CheckTopOccupant, errors.InvalidArgumentf("unknown neighbor check %q", s)
	}
}

// Config holds the dependencies and options of a controller
type Config struct {
	// Layers are the stacked grids, bottom first. At least one is required.
	Layers []*grid.Grid
	// Catalog supplies templates for SelectTemplate
	Catalog *catalog.Catalog
	// Constraints evaluates adjacency; nil uses an engine with AllowMissing
	Constraints *constraints.Engine
	// IDGenerator names new entities; nil uses UUIDs
	IDGenerator idgen.Generator
	// EventBus carries controller events; nil allocates one
	EventBus events.EventBus

	// AutoDeselect returns the controller to Idle after a successful Place
	AutoDeselect bool
	// RemovableCategories limits Remove and Edit; empty allows every category
	RemovableCategories []entities.Category
	// FloorYOffset lifts floor entities above their layer
	FloorYOffset float64
	// LoosePickRadius is the world distance within which Remove finds a
	// loose object; zero uses half a cell
	LoosePickRadius float64
	// NeighborCheck selects the neighbor occupant constraints run against
	NeighborCheck NeighborCheck
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(c.Layers) == 0 {
		vb.RequiredField("Layers")
	}
	for i, g := range c.Layers {
		if g == nil {
			vb.Fieldf("Layers", "layer %d is nil", i)
		}
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.LoosePickRadius < 0 {
		vb.Fieldf("LoosePickRadius", "must not be negative, got %g", c.LoosePickRadius)
	}

	return vb.Build()
}

// Controller is the single authority over placement state for its layers
type Controller struct {
	layers       []*grid.Grid
	catalog      *catalog.Catalog
	engine       *constraints.Engine
	idGen        idgen.Generator
	autoDeselect bool
	removable    mapset.Set[entities.Category]
	floorYOffset float64
	pickRadius   float64
	neighbors    NeighborCheck

	state       State
	template    *entities.Template
	orientation entities.Direction
	looseYaw    float64
	active      int

	byID   map[string]*entities.Entity
	placed []*entities.Entity
	loose  [][]*entities.Entity

	bus events.EventBus
}

// NewController creates a controller in the Idle state with layer 0 active
func NewController(cfg *Config) (*Controller, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid placement config")
	}

	engine := cfg.Constraints
	if engine == nil {
		engine = constraints.NewEngine(nil)
	}
	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("ent")
	}
	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}

	removable := mapset.New[entities.Category]()
	categories := cfg.RemovableCategories
	if len(categories) == 0 {
		categories = entities.Categories()
	}
	for _, cat := range categories {
		removable.Put(cat)
	}

	pickRadius := cfg.LoosePickRadius
	if pickRadius == 0 {
		pickRadius = cfg.Layers[0].CellSize() / 2
	}

	return &Controller{
		layers:       cfg.Layers,
		catalog:      cfg.Catalog,
		engine:       engine,
		idGen:        idGen,
		autoDeselect: cfg.AutoDeselect,
		removable:    removable,
		floorYOffset: cfg.FloorYOffset,
		pickRadius:   pickRadius,
		neighbors:    cfg.NeighborCheck,
		byID:         make(map[string]*entities.Entity),
		loose:        make([][]*entities.Entity, len(cfg.Layers)),
		bus:          bus,
	}, nil
}

// SelectTemplate picks the template the next Place uses. The orientation
// and loose yaw carry over from the previous selection.
func (c *Controller) SelectTemplate(id string) error {
	tpl, err := c.catalog.Get(id)
	if err != nil {
		return err
	}
	c.selectTemplate(tpl)
	return nil
}

// NextTemplate selects the template after the current one in catalog
// order, wrapping around. From Idle it selects the first template.
func (c *Controller) NextTemplate() (*entities.Template, error) {
	list := c.catalog.List()
	if len(list) == 0 {
		return nil, errors.FailedPrecondition("catalog is empty")
	}

	next := 0
	if c.template != nil {
		next = (c.catalog.IndexOf(c.template.ID) + 1) % len(list)
	}
	c.selectTemplate(list[next])
	return list[next], nil
}

func (c *Controller) selectTemplate(tpl *entities.Template) {
	c.template = tpl
	c.state = TemplateSelected
	c.emit(SelectionChanged, nil, c.active)
}

// Deselect returns to Idle
func (c *Controller) Deselect() {
	if c.state == Idle {
		return
	}
	c.template = nil
	c.state = Idle
	c.emit(SelectionChanged, nil, c.active)
}

// Rotate advances the orientation of the selected template one step. Loose
// templates turn their free yaw by 90 degrees instead. It does nothing in Idle.
func (c *Controller) Rotate() {
	if c.template == nil {
		return
	}
	if c.template.Category == entities.LooseObject {
		c.looseYaw = normalizeYaw(c.looseYaw + 90)
		return
	}
	c.orientation = c.orientation.Next()
}

// SwitchActiveGrid makes the next layer active, wrapping around. It is
// refused while a grid object template is selected and reports whether
// the switch happened.
func (c *Controller) SwitchActiveGrid() bool {
	if c.template != nil && c.template.Category == entities.GridObject {
		return false
	}
	c.active = (c.active + 1) % len(c.layers)
	c.emit(ActiveGridChanged, nil, c.active)
	return true
}

// SetActiveGrid makes layer index active
func (c *Controller) SetActiveGrid(index int) error {
	if index < 0 || index >= len(c.layers) {
		return errors.OutOfRangef("layer %d out of range [0,%d)", index, len(c.layers))
	}
	if index == c.active {
		return nil
	}
	c.active = index
	c.emit(ActiveGridChanged, nil, c.active)
	return nil
}

// SetOrientation sets the orientation used by the next grid placement
func (c *Controller) SetOrientation(dir entities.Direction) {
	c.orientation = dir
}

// SetLooseYaw sets the yaw used by the next loose placement
func (c *Controller) SetLooseYaw(yaw float64) {
	c.looseYaw = normalizeYaw(yaw)
}

// State is the current selection state
func (c *Controller) State() State { return c.state }

// CurrentTemplate is the selected template, nil in Idle
func (c *Controller) CurrentTemplate() *entities.Template { return c.template }

// CurrentOrientation is the orientation the next grid placement uses
func (c *Controller) CurrentOrientation() entities.Direction { return c.orientation }

// LooseYaw is the yaw the next loose placement uses
func (c *Controller) LooseYaw() float64 { return c.looseYaw }

// ActiveGridIndex is the layer placements target
func (c *Controller) ActiveGridIndex() int { return c.active }

// ActiveGrid is the layer placements target
func (c *Controller) ActiveGrid() *grid.Grid { return c.layers[c.active] }

// LayerCount is the number of stacked layers
func (c *Controller) LayerCount() int { return len(c.layers) }

// Grid returns layer i, nil when out of range
func (c *Controller) Grid(i int) *grid.Grid {
	if i < 0 || i >= len(c.layers) {
		return nil
	}
	return c.layers[i]
}

// Catalog is the template source of the controller
func (c *Controller) Catalog() *catalog.Catalog { return c.catalog }

// Entity returns a placed entity by ID
func (c *Controller) Entity(id string) (*entities.Entity, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// Entities returns every placed entity in placement order
func (c *Controller) Entities() []*entities.Entity {
	out := make([]*entities.Entity, len(c.placed))
	copy(out, c.placed)
	return out
}

// EntityAt returns the top entity at a cell of a layer
func (c *Controller) EntityAt(layer int, cell entities.Coord) *entities.Entity {
	g := c.Grid(layer)
	if g == nil {
		return nil
	}
	return g.OccupantAt(cell)
}

// LooseObjects returns the loose objects of a layer in placement order
func (c *Controller) LooseObjects(layer int) []*entities.Entity {
	if layer < 0 || layer >= len(c.loose) {
		return nil
	}
	out := make([]*entities.Entity, len(c.loose[layer]))
	copy(out, c.loose[layer])
	return out
}

// SnappedPosition is where a preview of the selected template would sit
// for a pointer at pos. Without a selection pos is returned unchanged.
func (c *Controller) SnappedPosition(pos entities.Vec3) entities.Vec3 {
	if c.template == nil || c.template.Category == entities.LooseObject {
		return pos
	}
	g := c.ActiveGrid()
	offset := c.orientation.RotationOffset(c.template.Width, c.template.Height)
	base := g.CellToWorld(g.WorldToCell(pos))
	return entities.Vec3{
		X: base.X + float64(offset.X)*g.CellSize(),
		Y: base.Y,
		Z: base.Z + float64(offset.Z)*g.CellSize(),
	}
}

// RotationAngle is the yaw in degrees a preview of the selection uses
func (c *Controller) RotationAngle() float64 {
	if c.template == nil {
		return 0
	}
	if c.template.Category == entities.LooseObject {
		return c.looseYaw
	}
	return float64(c.orientation.Angle())
}

// Reset removes every entity from every layer and returns to Idle
func (c *Controller) Reset() {
	removed := c.placed
	c.placed = nil
	c.byID = make(map[string]*entities.Entity)
	for i := range c.loose {
		c.loose[i] = nil
	}
	for _, g := range c.layers {
		g.Reset()
	}
	for _, e := range removed {
		for _, w := range e.Walls() {
			e.DetachWall(w.Edge)
		}
		e.Owner = nil
	}

	for i := len(removed) - 1; i >= 0; i-- {
		c.emitEntity(ObjectRemoved, removed[i])
	}
	c.Deselect()
}

func (c *Controller) register(e *entities.Entity) {
	c.byID[e.ID] = e
	c.placed = append(c.placed, e)
}

func (c *Controller) unregister(e *entities.Entity) {
	delete(c.byID, e.ID)
	for i, p := range c.placed {
		if p == e {
			c.placed = append(c.placed[:i], c.placed[i+1:]...)
			break
		}
	}
}

func (c *Controller) emitEntity(kind EventKind, e *entities.Entity) {
	if e == nil {
		return
	}
	c.emit(kind, e, e.Layer)
}

func normalizeYaw(yaw float64) float64 {
	yaw = math.Mod(yaw, 360)
	if yaw < 0 {
		yaw += 360
	}
	return yaw
}
