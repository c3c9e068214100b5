package layout

import (
	"container/heap"
	"log/slog"
	"math"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/rpg-grid/internal/catalog"
	"github.com/KirkDiggler/rpg-grid/internal/entities"
	"github.com/KirkDiggler/rpg-grid/internal/errors"
)

// Item is one object to lay out. X and Y are page-space coordinates.
type Item struct {
	Name string
	// Key is the template lookup key
	Key       string
	X         float64
	Y         float64
	Direction int
}

// ResolveInput describes one resolution run
type ResolveInput struct {
	Items      []Item
	GridWidth  int
	GridDepth  int
	PageWidth  float64
	PageHeight float64
}

// Validate checks the run can be mapped onto a grid
func (in *ResolveInput) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidatePositive("grid_width", in.GridWidth, vb)
	errors.ValidatePositive("grid_depth", in.GridDepth, vb)
	errors.ValidatePositiveFloat("page_width", in.PageWidth, vb)
	errors.ValidatePositiveFloat("page_height", in.PageHeight, vb)

	return vb.Build()
}

// Resolved is the outcome for one input item
type Resolved struct {
	// Index is the item's position in the input
	Index int
	Name  string
	Key   string
	// Template is nil when the key did not resolve
	Template *entities.Template
	Width    int
	Height   int
	Facing   entities.Direction
	Yaw      float64
	// Target is the initial cell mapped from page space
	Target entities.Coord
	// Cell is the committed origin
	Cell entities.Coord
	// Rank is the position in commit order
	Rank int

	TemplateUnresolved bool
	// SearchExhausted means no free cell was found and Cell is Target
	SearchExhausted bool
}

// Footprint lists the committed cells, unrotated
func (r *Resolved) Footprint() []entities.Coord {
	return entities.Footprint(r.Cell, r.Width, r.Height, entities.Down)
}

// ResolveOutput lists resolved items in input order
type ResolveOutput struct {
	Items []*Resolved
}

// Config for the resolver
type Config struct {
	Lookup catalog.Lookup
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Lookup == nil {
		vb.RequiredField("Lookup")
	}

	return vb.Build()
}

// Resolver assigns non-overlapping cells to floorplan items
type Resolver struct {
	lookup catalog.Lookup
}

// NewResolver creates a resolver
func NewResolver(cfg *Config) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid resolver config")
	}

	return &Resolver{lookup: cfg.Lookup}, nil
}

// Resolve maps every item to an initial target cell, commits items largest
// first (then by target Z, then X, then input order) at the nearest cell
// whose footprint is in bounds and free, and returns them in input order.
// Output is a pure function of the input.
func (r *Resolver) Resolve(in *ResolveInput) (*ResolveOutput, error) {
	if in == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	items := make([]*Resolved, len(in.Items))
	for i, item := range in.Items {
		items[i] = r.prepare(in, i, item)
	}

	order := make([]*Resolved, len(items))
	copy(order, items)
	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.Width*a.Height != b.Width*b.Height {
			return a.Width*a.Height > b.Width*b.Height
		}
		if a.Target.Z != b.Target.Z {
			return a.Target.Z < b.Target.Z
		}
		if a.Target.X != b.Target.X {
			return a.Target.X < b.Target.X
		}
		return a.Index < b.Index
	})

	committed := mapset.New[entities.Coord]()
	for rank, item := range order {
		item.Rank = rank

		cell, found := search(in.GridWidth, in.GridDepth, item, committed)
		if !found {
			cell = item.Target
			item.SearchExhausted = true
			slog.Warn("layout search exhausted, falling back to target",
				"name", item.Name,
				"key", item.Key,
				"target", item.Target.String())
		}
		item.Cell = cell

		for _, c := range item.Footprint() {
			if inBounds(in.GridWidth, in.GridDepth, c) {
				committed.Put(c)
			}
		}
	}

	return &ResolveOutput{Items: items}, nil
}

func (r *Resolver) prepare(in *ResolveInput, index int, item Item) *Resolved {
	facing, yaw := Facing(item.Direction)
	res := &Resolved{
		Index:  index,
		Name:   item.Name,
		Key:    item.Key,
		Width:  1,
		Height: 1,
		Facing: facing,
		Yaw:    yaw,
		Target: entities.Coord{
			X: clamp(scaleDown(item.X, in.PageWidth, in.GridWidth), in.GridWidth),
			Z: clamp(scaleDown(item.Y, in.PageHeight, in.GridDepth), in.GridDepth),
		},
	}

	tpl, ok := r.lookup.Resolve(item.Key)
	if !ok {
		res.TemplateUnresolved = true
		slog.Warn("layout key did not resolve to a template",
			"name", item.Name,
			"key", item.Key)
		return res
	}

	res.Template = tpl
	if tpl.Category.OccupiesCells() {
		res.Width, res.Height = tpl.Width, tpl.Height
	}
	return res
}

// search runs a best-first expansion from the item's target and returns the
// first cell whose footprint fits. Expansion stops after width*depth cells.
func search(width, depth int, item *Resolved, committed mapset.Set[entities.Coord]) (entities.Coord, bool) {
	visited := mapset.New[entities.Coord]()
	queue := &frontier{}
	heap.Push(queue, node{cell: item.Target, dist2: 0})
	visited.Put(item.Target)

	for expansions := 0; queue.Len() > 0 && expansions < width*depth; expansions++ {
		current := heap.Pop(queue).(node)
		if fits(width, depth, current.cell, item.Width, item.Height, committed) {
			return current.cell, true
		}

		for _, n := range current.cell.Neighbors() {
			if !inBounds(width, depth, n) || visited.Has(n) {
				continue
			}
			visited.Put(n)
			heap.Push(queue, node{cell: n, dist2: dist2(n, item.Target)})
		}
	}

	return entities.Coord{}, false
}

func fits(width, depth int, origin entities.Coord, w, h int, committed mapset.Set[entities.Coord]) bool {
	for _, c := range entities.Footprint(origin, w, h, entities.Down) {
		if !inBounds(width, depth, c) || committed.Has(c) {
			return false
		}
	}
	return true
}

func inBounds(width, depth int, c entities.Coord) bool {
	return c.X >= 0 && c.X < width && c.Z >= 0 && c.Z < depth
}

// scaleDown maps a page coordinate to a cell index, flooring toward
// negative infinity
func scaleDown(value, page float64, cells int) int {
	return int(math.Floor(value / page * float64(cells)))
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n-1 {
		return n - 1
	}
	return v
}
