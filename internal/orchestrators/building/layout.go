package building

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-grid/internal/entities"
	"github.com/KirkDiggler/rpg-grid/internal/errors"
	"github.com/KirkDiggler/rpg-grid/internal/layout"
	"github.com/KirkDiggler/rpg-grid/internal/placement"
	"github.com/KirkDiggler/rpg-grid/internal/services/building"
)

// ResolveLayout maps a floorplan onto the configured grid size without
// touching any session
func (o *Orchestrator) ResolveLayout(_ context.Context, input *building.ResolveLayoutInput) (*building.ResolveLayoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	resolved, err := o.resolve(input.Floorplan)
	if err != nil {
		return nil, err
	}

	return &building.ResolveLayoutOutput{Items: resolved}, nil
}

// ApplyLayout resolves a floorplan and places every item into a layer of
// the session in commit order. Items that fail to place are reported and
// skipped. The active layer is left unchanged.
func (o *Orchestrator) ApplyLayout(_ context.Context, input *building.ApplyLayoutInput) (*building.ApplyLayoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.FillFloor && o.floorTemplate == "" {
		return nil, errors.FailedPrecondition("no floor template configured")
	}

	resolved, err := o.resolve(input.Floorplan)
	if err != nil {
		return nil, err
	}

	s, err := o.lock(input.SessionID)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	c := s.controller
	prev := c.ActiveGridIndex()
	if err := c.SetActiveGrid(input.Layer); err != nil {
		return nil, err
	}

	out := &building.ApplyLayoutOutput{}
	if input.FillFloor {
		placed, skipped, err := o.fillFloor(c)
		if err != nil {
			_ = c.SetActiveGrid(prev) // nolint:errcheck // prev was the active layer
			return nil, err
		}
		out.FloorPlaced, out.FloorSkipped = placed, skipped
	}

	ordered := make([]*layout.Resolved, len(resolved))
	copy(ordered, resolved)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Rank < ordered[j].Rank })

	results := make(map[int]*building.PlacementResult, len(ordered))
	for _, item := range ordered {
		res := o.placeResolved(c, item)
		results[item.Index] = viewResult(res)
		if res.OK {
			out.Placed++
			continue
		}
		out.Failed++
		slog.Warn("layout item not placed",
			"session_id", s.id,
			"name", item.Name,
			"key", item.Key,
			"cell", item.Cell.String(),
			"reason", res.Reason.String())
	}

	for _, item := range resolved {
		out.Placements = append(out.Placements, &building.LayoutPlacement{
			Item:   item,
			Result: results[item.Index],
		})
	}

	if err := c.SetActiveGrid(prev); err != nil {
		return nil, err
	}

	slog.Info("layout applied",
		"session_id", s.id,
		"layer", input.Layer,
		"placed", out.Placed,
		"failed", out.Failed,
		"floor_placed", out.FloorPlaced,
		"floor_skipped", out.FloorSkipped)

	out.Session = viewSession(s)
	return out, nil
}

func (o *Orchestrator) resolve(fp *layout.Floorplan) ([]*layout.Resolved, error) {
	if fp == nil {
		return nil, errors.InvalidArgument("floorplan is required")
	}

	out, err := o.resolver.Resolve(&layout.ResolveInput{
		Items:      fp.Items(),
		GridWidth:  o.grid.Width,
		GridDepth:  o.grid.Depth,
		PageWidth:  fp.PageWidth,
		PageHeight: fp.PageHeight,
	})
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

// fillFloor tiles the active layer with the floor template. Tiles that
// cannot be placed, such as cells already holding a floor, are counted as
// skipped.
func (o *Orchestrator) fillFloor(c *placement.Controller) (placed, skipped int, err error) {
	tpl, err := o.catalog.Get(o.floorTemplate)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "failed to load floor template %s", o.floorTemplate)
	}

	g := c.ActiveGrid()
	for z := 0; z+tpl.Height <= g.Depth(); z += tpl.Height {
		for x := 0; x+tpl.Width <= g.Width(); x += tpl.Width {
			if c.PlaceGridObject(tpl, entities.Coord{X: x, Z: z}, entities.Down).OK {
				placed++
			} else {
				skipped++
			}
		}
	}
	return placed, skipped, nil
}

// placeResolved commits one resolved item. Grid objects keep the unrotated
// footprint the resolver reserved; facing applies to loose objects and
// picks the slot of walls.
func (o *Orchestrator) placeResolved(c *placement.Controller, item *layout.Resolved) placement.Result {
	tpl := item.Template
	if tpl == nil {
		return placement.Result{Reason: placement.NoTemplate, Layer: c.ActiveGridIndex(), Cell: item.Cell}
	}

	g := c.ActiveGrid()
	switch tpl.Category {
	case entities.LooseObject:
		pos := g.CellToWorld(item.Cell)
		pos.X += g.CellSize() / 2
		pos.Z += g.CellSize() / 2
		return c.PlaceLooseObject(tpl, pos, item.Yaw)
	case entities.WallObject:
		cell := g.Cell(item.Cell)
		if cell == nil || cell.Floor() == nil {
			return placement.Result{Reason: placement.NotFound, Layer: c.ActiveGridIndex(), Cell: item.Cell}
		}
		return c.PlaceWallObject(tpl, cell.Floor().ID, entities.EdgeFor(item.Facing))
	default:
		return c.PlaceGridObject(tpl, item.Cell, entities.Down)
	}
}
