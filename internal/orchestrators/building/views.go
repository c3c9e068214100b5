package building

import (
	"github.com/KirkDiggler/rpg-grid/internal/entities"
	"github.com/KirkDiggler/rpg-grid/internal/placement"
	"github.com/KirkDiggler/rpg-grid/internal/services/building"
)

func viewSession(s *session) *building.Session {
	c := s.controller
	g := c.ActiveGrid()

	view := &building.Session{
		ID:          s.id,
		CreatedAt:   s.createdAt,
		State:       c.State(),
		Orientation: c.CurrentOrientation(),
		LooseYaw:    c.LooseYaw(),
		ActiveLayer: c.ActiveGridIndex(),
		LayerCount:  c.LayerCount(),
		Width:       g.Width(),
		Depth:       g.Depth(),
	}
	if tpl := c.CurrentTemplate(); tpl != nil {
		view.TemplateID = tpl.ID
	}
	for _, e := range c.Entities() {
		view.Objects = append(view.Objects, viewObject(e))
	}
	return view
}

func viewObject(e *entities.Entity) *building.PlacedObject {
	if e == nil {
		return nil
	}

	obj := &building.PlacedObject{
		ID:          e.ID,
		Category:    e.Category(),
		Layer:       e.Layer,
		Origin:      e.Origin,
		Orientation: e.Orientation,
		Position:    e.Position,
		Yaw:         e.Yaw,
	}
	if e.Template != nil {
		obj.TemplateID = e.Template.ID
	}
	if len(e.Cells) > 0 {
		obj.Cells = make([]entities.Coord, len(e.Cells))
		copy(obj.Cells, e.Cells)
	}
	if e.Owner != nil {
		obj.OwnerID = e.Owner.ID
		obj.Edge = e.Edge
	}
	return obj
}

func viewResult(r placement.Result) *building.PlacementResult {
	out := &building.PlacementResult{
		OK:     r.OK,
		Reason: r.Reason,
		Object: viewObject(r.Entity),
		Layer:  r.Layer,
		Cell:   r.Cell,
		RuleID: r.RuleID,
	}
	for _, e := range r.Removed {
		out.Removed = append(out.Removed, viewObject(e))
	}
	if r.Neighbor != nil {
		out.NeighborID = r.Neighbor.ID
	}
	return out
}
