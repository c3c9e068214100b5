package v1alpha1

import (
	"github.com/KirkDiggler/rpg-grid/internal/placement"
	"github.com/KirkDiggler/rpg-grid/internal/services/building"
)

func toSession(s *building.Session) *Session {
	if s == nil {
		return nil
	}

	out := &Session{
		ID:          s.ID,
		CreatedAt:   s.CreatedAt,
		State:       s.State.String(),
		TemplateID:  s.TemplateID,
		Orientation: s.Orientation,
		LooseYaw:    s.LooseYaw,
		ActiveLayer: s.ActiveLayer,
		LayerCount:  s.LayerCount,
		Width:       s.Width,
		Depth:       s.Depth,
	}
	for _, obj := range s.Objects {
		out.Objects = append(out.Objects, toObject(obj))
	}
	return out
}

func toObject(o *building.PlacedObject) *PlacedObject {
	if o == nil {
		return nil
	}

	out := &PlacedObject{
		ID:          o.ID,
		TemplateID:  o.TemplateID,
		Category:    o.Category,
		Layer:       o.Layer,
		Origin:      o.Origin,
		Orientation: o.Orientation,
		Position:    o.Position,
		Yaw:         o.Yaw,
		Cells:       o.Cells,
		OwnerID:     o.OwnerID,
	}
	if o.OwnerID != "" {
		out.Edge = o.Edge.String()
	}
	return out
}

func toResult(r *building.PlacementResult) *PlacementResult {
	if r == nil {
		return nil
	}

	out := &PlacementResult{
		OK:         r.OK,
		Object:     toObject(r.Object),
		Layer:      r.Layer,
		NeighborID: r.NeighborID,
		RuleID:     r.RuleID,
	}
	if !r.OK {
		out.Reason = r.Reason.String()
		switch r.Reason {
		case placement.OutOfBounds, placement.CellOccupied, placement.ConstraintViolation:
			cell := r.Cell
			out.Cell = &cell
		}
	}
	for _, obj := range r.Removed {
		out.Removed = append(out.Removed, toObject(obj))
	}
	return out
}
