// Package v1alpha1 handles the placement gRPC service interface
package v1alpha1

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-grid/internal/entities"
	"github.com/KirkDiggler/rpg-grid/internal/errors"
	"github.com/KirkDiggler/rpg-grid/internal/layout"
	"github.com/KirkDiggler/rpg-grid/internal/placement"
	"github.com/KirkDiggler/rpg-grid/internal/services/building"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	BuildingService building.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.BuildingService == nil {
		return errors.InvalidArgument("building service is required")
	}
	return nil
}

// Handler implements the placement gRPC service
type Handler struct {
	service building.Service
}

var _ PlacementServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{service: cfg.BuildingService}, nil
}

// RecoverPanic is the recovery handler for the server's interceptors. The
// panic value is logged and the caller gets a bare Internal status.
func RecoverPanic(p any) error {
	slog.Error("recovered from panic in placement handler", "panic", p)
	return errors.ToGRPCError(errors.Internal("internal error"))
}

// CreateSession starts a building session
func (h *Handler) CreateSession(ctx context.Context, _ *CreateSessionRequest) (*SessionResponse, error) {
	out, err := h.service.CreateSession(ctx, &building.CreateSessionInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &SessionResponse{Session: toSession(out.Session)}, nil
}

// GetSession returns a session's state
func (h *Handler) GetSession(ctx context.Context, req *GetSessionRequest) (*SessionResponse, error) {
	out, err := h.service.GetSession(ctx, &building.GetSessionInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &SessionResponse{Session: toSession(out.Session)}, nil
}

// DeleteSession drops a session
func (h *Handler) DeleteSession(ctx context.Context, req *DeleteSessionRequest) (*DeleteSessionResponse, error) {
	if _, err := h.service.DeleteSession(ctx, &building.DeleteSessionInput{SessionID: req.SessionID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &DeleteSessionResponse{}, nil
}

// SelectTemplate selects a template for the next placement
func (h *Handler) SelectTemplate(ctx context.Context, req *SelectTemplateRequest) (*SessionResponse, error) {
	out, err := h.service.SelectTemplate(ctx, &building.SelectTemplateInput{
		SessionID:  req.SessionID,
		TemplateID: req.TemplateID,
		Next:       req.Next,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &SessionResponse{Session: toSession(out.Session)}, nil
}

// Rotate turns the selection one step
func (h *Handler) Rotate(ctx context.Context, req *RotateRequest) (*SessionResponse, error) {
	out, err := h.service.Rotate(ctx, &building.RotateInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &SessionResponse{Session: toSession(out.Session)}, nil
}

// SwitchGrid changes the active layer
func (h *Handler) SwitchGrid(ctx context.Context, req *SwitchGridRequest) (*SwitchGridResponse, error) {
	out, err := h.service.SwitchGrid(ctx, &building.SwitchGridInput{
		SessionID: req.SessionID,
		Layer:     req.Layer,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &SwitchGridResponse{Session: toSession(out.Session), Switched: out.Switched}, nil
}

// Place puts the selection at a target. A refused placement is a
// successful call whose result is not OK.
func (h *Handler) Place(ctx context.Context, req *PlaceRequest) (*PlacementResponse, error) {
	target, err := fromTarget(req.Target)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.Place(ctx, &building.PlaceInput{
		SessionID:  req.SessionID,
		TemplateID: req.TemplateID,
		Target:     target,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &PlacementResponse{Result: toResult(out.Result), Session: toSession(out.Session)}, nil
}

// Remove destroys what is at a target
func (h *Handler) Remove(ctx context.Context, req *RemoveRequest) (*PlacementResponse, error) {
	target, err := fromTarget(req.Target)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.Remove(ctx, &building.RemoveInput{
		SessionID: req.SessionID,
		Target:    target,
		Edit:      req.Edit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &PlacementResponse{Result: toResult(out.Result), Session: toSession(out.Session)}, nil
}

// ApplyLayout places a floorplan document into a session layer
func (h *Handler) ApplyLayout(ctx context.Context, req *ApplyLayoutRequest) (*ApplyLayoutResponse, error) {
	if len(req.Floorplan) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("floorplan is required"))
	}
	fp, err := layout.ParseFloorplan(bytes.NewReader(req.Floorplan))
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.ApplyLayout(ctx, &building.ApplyLayoutInput{
		SessionID: req.SessionID,
		Floorplan: fp,
		Layer:     req.Layer,
		FillFloor: req.FillFloor,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &ApplyLayoutResponse{
		Placed:       out.Placed,
		Failed:       out.Failed,
		FloorPlaced:  out.FloorPlaced,
		FloorSkipped: out.FloorSkipped,
		Session:      toSession(out.Session),
	}
	for _, p := range out.Placements {
		lp := &LayoutPlacement{
			Name:               p.Item.Name,
			Key:                p.Item.Key,
			Cell:               p.Item.Cell,
			TemplateUnresolved: p.Item.TemplateUnresolved,
			SearchExhausted:    p.Item.SearchExhausted,
			Result:             toResult(p.Result),
		}
		if p.Item.Template != nil {
			lp.TemplateID = p.Item.Template.ID
		}
		resp.Placements = append(resp.Placements, lp)
	}
	return resp, nil
}

// SaveSnapshot stores a session's placements
func (h *Handler) SaveSnapshot(ctx context.Context, req *SaveSnapshotRequest) (*SaveSnapshotResponse, error) {
	out, err := h.service.SaveSnapshot(ctx, &building.SaveSnapshotInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &SaveSnapshotResponse{
		SnapshotID: out.Snapshot.ID,
		Placements: len(out.Snapshot.Placements),
		CreatedAt:  out.Snapshot.CreatedAt,
	}, nil
}

// LoadSnapshot restores a snapshot into a session
func (h *Handler) LoadSnapshot(ctx context.Context, req *LoadSnapshotRequest) (*LoadSnapshotResponse, error) {
	out, err := h.service.LoadSnapshot(ctx, &building.LoadSnapshotInput{
		SessionID:  req.SessionID,
		SnapshotID: req.SnapshotID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &LoadSnapshotResponse{Session: toSession(out.Session), Skipped: out.Skipped}, nil
}

func fromTarget(t *Target) (placement.Target, error) {
	if t == nil {
		return placement.Target{}, errors.InvalidArgument("target is required")
	}

	var target placement.Target
	switch {
	case t.Cell != nil && t.World != nil:
		return placement.Target{}, errors.InvalidArgument("target takes a cell or a world position, not both")
	case t.Cell != nil:
		target = placement.AtCell(*t.Cell)
	case t.World != nil:
		target = placement.AtWorld(*t.World)
	default:
		return placement.Target{}, errors.InvalidArgument("target needs a cell or a world position")
	}

	if t.Edge != "" {
		slot, err := entities.ParseEdgeSlot(t.Edge)
		if err != nil {
			return placement.Target{}, err
		}
		target = target.WithEdge(slot)
	}
	return target, nil
}
