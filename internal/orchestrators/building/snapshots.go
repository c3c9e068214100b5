package building

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-grid/internal/entities"
	"github.com/KirkDiggler/rpg-grid/internal/errors"
	"github.com/KirkDiggler/rpg-grid/internal/placement"
	"github.com/KirkDiggler/rpg-grid/internal/repositories/snapshots"
	"github.com/KirkDiggler/rpg-grid/internal/services/building"
)

// SaveSnapshot stores the placements of a session
func (o *Orchestrator) SaveSnapshot(ctx context.Context, input *building.SaveSnapshotInput) (*building.SaveSnapshotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.lock(input.SessionID)
	if err != nil {
		return nil, err
	}
	snap := o.capture(s)
	s.mu.Unlock()

	if _, err := o.snapshotRepo.Save(ctx, &snapshots.SaveInput{Snapshot: snap}); err != nil {
		return nil, errors.Wrapf(err, "failed to save snapshot for session %s", input.SessionID)
	}

	slog.Info("snapshot saved",
		"session_id", snap.SessionID,
		"snapshot_id", snap.ID,
		"placements", len(snap.Placements))

	return &building.SaveSnapshotOutput{Snapshot: snap}, nil
}

// LoadSnapshot resets the session and replays a snapshot's placements.
// Placements whose template is gone or that no longer validate are skipped.
func (o *Orchestrator) LoadSnapshot(ctx context.Context, input *building.LoadSnapshotInput) (*building.LoadSnapshotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SnapshotID == "" {
		return nil, errors.InvalidArgument("snapshot ID is required")
	}

	got, err := o.snapshotRepo.Get(ctx, &snapshots.GetInput{ID: input.SnapshotID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get snapshot %s", input.SnapshotID)
	}

	s, err := o.lock(input.SessionID)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	skipped := o.replay(s.controller, got.Snapshot)
	if skipped > 0 {
		slog.Warn("snapshot placements skipped",
			"session_id", s.id,
			"snapshot_id", got.Snapshot.ID,
			"skipped", skipped)
	}

	return &building.LoadSnapshotOutput{Session: viewSession(s), Skipped: skipped}, nil
}

// ListSnapshots returns the snapshots saved from a session, oldest first
func (o *Orchestrator) ListSnapshots(ctx context.Context, input *building.ListSnapshotsInput) (*building.ListSnapshotsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	out, err := o.snapshotRepo.ListBySession(ctx, &snapshots.ListBySessionInput{SessionID: input.SessionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list snapshots for session %s", input.SessionID)
	}

	return &building.ListSnapshotsOutput{Snapshots: out.Snapshots}, nil
}

// capture records every entity in placement order. Floors always precede
// the walls attached to them.
func (o *Orchestrator) capture(s *session) *snapshots.Snapshot {
	c := s.controller
	snap := &snapshots.Snapshot{
		ID:          o.snapshotIDs.Generate(),
		SessionID:   s.id,
		ActiveLayer: c.ActiveGridIndex(),
		CreatedAt:   o.clock.Now(),
	}

	index := make(map[string]int)
	for _, e := range c.Entities() {
		p := snapshots.Placement{
			TemplateID:  e.Template.ID,
			Category:    e.Category(),
			Layer:       e.Layer,
			Origin:      e.Origin,
			Orientation: e.Orientation,
			Position:    e.Position,
			Yaw:         e.Yaw,
			Owner:       snapshots.NoOwner,
		}
		if e.Owner != nil {
			p.Owner = index[e.Owner.ID]
			p.Edge = e.Edge
		}
		index[e.ID] = len(snap.Placements)
		snap.Placements = append(snap.Placements, p)
	}
	return snap
}

func (o *Orchestrator) replay(c *placement.Controller, snap *snapshots.Snapshot) int {
	c.Reset()

	skipped := 0
	ids := make([]string, len(snap.Placements))
	for i, p := range snap.Placements {
		res, ok := o.replayOne(c, p, ids)
		if !ok || !res.OK {
			skipped++
			continue
		}
		ids[i] = res.Entity.ID
	}

	if err := c.SetActiveGrid(snap.ActiveLayer); err != nil {
		_ = c.SetActiveGrid(0)
	}
	return skipped
}

func (o *Orchestrator) replayOne(c *placement.Controller, p snapshots.Placement, ids []string) (placement.Result, bool) {
	tpl, err := o.catalog.Get(p.TemplateID)
	if err != nil || tpl.Category != p.Category {
		return placement.Result{}, false
	}
	if err := c.SetActiveGrid(p.Layer); err != nil {
		return placement.Result{}, false
	}

	switch p.Category {
	case entities.WallObject:
		if p.Owner < 0 || p.Owner >= len(ids) || ids[p.Owner] == "" {
			return placement.Result{}, false
		}
		return c.PlaceWallObject(tpl, ids[p.Owner], p.Edge), true
	case entities.LooseObject:
		return c.PlaceLooseObject(tpl, p.Position, p.Yaw), true
	default:
		return c.PlaceGridObject(tpl, p.Origin, p.Orientation), true
	}
}
