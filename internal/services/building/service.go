// Package building defines the interface for building session operations
package building

//go:generate mockgen -destination=mock/mock_service.go -package=buildingmock github.com/KirkDiggler/rpg-grid/internal/services/building Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-grid/internal/entities"
	"github.com/KirkDiggler/rpg-grid/internal/layout"
	"github.com/KirkDiggler/rpg-grid/internal/placement"
	"github.com/KirkDiggler/rpg-grid/internal/repositories/snapshots"
)

// Service defines the interface for building session operations
type Service interface {
	// Session lifecycle
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
	DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error)

	// Selection
	SelectTemplate(ctx context.Context, input *SelectTemplateInput) (*SelectTemplateOutput, error)
	Rotate(ctx context.Context, input *RotateInput) (*RotateOutput, error)
	Deselect(ctx context.Context, input *DeselectInput) (*DeselectOutput, error)
	SwitchGrid(ctx context.Context, input *SwitchGridInput) (*SwitchGridOutput, error)

	// Placement
	Place(ctx context.Context, input *PlaceInput) (*PlaceOutput, error)
	Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error)

	// Layout
	ResolveLayout(ctx context.Context, input *ResolveLayoutInput) (*ResolveLayoutOutput, error)
	ApplyLayout(ctx context.Context, input *ApplyLayoutInput) (*ApplyLayoutOutput, error)

	// Snapshots
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) (*SaveSnapshotOutput, error)
	LoadSnapshot(ctx context.Context, input *LoadSnapshotInput) (*LoadSnapshotOutput, error)
	ListSnapshots(ctx context.Context, input *ListSnapshotsInput) (*ListSnapshotsOutput, error)
}

// PlacedObject is a read-only view of a placed entity
type PlacedObject struct {
	ID          string
	TemplateID  string
	Category    entities.Category
	Layer       int
	Origin      entities.Coord
	Orientation entities.Direction
	Position    entities.Vec3
	Yaw         float64
	Cells       []entities.Coord
	// OwnerID and Edge are set for walls
	OwnerID string
	Edge    entities.EdgeSlot
}

// Session is a read-only view of a building session
type Session struct {
	ID          string
	CreatedAt   time.Time
	State       placement.State
	TemplateID  string
	Orientation entities.Direction
	LooseYaw    float64
	ActiveLayer int
	LayerCount  int
	Width       int
	Depth       int
	Objects     []*PlacedObject
}

// PlacementResult is the outcome of a place or remove. Failures are
// reported here rather than as errors.
type PlacementResult struct {
	OK         bool
	Reason     placement.Reason
	Object     *PlacedObject
	Removed    []*PlacedObject
	Layer      int
	Cell       entities.Coord
	NeighborID string
	RuleID     string
}

// Session lifecycle types

// CreateSessionInput defines the request for creating a session
type CreateSessionInput struct{}

// CreateSessionOutput defines the response for creating a session
type CreateSessionOutput struct {
	Session *Session
}

// GetSessionInput defines the request for getting a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput defines the response for getting a session
type GetSessionOutput struct {
	Session *Session
}

// DeleteSessionInput defines the request for deleting a session
type DeleteSessionInput struct {
	SessionID string
}

// DeleteSessionOutput defines the response for deleting a session
type DeleteSessionOutput struct{}

// Selection types

// SelectTemplateInput defines the request for selecting a template. With
// Next set the template after the current one is selected and TemplateID
// is ignored.
type SelectTemplateInput struct {
	SessionID  string
	TemplateID string
	Next       bool
}

// SelectTemplateOutput defines the response for selecting a template
type SelectTemplateOutput struct {
	Session *Session
}

// RotateInput defines the request for rotating the selection
type RotateInput struct {
	SessionID string
}

// RotateOutput defines the response for rotating the selection
type RotateOutput struct {
	Session *Session
}

// DeselectInput defines the request for clearing the selection
type DeselectInput struct {
	SessionID string
}

// DeselectOutput defines the response for clearing the selection
type DeselectOutput struct {
	Session *Session
}

// SwitchGridInput defines the request for changing the active layer. A nil
// Layer advances to the next layer.
type SwitchGridInput struct {
	SessionID string
	Layer     *int
}

// SwitchGridOutput defines the response for changing the active layer
type SwitchGridOutput struct {
	Session  *Session
	Switched bool
}

// Placement types

// PlaceInput defines the request for placing the selection. A TemplateID
// selects that template first.
type PlaceInput struct {
	SessionID  string
	TemplateID string
	Target     placement.Target
}

// PlaceOutput defines the response for placing
type PlaceOutput struct {
	Result  *PlacementResult
	Session *Session
}

// RemoveInput defines the request for removing. With Edit set the removed
// template is selected again.
type RemoveInput struct {
	SessionID string
	Target    placement.Target
	Edit      bool
}

// RemoveOutput defines the response for removing
type RemoveOutput struct {
	Result  *PlacementResult
	Session *Session
}

// Layout types

// ResolveLayoutInput defines the request for resolving a floorplan against
// the configured grid size
type ResolveLayoutInput struct {
	Floorplan *layout.Floorplan
}

// ResolveLayoutOutput defines the response for resolving a floorplan
type ResolveLayoutOutput struct {
	Items []*layout.Resolved
}

// ApplyLayoutInput defines the request for placing a floorplan into a
// session layer. FillFloor covers the layer with the configured floor
// template first.
type ApplyLayoutInput struct {
	SessionID string
	Floorplan *layout.Floorplan
	Layer     int
	FillFloor bool
}

// LayoutPlacement pairs a resolved item with its placement outcome
type LayoutPlacement struct {
	Item   *layout.Resolved
	Result *PlacementResult
}

// ApplyLayoutOutput defines the response for applying a floorplan
type ApplyLayoutOutput struct {
	Placements []*LayoutPlacement
	Placed     int
	Failed     int
	// FloorPlaced and FloorSkipped count the tiles of a floor fill
	FloorPlaced  int
	FloorSkipped int
	Session      *Session
}

// Snapshot types

// SaveSnapshotInput defines the request for saving a session
type SaveSnapshotInput struct {
	SessionID string
}

// SaveSnapshotOutput defines the response for saving a session
type SaveSnapshotOutput struct {
	Snapshot *snapshots.Snapshot
}

// LoadSnapshotInput defines the request for restoring a snapshot into a
// session. The session is reset first.
type LoadSnapshotInput struct {
	SessionID  string
	SnapshotID string
}

// LoadSnapshotOutput defines the response for restoring a snapshot
type LoadSnapshotOutput struct {
	Session *Session
	// Skipped counts placements that no longer validate
	Skipped int
}

// ListSnapshotsInput defines the request for listing a session's snapshots
type ListSnapshotsInput struct {
	SessionID string
}

// ListSnapshotsOutput defines the response for listing a session's snapshots
type ListSnapshotsOutput struct {
	Snapshots []*snapshots.Snapshot
}
