// Package snapshots persists the minimal placement data needed to rebuild a
// building session
package snapshots

//go:generate mockgen -destination=mock/mock_repository.go -package=snapshotsmock github.com/KirkDiggler/rpg-grid/internal/repositories/snapshots Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-grid/internal/entities"
)

// Repository defines the interface for snapshot persistence
type Repository interface {
	// Save stores a snapshot, replacing one with the same ID
	// Returns errors.InvalidArgument for missing IDs
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves a snapshot by ID
	// Returns errors.NotFound if it does not exist or has expired
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// ListBySession returns a session's snapshots, oldest first
	ListBySession(ctx context.Context, input *ListBySessionInput) (*ListBySessionOutput, error)

	// Delete removes a snapshot
	// Returns errors.NotFound if it does not exist
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// NoOwner marks a placement that is not attached to a floor
const NoOwner = -1

// Placement records one placed entity. Walls reference their floor by its
// index in the snapshot, which always precedes them.
type Placement struct {
	TemplateID  string             `json:"template_id"`
	Category    entities.Category  `json:"category"`
	Layer       int                `json:"layer"`
	Origin      entities.Coord     `json:"origin"`
	Orientation entities.Direction `json:"orientation"`
	Position    entities.Vec3      `json:"position"`
	Yaw         float64            `json:"yaw"`
	Owner       int                `json:"owner"`
	Edge        entities.EdgeSlot  `json:"edge"`
}

// Snapshot is the saved state of one session
type Snapshot struct {
	ID          string      `json:"id"`
	SessionID   string      `json:"session_id"`
	ActiveLayer int         `json:"active_layer"`
	Placements  []Placement `json:"placements"`
	CreatedAt   time.Time   `json:"created_at"`
}

// SaveInput defines the input for saving a snapshot
type SaveInput struct {
	Snapshot *Snapshot
}

// SaveOutput defines the output for saving a snapshot
type SaveOutput struct{}

// GetInput defines the input for getting a snapshot
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a snapshot
type GetOutput struct {
	Snapshot *Snapshot
}

// ListBySessionInput defines the input for listing a session's snapshots
type ListBySessionInput struct {
	SessionID string
}

// ListBySessionOutput defines the output for listing a session's snapshots
type ListBySessionOutput struct {
	Snapshots []*Snapshot
}

// DeleteInput defines the input for deleting a snapshot
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a snapshot
type DeleteOutput struct{}
