package v1alpha1

import (
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-grid/internal/entities"
)

// Target addresses a cell or a world position. Exactly one of Cell and
// World is set; Edge optionally names a floor slot for walls.
type Target struct {
	Cell  *entities.Coord `json:"cell,omitempty"`
	World *entities.Vec3  `json:"world,omitempty"`
	Edge  string          `json:"edge,omitempty"`
}

// PlacedObject is a placed entity on the wire
type PlacedObject struct {
	ID          string             `json:"id"`
	TemplateID  string             `json:"template_id"`
	Category    entities.Category  `json:"category"`
	Layer       int                `json:"layer"`
	Origin      entities.Coord     `json:"origin"`
	Orientation entities.Direction `json:"orientation"`
	Position    entities.Vec3      `json:"position"`
	Yaw         float64            `json:"yaw"`
	Cells       []entities.Coord   `json:"cells,omitempty"`
	OwnerID     string             `json:"owner_id,omitempty"`
	Edge        string             `json:"edge,omitempty"`
}

// Session is the state of a building session
type Session struct {
	ID          string             `json:"id"`
	CreatedAt   time.Time          `json:"created_at"`
	State       string             `json:"state"`
	TemplateID  string             `json:"template_id,omitempty"`
	Orientation entities.Direction `json:"orientation"`
	LooseYaw    float64            `json:"loose_yaw"`
	ActiveLayer int                `json:"active_layer"`
	LayerCount  int                `json:"layer_count"`
	Width       int                `json:"width"`
	Depth       int                `json:"depth"`
	Objects     []*PlacedObject    `json:"objects,omitempty"`
}

// PlacementResult is the outcome of a place or remove
type PlacementResult struct {
	OK         bool            `json:"ok"`
	Reason     string          `json:"reason,omitempty"`
	Object     *PlacedObject   `json:"object,omitempty"`
	Removed    []*PlacedObject `json:"removed,omitempty"`
	Layer      int             `json:"layer"`
	Cell       *entities.Coord `json:"cell,omitempty"`
	NeighborID string          `json:"neighbor_id,omitempty"`
	RuleID     string          `json:"rule_id,omitempty"`
}

// CreateSessionRequest starts a session
type CreateSessionRequest struct{}

// GetSessionRequest reads a session
type GetSessionRequest struct {
	SessionID string `json:"session_id"`
}

// DeleteSessionRequest drops a session
type DeleteSessionRequest struct {
	SessionID string `json:"session_id"`
}

// DeleteSessionResponse is empty
type DeleteSessionResponse struct{}

// SessionResponse carries a session's state
type SessionResponse struct {
	Session *Session `json:"session"`
}

// SelectTemplateRequest selects a template by ID, or the next one
type SelectTemplateRequest struct {
	SessionID  string `json:"session_id"`
	TemplateID string `json:"template_id,omitempty"`
	Next       bool   `json:"next,omitempty"`
}

// RotateRequest turns the selection
type RotateRequest struct {
	SessionID string `json:"session_id"`
}

// SwitchGridRequest changes the active layer; without Layer it advances
type SwitchGridRequest struct {
	SessionID string `json:"session_id"`
	Layer     *int   `json:"layer,omitempty"`
}

// SwitchGridResponse reports whether the layer changed
type SwitchGridResponse struct {
	Session  *Session `json:"session"`
	Switched bool     `json:"switched"`
}

// PlaceRequest places the selection, or TemplateID, at Target
type PlaceRequest struct {
	SessionID  string  `json:"session_id"`
	TemplateID string  `json:"template_id,omitempty"`
	Target     *Target `json:"target"`
}

// RemoveRequest removes what is at Target
type RemoveRequest struct {
	SessionID string  `json:"session_id"`
	Target    *Target `json:"target"`
	Edit      bool    `json:"edit,omitempty"`
}

// PlacementResponse carries a placement outcome
type PlacementResponse struct {
	Result  *PlacementResult `json:"result"`
	Session *Session         `json:"session"`
}

// ApplyLayoutRequest places a floorplan document into a layer
type ApplyLayoutRequest struct {
	SessionID string          `json:"session_id"`
	Floorplan json.RawMessage `json:"floorplan"`
	Layer     int             `json:"layer"`
	FillFloor bool            `json:"fill_floor,omitempty"`
}

// LayoutPlacement is one floorplan item and its outcome
type LayoutPlacement struct {
	Name               string           `json:"name"`
	Key                string           `json:"key"`
	TemplateID         string           `json:"template_id,omitempty"`
	Cell               entities.Coord   `json:"cell"`
	TemplateUnresolved bool             `json:"template_unresolved,omitempty"`
	SearchExhausted    bool             `json:"search_exhausted,omitempty"`
	Result             *PlacementResult `json:"result"`
}

// ApplyLayoutResponse lists the outcome of every floorplan item
type ApplyLayoutResponse struct {
	Placements   []*LayoutPlacement `json:"placements"`
	Placed       int                `json:"placed"`
	Failed       int                `json:"failed"`
	FloorPlaced  int                `json:"floor_placed,omitempty"`
	FloorSkipped int                `json:"floor_skipped,omitempty"`
	Session      *Session           `json:"session"`
}

// SaveSnapshotRequest saves a session
type SaveSnapshotRequest struct {
	SessionID string `json:"session_id"`
}

// SaveSnapshotResponse names the saved snapshot
type SaveSnapshotResponse struct {
	SnapshotID string    `json:"snapshot_id"`
	Placements int       `json:"placements"`
	CreatedAt  time.Time `json:"created_at"`
}

// LoadSnapshotRequest restores a snapshot into a session
type LoadSnapshotRequest struct {
	SessionID  string `json:"session_id"`
	SnapshotID string `json:"snapshot_id"`
}

// LoadSnapshotResponse carries the restored session
type LoadSnapshotResponse struct {
	Session *Session `json:"session"`
	Skipped int      `json:"skipped"`
}
