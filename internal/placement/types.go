package placement

import (
	"fmt"

	"github.com/KirkDiggler/rpg-grid/internal/entities"
	"github.com/KirkDiggler/rpg-grid/internal/errors"
)

// State is the selection state of a controller
type State int

const (
	// Idle has no template selected
	Idle State = iota
	// TemplateSelected awaits a target
	TemplateSelected
	// Placing is held only while a placement validates
	Placing
)

func (s State) String() string {
	switch s {
	case TemplateSelected:
		return "template_selected"
	case Placing:
		return "placing"
	default:
		return "idle"
	}
}

// Reason classifies a failed placement or removal
type Reason int

const (
	ReasonNone Reason = iota
	// OutOfBounds means the target lies outside the layer
	OutOfBounds
	// CellOccupied means an incompatible entity holds a footprint cell
	CellOccupied
	// ConstraintViolation means an adjacency rule rejected a neighbor
	ConstraintViolation
	// NoTemplate means nothing is selected
	NoTemplate
	// NotFound means there is nothing to remove or attach to at the target
	NotFound
	// SlotUnavailable means the floor or wall does not support the edge slot
	SlotUnavailable
	// Filtered means the category is excluded from removal
	Filtered
	// WrongCategory means the template cannot be placed by the requested operation
	WrongCategory
)

var reasonNames = map[Reason]string{
	ReasonNone:          "none",
	OutOfBounds:         "out_of_bounds",
	CellOccupied:        "cell_occupied",
	ConstraintViolation: "constraint_violation",
	NoTemplate:          "no_template",
	NotFound:            "not_found",
	SlotUnavailable:     "slot_unavailable",
	Filtered:            "filtered",
	WrongCategory:       "wrong_category",
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return "unknown"
}

// Result is the outcome of a placement or removal. Failures are expected
// and leave the controller unchanged.
type Result struct {
	OK     bool
	Reason Reason
	// Entity is the placed or removed entity
	Entity *entities.Entity
	// Removed lists entities destroyed alongside Entity: walls of a removed
	// floor, or the wall a new one replaced
	Removed []*entities.Entity
	Layer   int

	// Cell is the offending cell on failure
	Cell entities.Coord
	// Neighbor is the entity that blocked the placement, if any
	Neighbor *entities.Entity
	// RuleID is the failing constraint rule
	RuleID string
}

func success(e *entities.Entity, layer int) Result {
	return Result{OK: true, Entity: e, Layer: layer}
}

func failure(reason Reason, layer int) Result {
	return Result{Reason: reason, Layer: layer}
}

func (r Result) String() string {
	if r.OK {
		return fmt.Sprintf("ok %s", r.Entity.ID)
	}
	switch r.Reason {
	case OutOfBounds, CellOccupied:
		return fmt.Sprintf("%s at %s", r.Reason, r.Cell)
	case ConstraintViolation:
		neighbor := ""
		if r.Neighbor != nil {
			neighbor = r.Neighbor.ID
		}
		return fmt.Sprintf("%s at %s: rule %s against %s", r.Reason, r.Cell, r.RuleID, neighbor)
	default:
		return r.Reason.String()
	}
}

// Err converts a failed result to a coded error for callers that surface
// failures over an API. It returns nil on success.
func (r Result) Err() error {
	if r.OK {
		return nil
	}

	var err *errors.Error
	switch r.Reason {
	case OutOfBounds:
		err = errors.OutOfRangef("placement failed: %s", r)
	case NotFound:
		err = errors.NotFoundf("placement failed: %s", r)
	case WrongCategory:
		err = errors.InvalidArgumentf("placement failed: %s", r)
	default:
		err = errors.FailedPreconditionf("placement failed: %s", r)
	}

	err = err.WithMeta("reason", r.Reason.String()).WithMeta("layer", r.Layer)
	if r.RuleID != "" {
		err = err.WithMeta("rule_id", r.RuleID)
	}
	return err
}

// Target addresses a placement or removal by cell or by world position
type Target struct {
	Cell  entities.Coord
	World entities.Vec3
	// IsWorld selects World over Cell
	IsWorld bool
	// Edge picks the floor slot for wall templates. When nil a world target
	// uses the nearest edge of its cell and a cell target uses EdgeUp.
	Edge *entities.EdgeSlot
}

// AtCell targets a cell of the active layer
func AtCell(c entities.Coord) Target {
	return Target{Cell: c}
}

// AtWorld targets a world position on the active layer
func AtWorld(v entities.Vec3) Target {
	return Target{World: v, IsWorld: true}
}

// WithEdge returns a copy of t addressing a floor edge slot
func (t Target) WithEdge(slot entities.EdgeSlot) Target {
	t.Edge = &slot
	return t
}
