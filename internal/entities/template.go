package entities

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/rpg-grid/internal/errors"
)

// ConstraintRule decides whether two templates may sit in orthogonally
// adjacent cells. Implementations live in the constraints package.
type ConstraintRule interface {
	// ID identifies the rule instance. Templates sharing a rule share the ID.
	ID() string
	// SingleEvaluation marks rules that are symmetric and only need to run
	// once per candidate/neighbor check.
	SingleEvaluation() bool
	Validate(candidate, neighbor *Template) bool
}

// Template is the immutable definition entities are created from
type Template struct {
	ID              string
	Name            string
	Category        Category
	Width           int
	Height          int
	ConstraintGroup string
	AllowedAdjacent mapset.Set[string]
	Rules           []ConstraintRule
	// EdgeSlots lists the slots a floor exposes or a wall can attach to.
	// Empty means all four.
	EdgeSlots []EdgeSlot
	Tags      []string
}

// NewAllowList builds an allow-list set from names and group names
func NewAllowList(names ...string) mapset.Set[string] {
	set := mapset.New[string]()
	for _, n := range names {
		set.Put(n)
	}
	return set
}

// HasConstraints reports whether the template carries any rule
func (t *Template) HasConstraints() bool {
	return len(t.Rules) > 0
}

// Allows reports whether other's ID, name or constraint group is on t's allow-list
func (t *Template) Allows(other *Template) bool {
	if t == nil || other == nil {
		return false
	}
	for _, key := range []string{other.ID, other.Name, other.ConstraintGroup} {
		if key != "" && t.AllowedAdjacent.Has(key) {
			return true
		}
	}
	return false
}

// Area is the number of cells the footprint covers
func (t *Template) Area() int {
	return t.Width * t.Height
}

// SupportsEdge reports whether slot is usable on this template
func (t *Template) SupportsEdge(slot EdgeSlot) bool {
	if !slot.Valid() {
		return false
	}
	if len(t.EdgeSlots) == 0 {
		return true
	}
	for _, s := range t.EdgeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Validate checks the fields a template needs before it can be placed
func (t *Template) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("id", t.ID, vb)
	if t.Category.OccupiesCells() {
		errors.ValidatePositive("width", t.Width, vb)
		errors.ValidatePositive("height", t.Height, vb)
	}
	for _, slot := range t.EdgeSlots {
		if !slot.Valid() {
			vb.InvalidField("edge_slots", slot.String())
		}
	}
	for i, rule := range t.Rules {
		if rule == nil {
			vb.Fieldf("rules", "rule %d is nil", i)
		}
	}

	return vb.Build()
}
