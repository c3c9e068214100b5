// Package constraints evaluates adjacency rules between a candidate template
// and the templates of its neighbors.
package constraints

import (
	"github.com/KirkDiggler/rpg-grid/internal/entities"
)

// Rule is the predicate contract templates carry
type Rule = entities.ConstraintRule

// AdjacencyRule is the symmetric allow-list rule: two templates may touch
// when either lists the other's ID, name or constraint group.
type AdjacencyRule struct {
	id string
}

// NewAdjacencyRule creates an allow-list rule. Templates that share one
// instance should share the id so the engine evaluates it once per check.
func NewAdjacencyRule(id string) *AdjacencyRule {
	if id == "" {
		id = "adjacency"
	}
	return &AdjacencyRule{id: id}
}

// ID implements Rule
func (r *AdjacencyRule) ID() string { return r.id }

// SingleEvaluation implements Rule. The predicate is symmetric.
func (r *AdjacencyRule) SingleEvaluation() bool { return true }

// Validate implements Rule
func (r *AdjacencyRule) Validate(candidate, neighbor *entities.Template) bool {
	if candidate == nil || neighbor == nil {
		return false
	}
	return candidate.Allows(neighbor) || neighbor.Allows(candidate)
}

// GroupRule only accepts neighbors from the same constraint group
type GroupRule struct {
	id string
}

// NewGroupRule creates a same-group rule
func NewGroupRule(id string) *GroupRule {
	if id == "" {
		id = "same_group"
	}
	return &GroupRule{id: id}
}

// ID implements Rule
func (r *GroupRule) ID() string { return r.id }

// SingleEvaluation implements Rule
func (r *GroupRule) SingleEvaluation() bool { return false }

// Validate implements Rule
func (r *GroupRule) Validate(candidate, neighbor *entities.Template) bool {
	if candidate == nil || neighbor == nil || candidate.ConstraintGroup == "" {
		return false
	}
	return candidate.ConstraintGroup == neighbor.ConstraintGroup
}
