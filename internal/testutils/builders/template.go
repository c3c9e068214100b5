// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-grid/internal/constraints"
	"github.com/KirkDiggler/rpg-grid/internal/entities"
)

// TemplateBuilder provides a fluent interface for building test templates
type TemplateBuilder struct {
	tpl *entities.Template
}

// NewTemplateBuilder creates a 1x1 grid object template with the given ID
func NewTemplateBuilder(id string) *TemplateBuilder {
	return &TemplateBuilder{
		tpl: &entities.Template{
			ID:              id,
			Name:            id,
			Category:        entities.GridObject,
			Width:           1,
			Height:          1,
			AllowedAdjacent: entities.NewAllowList(),
		},
	}
}

// WithName sets the display name
func (b *TemplateBuilder) WithName(name string) *TemplateBuilder {
	b.tpl.Name = name
	return b
}

// WithCategory sets the category
func (b *TemplateBuilder) WithCategory(category entities.Category) *TemplateBuilder {
	b.tpl.Category = category
	return b
}

// WithSize sets the footprint
func (b *TemplateBuilder) WithSize(width, height int) *TemplateBuilder {
	b.tpl.Width = width
	b.tpl.Height = height
	return b
}

// WithGroup sets the constraint group
func (b *TemplateBuilder) WithGroup(group string) *TemplateBuilder {
	b.tpl.ConstraintGroup = group
	return b
}

// Allowing adds names or groups to the allow-list
func (b *TemplateBuilder) Allowing(names ...string) *TemplateBuilder {
	for _, n := range names {
		b.tpl.AllowedAdjacent.Put(n)
	}
	return b
}

// WithRules attaches constraint rules
func (b *TemplateBuilder) WithRules(rules ...entities.ConstraintRule) *TemplateBuilder {
	b.tpl.Rules = append(b.tpl.Rules, rules...)
	return b
}

// WithAdjacency attaches an allow-list rule with the given ID
func (b *TemplateBuilder) WithAdjacency(ruleID string) *TemplateBuilder {
	return b.WithRules(constraints.NewAdjacencyRule(ruleID))
}

// WithEdgeSlots limits the usable edge slots
func (b *TemplateBuilder) WithEdgeSlots(slots ...entities.EdgeSlot) *TemplateBuilder {
	b.tpl.EdgeSlots = slots
	return b
}

// Build returns the template
func (b *TemplateBuilder) Build() *entities.Template {
	return b.tpl
}
