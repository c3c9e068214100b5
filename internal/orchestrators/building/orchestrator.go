// Package building implements the building session orchestrator. Each
// session owns one placement controller over its own stack of grid layers.
package building

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-grid/internal/catalog"
	"github.com/KirkDiggler/rpg-grid/internal/constraints"
	"github.com/KirkDiggler/rpg-grid/internal/entities"
	"github.com/KirkDiggler/rpg-grid/internal/errors"
	"github.com/KirkDiggler/rpg-grid/internal/grid"
	"github.com/KirkDiggler/rpg-grid/internal/layout"
	"github.com/KirkDiggler/rpg-grid/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-grid/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-grid/internal/placement"
	"github.com/KirkDiggler/rpg-grid/internal/repositories/snapshots"
	"github.com/KirkDiggler/rpg-grid/internal/services/building"
)

// Config holds the dependencies for the building orchestrator
type Config struct {
	Catalog      *catalog.Catalog
	SnapshotRepo snapshots.Repository

	// Grid sizes layer 0; further layers stack LayerHeight apart
	Grid        *grid.Config
	Layers      int
	LayerHeight float64

	AutoDeselect        bool
	MissingRules        constraints.MissingRulesPolicy
	RemovableCategories []entities.Category
	FloorYOffset        float64
	LoosePickRadius     float64
	NeighborCheck       placement.NeighborCheck
	// FloorTemplate is the floor used by ApplyLayout's FillFloor
	FloorTemplate string

	Clock               clock.Clock
	SessionIDGenerator  idgen.Generator
	SnapshotIDGenerator idgen.Generator
	// EntityIDGenerator returns the entity ID source of a new session; nil
	// uses UUIDs
	EntityIDGenerator func() idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.SnapshotRepo == nil {
		vb.RequiredField("SnapshotRepo")
	}
	if c.Grid == nil {
		vb.RequiredField("Grid")
	} else if err := c.Grid.Validate(); err != nil {
		vb.Fieldf("Grid", "%v", err)
	}
	errors.ValidatePositive("Layers", c.Layers, vb)
	if c.Layers > 1 {
		errors.ValidatePositiveFloat("LayerHeight", c.LayerHeight, vb)
	}
	if c.FloorTemplate != "" && c.Catalog != nil {
		tpl, err := c.Catalog.Get(c.FloorTemplate)
		switch {
		case err != nil:
			vb.Fieldf("FloorTemplate", "template %q not in catalog", c.FloorTemplate)
		case tpl.Category != entities.FloorObject:
			vb.Fieldf("FloorTemplate", "template %q is a %s, not a floor", c.FloorTemplate, tpl.Category)
		}
	}

	return vb.Build()
}

type session struct {
	mu         sync.Mutex
	id         string
	createdAt  time.Time
	controller *placement.Controller
}

// Orchestrator implements the building.Service interface
type Orchestrator struct {
	catalog      *catalog.Catalog
	snapshotRepo snapshots.Repository
	engine       *constraints.Engine
	resolver     *layout.Resolver

	grid        grid.Config
	layers      int
	layerHeight float64

	autoDeselect    bool
	removable       []entities.Category
	floorYOffset    float64
	loosePickRadius float64
	neighborCheck   placement.NeighborCheck
	floorTemplate   string

	clock       clock.Clock
	sessionIDs  idgen.Generator
	snapshotIDs idgen.Generator
	entityIDs   func() idgen.Generator

	mu       sync.RWMutex
	sessions map[string]*session
}

// New creates a new building orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	resolver, err := layout.NewResolver(&layout.Config{Lookup: cfg.Catalog})
	if err != nil {
		return nil, err
	}

	o := &Orchestrator{
		catalog:         cfg.Catalog,
		snapshotRepo:    cfg.SnapshotRepo,
		engine:          constraints.NewEngine(&constraints.Config{MissingRules: cfg.MissingRules}),
		resolver:        resolver,
		grid:            *cfg.Grid,
		layers:          cfg.Layers,
		layerHeight:     cfg.LayerHeight,
		autoDeselect:    cfg.AutoDeselect,
		removable:       cfg.RemovableCategories,
		floorYOffset:    cfg.FloorYOffset,
		loosePickRadius: cfg.LoosePickRadius,
		neighborCheck:   cfg.NeighborCheck,
		floorTemplate:   cfg.FloorTemplate,
		clock:           cfg.Clock,
		sessionIDs:      cfg.SessionIDGenerator,
		snapshotIDs:     cfg.SnapshotIDGenerator,
		entityIDs:       cfg.EntityIDGenerator,
		sessions:        make(map[string]*session),
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.sessionIDs == nil {
		o.sessionIDs = idgen.NewUUID("sess")
	}
	if o.snapshotIDs == nil {
		o.snapshotIDs = idgen.NewUUID("snap")
	}

	return o, nil
}

// Ensure Orchestrator implements the Service interface
var _ building.Service = (*Orchestrator)(nil)

// CreateSession builds an empty set of layers and a controller for them
func (o *Orchestrator) CreateSession(_ context.Context, input *building.CreateSessionInput) (*building.CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	id := o.sessionIDs.Generate()

	// grid cell changes and controller events share one bus per session
	bus := events.NewBus()
	base := o.grid
	base.EventBus = bus

	layers, err := grid.NewLayers(&base, o.layers, o.layerHeight)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build grid layers")
	}

	var ids idgen.Generator
	if o.entityIDs != nil {
		ids = o.entityIDs()
	}

	controller, err := placement.NewController(&placement.Config{
		Layers:              layers,
		Catalog:             o.catalog,
		Constraints:         o.engine,
		IDGenerator:         ids,
		EventBus:            bus,
		AutoDeselect:        o.autoDeselect,
		RemovableCategories: o.removable,
		FloorYOffset:        o.floorYOffset,
		LoosePickRadius:     o.loosePickRadius,
		NeighborCheck:       o.neighborCheck,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create placement controller")
	}
	controller.Subscribe(placement.ObserverFunc(func(e placement.Event) {
		attrs := []any{"session_id", id, "event", e.Kind.String(), "layer", e.Layer}
		if e.Entity != nil {
			attrs = append(attrs, "entity_id", e.Entity.GetID())
		}
		slog.Debug("placement event", attrs...)
	}))

	s := &session{
		id:         id,
		createdAt:  o.clock.Now(),
		controller: controller,
	}

	o.mu.Lock()
	o.sessions[s.id] = s
	o.mu.Unlock()

	slog.Info("building session created",
		"session_id", s.id,
		"layers", o.layers,
		"width", o.grid.Width,
		"depth", o.grid.Depth)

	return &building.CreateSessionOutput{Session: viewSession(s)}, nil
}

// GetSession returns the current state of a session
func (o *Orchestrator) GetSession(_ context.Context, input *building.GetSessionInput) (*building.GetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.lock(input.SessionID)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	return &building.GetSessionOutput{Session: viewSession(s)}, nil
}

// DeleteSession drops a session and everything placed in it
func (o *Orchestrator) DeleteSession(_ context.Context, input *building.DeleteSessionInput) (*building.DeleteSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.Lock()
	_, ok := o.sessions[input.SessionID]
	delete(o.sessions, input.SessionID)
	o.mu.Unlock()

	if !ok {
		return nil, errors.NotFoundf("session %s not found", input.SessionID)
	}

	slog.Info("building session deleted", "session_id", input.SessionID)
	return &building.DeleteSessionOutput{}, nil
}

// SelectTemplate picks the template the next Place uses
func (o *Orchestrator) SelectTemplate(_ context.Context, input *building.SelectTemplateInput) (*building.SelectTemplateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Next && input.TemplateID == "" {
		return nil, errors.InvalidArgument("template ID is required")
	}

	s, err := o.lock(input.SessionID)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	if input.Next {
		if _, err := s.controller.NextTemplate(); err != nil {
			return nil, err
		}
	} else if err := s.controller.SelectTemplate(input.TemplateID); err != nil {
		return nil, err
	}

	return &building.SelectTemplateOutput{Session: viewSession(s)}, nil
}

// Rotate turns the selection one step
func (o *Orchestrator) Rotate(_ context.Context, input *building.RotateInput) (*building.RotateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.lock(input.SessionID)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	s.controller.Rotate()
	return &building.RotateOutput{Session: viewSession(s)}, nil
}

// Deselect clears the selection
func (o *Orchestrator) Deselect(_ context.Context, input *building.DeselectInput) (*building.DeselectOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.lock(input.SessionID)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	s.controller.Deselect()
	return &building.DeselectOutput{Session: viewSession(s)}, nil
}

// SwitchGrid changes the active layer
func (o *Orchestrator) SwitchGrid(_ context.Context, input *building.SwitchGridInput) (*building.SwitchGridOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.lock(input.SessionID)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	switched := true
	if input.Layer == nil {
		switched = s.controller.SwitchActiveGrid()
	} else if err := s.controller.SetActiveGrid(*input.Layer); err != nil {
		return nil, err
	}

	return &building.SwitchGridOutput{Session: viewSession(s), Switched: switched}, nil
}

// Place puts the selection, or the named template, at the target
func (o *Orchestrator) Place(_ context.Context, input *building.PlaceInput) (*building.PlaceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.lock(input.SessionID)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	if input.TemplateID != "" {
		if err := s.controller.SelectTemplate(input.TemplateID); err != nil {
			return nil, err
		}
	}

	res := s.controller.Place(input.Target)
	if !res.OK {
		slog.Debug("placement refused",
			"session_id", s.id,
			"reason", res.Reason.String(),
			"cell", res.Cell.String(),
			"rule_id", res.RuleID)
	}

	return &building.PlaceOutput{Result: viewResult(res), Session: viewSession(s)}, nil
}

// Remove destroys what is at the target, optionally selecting it again
func (o *Orchestrator) Remove(_ context.Context, input *building.RemoveInput) (*building.RemoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.lock(input.SessionID)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	var res placement.Result
	if input.Edit {
		res = s.controller.Edit(input.Target)
	} else {
		res = s.controller.Remove(input.Target)
	}

	return &building.RemoveOutput{Result: viewResult(res), Session: viewSession(s)}, nil
}

// lock finds a session and acquires its lock; the caller unlocks
func (o *Orchestrator) lock(id string) (*session, error) {
	if id == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.RLock()
	s, ok := o.sessions[id]
	o.mu.RUnlock()
	if !ok {
		return nil, errors.NotFoundf("session %s not found", id)
	}

	s.mu.Lock()
	return s, nil
}
