package placement

//go:generate mockgen -destination=mock/mock_observer.go -package=placementmock github.com/KirkDiggler/rpg-grid/internal/placement Observer

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-grid/internal/errors"
)

// EventKind names what changed
type EventKind int

const (
	SelectionChanged EventKind = iota
	ObjectPlaced
	ObjectRemoved
	ActiveGridChanged
)

// eventKinds lists every kind an observer is subscribed to
var eventKinds = []EventKind{SelectionChanged, ObjectPlaced, ObjectRemoved, ActiveGridChanged}

func (k EventKind) String() string {
	switch k {
	case SelectionChanged:
		return "selection_changed"
	case ObjectPlaced:
		return "object_placed"
	case ObjectRemoved:
		return "object_removed"
	case ActiveGridChanged:
		return "active_grid_changed"
	default:
		return "unknown"
	}
}

// Topic is the event bus type the kind is published under
func (k EventKind) Topic() string {
	return "placement." + k.String()
}

func kindOf(topic string) EventKind {
	for _, k := range eventKinds {
		if k.Topic() == topic {
			return k
		}
	}
	return -1
}

const keyLayer = "layer"

// Event is delivered to observers after the controller state has settled.
// Entity is nil for selection and grid changes.
type Event struct {
	Kind   EventKind
	Entity core.Entity
	Layer  int
}

// Observer receives controller events. Correctness never depends on one
// being registered.
type Observer interface {
	Notify(event Event)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(Event)

// Notify implements Observer
func (f ObserverFunc) Notify(event Event) {
	f(event)
}

// Subscription holds the bus subscription IDs of one observer
type Subscription []string

// Subscribe registers o for every event kind on the controller's bus
func (c *Controller) Subscribe(o Observer) Subscription {
	handler := func(_ context.Context, e events.Event) error {
		o.Notify(eventOf(e))
		return nil
	}

	sub := make(Subscription, 0, len(eventKinds))
	for _, k := range eventKinds {
		sub = append(sub, c.bus.SubscribeFunc(k.Topic(), 0, handler))
	}
	return sub
}

// Unsubscribe removes every subscription of sub
func (c *Controller) Unsubscribe(sub Subscription) error {
	for _, id := range sub {
		if err := c.bus.Unsubscribe(id); err != nil {
			return errors.WrapWithCode(err, errors.CodeNotFound, "failed to unsubscribe observer")
		}
	}
	return nil
}

func (c *Controller) emit(kind EventKind, entity core.Entity, layer int) {
	e := events.NewGameEvent(kind.Topic(), entity, nil)
	e.Context().Set(keyLayer, layer)

	// observers cannot fail
	_ = c.bus.Publish(context.Background(), e)
}

func eventOf(e events.Event) Event {
	out := Event{Kind: kindOf(e.Type()), Entity: e.Source()}
	if v, ok := e.Context().Get(keyLayer); ok {
		out.Layer, _ = v.(int)
	}
	return out
}
