package ui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownEvent is returned when no handler is registered for an event.
var ErrUnknownEvent = errors.New("unknown event")

// KeyEnter is the key name that submits an input
const KeyEnter = "Enter"

// Event is one user interaction
type Event struct {
	Name  string
	Value string // input value or button data
	Key   string // key name for keydown events

	// Region is the display region owned by the widget the event belongs to.
	Region Region
	// Log is where appending widgets write.
	Log Appender
	// AwaitPending keeps the handler running until delayed writes to Log
	// have landed, for surfaces that close the region when it returns.
	AwaitPending bool
}

// Handler reacts to an event
type Handler func(ctx context.Context, ev Event) error

// OnEnter wraps h so it only runs when the event's key is Enter.
func OnEnter(h Handler) Handler {
	return func(ctx context.Context, ev Event) error {
		if ev.Key != KeyEnter {
			return nil
		}
		return h(ctx, ev)
	}
}

// Host reports which elements exist on the surface hosting the widgets.
type Host interface {
	Has(id string) bool
}

// Elements is a Host backed by a set of element IDs
type Elements map[string]struct{}

// NewElements creates a host from element IDs
func NewElements(ids ...string) Elements {
	e := make(Elements, len(ids))
	for _, id := range ids {
		e[id] = struct{}{}
	}
	return e
}

func (e Elements) Has(id string) bool {
	_, ok := e[id]
	return ok
}

// AllElements is a Host on which every element exists
type AllElements struct{}

func (AllElements) Has(string) bool { return true }

// Binding ties a widget's handlers to the elements it needs.
type Binding struct {
	Widget   string
	Elements []string
	Events   map[string]Handler
}

// Registry maps named events to handlers
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register binds h to name. Registering a name twice panics.
func (r *Registry) Register(name string, h Handler) {
	if name == "" || h == nil {
		panic("ui: Register with empty name or nil handler")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[name]; exists {
		panic("ui: handler already registered for " + name)
	}
	r.handlers[name] = h
}

// Bind registers the binding's events when every element it needs exists
// on host. It reports whether the widget is active.
func (r *Registry) Bind(host Host, b Binding) bool {
	for _, id := range b.Elements {
		if !host.Has(id) {
			return false
		}
	}
	for name, h := range b.Events {
		r.Register(name, h)
	}
	return true
}

// Has reports whether name has a handler
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[name]
	return ok
}

// Names returns the registered event names, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the handler registered for ev.Name
func (r *Registry) Dispatch(ctx context.Context, ev Event) error {
	r.mu.RLock()
	h, ok := r.handlers[ev.Name]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEvent, ev.Name)
	}
	return h(ctx, ev)
}
