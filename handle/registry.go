package handle

import "sync"

// EventType identifies a handle lifecycle event.
type EventType uint8

const (
	EventAcquired EventType = iota
	EventBorrowed
	EventCloned
	EventReleased
)

// Event describes one handle lifecycle transition.
type Event struct {
	Kind string
	Ptr  uintptr
	Mode Mode
	Type EventType
}

// Observer receives handle lifecycle events.
type Observer interface {
	OnHandleEvent(Event)
}

// Registry tracks live handles for leak diagnostics and notifies
// observers of lifecycle transitions.
type Registry struct {
	mu        sync.RWMutex
	live      map[*Handle]struct{}
	observers []Observer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{live: make(map[*Handle]struct{})}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the package-level
// acquisition functions.
func Default() *Registry { return defaultRegistry }

// Subscribe adds an observer for lifecycle events.
func (r *Registry) Subscribe(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, o)
}

// Unsubscribe removes an observer.
func (r *Registry) Unsubscribe(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, obs := range r.observers {
		if obs == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.live)
}

// LiveByKind returns live handle counts keyed by kind name.
func (r *Registry) LiveByKind() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := make(map[string]int)
	for h := range r.live {
		counts[h.kind.Name]++
	}
	return counts
}

// Each iterates over live handles until fn returns false.
func (r *Registry) Each(fn func(*Handle) bool) {
	r.mu.RLock()
	handles := make([]*Handle, 0, len(r.live))
	for h := range r.live {
		handles = append(handles, h)
	}
	r.mu.RUnlock()

	for _, h := range handles {
		if !fn(h) {
			return
		}
	}
}

func (r *Registry) track(h *Handle, ev EventType) {
	r.mu.Lock()
	r.live[h] = struct{}{}
	r.mu.Unlock()

	r.notify(Event{Kind: h.kind.Name, Ptr: h.ptr, Mode: h.mode, Type: ev})
}

func (r *Registry) untrack(h *Handle) {
	r.mu.Lock()
	delete(r.live, h)
	r.mu.Unlock()

	r.notify(Event{Kind: h.kind.Name, Ptr: h.ptr, Mode: h.mode, Type: EventReleased})
}

func (r *Registry) notify(e Event) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.observers {
		o.OnHandleEvent(e)
	}
}
