package rib

import (
	"sync"

	"github.com/bnema/riblet/internal/domain/entity"
)

// EventListener receives events broadcast by an Interactor.
type EventListener interface {
	OnEvent(event entity.Event)
}

// EventListenerFunc adapts a function to EventListener.
type EventListenerFunc func(event entity.Event)

// OnEvent calls f(event).
func (f EventListenerFunc) OnEvent(event entity.Event) {
	f(event)
}

type listenerEntry struct {
	id       uint64
	listener EventListener
}

// Interactor owns a unit's business logic hooks and its listener list.
type Interactor struct {
	mu        sync.Mutex
	nextID    uint64
	listeners []listenerEntry // nil until the first AddListener
}

// NewInteractor creates an interactor with no listener list allocated.
func NewInteractor() *Interactor {
	return &Interactor{}
}

// AddListener appends l to the listener list, allocating the list on first use.
// Adding the same listener twice registers it twice. The returned func removes
// this registration; calling it more than once is a no-op.
func (i *Interactor) AddListener(l EventListener) (remove func()) {
	if l == nil {
		return func() {}
	}

	i.mu.Lock()
	if i.listeners == nil {
		i.listeners = make([]listenerEntry, 0, 1)
	}
	i.nextID++
	id := i.nextID
	i.listeners = append(i.listeners, listenerEntry{id: id, listener: l})
	i.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { i.removeListener(id) })
	}
}

func (i *Interactor) removeListener(id uint64) {
	i.mu.Lock()
	defer i.mu.Unlock()

	for idx, entry := range i.listeners {
		if entry.id != id {
			continue
		}
		kept := make([]listenerEntry, 0, len(i.listeners)-1)
		kept = append(kept, i.listeners[:idx]...)
		i.listeners = append(kept, i.listeners[idx+1:]...)
		return
	}
}

// Listeners returns a copy of the registered listeners in notification order.
// It returns nil if no listener was ever registered, and an empty slice if
// listeners were registered and later all removed.
func (i *Interactor) Listeners() []EventListener {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.listeners == nil {
		return nil
	}
	out := make([]EventListener, len(i.listeners))
	for idx, entry := range i.listeners {
		out[idx] = entry.listener
	}
	return out
}

// Broadcast delivers event to every listener registered when the call starts,
// in registration order, on the calling goroutine. Changes made to the list
// by a listener take effect from the next broadcast. A listener may broadcast
// again; the nested call takes its own snapshot. Mutually broadcasting
// listeners recurse without bound and are a caller error.
func (i *Interactor) Broadcast(event entity.Event) {
	i.mu.Lock()
	if len(i.listeners) == 0 {
		i.mu.Unlock()
		return
	}
	snapshot := make([]listenerEntry, len(i.listeners))
	copy(snapshot, i.listeners)
	i.mu.Unlock()

	for _, entry := range snapshot {
		entry.listener.OnEvent(event)
	}
}

// OnEvent re-broadcasts event to this interactor's own listeners, so an
// interactor registered on a child's interactor forwards bubbled events up.
func (i *Interactor) OnEvent(event entity.Event) {
	i.Broadcast(event)
}
