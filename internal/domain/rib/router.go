package rib

import (
	"errors"
	"sync"

	"github.com/bnema/riblet/internal/domain/entity"
)

var (
	// ErrDuplicateContext is returned by a strict router when the context is already occupied.
	ErrDuplicateContext = errors.New("rib: context already has a child")

	// ErrNilRiblet is returned when attaching a nil riblet.
	ErrNilRiblet = errors.New("rib: nil riblet")
)

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithStrictContexts makes AttachChild reject occupied contexts with
// ErrDuplicateContext instead of silently replacing the child.
func WithStrictContexts() RouterOption {
	return func(r *Router) {
		r.strict = true
	}
}

// Router is the sole owner of a unit's children.
type Router struct {
	mu       sync.Mutex
	riblet   *Riblet
	children map[entity.Context]*Riblet
	strict   bool
}

// NewRouter creates an empty router.
func NewRouter(opts ...RouterOption) *Router {
	r := &Router{children: make(map[entity.Context]*Riblet)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Riblet returns the unit this router routes for, or nil before NewRiblet binds it.
func (r *Router) Riblet() *Riblet {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.riblet
}

// Strict reports whether the router rejects occupied contexts.
func (r *Router) Strict() bool {
	return r.strict
}

// AttachChild stores child under c. If c is occupied the previous child is
// replaced and returned; it gets no teardown notification. A strict router
// returns ErrDuplicateContext instead and keeps the previous child.
func (r *Router) AttachChild(c entity.Context, child *Riblet) (*Riblet, error) {
	if child == nil {
		return nil, ErrNilRiblet
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	previous, occupied := r.children[c]
	if occupied && r.strict {
		return nil, ErrDuplicateContext
	}
	r.children[c] = child
	return previous, nil
}

// DetachChild removes the child at c and returns it. Absent contexts are a
// no-op returning nil. Grandchildren are left attached to the detached child.
func (r *Router) DetachChild(c entity.Context) *Riblet {
	r.mu.Lock()
	defer r.mu.Unlock()

	child, ok := r.children[c]
	if !ok {
		return nil
	}
	delete(r.children, c)
	return child
}

// ChildAt returns the child at c, or nil.
func (r *Router) ChildAt(c entity.Context) *Riblet {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.children[c]
}

// Children returns a snapshot of the child map.
func (r *Router) Children() map[entity.Context]*Riblet {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[entity.Context]*Riblet, len(r.children))
	for c, child := range r.children {
		out[c] = child
	}
	return out
}

// Len returns the number of attached children.
func (r *Router) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.children)
}

func (r *Router) bind(unit *Riblet) {
	r.mu.Lock()
	r.riblet = unit
	r.mu.Unlock()
}
