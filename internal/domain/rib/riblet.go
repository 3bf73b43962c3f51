package rib

import "github.com/google/uuid"

// Riblet is one node of the navigation tree.
type Riblet struct {
	ID         uuid.UUID
	Router     *Router
	Interactor *Interactor
	Builder    Builder

	// View is an opaque handle owned by the presentation layer.
	View any
}

// NewRiblet composes a unit and binds router to it.
func NewRiblet(router *Router, interactor *Interactor, builder Builder) *Riblet {
	unit := &Riblet{
		ID:         uuid.New(),
		Router:     router,
		Interactor: interactor,
		Builder:    builder,
	}
	router.bind(unit)
	return unit
}

// New composes a unit with a fresh router and interactor.
func New(builder Builder, opts ...RouterOption) *Riblet {
	return NewRiblet(NewRouter(opts...), NewInteractor(), builder)
}

// Equal reports identity: two riblets are equal only if they are the same unit.
func (r *Riblet) Equal(other *Riblet) bool {
	return r == other
}
