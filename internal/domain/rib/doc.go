// Package rib provides the navigation tree: riblets composed of a Router,
// an Interactor and the Builder that created them.
//
// A Router owns its children keyed by entity.Context. An Interactor holds an
// ordered listener list and broadcasts events synchronously to a snapshot of
// it. A child is linked to its parent only through a listener registration on
// the child's interactor, never through an owning reference.
//
// Router and Interactor are safe to call from any goroutine, but callers are
// expected to confine tree mutation to one control goroutine. Listeners run
// without any lock held, so they may freely add or remove listeners and
// broadcast further events.
//
// Detaching a child neither tears down its own children nor cancels work its
// interactor started; cascading teardown is the caller's job.
package rib
