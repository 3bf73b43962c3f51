package route

import (
	"net/url"

	"go.uber.org/atomic"
)

// Swappable serves matches from the most recently stored Table.
// Tables themselves stay immutable; a reload stores a new one, and lookups
// already running keep using the table they loaded.
type Swappable struct {
	current atomic.Pointer[Table]
}

// NewSwappable creates a Swappable serving t.
func NewSwappable(t *Table) *Swappable {
	s := &Swappable{}
	s.current.Store(t)
	return s
}

// Store replaces the served table.
func (s *Swappable) Store(t *Table) {
	s.current.Store(t)
}

// Load returns the served table.
func (s *Swappable) Load() *Table {
	return s.current.Load()
}

// Match looks up target in the served table.
func (s *Swappable) Match(target *url.URL) (Match, bool) {
	return s.current.Load().Match(target)
}
