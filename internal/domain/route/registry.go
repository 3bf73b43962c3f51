package route

import (
	"fmt"
	"sort"
	"strings"
)

// Spec is a route as written in configuration: a pattern and the name of a
// registered builder factory.
type Spec struct {
	Pattern string
	Builder string
	Title   string
}

// Registry maps builder names to factories.
type Registry struct {
	factories map[string]BuilderFactory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]BuilderFactory)}
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, factory BuilderFactory) *Registry {
	r.factories[strings.ToLower(name)] = factory
	return r
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (BuilderFactory, bool) {
	f, ok := r.factories[strings.ToLower(name)]
	return f, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Table resolves specs against the registry and compiles them in order.
func (r *Registry) Table(specs []Spec) (*Table, error) {
	entries := make([]Entry, 0, len(specs))
	for _, spec := range specs {
		factory, ok := r.Lookup(spec.Builder)
		if !ok {
			return nil, &ConfigurationError{
				Op:      "resolve",
				Pattern: spec.Pattern,
				Err:     fmt.Errorf("%w %q (known: %s)", ErrUnknownBuilder, spec.Builder, strings.Join(r.Names(), ", ")),
			}
		}
		name := spec.Title
		if name == "" {
			name = spec.Pattern
		}
		entries = append(entries, Entry{Name: name, Pattern: spec.Pattern, Factory: factory})
	}
	return NewTable(entries...)
}
