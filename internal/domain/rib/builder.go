package rib

// Builder constructs a fully wired unit with no parent linkage.
// Every call returns a new unit; builders keep no cache.
type Builder interface {
	Build() *Riblet
}

// BuilderFunc adapts a function to Builder.
type BuilderFunc func() *Riblet

// Build calls f.
func (f BuilderFunc) Build() *Riblet {
	return f()
}

// BuildWithParent builds a unit and registers parent as a listener on the
// new unit's interactor, so its events bubble to parent. A nil parent
// behaves like b.Build().
func BuildWithParent(b Builder, parent EventListener) *Riblet {
	unit := b.Build()
	if unit != nil && parent != nil {
		unit.Interactor.AddListener(parent)
	}
	return unit
}
