package entity

import (
	"fmt"
	"hash/fnv"
)

// Context identifies a child slot in a router's child map.
// It carries no meaning beyond its hash value: two contexts are equal
// iff their hashes are equal, which also makes Context a valid map key.
type Context struct {
	hash uint64
}

// NewContext returns the context with the given hash value.
func NewContext(hash uint64) Context {
	return Context{hash: hash}
}

// ContextFor derives a context from a string key using FNV-1a.
// Equal keys always yield equal contexts.
func ContextFor(key string) Context {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return Context{hash: h.Sum64()}
}

// Hash returns the context's hash value.
func (c Context) Hash() uint64 {
	return c.hash
}

// Equal reports whether both contexts address the same slot.
func (c Context) Equal(other Context) bool {
	return c.hash == other.hash
}

func (c Context) String() string {
	return fmt.Sprintf("ctx:%016x", c.hash)
}
