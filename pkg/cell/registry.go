package cell

import (
	"fmt"
	"maps"
	"slices"
)

// Stats counts container activity for one reuse identifier.
type Stats struct {
	Created    int
	Reused     int
	Live       int
	Pooled     int
	ViewsBuilt int
}

// Registry maps reuse identifiers to content factories and keeps a pool of
// released containers per identifier. It is confined to one goroutine.
type Registry struct {
	factories map[string]Factory
	pools     map[string][]*Container
	stats     map[string]*Stats
	serial    uint64
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		pools:     make(map[string][]*Container),
		stats:     make(map[string]*Stats),
	}
}

// Register associates id with a factory. It returns false, and keeps the
// existing factory, when id is already registered.
func (r *Registry) Register(id string, f Factory) bool {
	if f == nil {
		panic(fmt.Sprintf("cell: nil factory for %q", id))
	}
	if _, ok := r.factories[id]; ok {
		return false
	}
	r.factories[id] = f
	r.stats[id] = &Stats{}
	return true
}

func (r *Registry) IsRegistered(id string) bool {
	_, ok := r.factories[id]
	return ok
}

// Identifiers returns the registered identifiers in sorted order.
func (r *Registry) Identifiers() []string {
	return slices.Sorted(maps.Keys(r.factories))
}

// Acquire returns a pooled container for id, or a new one. Either way a
// fresh content view from the factory is attached. Acquiring an unknown
// id panics.
func (r *Registry) Acquire(id string) *Container {
	f, ok := r.factories[id]
	if !ok {
		panic(fmt.Sprintf("cell: no factory registered for %q", id))
	}
	st := r.stats[id]

	var c *Container
	if pool := r.pools[id]; len(pool) > 0 {
		c = pool[len(pool)-1]
		pool[len(pool)-1] = nil
		r.pools[id] = pool[:len(pool)-1]
		c.pooled = false
		st.Reused++
		st.Pooled--
	} else {
		r.serial++
		c = &Container{serial: r.serial, reuseID: id}
		st.Created++
	}

	c.reset()
	c.attach(f())
	st.ViewsBuilt++
	st.Live++
	return c
}

// Release returns c to its pool. Releasing a container twice panics.
func (r *Registry) Release(c *Container) {
	if c.pooled {
		panic(fmt.Sprintf("cell: %v released twice", c))
	}
	st, ok := r.stats[c.reuseID]
	if !ok {
		panic(fmt.Sprintf("cell: %v does not belong to this registry", c))
	}
	c.pooled = true
	c.reset()
	r.pools[c.reuseID] = append(r.pools[c.reuseID], c)
	st.Live--
	st.Pooled++
}

// Stats returns a snapshot of the counters per identifier.
func (r *Registry) Stats() map[string]Stats {
	out := make(map[string]Stats, len(r.stats))
	for id, st := range r.stats {
		out[id] = *st
	}
	return out
}

// Totals sums Stats over every identifier.
func (r *Registry) Totals() Stats {
	var t Stats
	for _, st := range r.stats {
		t.Created += st.Created
		t.Reused += st.Reused
		t.Live += st.Live
		t.Pooled += st.Pooled
		t.ViewsBuilt += st.ViewsBuilt
	}
	return t
}
