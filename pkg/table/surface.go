package table

import (
	"github.com/Mr-Dark-debug/rowkit/pkg/cell"
	"github.com/Mr-Dark-debug/rowkit/pkg/rows"
)

type slot struct {
	row       rows.RowModel
	container *cell.Container
}

// Surface is the list of row slots backing a Controller. Slots inside the
// visible window hold a configured container; slots outside it hold none.
// A container is never referenced by two slots.
type Surface struct {
	reg   *cell.Registry
	slots []slot
	first int
	last  int
}

type applyCounts struct {
	acquired     int
	reconfigured int
	released     int
}

func newSurface(reg *cell.Registry) *Surface {
	return &Surface{reg: reg, last: -1}
}

func (s *Surface) Len() int { return len(s.slots) }

func (s *Surface) Row(i int) rows.RowModel { return s.slots[i].row }

// Window returns the visible range [first, last). last is -1 when the
// window is unbounded.
func (s *Surface) Window() (first, last int) { return s.first, s.last }

func (s *Surface) inWindow(i int) bool {
	return i >= s.first && (s.last < 0 || i < s.last)
}

// Materialized reports whether row i currently holds a container.
func (s *Surface) Materialized(i int) bool { return s.slots[i].container != nil }

// Container returns the container of row i, acquiring and configuring one
// if the row has none.
func (s *Surface) Container(i int) *cell.Container {
	c, _ := s.materialize(i)
	return c
}

func (s *Surface) materialize(i int) (*cell.Container, bool) {
	sl := &s.slots[i]
	if sl.container != nil {
		return sl.container, false
	}
	c := s.reg.Acquire(sl.row.CellIdentifier())
	sl.row.Configure(c)
	sl.container = c
	return c, true
}

func (s *Surface) release(i int) bool {
	sl := &s.slots[i]
	if sl.container == nil {
		return false
	}
	s.reg.Release(sl.container)
	sl.container = nil
	return true
}

// SetWindow moves the visible range and returns how many containers were
// acquired and released as a result.
func (s *Surface) SetWindow(first, last int) (acquired, released int) {
	if first < 0 {
		first = 0
	}
	s.first, s.last = first, last
	counts := s.sync()
	return counts.acquired, counts.released
}

func (s *Surface) sync() applyCounts {
	var counts applyCounts
	for i := range s.slots {
		if !s.inWindow(i) {
			if s.release(i) {
				counts.released++
			}
			continue
		}
		if _, created := s.materialize(i); created {
			counts.acquired++
		}
	}
	return counts
}

// apply rebuilds the slots for next according to cs. Matched rows keep
// their container untouched, reloaded rows keep it and are reconfigured,
// deleted rows give it back to the registry.
func (s *Surface) apply(cs Changeset, next []rows.RowModel) applyCounts {
	var counts applyCounts
	old := s.slots
	slots := make([]slot, len(next))
	for j, r := range next {
		slots[j].row = r
	}

	carried := make([]bool, len(old))
	for _, m := range cs.Matches {
		slots[m.To].container = old[m.From].container
		carried[m.From] = true
	}
	for _, r := range cs.Reloads {
		c := old[r.From].container
		carried[r.From] = true
		if c == nil {
			continue
		}
		next[r.To].Configure(c)
		slots[r.To].container = c
		counts.reconfigured++
	}
	for i, sl := range old {
		if !carried[i] && sl.container != nil {
			s.reg.Release(sl.container)
			counts.released++
		}
	}

	s.slots = slots
	synced := s.sync()
	counts.acquired += synced.acquired
	counts.released += synced.released
	return counts
}

// clear releases every container and drops all rows.
func (s *Surface) clear() int {
	released := 0
	for i := range s.slots {
		if s.release(i) {
			released++
		}
	}
	s.slots = nil
	return released
}
