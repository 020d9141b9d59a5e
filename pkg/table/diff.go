package table

import (
	"fmt"
	"sort"

	"github.com/Mr-Dark-debug/rowkit/pkg/rows"
)

// Op is the kind of a single edit.
type Op uint8

const (
	OpDelete Op = iota
	OpInsert
	OpMove
)

func (o Op) String() string {
	switch o {
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	case OpMove:
		return "move"
	default:
		return fmt.Sprintf("op(%d)", o)
	}
}

// Edit is one operation of a changeset. From is an index into the old
// sequence and To an index into the new one; the unused side is -1.
type Edit struct {
	Op         Op
	From       int
	To         int
	Identifier string
}

// Pair links a row of the old sequence to a row of the new one.
type Pair struct {
	From int
	To   int
}

// Changeset is the difference between two row sequences.
//
// Deletes and Inserts hold every unmatched old and new index. Matches
// holds every pair of equal rows, Moves the subset that changed relative
// order. Reloads pairs a delete with an insert that land in the same place
// and share a cell identifier; the list reuses that container and only
// reconfigures it.
type Changeset struct {
	Deletes []int
	Inserts []int
	Moves   []Pair
	Matches []Pair
	Reloads []Pair

	edits []Edit
}

// IsEmpty reports whether old and new were equal element by element.
func (c Changeset) IsEmpty() bool {
	return len(c.Deletes) == 0 && len(c.Inserts) == 0 && len(c.Moves) == 0
}

// Edits returns the operations in apply order: deletes from the highest
// old index down, inserts from the lowest new index up, then moves.
func (c Changeset) Edits() []Edit {
	return c.edits
}

func (c Changeset) String() string {
	return fmt.Sprintf("-%d +%d ~%d reload %d", len(c.Deletes), len(c.Inserts), len(c.Moves), len(c.Reloads))
}

// Diff computes the changeset from old to next. Rows are the same item only
// when they are equal. When equal rows repeat, the k-th occurrence in old
// matches the k-th occurrence in next. Moves are the matched rows outside a
// longest increasing run of old indices, so [A B C] -> [A C B] moves only C.
func Diff(old, next []rows.RowModel) Changeset {
	var cs Changeset

	buckets := make(map[uint64][]int, len(old))
	for i, r := range old {
		h := r.Hash()
		buckets[h] = append(buckets[h], i)
	}

	oldTaken := make([]bool, len(old))
	newMatch := make([]int, len(next))
	for j, r := range next {
		newMatch[j] = -1
		h := r.Hash()
		bucket := buckets[h]
		for k, i := range bucket {
			if old[i].Equal(r) {
				newMatch[j] = i
				oldTaken[i] = true
				buckets[h] = append(bucket[:k:k], bucket[k+1:]...)
				break
			}
		}
	}

	for j, i := range newMatch {
		if i >= 0 {
			cs.Matches = append(cs.Matches, Pair{From: i, To: j})
		} else {
			cs.Inserts = append(cs.Inserts, j)
		}
	}
	for i, taken := range oldTaken {
		if !taken {
			cs.Deletes = append(cs.Deletes, i)
		}
	}

	oldOrder := make([]int, len(cs.Matches))
	for k, m := range cs.Matches {
		oldOrder[k] = m.From
	}
	stable := make([]bool, len(cs.Matches))
	for _, k := range longestIncreasing(oldOrder) {
		stable[k] = true
	}
	var anchors []Pair
	for k, m := range cs.Matches {
		if stable[k] {
			anchors = append(anchors, m)
		} else {
			cs.Moves = append(cs.Moves, m)
		}
	}

	cs.Reloads = pairReloads(old, next, cs.Deletes, cs.Inserts, anchors)
	cs.edits = buildEdits(old, next, cs)
	return cs
}

// longestIncreasing returns the positions in seq of one longest strictly
// increasing subsequence, found by patience sorting.
func longestIncreasing(seq []int) []int {
	if len(seq) == 0 {
		return nil
	}
	tops := make([]int, 0, len(seq))
	prev := make([]int, len(seq))
	for i, v := range seq {
		p := sort.Search(len(tops), func(k int) bool { return seq[tops[k]] >= v })
		if p > 0 {
			prev[i] = tops[p-1]
		} else {
			prev[i] = -1
		}
		if p == len(tops) {
			tops = append(tops, i)
		} else {
			tops[p] = i
		}
	}

	out := make([]int, len(tops))
	for k, i := len(tops)-1, tops[len(tops)-1]; k >= 0; k, i = k-1, prev[i] {
		out[k] = i
	}
	return out
}

// pairReloads matches deletes with inserts that sit between the same two
// stable anchors and share a cell identifier, in index order.
func pairReloads(old, next []rows.RowModel, deletes, inserts []int, anchors []Pair) []Pair {
	if len(deletes) == 0 || len(inserts) == 0 {
		return nil
	}
	gapOld := func(i int) int {
		return sort.Search(len(anchors), func(k int) bool { return anchors[k].From > i })
	}
	gapNew := func(j int) int {
		return sort.Search(len(anchors), func(k int) bool { return anchors[k].To > j })
	}

	used := make([]bool, len(deletes))
	var out []Pair
	for _, j := range inserts {
		g, id := gapNew(j), next[j].CellIdentifier()
		for k, i := range deletes {
			if used[k] || gapOld(i) != g || old[i].CellIdentifier() != id {
				continue
			}
			used[k] = true
			out = append(out, Pair{From: i, To: j})
			break
		}
	}
	return out
}

func buildEdits(old, next []rows.RowModel, cs Changeset) []Edit {
	edits := make([]Edit, 0, len(cs.Deletes)+len(cs.Inserts)+len(cs.Moves))
	for k := len(cs.Deletes) - 1; k >= 0; k-- {
		i := cs.Deletes[k]
		edits = append(edits, Edit{Op: OpDelete, From: i, To: -1, Identifier: old[i].CellIdentifier()})
	}
	for _, j := range cs.Inserts {
		edits = append(edits, Edit{Op: OpInsert, From: -1, To: j, Identifier: next[j].CellIdentifier()})
	}
	for _, m := range cs.Moves {
		edits = append(edits, Edit{Op: OpMove, From: m.From, To: m.To, Identifier: next[m.To].CellIdentifier()})
	}
	return edits
}
