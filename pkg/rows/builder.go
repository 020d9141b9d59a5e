package rows

import "slices"

// Part is anything that contributes rows to a list, in order: a RowModel,
// a CellModel of a supported kind, a Block, or a combinator result.
type Part interface {
	appendRows(dst []RowModel) []RowModel
}

// Block is a literal sequence of rows.
type Block []RowModel

func (b Block) appendRows(dst []RowModel) []RowModel { return append(dst, b...) }

type seq []Part

func (s seq) appendRows(dst []RowModel) []RowModel {
	for _, p := range s {
		if p != nil {
			dst = p.appendRows(dst)
		}
	}
	return dst
}

// Seq concatenates parts in the order given. Nil parts contribute nothing.
func Seq(parts ...Part) Part { return seq(parts) }

// Empty contributes no rows.
func Empty() Part { return seq(nil) }

// When includes then() only if cond holds. then is not called otherwise.
func When(cond bool, then func() Part) Part {
	if !cond {
		return Empty()
	}
	return then()
}

// Optional includes f(*v) when v is non-nil.
func Optional[T any](v *T, f func(T) Part) Part {
	if v == nil {
		return Empty()
	}
	return f(*v)
}

// Either includes exactly one branch.
func Either(cond bool, first, second func() Part) Part {
	if cond {
		return first()
	}
	return second()
}

// ForEach flattens f over items, preserving iteration order.
func ForEach[T any](items []T, f func(int, T) Part) Part {
	out := make(seq, 0, len(items))
	for i, item := range items {
		out = append(out, f(i, item))
	}
	return out
}

// Rows flattens parts into a row sequence. It never reorders or drops
// duplicates.
func Rows(parts ...Part) []RowModel {
	return seq(parts).appendRows(make([]RowModel, 0, len(parts)))
}

// Builder accumulates rows from ordinary Go control flow.
type Builder struct {
	rows []RowModel
}

func (b *Builder) Add(parts ...Part) *Builder {
	b.rows = seq(parts).appendRows(b.rows)
	return b
}

func (b *Builder) AddIf(cond bool, parts ...Part) *Builder {
	if cond {
		b.Add(parts...)
	}
	return b
}

// Len is the number of rows added so far.
func (b *Builder) Len() int { return len(b.rows) }

// Rows returns a copy of the rows added so far.
func (b *Builder) Rows() []RowModel {
	if b.rows == nil {
		return []RowModel{}
	}
	return slices.Clone(b.rows)
}

// MakeRows runs build against a fresh Builder and returns its rows.
func MakeRows(build func(b *Builder)) []RowModel {
	var b Builder
	build(&b)
	return b.Rows()
}
