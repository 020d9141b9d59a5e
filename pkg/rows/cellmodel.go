package rows

import (
	"fmt"
	"hash/maphash"

	"github.com/Mr-Dark-debug/rowkit/pkg/cell"
	"github.com/Mr-Dark-debug/rowkit/pkg/component"
	"github.com/Mr-Dark-debug/rowkit/pkg/style"
)

// ViewModel is the capability a leaf view-model provides: structural
// equality and a hash consistent with it.
type ViewModel[V any] interface {
	Equal(V) bool
	WriteHash(*maphash.Hash)
}

// seed is shared by every row hash in the process.
var seed = maphash.MakeSeed()

// CellModel is a view-model together with the presentation of its
// container. Modifiers return a copy.
type CellModel[V ViewModel[V]] struct {
	ViewModel V
	Insets    style.EdgeInsets
	CardStyle style.CardStyle
}

// MakeCellModel lifts vm into a CellModel with explicit presentation.
func MakeCellModel[V ViewModel[V]](vm V, insets style.EdgeInsets, card style.CardStyle) CellModel[V] {
	return CellModel[V]{ViewModel: vm, Insets: insets, CardStyle: card}
}

// NewCellModel lifts vm with zero insets and no card.
func NewCellModel[V ViewModel[V]](vm V) CellModel[V] {
	return CellModel[V]{ViewModel: vm}
}

func (m CellModel[V]) WithInsets(insets style.EdgeInsets) CellModel[V] {
	m.Insets = insets
	return m
}

func (m CellModel[V]) WithCardStyle(card style.CardStyle) CellModel[V] {
	m.CardStyle = card
	return m
}

func (m CellModel[V]) Equal(o CellModel[V]) bool {
	return m.Insets == o.Insets && m.CardStyle == o.CardStyle && m.ViewModel.Equal(o.ViewModel)
}

func (m CellModel[V]) WriteHash(h *maphash.Hash) {
	m.ViewModel.WriteHash(h)
	m.Insets.WriteHash(h)
	m.CardStyle.WriteHash(h)
}

func (m CellModel[V]) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	m.WriteHash(&h)
	return h.Sum64()
}

// MakeRowModel wraps m in its row variant. A view-model type with no
// variant is a programming error and panics.
func (m CellModel[V]) MakeRowModel() RowModel {
	switch cm := any(m).(type) {
	case CellModel[component.Spacer]:
		return SpacerRow{Model: cm}
	case CellModel[component.LabelList]:
		return LabelListRow{Model: cm}
	case CellModel[component.LabelledText]:
		return LabelledTextRow{Model: cm}
	case CellModel[component.Picture]:
		return ImageRow{Model: cm}
	case CellModel[component.Button]:
		return ButtonRow{Model: cm}
	default:
		panic(fmt.Sprintf("rows: no row variant for view-model %T", m.ViewModel))
	}
}

func (m CellModel[V]) appendRows(dst []RowModel) []RowModel {
	return append(dst, m.MakeRowModel())
}

func (m CellModel[V]) presentation() cell.Presentation {
	return cell.Presentation{Insets: m.Insets, Card: m.CardStyle}
}

// Per-kind constructors with the default presentation of each component.

// SpacerCell has no insets and no card.
func SpacerCell(s component.Spacer) CellModel[component.Spacer] {
	return NewCellModel(s)
}

// Space is SpacerCell(component.NewSpacer(length)).
func Space(length float64) CellModel[component.Spacer] {
	return SpacerCell(component.NewSpacer(length))
}

// LabelListCell sits inside a card with square corners.
func LabelListCell(l component.LabelList) CellModel[component.LabelList] {
	return MakeCellModel(l, style.Zero, style.WhiteCornered(style.CornersNone))
}

// LabelledTextCell has no insets and no card.
func LabelledTextCell(l component.LabelledText) CellModel[component.LabelledText] {
	return NewCellModel(l)
}

// PictureCell sits inside a card with square corners.
func PictureCell(p component.Picture) CellModel[component.Picture] {
	return MakeCellModel(p, style.Zero, style.WhiteCornered(style.CornersNone))
}

// ButtonCell is padded on every side and closes a card with rounded
// bottom corners.
func ButtonCell(b component.Button) CellModel[component.Button] {
	return MakeCellModel(b, style.Everywhere, style.WhiteCornered(style.CornersBottom))
}
