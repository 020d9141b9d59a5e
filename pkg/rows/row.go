package rows

import (
	"hash/maphash"
	"reflect"

	"github.com/Mr-Dark-debug/rowkit/pkg/cell"
	"github.com/Mr-Dark-debug/rowkit/pkg/component"
)

// Kind tags a row variant.
type Kind uint8

const (
	KindSpacer Kind = iota
	KindLabelList
	KindLabelledText
	KindImage
	KindButton
)

func (k Kind) String() string {
	switch k {
	case KindSpacer:
		return "spacer"
	case KindLabelList:
		return "labelList"
	case KindLabelledText:
		return "labelledText"
	case KindImage:
		return "image"
	case KindButton:
		return "button"
	default:
		return "unknown"
	}
}

// RowModel is one row of a list. The set of implementations is closed.
type RowModel interface {
	Part

	Kind() Kind
	// CellIdentifier is the reuse identifier of the row's container kind.
	// It depends on the variant and view-model type, never on values.
	CellIdentifier() string
	Equal(RowModel) bool
	Hash() uint64
	// NewView builds a fresh content view for this kind.
	NewView() cell.View
	// Configure decorates c and configures its content with the row.
	Configure(c *cell.Container)

	row()
}

func identifierFor[V any](k Kind) string {
	return k.String() + ":" + reflect.TypeFor[V]().String()
}

var (
	spacerID       = identifierFor[component.Spacer](KindSpacer)
	labelListID    = identifierFor[component.LabelList](KindLabelList)
	labelledTextID = identifierFor[component.LabelledText](KindLabelledText)
	imageID        = identifierFor[component.Picture](KindImage)
	buttonID       = identifierFor[component.Button](KindButton)
)

func hashRow[V ViewModel[V]](k Kind, m CellModel[V]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(k))
	m.WriteHash(&h)
	return h.Sum64()
}

func configure[V ViewModel[V]](c *cell.Container, m CellModel[V]) {
	cell.Configure(c, m.ViewModel, m.presentation())
}

// ────────────────────────────────────────────────────────────
// Variants
// ────────────────────────────────────────────────────────────

type SpacerRow struct{ Model CellModel[component.Spacer] }

func (r SpacerRow) Kind() Kind                  { return KindSpacer }
func (r SpacerRow) CellIdentifier() string      { return spacerID }
func (r SpacerRow) Hash() uint64                { return hashRow(KindSpacer, r.Model) }
func (r SpacerRow) NewView() cell.View          { return component.NewSpacerView() }
func (r SpacerRow) Configure(c *cell.Container) { configure(c, r.Model) }
func (r SpacerRow) Equal(o RowModel) bool {
	x, ok := o.(SpacerRow)
	return ok && r.Model.Equal(x.Model)
}
func (r SpacerRow) appendRows(dst []RowModel) []RowModel { return append(dst, r) }
func (SpacerRow) row()                                   {}

type LabelListRow struct{ Model CellModel[component.LabelList] }

func (r LabelListRow) Kind() Kind                  { return KindLabelList }
func (r LabelListRow) CellIdentifier() string      { return labelListID }
func (r LabelListRow) Hash() uint64                { return hashRow(KindLabelList, r.Model) }
func (r LabelListRow) NewView() cell.View          { return component.NewLabelListView() }
func (r LabelListRow) Configure(c *cell.Container) { configure(c, r.Model) }
func (r LabelListRow) Equal(o RowModel) bool {
	x, ok := o.(LabelListRow)
	return ok && r.Model.Equal(x.Model)
}
func (r LabelListRow) appendRows(dst []RowModel) []RowModel { return append(dst, r) }
func (LabelListRow) row()                                   {}

type LabelledTextRow struct{ Model CellModel[component.LabelledText] }

func (r LabelledTextRow) Kind() Kind                  { return KindLabelledText }
func (r LabelledTextRow) CellIdentifier() string      { return labelledTextID }
func (r LabelledTextRow) Hash() uint64                { return hashRow(KindLabelledText, r.Model) }
func (r LabelledTextRow) NewView() cell.View          { return component.NewLabelledTextView() }
func (r LabelledTextRow) Configure(c *cell.Container) { configure(c, r.Model) }
func (r LabelledTextRow) Equal(o RowModel) bool {
	x, ok := o.(LabelledTextRow)
	return ok && r.Model.Equal(x.Model)
}
func (r LabelledTextRow) appendRows(dst []RowModel) []RowModel { return append(dst, r) }
func (LabelledTextRow) row()                                   {}

type ImageRow struct{ Model CellModel[component.Picture] }

func (r ImageRow) Kind() Kind                  { return KindImage }
func (r ImageRow) CellIdentifier() string      { return imageID }
func (r ImageRow) Hash() uint64                { return hashRow(KindImage, r.Model) }
func (r ImageRow) NewView() cell.View          { return component.NewImageView() }
func (r ImageRow) Configure(c *cell.Container) { configure(c, r.Model) }
func (r ImageRow) Equal(o RowModel) bool {
	x, ok := o.(ImageRow)
	return ok && r.Model.Equal(x.Model)
}
func (r ImageRow) appendRows(dst []RowModel) []RowModel { return append(dst, r) }
func (ImageRow) row()                                   {}

type ButtonRow struct{ Model CellModel[component.Button] }

func (r ButtonRow) Kind() Kind                  { return KindButton }
func (r ButtonRow) CellIdentifier() string      { return buttonID }
func (r ButtonRow) Hash() uint64                { return hashRow(KindButton, r.Model) }
func (r ButtonRow) NewView() cell.View          { return component.NewButtonView() }
func (r ButtonRow) Configure(c *cell.Container) { configure(c, r.Model) }
func (r ButtonRow) Equal(o RowModel) bool {
	x, ok := o.(ButtonRow)
	return ok && r.Model.Equal(x.Model)
}
func (r ButtonRow) appendRows(dst []RowModel) []RowModel { return append(dst, r) }
func (ButtonRow) row()                                   {}
