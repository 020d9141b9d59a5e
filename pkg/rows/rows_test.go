package rows

import (
	"hash/maphash"
	"testing"

	"github.com/Mr-Dark-debug/rowkit/pkg/cell"
	"github.com/Mr-Dark-debug/rowkit/pkg/component"
	"github.com/Mr-Dark-debug/rowkit/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func label(text string) CellModel[component.LabelList] {
	return LabelListCell(component.NewLabelList(style.Plain(text)))
}

func button(title string, onTap func()) CellModel[component.Button] {
	return ButtonCell(component.NewButton(component.ButtonPrimary, style.Plain(title), onTap))
}

func texts(t *testing.T, rs []RowModel) []string {
	t.Helper()
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		switch r := r.(type) {
		case LabelListRow:
			out = append(out, r.Model.ViewModel.Texts[0].Text)
		case ButtonRow:
			out = append(out, r.Model.ViewModel.Title.Text)
		case SpacerRow:
			out = append(out, "_")
		default:
			t.Fatalf("unexpected row %T", r)
		}
	}
	return out
}

type opaque struct{ n int }

func (o opaque) Equal(x opaque) bool       { return o == x }
func (o opaque) WriteHash(h *maphash.Hash) { h.WriteByte(byte(o.n)) }

func TestBuilderPreservesOrder(t *testing.T) {
	got := Rows(
		label("A"),
		When(false, func() Part { return label("skipped") }),
		label("B"),
		ForEach([]string{"x", "y"}, func(_ int, s string) Part { return label("C" + s) }),
	)
	assert.Equal(t, []string{"A", "B", "Cx", "Cy"}, texts(t, got))
}

func TestCombinators(t *testing.T) {
	title := "T"
	var missing *string

	got := Rows(
		Optional(&title, func(s string) Part { return label(s) }),
		Optional(missing, func(s string) Part { return label(s) }),
		Either(true, func() Part { return label("first") }, func() Part { return label("second") }),
		Either(false, func() Part { return label("first") }, func() Part { return label("second") }),
		Seq(label("s1"), nil, Seq(label("s2"), Empty())),
		Block{label("b").MakeRowModel()},
		Empty(),
	)
	assert.Equal(t, []string{"T", "first", "second", "s1", "s2", "b"}, texts(t, got))
	assert.NotNil(t, Rows())
	assert.Empty(t, Rows())
}

func TestBuilderObjectDoesNotDeduplicate(t *testing.T) {
	gap := SpacerCell(component.SpacerWithID("gap", 1))
	got := MakeRows(func(b *Builder) {
		b.Add(label("A"), gap)
		for _, s := range []string{"1", "2"} {
			b.Add(label(s))
		}
		b.AddIf(false, label("never"))
		b.AddIf(true, gap, label("A"))
	})
	assert.Equal(t, []string{"A", "_", "1", "2", "_", "A"}, texts(t, got))
	assert.True(t, got[1].Equal(got[4]))

	var b Builder
	b.Add(label("x"))
	snapshot := b.Rows()
	b.Add(label("y"))
	assert.Len(t, snapshot, 1)
	assert.Equal(t, 2, b.Len())
}

func TestEqualityAndHashConsistency(t *testing.T) {
	a := button("Go", func() {}).MakeRowModel()
	b := button("Go", nil).MakeRowModel()
	require.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	insetDiff := button("Go", nil).WithInsets(style.Zero).MakeRowModel()
	cardDiff := button("Go", nil).WithCardStyle(style.NoCard).MakeRowModel()
	titleDiff := button("Stop", nil).MakeRowModel()
	for _, other := range []RowModel{insetDiff, cardDiff, titleDiff} {
		assert.False(t, a.Equal(other))
	}
	assert.NotEqual(t, a.Hash(), insetDiff.Hash())
}

func TestEqualityAcrossVariants(t *testing.T) {
	spacer := SpacerCell(component.SpacerWithID("x", 1)).MakeRowModel()
	labels := label("x").MakeRowModel()
	assert.False(t, spacer.Equal(labels))
	assert.False(t, labels.Equal(spacer))
}

func TestIdentifierIndependentOfValues(t *testing.T) {
	a := button("Go", nil).MakeRowModel()
	b := ButtonCell(component.NewButton(component.ButtonText, style.Plain("Other"), nil).Disabled()).
		WithInsets(style.Zero).MakeRowModel()
	assert.Equal(t, a.CellIdentifier(), b.CellIdentifier())
	assert.Equal(t, "button:component.Button", a.CellIdentifier())

	assert.NotEqual(t, a.CellIdentifier(), label("x").MakeRowModel().CellIdentifier())
	assert.Equal(t, KindButton, a.Kind())
}

func TestModifiersCopy(t *testing.T) {
	base := label("x")
	changed := base.WithInsets(style.Everywhere).WithCardStyle(style.WhiteCornered(style.CornersAll))
	assert.Equal(t, style.Zero, base.Insets)
	assert.Equal(t, style.WhiteCornered(style.CornersNone), base.CardStyle)
	assert.Equal(t, style.Everywhere, changed.Insets)
	assert.False(t, base.Equal(changed))
	assert.True(t, base.Equal(label("x")))
	assert.Equal(t, base.Hash(), label("x").Hash())
}

func TestDefaultPresentation(t *testing.T) {
	assert.Equal(t, style.WhiteCornered(style.CornersBottom), button("Go", nil).CardStyle)
	assert.Equal(t, style.Everywhere, button("Go", nil).Insets)
	assert.Equal(t, style.NoCard, LabelledTextCell(component.LabelledText{}).CardStyle)
	assert.Equal(t, style.WhiteCornered(style.CornersNone), PictureCell(component.Picture{}).CardStyle)
	assert.Equal(t, style.NoCard, Space(3).CardStyle)

	m := MakeCellModel(component.SpacerWithID("a", 1), style.OnlyTop, style.WhiteCornered(style.CornersTop))
	assert.Equal(t, style.OnlyTop, m.Insets)
	assert.Equal(t, style.Zero, NewCellModel(component.SpacerWithID("a", 1)).Insets)
}

func TestUnsupportedViewModelPanics(t *testing.T) {
	assert.PanicsWithValue(t, "rows: no row variant for view-model rows.opaque", func() {
		NewCellModel(opaque{1}).MakeRowModel()
	})
}

func TestConfigureThroughRegistry(t *testing.T) {
	r := cell.NewRegistry()
	taps := 0
	row := button("Go", func() { taps++ }).MakeRowModel()
	r.Register(row.CellIdentifier(), row.NewView)

	c := r.Acquire(row.CellIdentifier())
	row.Configure(c)
	assert.Equal(t, style.WhiteCornered(style.CornersBottom), c.Card())
	assert.Equal(t, style.Everywhere, c.Insets())
	assert.True(t, c.Tap())
	assert.Equal(t, 1, taps)

	for _, rm := range Rows(Space(1), label("x"), LabelledTextCell(component.LabelledText{Text: style.Plain("t")}),
		PictureCell(component.Picture{Name: "p"})) {
		r.Register(rm.CellIdentifier(), rm.NewView)
		rm.Configure(r.Acquire(rm.CellIdentifier()))
	}
	assert.Len(t, r.Identifiers(), 5)
}
