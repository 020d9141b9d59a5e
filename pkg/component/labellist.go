package component

import (
	"hash/maphash"
	"math"
	"strings"

	"github.com/Mr-Dark-debug/rowkit/internal/hashutil"
	"github.com/Mr-Dark-debug/rowkit/pkg/style"
	"github.com/charmbracelet/lipgloss"
)

// LabelList is a vertical stack of styled texts. Spacing is the number of
// blank lines between consecutive texts.
type LabelList struct {
	Spacing float64
	Insets  style.EdgeInsets
	Texts   []style.StyledString
}

// NewLabelList stacks texts with no spacing and no insets.
func NewLabelList(texts ...style.StyledString) LabelList {
	return LabelList{Texts: texts}
}

// Spaced returns a copy with the given spacing.
func (l LabelList) Spaced(spacing float64) LabelList {
	l.Spacing = spacing
	return l
}

// Inset returns a copy with the given inner insets.
func (l LabelList) Inset(insets style.EdgeInsets) LabelList {
	l.Insets = insets
	return l
}

func (l LabelList) Equal(o LabelList) bool {
	if l.Spacing != o.Spacing || l.Insets != o.Insets || len(l.Texts) != len(o.Texts) {
		return false
	}
	for i := range l.Texts {
		if l.Texts[i] != o.Texts[i] {
			return false
		}
	}
	return true
}

func (l LabelList) WriteHash(h *maphash.Hash) {
	hashutil.WriteFloat(h, l.Spacing)
	l.Insets.WriteHash(h)
	hashutil.WriteInt(h, int64(len(l.Texts)))
	for _, t := range l.Texts {
		t.WriteHash(h)
	}
}

// LabelListView renders a LabelList. Labels are rebuilt on every configure.
type LabelListView struct {
	spacing int
	insets  style.EdgeInsets
	labels  []style.StyledString
}

func NewLabelListView() *LabelListView { return &LabelListView{} }

func (v *LabelListView) Configure(l LabelList) {
	v.spacing = 0
	if l.Spacing > 0 {
		v.spacing = int(math.Round(l.Spacing))
	}
	v.insets = l.Insets
	v.labels = append(v.labels[:0], l.Texts...)
}

// Labels returns the texts currently shown.
func (v *LabelListView) Labels() []style.StyledString { return v.labels }

func (v *LabelListView) Render(width int) string {
	top, right, bottom, left := v.insets.Cells()
	inner := width - left - right
	if inner <= 0 || len(v.labels) == 0 {
		return ""
	}

	gap := strings.Repeat("\n", v.spacing)
	parts := make([]string, 0, len(v.labels))
	for _, label := range v.labels {
		parts = append(parts, label.Render(inner))
	}
	body := strings.Join(parts, "\n"+gap)
	return lipgloss.NewStyle().Padding(top, right, bottom, left).Render(body)
}
