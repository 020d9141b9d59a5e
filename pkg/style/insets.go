package style

import (
	"fmt"
	"hash/maphash"
	"math"

	"github.com/Mr-Dark-debug/rowkit/internal/hashutil"
)

// EdgeInsets is four-sided padding measured in terminal cells: rows for
// Top and Bottom, columns for Left and Right.
type EdgeInsets struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

// Zero is the empty inset.
var Zero = EdgeInsets{}

// Layout holds the paddings the preset insets are built from.
var Layout = struct {
	HorizontalPadding float64
	VerticalPadding   float64
}{
	HorizontalPadding: 2,
	VerticalPadding:   1,
}

// Preset insets.
var (
	NoBottom   = EdgeInsets{Top: Layout.VerticalPadding, Left: Layout.HorizontalPadding, Right: Layout.HorizontalPadding}
	OnlySides  = EdgeInsets{Left: Layout.HorizontalPadding, Right: Layout.HorizontalPadding}
	NoTop      = EdgeInsets{Left: Layout.HorizontalPadding, Bottom: Layout.VerticalPadding, Right: Layout.HorizontalPadding}
	Everywhere = EdgeInsets{Top: Layout.VerticalPadding, Left: Layout.HorizontalPadding, Bottom: Layout.VerticalPadding, Right: Layout.HorizontalPadding}
	OnlyTop    = EdgeInsets{Top: Layout.VerticalPadding}
)

// Insets builds an EdgeInsets in top, left, bottom, right order.
func Insets(top, left, bottom, right float64) EdgeInsets {
	return EdgeInsets{Top: top, Left: left, Bottom: bottom, Right: right}
}

// Uniform returns the same inset on all four sides.
func Uniform(v float64) EdgeInsets {
	return EdgeInsets{Top: v, Left: v, Bottom: v, Right: v}
}

// Cells converts the insets to whole cells in lipgloss padding order
// (top, right, bottom, left). Negative values clamp to zero.
func (e EdgeInsets) Cells() (top, right, bottom, left int) {
	return cells(e.Top), cells(e.Right), cells(e.Bottom), cells(e.Left)
}

// Horizontal is the total column inset.
func (e EdgeInsets) Horizontal() int {
	return cells(e.Left) + cells(e.Right)
}

// Vertical is the total row inset.
func (e EdgeInsets) Vertical() int {
	return cells(e.Top) + cells(e.Bottom)
}

// IsZero reports whether every side rounds to zero cells.
func (e EdgeInsets) IsZero() bool {
	return e.Horizontal() == 0 && e.Vertical() == 0
}

// WriteHash feeds the four sides into h.
func (e EdgeInsets) WriteHash(h *maphash.Hash) {
	hashutil.WriteFloat(h, e.Top)
	hashutil.WriteFloat(h, e.Left)
	hashutil.WriteFloat(h, e.Bottom)
	hashutil.WriteFloat(h, e.Right)
}

func (e EdgeInsets) String() string {
	return fmt.Sprintf("{%g %g %g %g}", e.Top, e.Left, e.Bottom, e.Right)
}

func cells(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return int(math.Round(v))
}
