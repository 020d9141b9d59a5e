package component

import (
	"hash/maphash"
	"math"
	"strings"

	"github.com/Mr-Dark-debug/rowkit/internal/hashutil"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Spacer is an empty row of a fixed height. Every spacer carries an id, so
// two spacers of the same length are only equal when they share it.
type Spacer struct {
	ID         string
	Length     float64
	Background lipgloss.Color
}

// NewSpacer returns a spacer with a fresh random id.
func NewSpacer(length float64) Spacer {
	return Spacer{ID: uuid.NewString(), Length: length}
}

// SpacerWithID returns a spacer whose id is stable across rebuilds, which
// lets the list keep its container when the body is recomputed.
func SpacerWithID(id string, length float64) Spacer {
	return Spacer{ID: id, Length: length}
}

// Colored returns a copy with a background colour.
func (s Spacer) Colored(c lipgloss.Color) Spacer {
	s.Background = c
	return s
}

func (s Spacer) Equal(o Spacer) bool { return s == o }

func (s Spacer) WriteHash(h *maphash.Hash) {
	hashutil.WriteString(h, s.ID)
	hashutil.WriteFloat(h, s.Length)
	hashutil.WriteString(h, string(s.Background))
}

// SpacerView draws Length blank lines.
type SpacerView struct {
	rows       int
	background lipgloss.Color
}

func NewSpacerView() *SpacerView { return &SpacerView{} }

func (v *SpacerView) Configure(s Spacer) {
	v.rows = 0
	if s.Length > 0 {
		v.rows = int(math.Round(s.Length))
	}
	v.background = s.Background
}

// Rows is the configured height in lines.
func (v *SpacerView) Rows() int { return v.rows }

func (v *SpacerView) Render(width int) string {
	if v.rows == 0 || width <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	if v.background != "" {
		line = lipgloss.NewStyle().Background(v.background).Render(line)
	}
	lines := make([]string, v.rows)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
