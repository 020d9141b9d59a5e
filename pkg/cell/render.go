package cell

import (
	"github.com/Mr-Dark-debug/rowkit/pkg/style"
	"github.com/charmbracelet/lipgloss"
)

// Render draws the container at the given width: card border per corner
// mask, background, insets, then content. A container with nothing to
// show renders as the empty string and takes no lines.
func (c *Container) Render(width int) string {
	if width <= 0 || c.content == nil {
		return ""
	}

	borderCols := 0
	if c.card.IsCard() {
		borderCols = 2
	}
	top, right, bottom, left := c.insets.Cells()
	inner := width - borderCols - left - right
	if inner < 1 {
		return ""
	}

	body := c.content.Render(inner)
	if body == "" && c.insets.IsZero() && !c.card.IsCard() {
		return ""
	}

	s := lipgloss.NewStyle().
		Padding(top, right, bottom, left).
		Width(width - borderCols)
	if c.card.IsCard() {
		mask := c.card.Corners()
		s = s.Border(lipgloss.RoundedBorder(), mask.RoundsTop(), true, mask.RoundsBottom(), true).
			BorderForeground(style.ColorCardBorder)
	}
	switch {
	case c.highlighted:
		s = s.Background(style.ColorHighlight)
	case c.background != style.ColorClear:
		s = s.Background(c.background)
	}
	return s.Render(body)
}
