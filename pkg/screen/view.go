package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (s *Screen) padding() (top, right, bottom, left int) {
	if s.layout == Unconstrained {
		return 0, 0, 0, 0
	}
	return s.insets.Cells()
}

func (s *Screen) contentWidth() int {
	_, right, _, left := s.padding()
	return s.width - left - right
}

func (s *Screen) viewportHeight() int {
	if s.height <= 0 {
		return 0
	}
	top, _, bottom, _ := s.padding()
	return max(0, s.height-top-bottom)
}

// View draws the rows from Top until the viewport is full, then limits
// the controller window to the rows drawn so that the others go back to
// the pool.
func (s *Screen) View() string {
	width := s.contentWidth()
	if width <= 0 {
		return ""
	}
	limit := s.viewportHeight()
	now := s.clock()
	tr := s.table.Transition()
	animating := tr.Active(now)

	var lines []string
	last := s.top - 1
	for i := s.top; i < s.table.Len(); i++ {
		if limit > 0 && len(lines) >= limit {
			break
		}
		c := s.table.Container(i)
		c.SetHighlighted(i == s.cursor)
		out := c.Render(width)
		last = i
		if out == "" {
			continue
		}
		if animating && tr.Inserted[i] {
			out = lipgloss.NewStyle().Faint(true).Render(out)
		}
		lines = append(lines, strings.Split(out, "\n")...)
	}
	if limit > 0 && len(lines) > limit {
		lines = lines[:limit]
	}

	s.lastVisible = last
	if limit > 0 && len(lines) >= limit {
		s.table.SetWindow(s.top, last+1)
	} else {
		// Room is left below the last row: rows appended later are visible
		// as soon as the update that adds them is applied.
		s.table.SetWindow(s.top, -1)
	}

	body := strings.Join(lines, "\n")
	top, right, bottom, left := s.padding()
	st := lipgloss.NewStyle().Padding(top, right, bottom, left)
	if limit > 0 {
		st = st.Height(s.height)
	}
	return st.Render(body)
}
