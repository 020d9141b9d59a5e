package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/rowkit/pkg/timeutil"
)

// renderHeader produces the top bar:
//
//	ROWKIT │ Example │ 13 rows │ update 4
func renderHeader(m *Model) string {
	sep := headerSepStyle.Render(" │ ")

	parts := []string{headerBrandStyle.Render("ROWKIT")}
	if m.title != "" {
		parts = append(parts, sep, headerMetaStyle.Render(m.title))
	}
	parts = append(parts, sep, headerMetaStyle.Render(
		fmt.Sprintf("%d rows", m.screen.Controller().Len())))
	if n := m.activity.Total(); n > 0 {
		parts = append(parts, sep, headerMetaStyle.Render(fmt.Sprintf("update %d", n)))
	}

	return headerBarStyle.Width(m.width).Render(strings.Join(parts, ""))
}

// renderFooter produces the bottom bar: the search field while searching,
// otherwise the status line and keyboard hints.
func renderFooter(m *Model) string {
	var left, right string

	if m.searchMode {
		cursor := searchCursorStyle.Render(" ")
		left = searchBarStyle.Render(fmt.Sprintf("/ %s%s", m.searchQuery, cursor))
		right = renderHints([]hint{
			{"enter", "done"},
			{"esc", "clear"},
		})
	} else {
		if status := statusLine(m); status != "" {
			left = statusStyle.Render(status)
		}
		hints := []hint{
			{"↑↓", "select"},
			{"enter", "tap"},
		}
		if m.filter != nil {
			hints = append(hints, hint{"/", "filter"})
		}
		hints = append(hints, hint{"i", "inspector"}, hint{"q", "quit"})
		right = renderHints(hints)
	}

	gap := max(0, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		MaxWidth(m.width).
		Render(bar)
}

// statusLine summarizes the active filter and the last update.
func statusLine(m *Model) string {
	var parts []string
	if m.filter != nil && m.filter.Query() != "" {
		parts = append(parts, fmt.Sprintf("filter %q", m.filter.Query()))
	}
	if r, ok := m.activity.Last(); ok {
		parts = append(parts, fmt.Sprintf("#%d %s in %s",
			r.Seq, r.Changes, timeutil.FormatMicros(r.Elapsed.Microseconds())))
	}
	return strings.Join(parts, "  ")
}

type hint struct {
	key  string
	desc string
}

func renderHints(hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			hintKeyStyle.Render(h.key)+" "+hintDescStyle.Render(h.desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
