package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Mr-Dark-debug/rowkit/pkg/table"
	"github.com/Mr-Dark-debug/rowkit/pkg/timeutil"
)

const maxEditLines = 8

// renderInspector renders the side panel: the last report, its edits, the
// container pool and the recent updates.
func renderInspector(m *Model, width, height int) string {
	inner := width - 3 // border and padding

	lines := []string{panelTitleStyle.Render("Last update"), ""}

	r, ok := m.activity.Last()
	if !ok {
		lines = append(lines, dimStyle.Render("No updates yet."))
	} else {
		lines = append(lines, detailRow("Seq", fmt.Sprintf("%d", r.Seq)))
		lines = append(lines, detailRow("Rows", fmt.Sprintf("%d", r.Rows)))
		lines = append(lines, detailRow("Animated", animatedLabel(r)))
		lines = append(lines, detailRow("Changes", r.Changes.String()))
		lines = append(lines, detailRow("Containers",
			fmt.Sprintf("+%d ~%d -%d", r.Acquired, r.Reconfigured, r.Released)))
		lines = append(lines, detailRow("Elapsed", timeutil.FormatMicros(r.Elapsed.Microseconds())))
		if len(r.Registered) > 0 {
			lines = append(lines, detailRow("Registered", truncate(strings.Join(r.Registered, ", "), inner-12)))
		}

		if edits := r.Changes.Edits(); len(edits) > 0 {
			lines = append(lines, "", detailSectionStyle.Render("Edits"))
			for i, e := range edits {
				if i == maxEditLines {
					lines = append(lines, dimStyle.Render(fmt.Sprintf("  … %d more", len(edits)-i)))
					break
				}
				lines = append(lines, truncate(renderEdit(e), inner))
			}
		}
	}

	if stats := m.screen.Controller().Registry().Stats(); len(stats) > 0 {
		lines = append(lines, "", detailSectionStyle.Render("Pool"))
		ids := make([]string, 0, len(stats))
		for id := range stats {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		for _, id := range ids {
			st := stats[id]
			lines = append(lines, truncate(fmt.Sprintf("%-14s live %d pooled %d",
				truncate(id, 14), st.Live, st.Pooled), inner))
		}
	}

	if recent := m.activity.Recent(); len(recent) > 1 {
		lines = append(lines, "", detailSectionStyle.Render("Recent"))
		for _, r := range recent[1:] {
			mark := " "
			if r.Animated {
				mark = animatedStyle.Render("◆")
			}
			lines = append(lines, mark+" "+dimStyle.Render(truncate(
				fmt.Sprintf("#%d %s", r.Seq, r.Changes), inner-2)))
		}
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	return panelStyle.Width(width - 1).Height(height).Render(strings.Join(lines, "\n"))
}

func animatedLabel(r table.Report) string {
	switch {
	case r.Animated:
		return animatedStyle.Render("yes")
	case r.Requested:
		return "no (first population)"
	default:
		return "no"
	}
}

func renderEdit(e table.Edit) string {
	switch e.Op {
	case table.OpInsert:
		return editInsertStyle.Render(fmt.Sprintf("+ %d %s", e.To, e.Identifier))
	case table.OpDelete:
		return editDeleteStyle.Render(fmt.Sprintf("- %d %s", e.From, e.Identifier))
	default:
		return editMoveStyle.Render(fmt.Sprintf("~ %d→%d %s", e.From, e.To, e.Identifier))
	}
}

func detailRow(label, value string) string {
	return detailLabelStyle.Render(fmt.Sprintf("%-10s", label)) + " " + detailValueStyle.Render(value)
}
