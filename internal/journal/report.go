package journal

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Mr-Dark-debug/rowkit/pkg/timeutil"
)

// Hotspot is an update whose edit count stands out from the rest of its
// session.
type Hotspot struct {
	Seq      int64   `json:"seq"`
	At       int64   `json:"at"`
	Edits    int     `json:"edits"`
	Rows     int     `json:"rows"`
	ZScore   float64 `json:"z_score"`
	Severity string  `json:"severity"` // "medium" or "high"
}

// Report is the summary of one session.
type Report struct {
	Session     *Session      `json:"session"`
	GeneratedAt string        `json:"generated_at"`
	Stats       *SessionStats `json:"stats"`

	// ReuseRatio is reconfigured / (reconfigured + acquired): the share of
	// changed rows whose container was updated in place.
	ReuseRatio    float64   `json:"reuse_ratio"`
	AnimatedRatio float64   `json:"animated_ratio"`
	Hotspots      []Hotspot `json:"hotspots"`
	Warnings      []string  `json:"warnings"`
}

// Summarize builds the report of a session from the store.
func Summarize(store Store, sessionID string) (*Report, error) {
	sess, err := store.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	stats, err := store.SessionStats(sessionID)
	if err != nil {
		return nil, fmt.Errorf("gathering session stats: %w", err)
	}
	updates, err := store.ListUpdates(sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing updates: %w", err)
	}

	report := &Report{
		Session:     sess,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Stats:       stats,
		Hotspots:    DetectHotspots(updates),
	}
	if n := stats.Reconfigured + stats.Acquired; n > 0 {
		report.ReuseRatio = float64(stats.Reconfigured) / float64(n)
	}
	if stats.Updates > 0 {
		report.AnimatedRatio = float64(stats.AnimatedUpdates) / float64(stats.Updates)
	}

	for _, h := range report.Hotspots {
		if h.Severity == "high" {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("update %d applied %d edits to %d rows (z-score %.2f); consider updating fewer rows at once",
					h.Seq, h.Edits, h.Rows, h.ZScore))
		}
	}
	if stats.Updates > 0 && stats.Acquired > 0 && stats.Reconfigured == 0 {
		report.Warnings = append(report.Warnings,
			"no container was updated in place; every change went through the pool")
	}
	return report, nil
}

// DetectHotspots returns the updates whose edit count has a z-score above
// 2 within the given updates, highest first. Fewer than three updates or a
// constant edit count yield none.
func DetectHotspots(updates []*Update) []Hotspot {
	if len(updates) < 3 {
		return nil
	}

	var sum, sumSq float64
	for _, u := range updates {
		n := float64(u.EditCount())
		sum += n
		sumSq += n * n
	}
	count := float64(len(updates))
	mean := sum / count
	stddev := math.Sqrt(sumSq/count - mean*mean)
	if stddev == 0 {
		return nil
	}

	var hotspots []Hotspot
	for _, u := range updates {
		z := (float64(u.EditCount()) - mean) / stddev
		if z <= 2.0 {
			continue
		}
		severity := "medium"
		if z > 3.0 {
			severity = "high"
		}
		hotspots = append(hotspots, Hotspot{
			Seq:      u.Seq,
			At:       u.At,
			Edits:    u.EditCount(),
			Rows:     u.RowCount,
			ZScore:   math.Round(z*100) / 100,
			Severity: severity,
		})
	}

	sort.Slice(hotspots, func(i, j int) bool {
		return hotspots[i].ZScore > hotspots[j].ZScore
	})
	return hotspots
}

// FormatReport renders a report as markdown.
func FormatReport(report *Report) string {
	var b strings.Builder

	b.WriteString("# rowkit session report\n\n")
	fmt.Fprintf(&b, "**Session:** `%s`\n", report.Session.SessionID)
	fmt.Fprintf(&b, "**Screen:** %s\n", report.Session.Screen)
	fmt.Fprintf(&b, "**Started:** %s\n", timeutil.FormatTimestampFull(report.Session.StartedAt))
	var ended int64
	if report.Session.EndedAt != nil {
		ended = *report.Session.EndedAt
	}
	fmt.Fprintf(&b, "**Length:** %s\n", timeutil.FormatSpan(report.Session.StartedAt, ended, time.Now()))
	fmt.Fprintf(&b, "**Generated:** %s\n\n", report.GeneratedAt)

	if s := report.Stats; s != nil {
		b.WriteString("## Updates\n\n")
		b.WriteString("| Metric | Value |\n")
		b.WriteString("|--------|-------|\n")
		fmt.Fprintf(&b, "| Updates | %d |\n", s.Updates)
		fmt.Fprintf(&b, "| Animated | %d (%.0f%%) |\n", s.AnimatedUpdates, report.AnimatedRatio*100)
		fmt.Fprintf(&b, "| Rows (last) | %d |\n", s.LastRowCount)
		fmt.Fprintf(&b, "| Inserts | %d |\n", s.Inserts)
		fmt.Fprintf(&b, "| Deletes | %d |\n", s.Deletes)
		fmt.Fprintf(&b, "| Moves | %d |\n", s.Moves)
		fmt.Fprintf(&b, "| Reloads | %d |\n", s.Reloads)
		fmt.Fprintf(&b, "| Containers acquired | %d |\n", s.Acquired)
		fmt.Fprintf(&b, "| Containers reconfigured | %d |\n", s.Reconfigured)
		fmt.Fprintf(&b, "| Containers released | %d |\n", s.Released)
		fmt.Fprintf(&b, "| In-place ratio | %.2f |\n", report.ReuseRatio)
		fmt.Fprintf(&b, "| Total apply time | %s |\n", timeutil.FormatMicros(s.TotalElapsedUs))
		fmt.Fprintf(&b, "| Slowest apply | %s |\n\n", timeutil.FormatMicros(s.MaxElapsedUs))
	}

	if len(report.Hotspots) > 0 {
		b.WriteString("## Churn hotspots\n\n")
		b.WriteString("| Seq | At | Edits | Rows | Z-Score | Severity |\n")
		b.WriteString("|-----|----|-------|------|---------|----------|\n")
		for _, h := range report.Hotspots {
			fmt.Fprintf(&b, "| %d | %s | %d | %d | %.2f | %s |\n",
				h.Seq, timeutil.FormatTimestamp(h.At), h.Edits, h.Rows, h.ZScore, h.Severity)
		}
		b.WriteString("\n")
	}

	if len(report.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range report.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}

	return b.String()
}
