// Package timeutil formats the timestamps and durations that rowkit keeps
// as integers: journal times are Unix nanoseconds, update costs are
// microseconds.
package timeutil

import (
	"fmt"
	"time"
)

// FromNano converts a Unix nanosecond timestamp to time.Time.
func FromNano(ns int64) time.Time {
	return time.Unix(0, ns)
}

// FormatTimestamp formats a Unix nanosecond timestamp as "HH:MM:SS.mmm".
func FormatTimestamp(ns int64) string {
	return FromNano(ns).Format("15:04:05.000")
}

// FormatTimestampFull formats a Unix nanosecond timestamp with its date.
func FormatTimestampFull(ns int64) string {
	return FromNano(ns).Format("2006-01-02 15:04:05.000")
}

// FormatMicros formats a microsecond count: "850µs", "12.4ms", "1.2s".
func FormatMicros(us int64) string {
	switch {
	case us < 1000:
		return fmt.Sprintf("%dµs", us)
	case us < 1_000_000:
		return fmt.Sprintf("%.1fms", float64(us)/1000)
	default:
		return fmt.Sprintf("%.1fs", float64(us)/1_000_000)
	}
}

// FormatSpan formats the length of a session; an open session (end 0)
// is measured against now.
func FormatSpan(startNs, endNs int64, now time.Time) string {
	end := FromNano(endNs)
	if endNs == 0 {
		end = now
	}
	d := end.Sub(FromNano(startNs)).Round(time.Millisecond)
	if d < 0 {
		d = 0
	}
	return d.String()
}

// RelativeTime returns "just now", "5s ago", "2m ago", "1h ago" or "3d ago".
func RelativeTime(ns int64, now time.Time) string {
	diff := now.Sub(FromNano(ns))

	switch {
	case diff < time.Second:
		return "just now"
	case diff < time.Minute:
		return fmt.Sprintf("%ds ago", int(diff.Seconds()))
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
}
