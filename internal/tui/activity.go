package tui

import "github.com/Mr-Dark-debug/rowkit/pkg/table"

const defaultHistory = 16

// Activity is a table.Observer that keeps the most recent reports for the
// inspector. Register it on the controller the Model's screen uses.
type Activity struct {
	history int
	reports []table.Report
	total   int
}

// NewActivity keeps the last history reports; history <= 0 uses 16.
func NewActivity(history int) *Activity {
	if history <= 0 {
		history = defaultHistory
	}
	return &Activity{history: history}
}

// DidApply implements table.Observer.
func (a *Activity) DidApply(r table.Report) {
	a.total++
	a.reports = append(a.reports, r)
	if over := len(a.reports) - a.history; over > 0 {
		a.reports = append(a.reports[:0], a.reports[over:]...)
	}
}

// Last returns the newest report, if any.
func (a *Activity) Last() (table.Report, bool) {
	if len(a.reports) == 0 {
		return table.Report{}, false
	}
	return a.reports[len(a.reports)-1], true
}

// Recent returns the kept reports, newest first.
func (a *Activity) Recent() []table.Report {
	out := make([]table.Report, len(a.reports))
	for i, r := range a.reports {
		out[len(a.reports)-1-i] = r
	}
	return out
}

// Total counts every report seen, including those no longer kept.
func (a *Activity) Total() int { return a.total }
