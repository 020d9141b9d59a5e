// Package example is the demo screen shipped with rowkit: a card with a
// title, an icon, some text and a list of cities, followed by a button
// that switches between two versions of the list.
package example

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxTypos is the edit distance a query may be from an entry and still
// match it.
const maxTypos = 2

// ExampleViewModel is the state behind the example screen.
type ExampleViewModel struct {
	isPrimary bool
	query     string
	onChange  func()
}

// NewExampleViewModel starts in the primary state with no filter.
func NewExampleViewModel() *ExampleViewModel {
	return &ExampleViewModel{isPrimary: true}
}

// OnChange sets the callback run after every state change. The screen
// uses it to re-render.
func (m *ExampleViewModel) OnChange(fn func()) {
	m.onChange = fn
}

func (m *ExampleViewModel) IsPrimary() bool { return m.isPrimary }

func (m *ExampleViewModel) Query() string { return m.query }

// Entries lists the cities shown under the text, filtered by the query.
func (m *ExampleViewModel) Entries() []string {
	all := []string{"Berlin", "Rome", "Bruxelles"}
	if m.isPrimary {
		all = []string{"Berlin", "Bruxelles"}
	}
	if m.query == "" {
		return all
	}
	var out []string
	for _, e := range all {
		if Matches(m.query, e) {
			out = append(out, e)
		}
	}
	return out
}

// OnFirstButtonTap toggles between the primary and secondary state.
func (m *ExampleViewModel) OnFirstButtonTap() {
	m.isPrimary = !m.isPrimary
	m.changed()
}

// SetQuery filters the entries. An empty query shows all of them.
func (m *ExampleViewModel) SetQuery(q string) {
	q = strings.TrimSpace(q)
	if q == m.query {
		return
	}
	m.query = q
	m.changed()
}

func (m *ExampleViewModel) changed() {
	if m.onChange != nil {
		m.onChange()
	}
}

// Matches reports whether query finds entry: a case-insensitive substring,
// or a whole word within maxTypos edits.
func Matches(query, entry string) bool {
	q, e := strings.ToLower(query), strings.ToLower(entry)
	if strings.Contains(e, q) {
		return true
	}
	return levenshtein.ComputeDistance(q, e) <= maxTypos
}
