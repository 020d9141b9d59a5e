package table

import "time"

// DefaultAnimationDuration is how long an animated update stays visible.
const DefaultAnimationDuration = 250 * time.Millisecond

// Transition describes the visual effect of the last animated update.
// It is cosmetic: the committed rows are already in their final order, and
// the next Update replaces the transition regardless of its progress.
type Transition struct {
	Seq      uint64
	Inserted map[int]bool
	Moved    map[int]bool
	Deleted  int
	Started  time.Time
	Duration time.Duration
}

func newTransition(seq uint64, cs Changeset, now time.Time, d time.Duration) Transition {
	t := Transition{
		Seq:      seq,
		Inserted: make(map[int]bool, len(cs.Inserts)),
		Moved:    make(map[int]bool, len(cs.Moves)),
		Deleted:  len(cs.Deletes),
		Started:  now,
		Duration: d,
	}
	for _, j := range cs.Inserts {
		t.Inserted[j] = true
	}
	for _, m := range cs.Moves {
		t.Moved[m.To] = true
	}
	return t
}

// Active reports whether the transition is still running at now.
func (t Transition) Active(now time.Time) bool {
	return t.Duration > 0 && !t.Started.IsZero() && now.Before(t.Started.Add(t.Duration))
}

// Progress is the completed fraction at now, between 0 and 1.
func (t Transition) Progress(now time.Time) float64 {
	if !t.Active(now) {
		return 1
	}
	p := float64(now.Sub(t.Started)) / float64(t.Duration)
	if p < 0 {
		return 0
	}
	return p
}
