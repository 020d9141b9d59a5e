// Package table keeps a list of row models on screen.
//
// A Controller owns the committed row sequence, the container registry and
// the slot surface. Each Update registers any new container kinds, diffs
// the committed rows against the new ones, applies the changeset to the
// surface and commits. Rows that compare equal keep their container;
// everything else is released, acquired or reconfigured in place.
//
// A Controller is confined to the goroutine driving the UI. Update is not
// re-entrant.
package table

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Mr-Dark-debug/rowkit/pkg/cell"
	"github.com/Mr-Dark-debug/rowkit/pkg/rows"
)

// Controller drives a Surface from successive row sequences.
type Controller struct {
	reg       *cell.Registry
	surface   *Surface
	logger    *slog.Logger
	clock     func() time.Time
	duration  time.Duration
	observers []Observer

	seq        uint64
	transition Transition
	updating   atomic.Bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithAnimationDuration sets the duration of animated transitions.
func WithAnimationDuration(d time.Duration) Option {
	return func(c *Controller) { c.duration = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.clock = now }
}

// WithObserver adds an observer.
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observers = append(c.observers, o) }
}

// WithRegistry shares a container registry, for example between screens.
func WithRegistry(r *cell.Registry) Option {
	return func(c *Controller) { c.reg = r }
}

func New(opts ...Option) *Controller {
	c := &Controller{
		logger:   slog.New(slog.DiscardHandler),
		clock:    time.Now,
		duration: DefaultAnimationDuration,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.reg == nil {
		c.reg = cell.NewRegistry()
	}
	c.surface = newSurface(c.reg)
	return c
}

// UpdateRows applies rows with animation requested.
func (c *Controller) UpdateRows(next []rows.RowModel) Report {
	return c.Update(next, true)
}

// Update replaces the committed rows with next. The first population of
// an empty list is never animated.
func (c *Controller) Update(next []rows.RowModel, animated bool) Report {
	if !c.updating.CompareAndSwap(false, true) {
		panic("table: Update called while another Update is in progress")
	}
	defer c.updating.Store(false)

	start := c.clock()
	c.seq++
	next = slices.Clone(next)

	registered := c.register(next)
	cs := Diff(c.committed(), next)
	animate := animated && c.surface.Len() > 0
	counts := c.surface.apply(cs, next)

	if animate && !cs.IsEmpty() {
		c.transition = newTransition(c.seq, cs, start, c.duration)
	} else {
		c.transition = Transition{}
	}

	r := Report{
		Seq:          c.seq,
		At:           start,
		Requested:    animated,
		Animated:     animate,
		Rows:         len(next),
		Changes:      cs,
		Registered:   registered,
		Acquired:     counts.acquired,
		Reconfigured: counts.reconfigured,
		Released:     counts.released,
		Elapsed:      c.clock().Sub(start),
	}
	c.logger.Debug("rows applied",
		"seq", r.Seq,
		"rows", r.Rows,
		"changes", cs.String(),
		"animated", r.Animated,
		"acquired", r.Acquired,
		"reconfigured", r.Reconfigured,
		"released", r.Released,
	)
	for _, o := range c.observers {
		o.DidApply(r)
	}
	return r
}

func (c *Controller) register(next []rows.RowModel) []string {
	var added []string
	for _, r := range next {
		id := r.CellIdentifier()
		if c.reg.IsRegistered(id) {
			continue
		}
		c.reg.Register(id, r.NewView)
		added = append(added, id)
		c.logger.Debug("cell kind registered", "identifier", id)
	}
	return added
}

func (c *Controller) committed() []rows.RowModel {
	out := make([]rows.RowModel, c.surface.Len())
	for i := range out {
		out[i] = c.surface.Row(i)
	}
	return out
}

// Rows returns a copy of the committed rows.
func (c *Controller) Rows() []rows.RowModel { return c.committed() }

func (c *Controller) Len() int { return c.surface.Len() }

func (c *Controller) Row(i int) rows.RowModel { return c.surface.Row(i) }

// Container returns the configured container of row i.
func (c *Controller) Container(i int) *cell.Container { return c.surface.Container(i) }

// Materialized reports whether row i currently holds a container.
func (c *Controller) Materialized(i int) bool { return c.surface.Materialized(i) }

// SetWindow limits live containers to rows [first, last). A negative last
// removes the limit.
func (c *Controller) SetWindow(first, last int) {
	acquired, released := c.surface.SetWindow(first, last)
	if acquired > 0 || released > 0 {
		c.logger.Debug("window moved", "first", first, "last", last, "acquired", acquired, "released", released)
	}
}

func (c *Controller) Window() (first, last int) { return c.surface.Window() }

// Transition returns the transition of the last update. It is the zero
// value when that update was not animated.
func (c *Controller) Transition() Transition { return c.transition }

func (c *Controller) Registry() *cell.Registry { return c.reg }

func (c *Controller) Surface() *Surface { return c.surface }

// Render draws every row in the window, top to bottom.
func (c *Controller) Render(width int) string {
	first, last := c.surface.Window()
	if last < 0 || last > c.surface.Len() {
		last = c.surface.Len()
	}
	var lines []string
	for i := first; i < last; i++ {
		if out := c.surface.Container(i).Render(width); out != "" {
			lines = append(lines, out)
		}
	}
	return strings.Join(lines, "\n")
}

// Close releases every container back to the registry and forgets the
// committed rows.
func (c *Controller) Close() {
	released := c.surface.clear()
	c.transition = Transition{}
	c.logger.Debug("table closed", "released", released)
}

func (c *Controller) String() string {
	return fmt.Sprintf("table(%d rows, seq %d)", c.surface.Len(), c.seq)
}
