// Package screen hosts a row list inside a bubbletea program.
//
// A Screen asks its Host for the table body, hands it to a table.Controller
// and draws the visible part of the list. It owns scrolling, the selection
// cursor over tappable rows, tap dispatch and the animation frame loop.
// Hosts that change state call UpdateView, or return Refresh() as a
// command, to re-render from a fresh TableBody.
package screen

import (
	"time"

	"github.com/Mr-Dark-debug/rowkit/pkg/cell"
	"github.com/Mr-Dark-debug/rowkit/pkg/rows"
	"github.com/Mr-Dark-debug/rowkit/pkg/style"
	"github.com/Mr-Dark-debug/rowkit/pkg/table"

	tea "github.com/charmbracelet/bubbletea"
)

// Host supplies the rows of a screen on demand.
type Host interface {
	TableBody() []rows.RowModel
}

// HostFunc adapts a function to Host.
type HostFunc func() []rows.RowModel

func (f HostFunc) TableBody() []rows.RowModel { return f() }

// LayoutMode decides whether the list is laid out against the terminal.
type LayoutMode int

const (
	// ConstrainedToSuperview fills the terminal minus the screen insets.
	ConstrainedToSuperview LayoutMode = iota
	// Unconstrained ignores the screen insets and uses the full size.
	Unconstrained
)

const (
	frameInterval = time.Second / 30
	pressInterval = 90 * time.Millisecond
)

// ────────────────────────────────────────────────────────────
// Screen
// ────────────────────────────────────────────────────────────

// Screen is a bubbletea model. Use it through a pointer.
type Screen struct {
	host     Host
	table    *table.Controller
	insets   style.EdgeInsets
	layout   LayoutMode
	animated bool
	clock    func() time.Time

	width  int
	height int

	top         int
	lastVisible int
	cursor      int
	ticking     bool
	pressed     *press
}

// Option configures a Screen.
type Option func(*Screen)

// WithInsets sets the padding between the terminal edge and the list.
func WithInsets(e style.EdgeInsets) Option {
	return func(s *Screen) { s.insets = e }
}

func WithLayoutMode(m LayoutMode) Option {
	return func(s *Screen) { s.layout = m }
}

// WithController uses an existing controller instead of a new one.
func WithController(c *table.Controller) Option {
	return func(s *Screen) { s.table = c }
}

// WithAnimated sets the animated flag passed to every UpdateView.
func WithAnimated(on bool) Option {
	return func(s *Screen) { s.animated = on }
}

// WithClock replaces time.Now for transition progress.
func WithClock(now func() time.Time) Option {
	return func(s *Screen) { s.clock = now }
}

func New(host Host, opts ...Option) *Screen {
	s := &Screen{
		host:        host,
		animated:    true,
		clock:       time.Now,
		cursor:      -1,
		lastVisible: -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.table == nil {
		s.table = table.New()
	}
	return s
}

// Controller returns the underlying list controller.
func (s *Screen) Controller() *table.Controller { return s.table }

// Cursor is the index of the selected row, or -1.
func (s *Screen) Cursor() int { return s.cursor }

// Top is the index of the first visible row.
func (s *Screen) Top() int { return s.top }

// SetSize sets the terminal size. A height of zero or less disables the
// viewport and every row is drawn.
func (s *Screen) SetSize(width, height int) {
	s.width, s.height = width, height
}

// UpdateView re-renders from the host's current table body.
func (s *Screen) UpdateView() table.Report {
	return s.UpdateViewWith(s.host.TableBody())
}

// UpdateViewWith re-renders from body.
func (s *Screen) UpdateViewWith(body []rows.RowModel) table.Report {
	r := s.table.Update(body, s.animated)
	s.clampCursor()
	return r
}

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

// RefreshMsg asks the screen to call UpdateView.
type RefreshMsg struct{}

// Refresh returns a command that delivers a RefreshMsg.
func Refresh() tea.Cmd {
	return func() tea.Msg { return RefreshMsg{} }
}

type frameMsg time.Time

// press remembers the container that was pressed and how often it had been
// configured, so a release after an update can tell whether it still shows
// the same row.
type press struct {
	container  *cell.Container
	configured int
}

type releaseMsg struct{ press *press }

func (s *Screen) frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// ────────────────────────────────────────────────────────────
// Init / Update
// ────────────────────────────────────────────────────────────

func (s *Screen) Init() tea.Cmd {
	s.UpdateView()
	return nil
}

func (s *Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		cmd = s.handleKey(msg)

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			s.scroll(-1)
		case tea.MouseButtonWheelDown:
			s.scroll(1)
		}

	case RefreshMsg:
		s.UpdateView()

	case frameMsg:
		s.ticking = false

	case releaseMsg:
		cmd = s.release(msg.press)
	}

	return s, tea.Batch(cmd, s.animate())
}

// animate starts the frame loop while a transition is running.
func (s *Screen) animate() tea.Cmd {
	if s.ticking || !s.table.Transition().Active(s.clock()) {
		return nil
	}
	s.ticking = true
	return s.frame()
}

func (s *Screen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "down", "j":
		s.moveCursor(1)
	case "up", "k":
		s.moveCursor(-1)
	case "pgdown", "ctrl+d":
		s.scroll(max(1, s.viewportHeight()/2))
	case "pgup", "ctrl+u":
		s.scroll(-max(1, s.viewportHeight()/2))
	case "home", "g":
		s.top = 0
		s.cursor = s.nextTappable(-1, 1)
	case "end", "G":
		s.top = max(0, s.table.Len()-1)
		s.cursor = s.nextTappable(s.table.Len(), -1)
		s.scrollToCursor()
	case "enter", " ":
		return s.press()
	}
	return nil
}

// press shows the pressed state of the selected row; the tap itself is
// delivered when the press is released on the next message.
func (s *Screen) press() tea.Cmd {
	if s.pressed != nil || s.cursor < 0 || s.cursor >= s.table.Len() || !tappable(s.table.Row(s.cursor)) {
		return nil
	}
	c := s.table.Container(s.cursor)
	c.SetPressed(true)
	p := &press{container: c, configured: c.ConfigureCount()}
	s.pressed = p
	return tea.Tick(pressInterval, func(time.Time) tea.Msg { return releaseMsg{press: p} })
}

// release taps the pressed row wherever it is now. If an update in between
// removed the row or reconfigured its container for other content, the
// press is dropped without a tap.
func (s *Screen) release(p *press) tea.Cmd {
	if p == nil || p != s.pressed {
		return nil
	}
	s.pressed = nil
	p.container.SetPressed(false)

	row := s.rowOf(p.container)
	if row < 0 || p.container.ConfigureCount() != p.configured || !tappable(s.table.Row(row)) {
		return nil
	}
	p.container.Tap()
	return nil
}

// rowOf finds the row holding c without materializing any row.
func (s *Screen) rowOf(c *cell.Container) int {
	for i := 0; i < s.table.Len(); i++ {
		if s.table.Materialized(i) && s.table.Container(i) == c {
			return i
		}
	}
	return -1
}

// Tap selects row i and taps it immediately. It reports whether the row
// handled the tap.
func (s *Screen) Tap(i int) bool {
	if i < 0 || i >= s.table.Len() || !tappable(s.table.Row(i)) {
		return false
	}
	s.cursor = i
	return s.table.Container(i).Tap()
}

// ────────────────────────────────────────────────────────────
// Cursor and scrolling
// ────────────────────────────────────────────────────────────

func tappable(r rows.RowModel) bool {
	switch r := r.(type) {
	case rows.ButtonRow:
		return r.Model.ViewModel.Enabled && r.Model.ViewModel.OnTap != nil
	case rows.LabelledTextRow:
		return r.Model.ViewModel.OnTap != nil
	default:
		return false
	}
}

func (s *Screen) nextTappable(from, dir int) int {
	for i := from + dir; i >= 0 && i < s.table.Len(); i += dir {
		if tappable(s.table.Row(i)) {
			return i
		}
	}
	return -1
}

func (s *Screen) moveCursor(dir int) {
	next := s.nextTappable(s.cursor, dir)
	if next < 0 {
		s.scroll(dir)
		return
	}
	s.cursor = next
	s.scrollToCursor()
}

func (s *Screen) scrollToCursor() {
	if s.cursor < 0 {
		return
	}
	if s.cursor < s.top {
		s.top = s.cursor
		return
	}
	if s.lastVisible >= 0 && s.cursor > s.lastVisible {
		s.top += s.cursor - s.lastVisible
	}
	s.top = min(s.top, max(0, s.table.Len()-1))
}

func (s *Screen) scroll(delta int) {
	s.top = min(max(0, s.top+delta), max(0, s.table.Len()-1))
}

func (s *Screen) clampCursor() {
	n := s.table.Len()
	if s.cursor >= n {
		s.cursor = s.nextTappable(n, -1)
	}
	if s.top >= n {
		s.top = max(0, n-1)
	}
}
