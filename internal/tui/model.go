package tui

import (
	"github.com/Mr-Dark-debug/rowkit/pkg/screen"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Filter receives the search query typed in the footer. Setting the query
// is expected to update the screen, usually through screen.UpdateView.
type Filter interface {
	Query() string
	SetQuery(q string)
}

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root bubbletea model of the demo. The wrapped screen owns
// the list; the Model only adds chrome and routes keys.
type Model struct {
	screen   *screen.Screen
	title    string
	filter   Filter
	activity *Activity

	// UI state
	width         int
	height        int
	showInspector bool
	searchMode    bool
	searchQuery   string
}

// Option configures a Model.
type Option func(*Model)

// WithFilter enables search mode.
func WithFilter(f Filter) Option {
	return func(m *Model) { m.filter = f }
}

// WithActivity gives the inspector and the status line their reports.
func WithActivity(a *Activity) Option {
	return func(m *Model) { m.activity = a }
}

// WithInspector opens the inspector panel at start.
func WithInspector(on bool) Option {
	return func(m *Model) { m.showInspector = on }
}

// NewModel wraps scr under the given title.
func NewModel(title string, scr *screen.Screen, opts ...Option) Model {
	m := Model{screen: scr, title: title}
	for _, opt := range opts {
		opt(&m)
	}
	if m.activity == nil {
		m.activity = NewActivity(0)
	}
	return m
}

// nudgeMsg is forwarded to the screen after a state change made outside
// its Update so that it starts the animation frames.
type nudgeMsg struct{}

// ────────────────────────────────────────────────────────────
// Init / Update
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return m.screen.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	_, cmd := m.screen.Update(msg)
	return m, cmd
}

// handleKey routes keyboard input based on current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchMode {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		if m.filter != nil {
			m.searchMode = true
			m.searchQuery = m.filter.Query()
		}
		return m, nil

	case "i":
		m.showInspector = !m.showInspector
		m.resize()
		return m, nil

	case "esc":
		if m.filter != nil && m.filter.Query() != "" {
			return m, m.setQuery("")
		}
		return m, nil
	}

	_, cmd := m.screen.Update(msg)
	return m, cmd
}

// handleSearchKey edits the query. The filter follows every keystroke.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEnter:
		m.searchMode = false
		return m, nil

	case tea.KeyEsc:
		m.searchMode = false
		return m, m.setQuery("")

	case tea.KeyBackspace:
		if r := []rune(m.searchQuery); len(r) > 0 {
			return m, m.setQuery(string(r[:len(r)-1]))
		}
		return m, nil

	case tea.KeySpace:
		return m, m.setQuery(m.searchQuery + " ")

	case tea.KeyRunes:
		return m, m.setQuery(m.searchQuery + string(msg.Runes))
	}
	return m, nil
}

func (m *Model) setQuery(q string) tea.Cmd {
	m.searchQuery = q
	m.filter.SetQuery(q)
	_, cmd := m.screen.Update(nudgeMsg{})
	return cmd
}

func (m *Model) resize() {
	if m.width == 0 {
		return
	}
	m.screen.SetSize(m.bodyWidth(), max(1, m.height-2))
}

func (m *Model) inspectorWidth() int {
	if !m.showInspector || m.width < 60 {
		return 0
	}
	return clamp(m.width*35/100, 28, 48)
}

func (m *Model) bodyWidth() int {
	return m.width - m.inspectorWidth()
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)
	bodyHeight := max(1, m.height-2)

	body := lipgloss.NewStyle().
		Width(m.bodyWidth()).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(m.screen.View())

	if iw := m.inspectorWidth(); iw > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, renderInspector(&m, iw, bodyHeight))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
