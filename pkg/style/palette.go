package style

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Palette
// ────────────────────────────────────────────────────────────
//
// Component colours. ColorClear means "inherit the terminal".

var (
	ColorClear = lipgloss.Color("")

	ColorWhite       = lipgloss.Color("#ffffff")
	ColorBlack       = lipgloss.Color("#000000")
	ColorDarkText    = lipgloss.Color("#1c1c1e")
	ColorDarkTextDim = lipgloss.Color("#8e8e93")
	ColorDarkGray    = lipgloss.Color("#545456")
	ColorSystemGray5 = lipgloss.Color("#e5e5ea")

	ColorBlue    = lipgloss.Color("#0a60ff")
	ColorBlueDim = lipgloss.Color("#85aff7")

	// Card chrome
	ColorCardBorder     = lipgloss.Color("#c7c7cc")
	ColorHighlight      = lipgloss.Color("#d1e3ff")
	ColorCardBackground = ColorWhite
)
