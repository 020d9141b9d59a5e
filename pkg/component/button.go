package component

import (
	"hash/maphash"

	"github.com/Mr-Dark-debug/rowkit/internal/hashutil"
	"github.com/Mr-Dark-debug/rowkit/pkg/style"
	"github.com/charmbracelet/lipgloss"
)

// ButtonStyle selects the colours of a button in its normal and pressed
// states.
type ButtonStyle uint8

const (
	ButtonPrimary ButtonStyle = iota
	ButtonSecondary
	ButtonText
)

func (s ButtonStyle) String() string {
	switch s {
	case ButtonSecondary:
		return "secondary"
	case ButtonText:
		return "text"
	default:
		return "primary"
	}
}

// BorderWidth is 1 for the outlined secondary style and 0 otherwise.
func (s ButtonStyle) BorderWidth() int {
	if s == ButtonSecondary {
		return 1
	}
	return 0
}

func (s ButtonStyle) NormalBorderColor() lipgloss.Color {
	switch s {
	case ButtonPrimary:
		return style.ColorWhite
	case ButtonSecondary:
		return style.ColorBlack
	default:
		return style.ColorClear
	}
}

func (s ButtonStyle) SelectedBorderColor() lipgloss.Color {
	if s == ButtonText {
		return style.ColorClear
	}
	return style.ColorDarkGray
}

func (s ButtonStyle) NormalBackground() lipgloss.Color {
	switch s {
	case ButtonPrimary:
		return style.ColorBlue
	case ButtonSecondary:
		return style.ColorWhite
	default:
		return style.ColorClear
	}
}

func (s ButtonStyle) SelectedBackground() lipgloss.Color {
	if s == ButtonPrimary {
		return style.ColorBlueDim
	}
	return s.NormalBackground()
}

func (s ButtonStyle) NormalFont() style.FontType {
	if s == ButtonPrimary {
		return style.BodyMedium.Colored(style.ColorWhite).Aligned(style.AlignCenter)
	}
	return style.BodyMedium.Colored(style.ColorDarkText).Aligned(style.AlignCenter)
}

func (s ButtonStyle) SelectedFont() style.FontType {
	if s == ButtonPrimary {
		return s.NormalFont()
	}
	return style.BodyMedium.Colored(style.ColorDarkTextDim).Aligned(style.AlignCenter)
}

// Button is a tappable title. Disabled buttons render faint and ignore
// taps.
type Button struct {
	Style   ButtonStyle
	Title   style.StyledString
	Enabled bool
	OnTap   func()
}

// NewButton returns an enabled button.
func NewButton(s ButtonStyle, title style.StyledString, onTap func()) Button {
	return Button{Style: s, Title: title, Enabled: true, OnTap: onTap}
}

// Disabled returns a copy that ignores taps.
func (b Button) Disabled() Button {
	b.Enabled = false
	return b
}

func (b Button) Equal(o Button) bool {
	return b.Style == o.Style && b.Title == o.Title && b.Enabled == o.Enabled
}

func (b Button) WriteHash(h *maphash.Hash) {
	h.WriteByte(byte(b.Style))
	b.Title.WriteHash(h)
	hashutil.WriteBool(h, b.Enabled)
}

// ButtonView renders a Button. The pressed state is set by the host while
// a tap is in progress.
type ButtonView struct {
	style   ButtonStyle
	title   string
	enabled bool
	pressed bool
	onTap   func()
}

func NewButtonView() *ButtonView { return &ButtonView{} }

func (v *ButtonView) Configure(b Button) {
	v.style = b.Style
	v.title = b.Title.Text
	v.enabled = b.Enabled
	v.onTap = b.OnTap
	v.pressed = false
}

func (v *ButtonView) SetPressed(pressed bool) { v.pressed = pressed }

func (v *ButtonView) Pressed() bool { return v.pressed }

func (v *ButtonView) CanTap() bool { return v.enabled && v.onTap != nil }

func (v *ButtonView) Tap() bool {
	if !v.CanTap() {
		return false
	}
	v.onTap()
	return true
}

func (v *ButtonView) Render(width int) string {
	font := v.style.NormalFont()
	background := v.style.NormalBackground()
	border := v.style.NormalBorderColor()
	if v.pressed {
		font = v.style.SelectedFont()
		background = v.style.SelectedBackground()
		border = v.style.SelectedBorderColor()
	}

	s := font.Style()
	if background != style.ColorClear {
		s = s.Background(background)
	}
	if !v.enabled {
		s = s.Faint(true)
	}

	inner := width
	switch {
	case v.style.BorderWidth() > 0:
		inner -= 2
		s = s.Border(lipgloss.RoundedBorder()).BorderForeground(border)
	case v.style == ButtonPrimary:
		s = s.Padding(1, 0)
	}
	if inner < 1 {
		return ""
	}
	return s.Width(inner).Render(font.Transform(v.title))
}
