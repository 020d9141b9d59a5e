package component

import (
	"hash/maphash"

	"github.com/Mr-Dark-debug/rowkit/internal/hashutil"
	"github.com/Mr-Dark-debug/rowkit/pkg/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	iconColumns = 2
	iconGap     = 1
)

// LabelledText is a single line of text with optional icons on either
// side. OnTap, when set, makes the row tappable.
type LabelledText struct {
	Insets    style.EdgeInsets
	LeftIcon  string
	Text      style.StyledString
	RightIcon string
	OnTap     func()
}

func (l LabelledText) Equal(o LabelledText) bool {
	return l.Insets == o.Insets &&
		l.LeftIcon == o.LeftIcon &&
		l.Text == o.Text &&
		l.RightIcon == o.RightIcon
}

func (l LabelledText) WriteHash(h *maphash.Hash) {
	l.Insets.WriteHash(h)
	hashutil.WriteString(h, l.LeftIcon)
	l.Text.WriteHash(h)
	hashutil.WriteString(h, l.RightIcon)
}

// LabelledTextView lays out [left icon] text [right icon] on one line and
// truncates the text to fit.
type LabelledTextView struct {
	insets    style.EdgeInsets
	leftIcon  string
	text      style.StyledString
	rightIcon string
	onTap     func()
}

func NewLabelledTextView() *LabelledTextView { return &LabelledTextView{} }

func (v *LabelledTextView) Configure(l LabelledText) {
	v.insets = l.Insets
	v.leftIcon = l.LeftIcon
	v.text = l.Text
	v.rightIcon = l.RightIcon
	v.onTap = l.OnTap
}

func (v *LabelledTextView) CanTap() bool { return v.onTap != nil }

// Tap runs the tap callback and reports whether there was one.
func (v *LabelledTextView) Tap() bool {
	if v.onTap == nil {
		return false
	}
	v.onTap()
	return true
}

func (v *LabelledTextView) Render(width int) string {
	top, right, bottom, left := v.insets.Cells()
	inner := width - left - right
	if inner <= 0 {
		return ""
	}

	textWidth := inner
	if v.leftIcon != "" {
		textWidth -= iconColumns + iconGap
	}
	if v.rightIcon != "" {
		textWidth -= iconColumns + iconGap
	}
	if textWidth < 1 {
		textWidth = 1
	}

	text := v.text.Font.Transform(v.text.Text)
	text = runewidth.Truncate(text, textWidth, "…")
	text = v.text.Font.Style().Width(textWidth).MaxHeight(1).Render(text)

	line := ""
	if v.leftIcon != "" {
		line += icon(v.leftIcon) + pad(iconGap)
	}
	line += text
	if v.rightIcon != "" {
		line += pad(iconGap) + icon(v.rightIcon)
	}
	return lipgloss.NewStyle().Padding(top, right, bottom, left).Render(line)
}

func icon(glyph string) string {
	return runewidth.FillRight(runewidth.Truncate(glyph, iconColumns, ""), iconColumns)
}

func pad(n int) string {
	return runewidth.FillRight("", n)
}
