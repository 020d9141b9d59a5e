package style

import (
	"hash/maphash"

	"github.com/Mr-Dark-debug/rowkit/internal/hashutil"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Weight is a font weight, lightest first.
type Weight uint8

const (
	WeightUltraLight Weight = iota
	WeightThin
	WeightLight
	WeightRegular
	WeightMedium
	WeightSemibold
	WeightBold
	WeightHeavy
	WeightBlack
)

// TextStyle is the semantic role of a piece of text.
type TextStyle uint8

const (
	TextTitle1 TextStyle = iota
	TextTitle2
	TextTitle3
	TextHeadline
	TextBody
	TextCaption1
	TextCaption2
)

// Alignment is horizontal text alignment within the available width.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) position() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// FontType describes how a run of text is drawn. Size is kept for parity
// with proportional renderers; a terminal ignores it.
type FontType struct {
	Weight    Weight
	TextStyle TextStyle
	Italic    bool
	Size      float64
	Color     lipgloss.Color
	Alignment Alignment
}

// Presets.
var (
	Title          = FontType{Weight: WeightMedium, TextStyle: TextTitle1, Size: 28, Color: ColorDarkText}
	Title2         = FontType{Weight: WeightMedium, TextStyle: TextTitle2, Size: 22, Color: ColorDarkText}
	Title3         = FontType{Weight: WeightMedium, TextStyle: TextTitle3, Size: 20, Color: ColorDarkText}
	Headline       = FontType{Weight: WeightRegular, TextStyle: TextHeadline, Size: 17, Color: ColorDarkText}
	HeadlineMedium = FontType{Weight: WeightMedium, TextStyle: TextHeadline, Size: 17, Color: ColorDarkText}
	Body           = FontType{Weight: WeightRegular, TextStyle: TextBody, Size: 15, Color: ColorDarkText}
	BodyMedium     = FontType{Weight: WeightMedium, TextStyle: TextBody, Size: 15, Color: ColorDarkText}
	Caption2       = FontType{Weight: WeightRegular, TextStyle: TextCaption2, Size: 13, Color: ColorDarkText}
	Caption1       = FontType{Weight: WeightRegular, TextStyle: TextCaption1, Size: 12, Color: ColorDarkText}
)

// Sized returns a copy with a new size, e.g. Body.Sized(13).Italicized(true).
func (f FontType) Sized(size float64) FontType { f.Size = size; return f }

// Weighted returns a copy with a new weight.
func (f FontType) Weighted(w Weight) FontType { f.Weight = w; return f }

// Italicized returns a copy with the italic flag set to on.
func (f FontType) Italicized(on bool) FontType { f.Italic = on; return f }

// Colored returns a copy with a new foreground colour.
func (f FontType) Colored(c lipgloss.Color) FontType { f.Color = c; return f }

// Styled returns a copy with a new text style.
func (f FontType) Styled(s TextStyle) FontType { f.TextStyle = s; return f }

// Aligned returns a copy with a new alignment.
func (f FontType) Aligned(a Alignment) FontType { f.Alignment = a; return f }

// Style maps the font onto a lipgloss style: medium and heavier weights are
// bold, light and thinner are faint, title 1 is underlined.
func (f FontType) Style() lipgloss.Style {
	s := lipgloss.NewStyle().
		Bold(f.Weight >= WeightMedium).
		Faint(f.Weight <= WeightLight || f.TextStyle == TextCaption2).
		Italic(f.Italic).
		Underline(f.TextStyle == TextTitle1).
		Align(f.Alignment.position())
	if f.Color != ColorClear {
		s = s.Foreground(f.Color)
	}
	return s
}

var upper = cases.Upper(language.Und)

// Transform applies the case rules of the text style. Title 1 text is
// upper-cased; everything else is returned unchanged.
func (f FontType) Transform(text string) string {
	if f.TextStyle == TextTitle1 {
		return upper.String(text)
	}
	return text
}

// WriteHash feeds every field into h.
func (f FontType) WriteHash(h *maphash.Hash) {
	h.WriteByte(byte(f.Weight))
	h.WriteByte(byte(f.TextStyle))
	hashutil.WriteBool(h, f.Italic)
	hashutil.WriteFloat(h, f.Size)
	hashutil.WriteString(h, string(f.Color))
	h.WriteByte(byte(f.Alignment))
}
