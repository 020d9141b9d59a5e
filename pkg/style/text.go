package style

import (
	"hash/maphash"

	"github.com/Mr-Dark-debug/rowkit/internal/hashutil"
)

// StyledString is text paired with the font it is drawn in.
type StyledString struct {
	Text string
	Font FontType
}

// Plain wraps text in the Body font.
func Plain(text string) StyledString {
	return StyledString{Text: text, Font: Body}
}

// Styled wraps text in the given font.
func Styled(text string, font FontType) StyledString {
	return StyledString{Text: text, Font: font}
}

// Render draws the text at the given width, wrapping and aligning it. A
// width of zero or less renders at natural width.
func (s StyledString) Render(width int) string {
	st := s.Font.Style()
	if width > 0 {
		st = st.Width(width)
	}
	return st.Render(s.Font.Transform(s.Text))
}

// WriteHash feeds the text and font into h.
func (s StyledString) WriteHash(h *maphash.Hash) {
	hashutil.WriteString(h, s.Text)
	s.Font.WriteHash(h)
}
