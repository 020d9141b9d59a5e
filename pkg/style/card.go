package style

import "hash/maphash"

// CornerMask selects which corners of a card are rounded.
type CornerMask uint8

const (
	CornersNone CornerMask = iota
	CornersTop
	CornersBottom
	CornersAll
)

func (m CornerMask) String() string {
	switch m {
	case CornersTop:
		return "top"
	case CornersBottom:
		return "bottom"
	case CornersAll:
		return "all"
	default:
		return "none"
	}
}

// RoundsTop reports whether the top corners are rounded.
func (m CornerMask) RoundsTop() bool { return m == CornersTop || m == CornersAll }

// RoundsBottom reports whether the bottom corners are rounded.
func (m CornerMask) RoundsBottom() bool { return m == CornersBottom || m == CornersAll }

// CardStyle is the background decoration applied to a container: either
// nothing, or a white card whose corners follow a CornerMask. Consecutive
// rows with top, none, ..., bottom masks draw one continuous card.
//
// Build values with NoCard and WhiteCornered so that equal decorations
// compare equal.
type CardStyle struct {
	white   bool
	corners CornerMask
}

// NoCard is the plain, undecorated style.
var NoCard = CardStyle{}

// WhiteCornered returns a white card with the given rounded corners.
func WhiteCornered(mask CornerMask) CardStyle {
	return CardStyle{white: true, corners: mask}
}

// IsCard reports whether the style draws a card.
func (c CardStyle) IsCard() bool { return c.white }

// Corners returns the corner mask. It is CornersNone for NoCard.
func (c CardStyle) Corners() CornerMask { return c.corners }

// WriteHash feeds the style into h.
func (c CardStyle) WriteHash(h *maphash.Hash) {
	if !c.white {
		h.WriteByte(0)
		return
	}
	h.WriteByte(1)
	h.WriteByte(byte(c.corners))
}

func (c CardStyle) String() string {
	if !c.white {
		return "none"
	}
	return "white(" + c.corners.String() + ")"
}
