package cell

import (
	"fmt"

	"github.com/Mr-Dark-debug/rowkit/pkg/style"
	"github.com/charmbracelet/lipgloss"
)

// Container is a reusable row slot.
type Container struct {
	serial  uint64
	reuseID string
	content View

	card        style.CardStyle
	background  lipgloss.Color
	highlighted bool
	insets      style.EdgeInsets

	configured int
	pooled     bool
}

// Serial identifies the container for its whole lifetime.
func (c *Container) Serial() uint64 { return c.serial }

func (c *Container) ReuseIdentifier() string { return c.reuseID }

// Content is the attached content view, or nil.
func (c *Container) Content() View { return c.content }

func (c *Container) Card() style.CardStyle { return c.card }

func (c *Container) Insets() style.EdgeInsets { return c.insets }

func (c *Container) Highlighted() bool { return c.highlighted }

// SetHighlighted marks the container as the selected row.
func (c *Container) SetHighlighted(on bool) { c.highlighted = on }

// ConfigureCount is how many times the container has been configured
// since it was created.
func (c *Container) ConfigureCount() int { return c.configured }

// CanTap reports whether the content reacts to taps.
func (c *Container) CanTap() bool {
	t, ok := c.content.(Tappable)
	return ok && t.CanTap()
}

// Tap forwards a tap to the content.
func (c *Container) Tap() bool {
	if t, ok := c.content.(Tappable); ok {
		return t.Tap()
	}
	return false
}

// SetPressed forwards the pressed state to the content, if it has one.
func (c *Container) SetPressed(on bool) {
	if p, ok := c.content.(Pressable); ok {
		p.SetPressed(on)
	}
}

// attach replaces the content view. The previous view is dropped.
func (c *Container) attach(v View) {
	c.content = v
}

func (c *Container) reset() {
	c.card = style.NoCard
	c.background = style.ColorClear
	c.highlighted = false
	c.insets = style.Zero
}

func (c *Container) decorate(card style.CardStyle) {
	c.card = card
	if card.IsCard() {
		c.background = style.ColorCardBackground
	}
}

func (c *Container) String() string {
	return fmt.Sprintf("cell#%d(%s)", c.serial, c.reuseID)
}

// Presentation is the per-row metadata applied around the content.
type Presentation struct {
	Insets style.EdgeInsets
	Card   style.CardStyle
}

// Configure resets c, applies the card decoration and insets, then
// configures the content view with vm.
//
// The content view must already be attached, and must accept V. Either
// violation is a programming error and panics.
func Configure[V any](c *Container, vm V, p Presentation) {
	if c.content == nil {
		panic(fmt.Sprintf("cell: %v has no content view attached", c))
	}
	target, ok := c.content.(Configurable[V])
	if !ok {
		panic(fmt.Sprintf("cell: content %T of %v cannot be configured with %T", c.content, c, vm))
	}

	c.reset()
	c.decorate(p.Card)
	c.insets = p.Insets
	target.Configure(vm)
	c.configured++
}
