// Package cell pools the reusable containers a list draws its rows into.
//
// A Container is one on-screen slot. It owns a decoration (card background
// and corners), the insets its content is laid out with, and exactly one
// content View. Containers are grouped by reuse identifier in a Registry;
// the list acquires a container when a row becomes visible and releases it
// when the row scrolls away or is removed.
package cell

// View is anything that can draw itself at a column width.
type View interface {
	Render(width int) string
}

// Configurable is a View that renders from an immutable view-model.
type Configurable[V any] interface {
	View
	Configure(V)
}

// Tappable is implemented by content views that react to selection.
type Tappable interface {
	CanTap() bool
	Tap() bool
}

// Pressable is implemented by content views with a pressed appearance.
type Pressable interface {
	SetPressed(bool)
}

// Factory builds a fresh content view for one reuse identifier.
type Factory func() View
