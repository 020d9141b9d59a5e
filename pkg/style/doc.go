// Package style holds the presentation value objects shared by rows and
// components.
//
//	insets.go  EdgeInsets, Layout paddings and the preset insets
//	card.go    CardStyle and corner masks for card decoration
//	font.go    FontType presets and modifiers
//	text.go    StyledString
//	palette.go colour palette
//
// Every type here is an immutable, comparable value. Modifiers return a
// new value and never touch the receiver.
package style
