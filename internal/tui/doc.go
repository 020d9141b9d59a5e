// Package tui is the chrome around an interactive rowkit screen.
//
// The root Model draws a header and a footer around a screen.Screen, adds a
// search mode that feeds a Filter, and can show an inspector panel with the
// last updates the list controller applied.
//
//	model.go     root model, key routing, Init/Update/View
//	activity.go  table.Observer that keeps recent reports
//	theme.go     colors and styles
//	header.go    top bar and footer with keyboard hints
//	inspector.go last update, its edits and container pool counters
//	helpers.go   string helpers
package tui
