// Package component provides the leaf view-models and views that rows are
// built from.
//
// Each view-model is an immutable value with Equal and WriteHash; callbacks
// such as OnTap never take part in either. Each view is a mutable object
// created once per container and reconfigured many times:
//
//	spacer.go       Spacer, SpacerView
//	labellist.go    LabelList, LabelListView
//	labelledtext.go LabelledText, LabelledTextView
//	picture.go      Picture, ImageView, LoadPicture
//	button.go       Button, ButtonStyle, ButtonView
//
// Views render to ANSI text at a given column width.
package component
