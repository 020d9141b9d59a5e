// Package rows defines the typed row models a list is built from and the
// builder that assembles them.
//
// A RowModel is one of a closed set of variants (SpacerRow, LabelListRow,
// LabelledTextRow, ImageRow, ButtonRow). Each wraps a CellModel: a leaf
// view-model plus the insets and card style of its container. Row models
// are immutable values; two rows are the same item exactly when they are
// equal, and equal rows hash equally.
//
// Every row also names its reuse identifier, derived from the variant and
// the Go type of its view-model only, so all rows of one kind can share
// pooled containers.
//
//	rows.MakeRows(func(b *rows.Builder) {
//		b.Add(rows.LabelListCell(title).WithCardStyle(style.WhiteCornered(style.CornersTop)))
//		for _, e := range entries {
//			b.Add(rows.LabelledTextCell(e))
//		}
//		b.AddIf(showButton, rows.ButtonCell(done))
//	})
package rows
