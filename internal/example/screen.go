package example

import (
	"fmt"

	"github.com/Mr-Dark-debug/rowkit/pkg/component"
	"github.com/Mr-Dark-debug/rowkit/pkg/rows"
	"github.com/Mr-Dark-debug/rowkit/pkg/style"
)

// Insets are the table insets of the example screen.
var Insets = style.OnlySides

const longText = "Very long text so that the label goes on different lines, that is if you feel like reading so much"

// ExampleScreen builds the table body from an ExampleViewModel. It
// implements screen.Host.
type ExampleScreen struct {
	model *ExampleViewModel
	notes component.Picture
}

func NewExampleScreen(model *ExampleViewModel) *ExampleScreen {
	return &ExampleScreen{model: model, notes: NotesPicture()}
}

func (s *ExampleScreen) Model() *ExampleViewModel { return s.model }

// paddingSeparator is a gap between cards in the screen background.
func paddingSeparator(id string) component.Spacer {
	return component.SpacerWithID(id, style.Layout.VerticalPadding).Colored(style.ColorSystemGray5)
}

// tableSeparator is a thin line inside a card.
func tableSeparator(id string) component.Spacer {
	return component.SpacerWithID(id, 1).Colored(style.ColorSystemGray5)
}

// TableBody is the current list of rows.
func (s *ExampleScreen) TableBody() []rows.RowModel {
	m := s.model
	return rows.MakeRows(func(b *rows.Builder) {
		b.Add(
			rows.SpacerCell(paddingSeparator("topPadding")),
			rows.LabelListCell(component.NewLabelList(
				style.Styled("Test", style.Title.Aligned(style.AlignCenter)),
			)).
				WithInsets(style.NoBottom).
				WithCardStyle(style.WhiteCornered(style.CornersTop)),
			rows.SpacerCell(tableSeparator("testAndIcon")).
				WithInsets(style.OnlyTop).
				WithCardStyle(style.WhiteCornered(style.CornersNone)),
			rows.PictureCell(s.notes).
				WithInsets(style.Everywhere),
			rows.LabelListCell(component.NewLabelList(
				style.Plain(longText),
				style.Styled("Another Test as a table headline", style.BodyMedium.Aligned(style.AlignCenter)),
			)).
				WithInsets(style.NoTop),
		)

		for _, entry := range m.Entries() {
			b.Add(
				rows.LabelledTextCell(component.LabelledText{
					LeftIcon: NotesGlyph,
					Text:     style.Styled(entry, style.Body),
				}).WithInsets(style.OnlySides),
				rows.SpacerCell(component.SpacerWithID(fmt.Sprintf("%s entry", entry), 1).Colored(style.ColorWhite)),
			)
		}

		b.Add(
			rows.SpacerCell(component.SpacerWithID("bottomTable", style.Layout.VerticalPadding).Colored(style.ColorWhite)).
				WithCardStyle(style.WhiteCornered(style.CornersBottom)),
			rows.SpacerCell(paddingSeparator("Table button")),
		)

		buttonStyle := component.ButtonSecondary
		if m.IsPrimary() {
			buttonStyle = component.ButtonPrimary
		}
		b.Add(
			rows.ButtonCell(component.NewButton(buttonStyle, style.Plain("Test"), m.OnFirstButtonTap)).
				WithCardStyle(style.WhiteCornered(style.CornersAll)),
			rows.SpacerCell(paddingSeparator("bottomTable")),
		)
	})
}
