package example

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/Mr-Dark-debug/rowkit/pkg/component"
)

// NotesGlyph stands in for the notes icon where only one cell is
// available.
const NotesGlyph = "✎"

var (
	paper  = color.RGBA{R: 0xfb, G: 0xf3, B: 0xc4, A: 0xff}
	header = color.RGBA{R: 0xf2, G: 0xb7, B: 0x05, A: 0xff}
	ink    = color.RGBA{R: 0x8e, G: 0x8e, B: 0x93, A: 0xff}
)

// NotesImage draws a small notepad: a yellow header over ruled paper.
func NotesImage() image.Image {
	const w, h = 32, 32
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	page := image.Rect(4, 2, w-4, h-2)
	draw.Draw(img, page, &image.Uniform{C: paper}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(page.Min.X, page.Min.Y, page.Max.X, page.Min.Y+6), &image.Uniform{C: header}, image.Point{}, draw.Src)
	for y := page.Min.Y + 10; y < page.Max.Y-2; y += 4 {
		draw.Draw(img, image.Rect(page.Min.X+3, y, page.Max.X-3, y+1), &image.Uniform{C: ink}, image.Point{}, draw.Src)
	}
	return img
}

// NotesPicture is the notes icon as a picture row view-model.
func NotesPicture() component.Picture {
	return component.NewPicture("Notes", NotesImage(), component.ContentFit)
}
