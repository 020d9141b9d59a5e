package document

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-Dark-debug/rowkit/pkg/component"
	"github.com/Mr-Dark-debug/rowkit/pkg/rows"
	"github.com/Mr-Dark-debug/rowkit/pkg/style"
)

const settings = `
title: Settings
rows:
  - spacer: 1
  - labels:
      spacing: 1
      texts:
        - {text: Account, font: title}
        - Signed in as ada
    insets: noBottom
    card: top
  - labelled: {left: "*", text: Berlin, right: ">", action: open}
  - button: {title: Sign out, style: secondary, action: sign-out}
    insets: [1, 2, 1, 2]
    card: bottom
`

func TestParseAndBuildRows(t *testing.T) {
	doc, err := Parse([]byte(settings))
	require.NoError(t, err)
	assert.Equal(t, "Settings", doc.Title)
	require.Len(t, doc.Items, 4)

	var signedOut, opened bool
	body, err := doc.Rows(map[string]func(){
		"sign-out": func() { signedOut = true },
		"open":     func() { opened = true },
	})
	require.NoError(t, err)
	require.Len(t, body, 4)

	assert.Equal(t, rows.KindSpacer, body[0].Kind())
	spacer := body[0].(rows.SpacerRow).Model
	assert.Equal(t, "row-0", spacer.ViewModel.ID)
	assert.Equal(t, 1.0, spacer.ViewModel.Length)

	labels := body[1].(rows.LabelListRow).Model
	assert.Equal(t, style.NoBottom, labels.Insets)
	assert.Equal(t, style.WhiteCornered(style.CornersTop), labels.CardStyle)
	require.Len(t, labels.ViewModel.Texts, 2)
	assert.Equal(t, style.Styled("Account", style.Title), labels.ViewModel.Texts[0])
	assert.Equal(t, style.Styled("Signed in as ada", style.Body), labels.ViewModel.Texts[1])

	labelled := body[2].(rows.LabelledTextRow).Model
	assert.Equal(t, style.NoCard, labelled.CardStyle)
	labelled.ViewModel.OnTap()
	assert.True(t, opened)

	button := body[3].(rows.ButtonRow).Model
	assert.Equal(t, component.ButtonSecondary, button.ViewModel.Style)
	assert.Equal(t, style.Insets(1, 2, 1, 2), button.Insets)
	assert.Equal(t, style.WhiteCornered(style.CornersBottom), button.CardStyle)
	button.ViewModel.OnTap()
	assert.True(t, signedOut)
}

func TestRowsAreStableAcrossParses(t *testing.T) {
	build := func() []rows.RowModel {
		doc, err := Parse([]byte(settings))
		require.NoError(t, err)
		body, err := doc.Rows(map[string]func(){"sign-out": func() {}, "open": func() {}})
		require.NoError(t, err)
		return body
	}
	a, b := build(), build()
	for i := range a {
		assert.True(t, a[i].Equal(b[i]), "row %d", i)
		assert.Equal(t, a[i].Hash(), b[i].Hash(), "row %d", i)
	}
}

func TestDefaultsFollowKind(t *testing.T) {
	doc, err := Parse([]byte("rows:\n  - button: Go\n  - labels: {texts: [hi]}\n"))
	require.NoError(t, err)
	body, err := doc.Rows(nil)
	require.NoError(t, err)

	assert.Equal(t, rows.ButtonCell(component.Button{}).Insets, body[0].(rows.ButtonRow).Model.Insets)
	assert.Equal(t, style.WhiteCornered(style.CornersNone), body[1].(rows.LabelListRow).Model.CardStyle)
}

func TestUnknownRow(t *testing.T) {
	_, err := Parse([]byte("rows:\n  - card: top\n"))
	assert.True(t, errors.Is(err, ErrUnknownRow))

	_, err = Parse([]byte("rows:\n  - spacer: 1\n    button: Go\n"))
	assert.True(t, errors.Is(err, ErrUnknownRow))
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"preset":  "rows:\n  - spacer: 1\n    insets: sideways\n",
		"numbers": "rows:\n  - spacer: 1\n    insets: [1, 2]\n",
		"card":    "rows:\n  - spacer: 1\n    card: round\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src))
			assert.Error(t, err)
		})
	}
}

func TestLengthsMustBeFiniteAndNonNegative(t *testing.T) {
	cases := map[string]string{
		"insets nan":      "rows:\n  - {spacer: 1, insets: [.nan, 0, 0, 0]}\n",
		"insets negative": "rows:\n  - {spacer: 1, insets: [0, -3, 0, 0]}\n",
		"insets inf":      "rows:\n  - {spacer: 1, insets: [0, 0, .inf, 0]}\n",
		"spacer negative": "rows:\n  - spacer: -2\n",
		"spacer nan":      "rows:\n  - spacer: {length: .nan}\n",
		"spacer inf":      "rows:\n  - spacer: {length: -.inf}\n",
		"spacing":         "rows:\n  - labels: {spacing: -1, texts: [{text: x}]}\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "line 2")
		})
	}

	doc, err := Parse([]byte("rows:\n  - spacer: 0\n    insets: [0, 1.5, 0, 2]\n"))
	require.NoError(t, err)
	body, err := doc.Rows(nil)
	require.NoError(t, err)
	assert.True(t, body[0].Equal(body[0]))
}

func TestRowsErrors(t *testing.T) {
	cases := map[string]string{
		"action": "rows:\n  - button: {title: Go, action: missing}\n",
		"font":   "rows:\n  - labels: {texts: [{text: x, font: huge}]}\n",
		"style":  "rows:\n  - button: {title: Go, style: loud}\n",
		"image":  "rows:\n  - image: {path: a.png}\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			doc, err := Parse([]byte(src))
			require.NoError(t, err)
			_, err = doc.Rows(nil)
			assert.Error(t, err)
		})
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageRowFromFS(t *testing.T) {
	doc, err := Parse([]byte("rows:\n  - image: {path: red.png, mode: fill}\n"))
	require.NoError(t, err)
	doc.FS = fstest.MapFS{"red.png": {Data: pngBytes(t)}}

	body, err := doc.Rows(nil)
	require.NoError(t, err)
	pic := body[0].(rows.ImageRow).Model.ViewModel
	assert.Equal(t, component.ContentFill, pic.Mode)
	assert.Equal(t, 4, pic.Image.Bounds().Dx())
}

func TestLoadResolvesImagesNextToDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "red.png"), pngBytes(t), 0o644))
	path := filepath.Join(dir, "screen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows:\n  - image: {path: red.png}\n"), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	body, err := doc.Rows(nil)
	require.NoError(t, err)
	assert.Equal(t, rows.KindImage, body[0].Kind())
}

func TestActions(t *testing.T) {
	doc, err := Parse([]byte(settings + `  - button: {title: Again, action: open}
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"open", "sign-out"}, doc.Actions())

	empty, err := Parse([]byte("rows:\n  - spacer: 2\n"))
	require.NoError(t, err)
	assert.Empty(t, empty.Actions())
}
