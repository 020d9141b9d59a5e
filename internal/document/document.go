// Package document builds a table body from a YAML description, so a
// screen can be laid out without writing Go:
//
//	title: Settings
//	rows:
//	  - spacer: 1
//	  - labels:
//	      texts:
//	        - {text: Account, font: title}
//	        - Signed in as ada
//	    insets: noBottom
//	    card: top
//	  - button: {title: Sign out, style: secondary, action: sign-out}
//	    card: bottom
//
// Each row item names exactly one kind. insets is a preset name
// (noBottom, onlySides, noTop, everywhere, onlyTop, zero) or four numbers
// in top, left, bottom, right order; card is none, plain, top, bottom or
// all. Omitted insets and card fall back to the defaults of the kind.
package document

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/Mr-Dark-debug/rowkit/pkg/component"
	"github.com/Mr-Dark-debug/rowkit/pkg/rows"
	"github.com/Mr-Dark-debug/rowkit/pkg/style"
)

// ErrUnknownRow is returned for a row item that names no kind or more than
// one.
var ErrUnknownRow = errors.New("document: row must name exactly one of spacer, labels, labelled, image, button")

// Document is a parsed screen description.
type Document struct {
	Title string `yaml:"title"`
	Items []Item `yaml:"rows"`

	// FS resolves image paths. Load sets it to the document's directory.
	FS fs.FS `yaml:"-"`
}

// Item is one row of a document.
type Item struct {
	Spacer   *SpacerDef   `yaml:"spacer,omitempty"`
	Labels   *LabelsDef   `yaml:"labels,omitempty"`
	Labelled *LabelledDef `yaml:"labelled,omitempty"`
	Image    *ImageDef    `yaml:"image,omitempty"`
	Button   *ButtonDef   `yaml:"button,omitempty"`

	Insets *Insets `yaml:"insets,omitempty"`
	Card   string  `yaml:"card,omitempty"`
}

// SpacerDef is written either as a bare length or as a mapping.
type SpacerDef struct {
	ID     string  `yaml:"id"`
	Length float64 `yaml:"length"`
	Color  string  `yaml:"color"`
}

func (s *SpacerDef) UnmarshalYAML(n *yaml.Node) error {
	var err error
	if n.Kind == yaml.ScalarNode {
		err = n.Decode(&s.Length)
	} else {
		type plain SpacerDef
		err = n.Decode((*plain)(s))
	}
	if err != nil {
		return err
	}
	return checkLength(n, "spacer length", s.Length)
}

// LabelsDef describes a label list.
type LabelsDef struct {
	Spacing float64 `yaml:"spacing"`
	Insets  *Insets `yaml:"insets"`
	Texts   []Text  `yaml:"texts"`
}

func (l *LabelsDef) UnmarshalYAML(n *yaml.Node) error {
	type plain LabelsDef
	if err := n.Decode((*plain)(l)); err != nil {
		return err
	}
	return checkLength(n, "label spacing", l.Spacing)
}

// LabelledDef describes a single labelled line.
type LabelledDef struct {
	Left   string  `yaml:"left"`
	Text   Text    `yaml:"text"`
	Right  string  `yaml:"right"`
	Insets *Insets `yaml:"insets"`
	Action string  `yaml:"action"`
}

// ImageDef describes a picture row.
type ImageDef struct {
	Path string `yaml:"path"`
	Mode string `yaml:"mode"` // fit, fill or center
}

// ButtonDef describes a button row.
type ButtonDef struct {
	Title    Text   `yaml:"title"`
	Style    string `yaml:"style"` // primary, secondary or text
	Action   string `yaml:"action"`
	Disabled bool   `yaml:"disabled"`
}

// ButtonDef may also be written as a bare title.
func (b *ButtonDef) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		return n.Decode(&b.Title)
	}
	type plain ButtonDef
	return n.Decode((*plain)(b))
}

// Text is a styled string written either as a bare string or as
// {text, font, color, italic, align}.
type Text struct {
	Text   string `yaml:"text"`
	Font   string `yaml:"font"`
	Color  string `yaml:"color"`
	Italic bool   `yaml:"italic"`
	Align  string `yaml:"align"`
}

func (t *Text) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		return n.Decode(&t.Text)
	}
	type plain Text
	return n.Decode((*plain)(t))
}

// Insets is a preset name or four numbers.
type Insets struct {
	style.EdgeInsets
}

func (in *Insets) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		e, ok := presets[n.Value]
		if !ok {
			return fmt.Errorf("line %d: unknown insets preset %q", n.Line, n.Value)
		}
		in.EdgeInsets = e
		return nil
	case yaml.SequenceNode:
		var v []float64
		if err := n.Decode(&v); err != nil {
			return err
		}
		if len(v) != 4 {
			return fmt.Errorf("line %d: insets need 4 numbers (top, left, bottom, right), got %d", n.Line, len(v))
		}
		for _, x := range v {
			if err := checkLength(n, "insets", x); err != nil {
				return err
			}
		}
		in.EdgeInsets = style.Insets(v[0], v[1], v[2], v[3])
		return nil
	default:
		return fmt.Errorf("line %d: insets must be a preset name or a list", n.Line)
	}
}

// checkLength rejects lengths that are negative or not finite. A NaN would
// also make the row unequal to itself.
func checkLength(n *yaml.Node, what string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("line %d: %s must be a finite number >= 0, got %v", n.Line, what, v)
	}
	return nil
}

var presets = map[string]style.EdgeInsets{
	"zero":       style.Zero,
	"noBottom":   style.NoBottom,
	"onlySides":  style.OnlySides,
	"noTop":      style.NoTop,
	"everywhere": style.Everywhere,
	"onlyTop":    style.OnlyTop,
}

var fonts = map[string]style.FontType{
	"":               style.Body,
	"title":          style.Title,
	"title2":         style.Title2,
	"title3":         style.Title3,
	"headline":       style.Headline,
	"headlineMedium": style.HeadlineMedium,
	"body":           style.Body,
	"bodyMedium":     style.BodyMedium,
	"caption1":       style.Caption1,
	"caption2":       style.Caption2,
}

var cards = map[string]style.CardStyle{
	"none":   style.NoCard,
	"plain":  style.WhiteCornered(style.CornersNone),
	"top":    style.WhiteCornered(style.CornersTop),
	"bottom": style.WhiteCornered(style.CornersBottom),
	"all":    style.WhiteCornered(style.CornersAll),
}

// Parse decodes a document. Image rows need FS set before Rows is called.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	for i, it := range doc.Items {
		if it.kinds() != 1 {
			return nil, fmt.Errorf("row %d: %w", i, ErrUnknownRow)
		}
		if _, ok := cards[it.Card]; it.Card != "" && !ok {
			return nil, fmt.Errorf("row %d: unknown card %q", i, it.Card)
		}
	}
	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.FS = os.DirFS(filepath.Dir(path))
	return doc, nil
}

// Actions lists the action names used by the document, sorted and
// without duplicates.
func (d *Document) Actions() []string {
	var names []string
	for _, it := range d.Items {
		switch {
		case it.Button != nil && it.Button.Action != "":
			names = append(names, it.Button.Action)
		case it.Labelled != nil && it.Labelled.Action != "":
			names = append(names, it.Labelled.Action)
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

func (it Item) kinds() int {
	n := 0
	for _, set := range []bool{it.Spacer != nil, it.Labels != nil, it.Labelled != nil, it.Image != nil, it.Button != nil} {
		if set {
			n++
		}
	}
	return n
}

// Rows builds the table body. actions maps the action names used by
// buttons and labelled rows to callbacks; naming an action that is not in
// the map is an error.
func (d *Document) Rows(actions map[string]func()) ([]rows.RowModel, error) {
	b := &rows.Builder{}
	for i, it := range d.Items {
		part, err := d.part(i, it, actions)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		b.Add(part)
	}
	return b.Rows(), nil
}

func (d *Document) part(i int, it Item, actions map[string]func()) (rows.Part, error) {
	switch {
	case it.Spacer != nil:
		id := it.Spacer.ID
		if id == "" {
			id = fmt.Sprintf("row-%d", i)
		}
		s := component.SpacerWithID(id, it.Spacer.Length)
		if it.Spacer.Color != "" {
			s = s.Colored(lipgloss.Color(it.Spacer.Color))
		}
		return decorate(rows.SpacerCell(s), it), nil

	case it.Labels != nil:
		texts := make([]style.StyledString, len(it.Labels.Texts))
		for j, t := range it.Labels.Texts {
			s, err := t.styled()
			if err != nil {
				return nil, err
			}
			texts[j] = s
		}
		l := component.NewLabelList(texts...).Spaced(it.Labels.Spacing)
		if it.Labels.Insets != nil {
			l = l.Inset(it.Labels.Insets.EdgeInsets)
		}
		return decorate(rows.LabelListCell(l), it), nil

	case it.Labelled != nil:
		text, err := it.Labelled.Text.styled()
		if err != nil {
			return nil, err
		}
		onTap, err := lookup(actions, it.Labelled.Action)
		if err != nil {
			return nil, err
		}
		l := component.LabelledText{
			LeftIcon:  it.Labelled.Left,
			Text:      text,
			RightIcon: it.Labelled.Right,
			OnTap:     onTap,
		}
		if it.Labelled.Insets != nil {
			l.Insets = it.Labelled.Insets.EdgeInsets
		}
		return decorate(rows.LabelledTextCell(l), it), nil

	case it.Image != nil:
		if d.FS == nil {
			return nil, fmt.Errorf("image %q: document has no file system", it.Image.Path)
		}
		mode, err := contentMode(it.Image.Mode)
		if err != nil {
			return nil, err
		}
		p, err := component.LoadPicture(d.FS, it.Image.Path, mode)
		if err != nil {
			return nil, err
		}
		return decorate(rows.PictureCell(p), it), nil

	case it.Button != nil:
		title, err := it.Button.Title.styled()
		if err != nil {
			return nil, err
		}
		bs, err := buttonStyle(it.Button.Style)
		if err != nil {
			return nil, err
		}
		onTap, err := lookup(actions, it.Button.Action)
		if err != nil {
			return nil, err
		}
		btn := component.NewButton(bs, title, onTap)
		if it.Button.Disabled {
			btn = btn.Disabled()
		}
		return decorate(rows.ButtonCell(btn), it), nil
	}
	return nil, ErrUnknownRow
}

func decorate[V rows.ViewModel[V]](m rows.CellModel[V], it Item) rows.CellModel[V] {
	if it.Insets != nil {
		m = m.WithInsets(it.Insets.EdgeInsets)
	}
	if it.Card != "" {
		m = m.WithCardStyle(cards[it.Card])
	}
	return m
}

func lookup(actions map[string]func(), name string) (func(), error) {
	if name == "" {
		return nil, nil
	}
	fn, ok := actions[name]
	if !ok {
		return nil, fmt.Errorf("unknown action %q", name)
	}
	return fn, nil
}

func (t Text) styled() (style.StyledString, error) {
	font, ok := fonts[t.Font]
	if !ok {
		return style.StyledString{}, fmt.Errorf("unknown font %q", t.Font)
	}
	if t.Color != "" {
		font = font.Colored(lipgloss.Color(t.Color))
	}
	if t.Italic {
		font = font.Italicized(true)
	}
	switch strings.ToLower(t.Align) {
	case "", "left":
	case "center":
		font = font.Aligned(style.AlignCenter)
	case "right":
		font = font.Aligned(style.AlignRight)
	default:
		return style.StyledString{}, fmt.Errorf("unknown alignment %q", t.Align)
	}
	return style.Styled(t.Text, font), nil
}

func contentMode(s string) (component.ContentMode, error) {
	switch s {
	case "", "fit":
		return component.ContentFit, nil
	case "fill":
		return component.ContentFill, nil
	case "center":
		return component.ContentCenter, nil
	}
	return 0, fmt.Errorf("unknown image mode %q", s)
}

func buttonStyle(s string) (component.ButtonStyle, error) {
	switch s {
	case "", "primary":
		return component.ButtonPrimary, nil
	case "secondary":
		return component.ButtonSecondary, nil
	case "text":
		return component.ButtonText, nil
	}
	return 0, fmt.Errorf("unknown button style %q", s)
}
