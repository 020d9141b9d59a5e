package component

import (
	"fmt"
	"hash/maphash"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"strings"

	"github.com/Mr-Dark-debug/rowkit/internal/hashutil"
	"github.com/charmbracelet/lipgloss"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ContentMode controls how a picture is fitted into its row.
type ContentMode uint8

const (
	// ContentFit scales the image to fit the width and height limit,
	// keeping its aspect ratio.
	ContentFit ContentMode = iota
	// ContentFill scales the image to cover the width, cropping rows that
	// exceed the height limit.
	ContentFill
	// ContentCenter draws the image unscaled and centred, cropping edges.
	ContentCenter
)

func (m ContentMode) String() string {
	switch m {
	case ContentFill:
		return "fill"
	case ContentCenter:
		return "center"
	default:
		return "fit"
	}
}

// Picture is an image with a content mode. Two pictures are equal when
// their names and modes match; the decoded pixels are not compared.
type Picture struct {
	Name  string
	Mode  ContentMode
	Image image.Image
}

// NewPicture wraps an already decoded image.
func NewPicture(name string, img image.Image, mode ContentMode) Picture {
	return Picture{Name: name, Mode: mode, Image: img}
}

// LoadPicture decodes a PNG, JPEG, BMP or WebP file from fsys.
func LoadPicture(fsys fs.FS, path string, mode ContentMode) (Picture, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return Picture{}, fmt.Errorf("failed to open picture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Picture{}, fmt.Errorf("failed to decode picture %s: %w", path, err)
	}
	return NewPicture(path, img, mode), nil
}

func (p Picture) Equal(o Picture) bool {
	return p.Name == o.Name && p.Mode == o.Mode
}

func (p Picture) WriteHash(h *maphash.Hash) {
	hashutil.WriteString(h, p.Name)
	h.WriteByte(byte(p.Mode))
}

// DefaultMaxRows bounds the height of an ImageView in terminal lines.
const DefaultMaxRows = 8

// ImageView draws a picture with half-block characters, two pixels per
// cell. The last rendering is cached by width.
type ImageView struct {
	MaxRows int

	img   image.Image
	mode  ContentMode
	cache struct {
		width int
		out   string
		valid bool
	}
}

func NewImageView() *ImageView { return &ImageView{MaxRows: DefaultMaxRows} }

func (v *ImageView) Configure(p Picture) {
	v.img = p.Image
	v.mode = p.Mode
	v.cache.valid = false
}

func (v *ImageView) Render(width int) string {
	if v.img == nil || width <= 0 {
		return ""
	}
	if v.cache.valid && v.cache.width == width {
		return v.cache.out
	}
	out := renderHalfBlocks(v.raster(width))
	v.cache.width, v.cache.out, v.cache.valid = width, out, true
	return out
}

// raster scales the image into a width x (2*rows) RGBA buffer according to
// the content mode.
func (v *ImageView) raster(width int) *image.RGBA {
	src := v.img.Bounds()
	maxH := v.MaxRows * 2
	if maxH <= 0 {
		maxH = DefaultMaxRows * 2
	}

	switch v.mode {
	case ContentCenter:
		h := min(src.Dy(), maxH)
		dst := image.NewRGBA(image.Rect(0, 0, width, even(h)))
		offset := image.Pt((src.Dx()-width)/2, (src.Dy()-h)/2)
		draw.Draw(dst, dst.Bounds(), v.img, src.Min.Add(offset), draw.Src)
		return dst

	case ContentFill:
		h := scaledHeight(src, width)
		full := image.NewRGBA(image.Rect(0, 0, width, h))
		draw.ApproxBiLinear.Scale(full, full.Bounds(), v.img, src, draw.Src, nil)
		if h <= maxH {
			return padEven(full)
		}
		dst := image.NewRGBA(image.Rect(0, 0, width, even(maxH)))
		draw.Draw(dst, dst.Bounds(), full, image.Pt(0, (h-maxH)/2), draw.Src)
		return dst

	default:
		w, h := width, scaledHeight(src, width)
		if h > maxH {
			h = maxH
			w = max(1, src.Dx()*maxH/max(1, src.Dy()))
		}
		dst := image.NewRGBA(image.Rect(0, 0, width, even(h)))
		left := (width - w) / 2
		draw.CatmullRom.Scale(dst, image.Rect(left, 0, left+w, h), v.img, src, draw.Over, nil)
		return dst
	}
}

func scaledHeight(src image.Rectangle, width int) int {
	if src.Dx() == 0 {
		return 0
	}
	return max(1, src.Dy()*width/src.Dx())
}

func even(n int) int { return n + n%2 }

func padEven(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	if b.Dy()%2 == 0 {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()+1))
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}

func renderHalfBlocks(img *image.RGBA) string {
	b := img.Bounds()
	lines := make([]string, 0, b.Dy()/2)
	for y := b.Min.Y; y+1 < b.Max.Y; y += 2 {
		var sb strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			sb.WriteString(halfBlock(img.RGBAAt(x, y), img.RGBAAt(x, y+1)))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

func halfBlock(top, bottom color.RGBA) string {
	switch {
	case top.A == 0 && bottom.A == 0:
		return " "
	case bottom.A == 0:
		return lipgloss.NewStyle().Foreground(hex(top)).Render("▀")
	case top.A == 0:
		return lipgloss.NewStyle().Foreground(hex(bottom)).Render("▄")
	default:
		return lipgloss.NewStyle().Foreground(hex(top)).Background(hex(bottom)).Render("▀")
	}
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
