package ui2d

import (
	"image"
	"strings"
	"unicode/utf8"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	firstGlyph = ' '
	lastGlyph  = '~'
	atlasCols  = 16
)

// Atlas is a monospace glyph sheet covering printable ASCII.
type Atlas struct {
	Image *image.Alpha
	cellW int
	cellH int
}

// NewAtlas rasterizes the printable ASCII range of face into a grid.
func NewAtlas(face font.Face) *Atlas {
	metrics := face.Metrics()
	adv, _ := face.GlyphAdvance('M')

	a := &Atlas{
		cellW: adv.Ceil(),
		cellH: metrics.Height.Ceil(),
	}

	count := int(lastGlyph-firstGlyph) + 1
	rows := (count + atlasCols - 1) / atlasCols
	a.Image = image.NewAlpha(image.Rect(0, 0, atlasCols*a.cellW, rows*a.cellH))

	d := font.Drawer{Dst: a.Image, Src: image.Opaque, Face: face}
	for r := firstGlyph; r <= lastGlyph; r++ {
		col, row := a.cell(r)
		d.Dot = fixed.P(col*a.cellW, row*a.cellH+metrics.Ascent.Ceil())
		d.DrawString(string(r))
	}
	return a
}

// DefaultAtlas uses the 7x13 bitmap face bundled with x/image.
func DefaultAtlas() *Atlas {
	return NewAtlas(basicfont.Face7x13)
}

// fold maps common typographic runes to ASCII look-alikes.
var fold = map[rune]rune{
	'•': '*',
	'·': '*',
	'–': '-',
	'—': '-',
	'‘': '\'',
	'’': '\'',
	'“': '"',
	'”': '"',
	'°': 'o',
}

func (a *Atlas) cell(r rune) (col, row int) {
	if f, ok := fold[r]; ok {
		r = f
	}
	if r < firstGlyph || r > lastGlyph {
		r = '?'
	}
	i := int(r - firstGlyph)
	return i % atlasCols, i / atlasCols
}

// GlyphSize returns the cell size in pixels.
func (a *Atlas) GlyphSize() (int, int) {
	return a.cellW, a.cellH
}

// GlyphUV returns texture coordinates of r. Runes outside the sheet that
// have no ASCII look-alike map to '?'.
func (a *Atlas) GlyphUV(r rune) (u0, v0, u1, v1 float32) {
	col, row := a.cell(r)
	w := float32(a.Image.Rect.Dx())
	h := float32(a.Image.Rect.Dy())
	u0 = float32(col*a.cellW) / w
	v0 = float32(row*a.cellH) / h
	u1 = float32((col+1)*a.cellW) / w
	v1 = float32((row+1)*a.cellH) / h
	return u0, v0, u1, v1
}

// MeasureText returns the size of text, honoring newlines.
func (a *Atlas) MeasureText(text string, scale float32) (float32, float32) {
	lines := strings.Split(text, "\n")
	widest := 0
	for _, l := range lines {
		widest = max(widest, utf8.RuneCountInString(l))
	}
	return float32(widest*a.cellW) * scale, float32(len(lines)*a.cellH) * scale
}

// Wrap breaks text into lines no wider than maxWidth. Words longer than a
// line are split mid-word; explicit newlines are kept.
func (a *Atlas) Wrap(text string, maxWidth, scale float32) []string {
	limit := max(int(maxWidth/(float32(a.cellW)*scale)), 1)

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		var line []rune
		for _, word := range strings.Fields(para) {
			w := []rune(word)
			for len(w) > limit {
				if len(line) > 0 {
					lines = append(lines, string(line))
					line = line[:0]
				}
				lines = append(lines, string(w[:limit]))
				w = w[limit:]
			}
			switch {
			case len(w) == 0:
			case len(line) == 0:
				line = append(line, w...)
			case len(line)+1+len(w) <= limit:
				line = append(append(line, ' '), w...)
			default:
				lines = append(lines, string(line))
				line = append(line[:0], w...)
			}
		}
		lines = append(lines, string(line))
	}
	return lines
}

// Font is an Atlas uploaded to a single-channel texture.
type Font struct {
	*Atlas
	texture uint32
}

// NewFont uploads the default atlas.
func NewFont() *Font {
	f := &Font{Atlas: DefaultAtlas()}

	b := f.Image.Bounds()
	gl.GenTextures(1, &f.texture)
	gl.BindTexture(gl.TEXTURE_2D, f.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(b.Dx()), int32(b.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(f.Image.Pix))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	// Nearest keeps the bitmap crisp at integer scales.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return f
}

// TextureID returns the GL texture holding the atlas.
func (f *Font) TextureID() uint32 {
	return f.texture
}

// Close deletes the texture.
func (f *Font) Close() {
	if f.texture != 0 {
		gl.DeleteTextures(1, &f.texture)
		f.texture = 0
	}
}
