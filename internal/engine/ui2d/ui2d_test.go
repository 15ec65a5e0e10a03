package ui2d

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a Canvas that keeps drawn text and measures with the default atlas.
type recorder struct {
	atlas *Atlas
	texts []string
	rects int
}

func newRecorder() *recorder {
	return &recorder{atlas: DefaultAtlas()}
}

func (r *recorder) Begin() { r.texts, r.rects = nil, 0 }
func (r *recorder) End()   {}

func (r *recorder) DrawRect(x, y, w, h float32, c Color) { r.rects++ }

func (r *recorder) DrawRectOutline(x, y, w, h, thickness float32, c Color) { r.rects += 4 }

func (r *recorder) DrawText(x, y float32, text string, scale float32, c Color) {
	r.texts = append(r.texts, text)
}

func (r *recorder) MeasureText(text string, scale float32) (float32, float32) {
	return r.atlas.MeasureText(text, scale)
}

func (r *recorder) Wrap(text string, maxWidth, scale float32) []string {
	return r.atlas.Wrap(text, maxWidth, scale)
}

func (r *recorder) GetScreenSize() (int, int) { return 1280, 800 }

func TestAtlasGlyphs(t *testing.T) {
	a := DefaultAtlas()
	w, h := a.GlyphSize()
	assert.Equal(t, 7, w)
	assert.Equal(t, 13, h)

	u0, v0, u1, v1 := a.GlyphUV('A')
	assert.Less(t, u0, u1)
	assert.Less(t, v0, v1)

	// Unknown runes share the '?' cell; bullets fold to '*'.
	qu, qv, _, _ := a.GlyphUV('?')
	xu, xv, _, _ := a.GlyphUV('€')
	assert.Equal(t, qu, xu)
	assert.Equal(t, qv, xv)

	su, sv, _, _ := a.GlyphUV('*')
	bu, bv, _, _ := a.GlyphUV('•')
	assert.Equal(t, su, bu)
	assert.Equal(t, sv, bv)

	// Letters leave ink in the atlas.
	col, row := a.cell('A')
	ink := 0
	for y := row * h; y < (row+1)*h; y++ {
		for x := col * w; x < (col+1)*w; x++ {
			if a.Image.AlphaAt(x, y).A > 0 {
				ink++
			}
		}
	}
	assert.Positive(t, ink)
}

func TestAtlasMeasure(t *testing.T) {
	a := DefaultAtlas()

	w, h := a.MeasureText("Cube", 2)
	assert.Equal(t, float32(4*7*2), w)
	assert.Equal(t, float32(13*2), h)

	w, h = a.MeasureText("ab\nabcd", 1)
	assert.Equal(t, float32(4*7), w)
	assert.Equal(t, float32(2*13), h)
}

func TestAtlasWrap(t *testing.T) {
	a := DefaultAtlas()
	cw := float32(7)

	tests := []struct {
		name  string
		text  string
		chars int
		want  []string
	}{
		{"fits", "Torus Knot", 20, []string{"Torus Knot"}},
		{"breaks at spaces", "a six-sided solid shape", 10, []string{"a", "six-sided", "solid", "shape"}},
		{"greedy", "one two three four", 9, []string{"one two", "three", "four"}},
		{"long word", "dodecahedron", 5, []string{"dodec", "ahedr", "on"}},
		{"newline kept", "first\nsecond", 20, []string{"first", "second"}},
		{"empty", "", 10, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Wrap(tt.text, float32(tt.chars)*cw, 1)
			assert.Equal(t, tt.want, got)
			for _, line := range got {
				assert.LessOrEqual(t, len(line), tt.chars)
			}
		})
	}
}

func TestOrthoCorners(t *testing.T) {
	m := Ortho(200, 100)
	project := func(x, y float32) (float32, float32) {
		return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
	}

	x, y := project(0, 0)
	assert.InDelta(t, -1, x, 1e-6)
	assert.InDelta(t, 1, y, 1e-6)

	x, y = project(200, 100)
	assert.InDelta(t, 1, x, 1e-6)
	assert.InDelta(t, -1, y, 1e-6)
}

func click(ctx *Context, x, y float32) {
	in := ctx.Input()
	in.MouseX, in.MouseY = x, y
	in.MouseLeftDown = true
}

func TestButtonClick(t *testing.T) {
	rec := newRecorder()
	ctx := NewContextWithCanvas(rec)
	panel := Rect{0, 0, 300, 200}

	frame := func() (a, b bool) {
		ctx.Begin()
		ctx.BeginPanel("p", panel, "")
		ctx.Row(30)
		a = ctx.Button("a", 100, "Cube")
		b = ctx.Button("b", 100, "Sphere")
		ctx.EndPanel()
		ctx.End()
		return a, b
	}

	a, b := frame()
	assert.False(t, a)
	assert.False(t, b)
	assert.Contains(t, rec.texts, "Cube")

	// Second button starts at padding + 100 + spacing.
	click(ctx, padding+100+spacing+10, padding+5)
	a, b = frame()
	assert.False(t, a)
	assert.True(t, b)
	assert.True(t, ctx.Hovered())

	// Holding the button does not click again.
	a, b = frame()
	assert.False(t, a)
	assert.False(t, b)
}

func TestClickConsumedOnce(t *testing.T) {
	ctx := NewContextWithCanvas(newRecorder())

	click(ctx, padding+5, padding+5)
	ctx.Begin()
	ctx.BeginPanel("p", Rect{0, 0, 300, 200}, "")
	ctx.Row(30)
	first := ctx.Button("a", 100, "A")
	ctx.EndPanel()
	ctx.BeginPanel("q", Rect{0, 0, 300, 200}, "")
	ctx.Row(30)
	second := ctx.Button("b", 100, "B")
	ctx.EndPanel()
	ctx.End()

	assert.True(t, first)
	assert.False(t, second)
}

func TestDisabledButtonIgnoresClicks(t *testing.T) {
	ctx := NewContextWithCanvas(newRecorder())

	click(ctx, padding+5, padding+5)
	ctx.Begin()
	ctx.BeginPanel("p", Rect{0, 0, 300, 200}, "")
	ctx.Row(30)
	ctx.ButtonDisabled("soon", 100, "Coming Soon")
	ctx.EndPanel()
	ctx.BeginPanel("q", Rect{0, 0, 300, 200}, "")
	ctx.Row(30)
	below := ctx.Button("below", 100, "Explore Now")
	ctx.EndPanel()
	ctx.End()

	assert.True(t, below, "disabled button must not swallow the click")
}

func TestCheckboxToggles(t *testing.T) {
	ctx := NewContextWithCanvas(newRecorder())
	paused := false

	click(ctx, padding+2, padding+2)
	ctx.Begin()
	ctx.BeginPanel("p", Rect{0, 0, 300, 200}, "")
	paused = ctx.Checkbox("pause", "Pause", paused)
	ctx.EndPanel()
	ctx.End()

	assert.True(t, paused)
}

func TestTextWrapsToPanel(t *testing.T) {
	rec := newRecorder()
	ctx := NewContextWithCanvas(rec)
	panel := Rect{0, 0, 2*padding + 70, 400} // ten glyphs wide

	ctx.Begin()
	ctx.BeginPanel("info", panel, "")
	ctx.Paragraph("A perfect three-dimensional shape where every point is equidistant")
	used := ctx.EndPanel()
	ctx.End()

	require.NotEmpty(t, rec.texts)
	for _, line := range rec.texts {
		assert.LessOrEqual(t, len(line), 10, "line %q", line)
	}
	assert.Equal(t, "A perfect", rec.texts[0])
	assert.Greater(t, used, float32(len(rec.texts)*13))
}

func TestBullets(t *testing.T) {
	rec := newRecorder()
	ctx := NewContextWithCanvas(rec)

	items := []string{"Click and drag to rotate", "Scroll to zoom in and out"}
	ctx.Begin()
	ctx.BeginPanel("tips", Rect{0, 0, 400, 300}, "Learning Tips")
	ctx.Bullets(items, ColorPrimary)
	ctx.EndPanel()
	ctx.End()

	joined := strings.Join(rec.texts, "|")
	assert.Contains(t, joined, "Learning Tips")
	for _, item := range items {
		assert.Contains(t, joined, item)
	}
}

func TestWidgetsOutsidePanelAreNoops(t *testing.T) {
	rec := newRecorder()
	ctx := NewContextWithCanvas(rec)

	ctx.Begin()
	assert.False(t, ctx.Button("x", 10, "x"))
	ctx.Paragraph("ignored")
	ctx.End()

	assert.Empty(t, rec.texts)
	assert.Zero(t, rec.rects)
}

func TestRectInset(t *testing.T) {
	r := Rect{10, 20, 100, 50}.Inset(5)
	assert.Equal(t, Rect{15, 25, 90, 40}, r)
	assert.Equal(t, Rect{13, 13, 0, 0}, Rect{10, 10, 4, 4}.Inset(2).Inset(1))
}
