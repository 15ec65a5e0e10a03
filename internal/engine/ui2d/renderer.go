// Package ui2d provides a simple immediate-mode 2D UI drawn with OpenGL on top of the 3D viewport.
package ui2d

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/learn3d/internal/engine/shader"
	"github.com/Faultbox/learn3d/internal/engine/shaders"
)

const (
	solidStride = 6 // x, y, r, g, b, a
	textStride  = 8 // x, y, u, v, r, g, b, a
)

// Renderer batches quads and glyphs for one frame and draws them in End.
type Renderer struct {
	screenWidth  int
	screenHeight int

	solidShader *shader.Program
	textShader  *shader.Program

	solidVAO uint32
	solidVBO uint32
	textVAO  uint32
	textVBO  uint32

	solidVertices []float32
	textVertices  []float32

	font *Font
}

// New creates a new 2D UI renderer.
func New(width, height int) (*Renderer, error) {
	r := &Renderer{
		screenWidth:   width,
		screenHeight:  height,
		solidVertices: make([]float32, 0, 4096),
		textVertices:  make([]float32, 0, 8192),
	}

	var err error
	r.solidShader, err = shader.New(shaders.SolidVertexShader, shaders.SolidFragmentShader, "uProjection")
	if err != nil {
		return nil, fmt.Errorf("creating solid shader: %w", err)
	}

	r.textShader, err = shader.New(shaders.TextVertexShader, shaders.TextFragmentShader, "uProjection", "uTexture")
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("creating text shader: %w", err)
	}

	r.solidVAO, r.solidVBO = newBatchBuffers(solidStride, 2, 4)
	r.textVAO, r.textVBO = newBatchBuffers(textStride, 2, 2, 4)
	r.font = NewFont()

	return r, nil
}

// newBatchBuffers creates a VAO/VBO pair with tightly packed float attributes.
func newBatchBuffers(stride int, sizes ...int32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	offset := uintptr(0)
	for i, size := range sizes {
		gl.VertexAttribPointerWithOffset(uint32(i), size, gl.FLOAT, false, int32(stride*4), offset)
		gl.EnableVertexAttribArray(uint32(i))
		offset += uintptr(size) * 4
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, vbo
}

// Resize updates the screen dimensions.
func (r *Renderer) Resize(width, height int) {
	r.screenWidth = width
	r.screenHeight = height
}

// GetScreenSize returns the current screen dimensions.
func (r *Renderer) GetScreenSize() (int, int) {
	return r.screenWidth, r.screenHeight
}

// Begin starts a new UI frame.
func (r *Renderer) Begin() {
	r.solidVertices = r.solidVertices[:0]
	r.textVertices = r.textVertices[:0]
}

// End draws all queued quads, then all glyphs on top.
func (r *Renderer) End() {
	gl.Viewport(0, 0, int32(r.screenWidth), int32(r.screenHeight))
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	proj := Ortho(float32(r.screenWidth), float32(r.screenHeight))

	if len(r.solidVertices) > 0 {
		r.solidShader.Use()
		gl.UniformMatrix4fv(r.solidShader.Uniform("uProjection"), 1, false, &proj[0])
		drawBatch(r.solidVAO, r.solidVBO, r.solidVertices, solidStride)
	}

	if len(r.textVertices) > 0 {
		r.textShader.Use()
		gl.UniformMatrix4fv(r.textShader.Uniform("uProjection"), 1, false, &proj[0])
		gl.Uniform1i(r.textShader.Uniform("uTexture"), 0)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.font.TextureID())
		drawBatch(r.textVAO, r.textVBO, r.textVertices, textStride)
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}

	gl.BindVertexArray(0)
	gl.UseProgram(0)
	gl.Disable(gl.BLEND)
}

func drawBatch(vao, vbo uint32, vertices []float32, stride int) {
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/stride))
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	if r.font != nil {
		r.font.Close()
	}
	for _, vao := range []*uint32{&r.solidVAO, &r.textVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
			*vao = 0
		}
	}
	for _, vbo := range []*uint32{&r.solidVBO, &r.textVBO} {
		if *vbo != 0 {
			gl.DeleteBuffers(1, vbo)
			*vbo = 0
		}
	}
	if r.solidShader != nil {
		r.solidShader.Destroy()
	}
	if r.textShader != nil {
		r.textShader.Destroy()
	}
}

// DrawRect draws a filled rectangle.
func (r *Renderer) DrawRect(x, y, w, h float32, c Color) {
	r.solidVertices = append(r.solidVertices,
		x, y, c.R, c.G, c.B, c.A,
		x+w, y, c.R, c.G, c.B, c.A,
		x+w, y+h, c.R, c.G, c.B, c.A,
		x, y, c.R, c.G, c.B, c.A,
		x+w, y+h, c.R, c.G, c.B, c.A,
		x, y+h, c.R, c.G, c.B, c.A,
	)
}

// DrawRectOutline draws a rectangle outline.
func (r *Renderer) DrawRectOutline(x, y, w, h, thickness float32, c Color) {
	r.DrawRect(x, y, w, thickness, c)
	r.DrawRect(x, y+h-thickness, w, thickness, c)
	r.DrawRect(x, y+thickness, thickness, h-thickness*2, c)
	r.DrawRect(x+w-thickness, y+thickness, thickness, h-thickness*2, c)
}

// DrawText draws text at the given position; '\n' starts a new line.
func (r *Renderer) DrawText(x, y float32, text string, scale float32, c Color) {
	gw, gh := r.font.GlyphSize()
	charW := float32(gw) * scale
	charH := float32(gh) * scale

	curX := x
	for _, char := range text {
		if char == '\n' {
			curX = x
			y += charH
			continue
		}
		if char != ' ' {
			u0, v0, u1, v1 := r.font.GlyphUV(char)
			r.textVertices = append(r.textVertices,
				curX, y, u0, v0, c.R, c.G, c.B, c.A,
				curX+charW, y, u1, v0, c.R, c.G, c.B, c.A,
				curX+charW, y+charH, u1, v1, c.R, c.G, c.B, c.A,
				curX, y, u0, v0, c.R, c.G, c.B, c.A,
				curX+charW, y+charH, u1, v1, c.R, c.G, c.B, c.A,
				curX, y+charH, u0, v1, c.R, c.G, c.B, c.A,
			)
		}
		curX += charW
	}
}

// MeasureText returns the width and height of rendered text.
func (r *Renderer) MeasureText(text string, scale float32) (float32, float32) {
	return r.font.MeasureText(text, scale)
}

// Wrap breaks text to fit maxWidth at the given scale.
func (r *Renderer) Wrap(text string, maxWidth, scale float32) []string {
	return r.font.Wrap(text, maxWidth, scale)
}

// Ortho returns a top-left origin orthographic projection for a screen.
func Ortho(width, height float32) [16]float32 {
	return [16]float32{
		2 / width, 0, 0, 0,
		0, -2 / height, 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}
}
