// Package render draws procedural scene trees with OpenGL.
package render

import (
	"fmt"
	"strconv"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/learn3d/internal/engine/lighting"
	"github.com/Faultbox/learn3d/internal/engine/mesh"
	"github.com/Faultbox/learn3d/internal/engine/shader"
	"github.com/Faultbox/learn3d/internal/engine/shaders"
	"github.com/Faultbox/learn3d/internal/logger"
	"github.com/Faultbox/learn3d/internal/scene"
	"github.com/Faultbox/learn3d/pkg/math"
)

// Camera supplies the view for one frame.
type Camera interface {
	ViewMatrix() math.Mat4
	ProjectionMatrix(aspect float32) math.Mat4
	Position() math.Vec3
}

// FrameStats counts the work of the last Render call.
type FrameStats struct {
	DrawCalls int
	Triangles int
	Lines     int
}

// gpuShape holds the buffers of one uploaded shape.
type gpuShape struct {
	vao, vbo, ebo uint32
	indexCount    int32

	edgeVAO, edgeVBO uint32
	edgeCount        int32
}

// Renderer draws scene trees. Meshes are generated by the cache and uploaded
// on first use, so switching models only uploads shapes not seen before.
type Renderer struct {
	meshProgram *shader.Program
	lineProgram *shader.Program

	meshes *mesh.Cache
	gpu    map[scene.Shape]*gpuShape

	list  DrawList
	stats FrameStats

	log        *zap.Logger
	lastGLErr  uint32
	lineWidth  float32
	wireframes bool
	noOutlines bool
}

var meshUniforms = []string{
	"uModel", "uView", "uProjection", "uNormalMatrix", "uCameraPos",
	"uAmbient", "uLightCount", "uLightDir", "uLightRadiance",
	"uColor", "uOpacity", "uRoughness", "uMetalness", "uEmissive", "uEmissiveIntensity",
}

// New compiles the shaders. The cache may be shared with other consumers.
func New(meshes *mesh.Cache) (*Renderer, error) {
	r := &Renderer{
		meshes:    meshes,
		gpu:       make(map[scene.Shape]*gpuShape),
		log:       logger.Named("render"),
		lineWidth: 1,
	}

	frag := shader.Define(shaders.MeshFragmentShader, map[string]string{
		"MAX_LIGHTS": strconv.Itoa(lighting.MaxDirectionalLights),
	})

	var err error
	r.meshProgram, err = shader.New(shaders.MeshVertexShader, frag, meshUniforms...)
	if err != nil {
		return nil, fmt.Errorf("creating mesh shader: %w", err)
	}

	r.lineProgram, err = shader.New(shaders.LineVertexShader, shaders.LineFragmentShader, "uMVP", "uColor")
	if err != nil {
		r.Destroy()
		return nil, fmt.Errorf("creating line shader: %w", err)
	}

	return r, nil
}

// SetWireframe draws every mesh as lines; a debugging aid.
func (r *Renderer) SetWireframe(on bool) {
	r.wireframes = on
}

// SetOutlines toggles the edge pass.
func (r *Renderer) SetOutlines(on bool) {
	r.noOutlines = !on
}

// Stats returns the counters of the last frame.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

// Uploaded returns the number of shapes resident on the GPU.
func (r *Renderer) Uploaded() int {
	return len(r.gpu)
}

// Render draws root into the currently bound framebuffer.
func (r *Renderer) Render(root *scene.Node, cam Camera, rig lighting.Rig, aspect float32) {
	r.stats = FrameStats{}

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix(aspect)
	r.list.Collect(root, view)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	if r.wireframes {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	r.meshProgram.Use()
	r.setFrameUniforms(view, proj, cam.Position(), rig)

	// Push filled faces back slightly so outlines win the depth test.
	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.PolygonOffset(1, 1)

	gl.Disable(gl.BLEND)
	gl.DepthMask(true)
	for _, item := range r.list.Opaque {
		r.drawMesh(item)
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)
	for _, item := range r.list.Translucent {
		r.drawMesh(item)
	}
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.POLYGON_OFFSET_FILL)

	if len(r.list.Edges) > 0 && !r.noOutlines {
		r.lineProgram.Use()
		gl.LineWidth(r.lineWidth)
		viewProj := proj.Mul(view)
		for _, item := range r.list.Edges {
			r.drawEdges(item, viewProj)
		}
	}

	if r.wireframes {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	gl.Disable(gl.CULL_FACE)
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	r.checkError()
}

func (r *Renderer) setFrameUniforms(view, proj math.Mat4, eye math.Vec3, rig lighting.Rig) {
	p := r.meshProgram
	gl.UniformMatrix4fv(p.Uniform("uView"), 1, false, view.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uProjection"), 1, false, proj.Ptr())
	gl.Uniform3f(p.Uniform("uCameraPos"), eye.X, eye.Y, eye.Z)

	gl.Uniform1f(p.Uniform("uAmbient"), rig.Ambient)
	gl.Uniform1i(p.Uniform("uLightCount"), int32(rig.Count()))
	dirs := rig.Directions()
	radiance := rig.Radiance()
	gl.Uniform3fv(p.Uniform("uLightDir"), lighting.MaxDirectionalLights, &dirs[0])
	gl.Uniform3fv(p.Uniform("uLightRadiance"), lighting.MaxDirectionalLights, &radiance[0])
}

func (r *Renderer) drawMesh(item Item) {
	g := r.upload(*item.Node.Shape)
	if g.indexCount == 0 {
		return
	}

	p := r.meshProgram
	m := item.Node.Material

	if m.DoubleSided {
		gl.Disable(gl.CULL_FACE)
	} else {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	}

	normal := item.World.NormalMatrix()
	gl.UniformMatrix4fv(p.Uniform("uModel"), 1, false, item.World.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uNormalMatrix"), 1, false, normal.Ptr())

	gl.Uniform3f(p.Uniform("uColor"), m.Color.R, m.Color.G, m.Color.B)
	gl.Uniform1f(p.Uniform("uOpacity"), m.Opacity)
	gl.Uniform1f(p.Uniform("uRoughness"), m.Roughness)
	gl.Uniform1f(p.Uniform("uMetalness"), m.Metalness)
	gl.Uniform3f(p.Uniform("uEmissive"), m.Emissive.R, m.Emissive.G, m.Emissive.B)
	gl.Uniform1f(p.Uniform("uEmissiveIntensity"), m.EmissiveIntensity)

	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil)

	r.stats.DrawCalls++
	r.stats.Triangles += int(g.indexCount / 3)
}

func (r *Renderer) drawEdges(item Item, viewProj math.Mat4) {
	g := r.upload(*item.Node.Shape)
	if g.edgeCount == 0 {
		return
	}

	mvp := viewProj.Mul(item.World)
	c := item.Node.Edges.Color
	gl.UniformMatrix4fv(r.lineProgram.Uniform("uMVP"), 1, false, mvp.Ptr())
	gl.Uniform4f(r.lineProgram.Uniform("uColor"), c.R, c.G, c.B, 1)

	gl.BindVertexArray(g.edgeVAO)
	gl.DrawArrays(gl.LINES, 0, g.edgeCount)

	r.stats.DrawCalls++
	r.stats.Lines += int(g.edgeCount / 2)
}

// upload returns the GPU buffers for s, creating them on first use.
func (r *Renderer) upload(s scene.Shape) *gpuShape {
	if g, ok := r.gpu[s]; ok {
		return g
	}

	m := r.meshes.Mesh(s)
	g := &gpuShape{indexCount: int32(len(m.Indices))}

	if len(m.Indices) > 0 {
		stride := int32(unsafe.Sizeof(mesh.Vertex{}))

		gl.GenVertexArrays(1, &g.vao)
		gl.BindVertexArray(g.vao)

		gl.GenBuffers(1, &g.vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(stride), unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

		gl.GenBuffers(1, &g.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

		// Position (location 0)
		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
		gl.EnableVertexAttribArray(0)
		// Normal (location 1)
		gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 12)
		gl.EnableVertexAttribArray(1)

		gl.BindVertexArray(0)
	}

	if edges := r.meshes.Edges(s); len(edges) > 0 {
		g.edgeCount = int32(len(edges) / 3)

		gl.GenVertexArrays(1, &g.edgeVAO)
		gl.BindVertexArray(g.edgeVAO)

		gl.GenBuffers(1, &g.edgeVBO)
		gl.BindBuffer(gl.ARRAY_BUFFER, g.edgeVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(edges)*4, unsafe.Pointer(&edges[0]), gl.STATIC_DRAW)

		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 12, 0)
		gl.EnableVertexAttribArray(0)

		gl.BindVertexArray(0)
	}

	r.gpu[s] = g
	r.log.Debug("uploaded shape",
		zap.Stringer("shape", s),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", m.Triangles()),
		zap.Int32("edges", g.edgeCount/2),
	)
	return g
}

func (r *Renderer) checkError() {
	code := gl.GetError()
	if code == gl.NO_ERROR || code == r.lastGLErr {
		return
	}
	r.lastGLErr = code
	r.log.Error("GL error during scene render", zap.String("code", fmt.Sprintf("0x%04x", code)))
}

// Destroy releases all GPU resources.
func (r *Renderer) Destroy() {
	for s, g := range r.gpu {
		if g.edgeVBO != 0 {
			gl.DeleteBuffers(1, &g.edgeVBO)
		}
		if g.edgeVAO != 0 {
			gl.DeleteVertexArrays(1, &g.edgeVAO)
		}
		if g.ebo != 0 {
			gl.DeleteBuffers(1, &g.ebo)
		}
		if g.vbo != 0 {
			gl.DeleteBuffers(1, &g.vbo)
		}
		if g.vao != 0 {
			gl.DeleteVertexArrays(1, &g.vao)
		}
		delete(r.gpu, s)
	}
	if r.lineProgram != nil {
		r.lineProgram.Destroy()
	}
	if r.meshProgram != nil {
		r.meshProgram.Destroy()
	}
}
