package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/learn3d/internal/anim"
	"github.com/Faultbox/learn3d/internal/config"
	"github.com/Faultbox/learn3d/internal/engine/input"
	"github.com/Faultbox/learn3d/internal/engine/lighting"
	"github.com/Faultbox/learn3d/internal/engine/render"
	"github.com/Faultbox/learn3d/internal/engine/ui2d"
	"github.com/Faultbox/learn3d/internal/scene"
	"github.com/Faultbox/learn3d/internal/viewer"
)

// SceneRenderer draws a node tree. *render.Renderer implements it.
type SceneRenderer interface {
	Render(root *scene.Node, cam render.Camera, rig lighting.Rig, aspect float32)
}

// Target is the offscreen surface the viewport renders into.
// *framebuffer.Framebuffer implements it.
type Target interface {
	BindWithViewport() func()
	Clear(r, g, b, a float32)
	Size() (int32, int32)
	Aspect() float32
	Resize(width, height int32)
	BlitTo(x, y, w, h, windowHeight int32)
}

// Screen is the window size in UI points and the drawable pixels per point.
type Screen struct {
	Width, Height float32
	Scale         float32
}

// Pixels converts a rect in points to drawable pixels.
func (s Screen) Pixels(r ui2d.Rect) (x, y, w, h int32) {
	scale := s.Scale
	if scale <= 0 {
		scale = 1
	}
	return int32(r.X * scale), int32(r.Y * scale), max(int32(r.W*scale), 1), max(int32(r.H*scale), 1)
}

// DrawableHeight is the window height in pixels.
func (s Screen) DrawableHeight() int32 {
	scale := s.Scale
	if scale <= 0 {
		scale = 1
	}
	return int32(s.Height * scale)
}

// Env is what the states share: configuration, page state and the drawing
// surfaces owned by the app.
type Env struct {
	Config  *config.Config
	Page    *viewer.Page
	Manager *Manager
	UI      *ui2d.Context
	Keys    input.Bindings
	Scene   SceneRenderer
	Target  Target
	Ticker  *anim.Ticker
	Screen  Screen
	Log     *zap.Logger
}

var viewportClear = ui2d.ColorBackground.Lighten(0.04)

// DrawViewport renders root as seen by view into r (UI points), going
// through the offscreen target.
func (e *Env) DrawViewport(r ui2d.Rect, root *scene.Node, view *StageView) {
	if r.W <= 0 || r.H <= 0 || root == nil {
		return
	}
	view.Rect = r

	x, y, w, h := e.Screen.Pixels(r)
	if tw, th := e.Target.Size(); tw != w || th != h {
		e.Target.Resize(w, h)
	}

	unbind := e.Target.BindWithViewport()
	e.Target.Clear(viewportClear.R, viewportClear.G, viewportClear.B, 1)
	e.Scene.Render(root, view.Camera, view.Rig, e.Target.Aspect())
	unbind()

	e.Target.BlitTo(x, y, w, h, e.Screen.DrawableHeight())
}
