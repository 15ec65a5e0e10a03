package states

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/learn3d/internal/anim"
	"github.com/Faultbox/learn3d/internal/catalog"
	"github.com/Faultbox/learn3d/internal/config"
	"github.com/Faultbox/learn3d/internal/engine/input"
	"github.com/Faultbox/learn3d/internal/engine/lighting"
	"github.com/Faultbox/learn3d/internal/engine/render"
	"github.com/Faultbox/learn3d/internal/engine/ui2d"
	"github.com/Faultbox/learn3d/internal/scene"
	"github.com/Faultbox/learn3d/internal/viewer"
	"github.com/Faultbox/learn3d/pkg/math"
)

// fixedCanvas measures every glyph as 7x13 and draws nothing.
type fixedCanvas struct{ w, h int }

func (c *fixedCanvas) Begin()                                                {}
func (c *fixedCanvas) End()                                                  {}
func (c *fixedCanvas) DrawRect(x, y, w, h float32, col ui2d.Color)           {}
func (c *fixedCanvas) DrawRectOutline(x, y, w, h, t float32, col ui2d.Color) {}
func (c *fixedCanvas) DrawText(x, y float32, s string, scale float32, col ui2d.Color) {
}
func (c *fixedCanvas) MeasureText(s string, scale float32) (float32, float32) {
	return float32(len(s)) * 7 * scale, 13 * scale
}
func (c *fixedCanvas) Wrap(s string, maxWidth, scale float32) []string {
	return []string{s}
}
func (c *fixedCanvas) GetScreenSize() (int, int) { return c.w, c.h }

type fakeScene struct {
	roots []*scene.Node
	rigs  []lighting.Rig
}

func (f *fakeScene) Render(root *scene.Node, cam render.Camera, rig lighting.Rig, aspect float32) {
	f.roots = append(f.roots, root)
	f.rigs = append(f.rigs, rig)
}

type fakeTarget struct {
	w, h    int32
	resizes int
	blits   [][5]int32
	bound   int
}

func (f *fakeTarget) BindWithViewport() func() {
	f.bound++
	return func() { f.bound-- }
}
func (f *fakeTarget) Clear(r, g, b, a float32) {}
func (f *fakeTarget) Size() (int32, int32)     { return f.w, f.h }
func (f *fakeTarget) Aspect() float32          { return float32(f.w) / float32(f.h) }
func (f *fakeTarget) Resize(w, h int32) {
	f.w, f.h = w, h
	f.resizes++
}
func (f *fakeTarget) BlitTo(x, y, w, h, windowHeight int32) {
	f.blits = append(f.blits, [5]int32{x, y, w, h, windowHeight})
}

func newEnv(t *testing.T) (*Env, *fakeScene, *fakeTarget) {
	t.Helper()
	sc := &fakeScene{}
	tg := &fakeTarget{w: 1, h: 1}
	env := &Env{
		Config:  config.Default(),
		Page:    viewer.NewPage(),
		Manager: NewManager(),
		UI:      ui2d.NewContextWithCanvas(&fixedCanvas{w: 1280, h: 800}),
		Keys:    input.DefaultBindings(),
		Scene:   sc,
		Target:  tg,
		Ticker:  anim.NewTicker(1),
		Screen:  Screen{Width: 1280, Height: 800, Scale: 2},
		Log:     zap.NewNop(),
	}
	return env, sc, tg
}

func key(code sdl.Scancode) input.Event {
	return input.Event{Type: input.EventKeyDown, Key: code}
}

type recordState struct {
	calls []string
	label string
}

func (r *recordState) Enter() error                  { r.calls = append(r.calls, "enter"); return nil }
func (r *recordState) Exit() error                   { r.calls = append(r.calls, "exit"); return nil }
func (r *recordState) Update(anim.Clock) error       { r.calls = append(r.calls, "update"); return nil }
func (r *recordState) Render() error                 { r.calls = append(r.calls, "render"); return nil }
func (r *recordState) HandleInput(input.Event) error { r.calls = append(r.calls, "input"); return nil }

func TestManagerTransitions(t *testing.T) {
	m := NewManager()
	assert.NoError(t, m.Update(anim.Clock{}))
	assert.NoError(t, m.Render())
	assert.Equal(t, "viewer", m.Label())

	a, b := &recordState{}, &recordState{}
	m.Change(a)
	assert.Nil(t, m.Current(), "change applies on the next update")

	require.NoError(t, m.Update(anim.Clock{}))
	require.NoError(t, m.Render())
	require.NoError(t, m.HandleInput(input.Event{}))
	assert.Equal(t, []string{"enter", "update", "render", "input"}, a.calls)

	m.Change(b)
	require.NoError(t, m.Update(anim.Clock{}))
	assert.Equal(t, "exit", a.calls[len(a.calls)-1])
	assert.Equal(t, []string{"enter", "update"}, b.calls)
	assert.Same(t, State(b), m.Current())
}

func TestRigFor(t *testing.T) {
	rig := RigFor(catalog.Geometry().Stage)
	assert.Equal(t, float32(0.4), rig.Ambient)
	assert.Equal(t, 2, rig.Count())
	assert.InDelta(t, 1, math.V3(rig.Lights[0].Direction[0], rig.Lights[0].Direction[1], rig.Lights[0].Direction[2]).Length(), 1e-5)
}

func TestStageViewStartsAtStageCamera(t *testing.T) {
	stage := catalog.History().Stage
	v := NewStageView(stage, config.Default().Camera)

	assert.Equal(t, stage.FOV, v.Camera.FOV)
	pos := v.Camera.Position()
	assert.InDelta(t, stage.CameraPosition.X, pos.X, 1e-4)
	assert.InDelta(t, stage.CameraPosition.Y, pos.Y, 1e-4)
	assert.InDelta(t, stage.CameraPosition.Z, pos.Z, 1e-4)
}

func TestStageViewOrbitControls(t *testing.T) {
	v := NewStageView(catalog.Geometry().Stage, config.Default().Camera)
	v.Rect = ui2d.Rect{X: 0, Y: 0, W: 100, H: 100}

	// Presses over UI panels never start a drag.
	assert.False(t, v.HandleEvent(input.Event{Type: input.EventMouseDown, Button: sdl.BUTTON_LEFT, MouseX: 50, MouseY: 50}, true))
	assert.False(t, v.Dragging())

	// Presses outside the viewport neither.
	assert.False(t, v.HandleEvent(input.Event{Type: input.EventMouseDown, Button: sdl.BUTTON_LEFT, MouseX: 150, MouseY: 50}, false))

	assert.True(t, v.HandleEvent(input.Event{Type: input.EventMouseDown, Button: sdl.BUTTON_LEFT, MouseX: 50, MouseY: 50}, false))
	assert.True(t, v.Dragging())

	yaw := v.Camera.RotationY
	moved := v.HandleEvent(input.Event{Type: input.EventMouseMove, MouseX: 160, MouseY: 50, RelX: 110, Held: sdl.ButtonLMask()}, false)
	assert.True(t, moved, "drags continue outside the viewport")
	assert.NotEqual(t, yaw, v.Camera.RotationY)

	assert.True(t, v.HandleEvent(input.Event{Type: input.EventMouseUp, Button: sdl.BUTTON_LEFT}, false))
	assert.False(t, v.Dragging())
}

func TestStageViewInvertY(t *testing.T) {
	cfg := config.Default().Camera
	normal := NewStageView(catalog.Geometry().Stage, cfg)
	cfg.InvertY = true
	inverted := NewStageView(catalog.Geometry().Stage, cfg)

	for _, v := range []*StageView{normal, inverted} {
		v.Rect = ui2d.Rect{W: 100, H: 100}
		v.HandleEvent(input.Event{Type: input.EventMouseDown, Button: sdl.BUTTON_LEFT, MouseX: 10, MouseY: 10}, false)
		v.HandleEvent(input.Event{Type: input.EventMouseMove, RelY: 20, Held: sdl.ButtonLMask()}, false)
	}
	assert.Greater(t, normal.Camera.RotationX, float32(0))
	assert.Less(t, inverted.Camera.RotationX, float32(0))
}

func TestStageViewZoomInsideViewportOnly(t *testing.T) {
	v := NewStageView(catalog.Geometry().Stage, config.Default().Camera)
	v.Rect = ui2d.Rect{W: 100, H: 100}
	start := v.Camera.Distance

	v.HandleEvent(input.Event{Type: input.EventMouseMove, MouseX: 300, MouseY: 10}, false)
	assert.False(t, v.HandleEvent(input.Event{Type: input.EventMouseWheel, Wheel: 1}, false))
	assert.Equal(t, start, v.Camera.Distance)

	v.HandleEvent(input.Event{Type: input.EventMouseMove, MouseX: 10, MouseY: 10}, false)
	assert.True(t, v.HandleEvent(input.Event{Type: input.EventMouseWheel, Wheel: 1}, false))
	assert.Less(t, v.Camera.Distance, start)

	for range 100 {
		v.HandleEvent(input.Event{Type: input.EventMouseWheel, Wheel: 1}, false)
	}
	assert.Equal(t, v.Stage.MinDistance, v.Camera.Distance)
}

func TestScreenPixels(t *testing.T) {
	s := Screen{Width: 640, Height: 400, Scale: 2}
	x, y, w, h := s.Pixels(ui2d.Rect{X: 10, Y: 20, W: 30, H: 40})
	assert.Equal(t, [4]int32{20, 40, 60, 80}, [4]int32{x, y, w, h})
	assert.Equal(t, int32(800), s.DrawableHeight())

	_, _, w, h = Screen{}.Pixels(ui2d.Rect{})
	assert.Equal(t, int32(1), w)
	assert.Equal(t, int32(1), h)
}

func TestLayout(t *testing.T) {
	nav, vp, info := Layout(1280, 800, 100)

	assert.Equal(t, vp.W, vp.H, "viewport is square")
	assert.GreaterOrEqual(t, vp.Y, nav.Y+nav.H)
	assert.GreaterOrEqual(t, info.X, vp.X+vp.W)
	assert.LessOrEqual(t, info.X+info.W, float32(1280))
	assert.LessOrEqual(t, vp.Y+vp.H, float32(800))

	_, vp, info = Layout(10, 10, 100)
	assert.Zero(t, vp.W)
	assert.Zero(t, info.H)
}

func TestLandingOpensSubject(t *testing.T) {
	env, _, _ := newEnv(t)
	landing := NewLandingState(env)
	env.Manager.Change(landing)
	require.NoError(t, env.Manager.Update(anim.Clock{}))
	assert.False(t, env.Page.DemoVisible)

	require.NoError(t, landing.HandleInput(key(sdl.SCANCODE_3)))
	require.NoError(t, env.Manager.Update(anim.Clock{}))

	demo, ok := env.Manager.Current().(*DemoState)
	require.True(t, ok)
	assert.Equal(t, catalog.SubjectHistory, env.Page.Subject)
	assert.Equal(t, catalog.History().Stage.FOV, demo.View().Camera.FOV)
}

func TestLandingOpenDemoStartsWithGeometry(t *testing.T) {
	env, _, _ := newEnv(t)
	landing := NewLandingState(env)
	landing.OpenDemo()
	require.NoError(t, env.Manager.Update(anim.Clock{}))

	demo := env.Manager.Current().(*DemoState)
	assert.Equal(t, "Cube", demo.Viewer().Info().Title)
	assert.Equal(t, "geometry Cube", env.Manager.Label())
}

func TestLandingRenderDrawsHeroFullScreen(t *testing.T) {
	env, sc, tg := newEnv(t)
	landing := NewLandingState(env)
	require.NoError(t, landing.Render())

	require.Len(t, sc.roots, 1)
	assert.Same(t, env.Page.Hero().Root(), sc.roots[0])
	assert.Equal(t, [][5]int32{{0, 0, 2560, 1600, 1600}}, tg.blits)
	assert.Equal(t, 0, tg.bound, "target unbound after rendering")
}

func openDemo(t *testing.T, env *Env) *DemoState {
	t.Helper()
	env.Page.ShowDemo()
	demo := NewDemoState(env)
	env.Manager.Change(demo)
	require.NoError(t, env.Manager.Update(anim.Clock{}))
	return demo
}

func TestDemoKeyboardNavigation(t *testing.T) {
	env, _, _ := newEnv(t)
	demo := openDemo(t, env)
	v := demo.Viewer()

	require.NoError(t, demo.HandleInput(key(sdl.SCANCODE_RIGHT)))
	assert.Equal(t, 1, v.Selected())
	require.NoError(t, demo.HandleInput(key(sdl.SCANCODE_LEFT)))
	require.NoError(t, demo.HandleInput(key(sdl.SCANCODE_LEFT)))
	assert.Equal(t, v.Registry().Len()-1, v.Selected())

	require.NoError(t, demo.HandleInput(key(sdl.SCANCODE_2)))
	assert.Equal(t, catalog.SubjectBiology, env.Page.Subject)
	assert.NotSame(t, v, demo.Viewer())
	assert.Equal(t, 0, demo.Viewer().Selected(), "new subject starts at its first model")
}

func TestDemoBackReturnsToLanding(t *testing.T) {
	env, _, _ := newEnv(t)
	demo := openDemo(t, env)

	require.NoError(t, demo.HandleInput(key(sdl.SCANCODE_BACKSPACE)))
	require.NoError(t, env.Manager.Update(anim.Clock{}))

	_, ok := env.Manager.Current().(*LandingState)
	assert.True(t, ok)
	assert.False(t, env.Page.DemoVisible)
	assert.Equal(t, "landing", env.Manager.Label())
}

func TestDemoUpdateTicksActiveModel(t *testing.T) {
	env, _, _ := newEnv(t)
	demo := openDemo(t, env)

	before := demo.Viewer().Root().Children[0].Transform
	require.NoError(t, demo.Update(anim.Clock{Elapsed: 1, Delta: 1}))
	assert.NotEqual(t, before, demo.Viewer().Root().Children[0].Transform)
}

func TestDemoRenderDrawsActiveModel(t *testing.T) {
	env, sc, tg := newEnv(t)
	demo := openDemo(t, env)

	require.NoError(t, demo.Render())
	require.Len(t, sc.roots, 1)
	assert.Same(t, demo.Viewer().Root(), sc.roots[0])
	assert.Equal(t, 2, sc.rigs[0].Count())

	_, vp, _ := Layout(env.Screen.Width, env.Screen.Height, 110)
	assert.Equal(t, vp, demo.View().Rect)
	assert.Equal(t, 1, tg.resizes)

	// Once the nav bar height settles the target is not reallocated.
	require.NoError(t, demo.Render())
	settled := tg.resizes
	require.NoError(t, demo.Render())
	assert.Equal(t, settled, tg.resizes)
}

func TestDemoReconfigure(t *testing.T) {
	env, _, _ := newEnv(t)
	demo := openDemo(t, env)

	cfg := config.Default()
	cfg.Camera.DragSensitivity = 0.05
	demo.Reconfigure(cfg)
	assert.Equal(t, float32(0.05), demo.View().Camera.DragSensitivity)
}
