package states

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/learn3d/internal/catalog"
	"github.com/Faultbox/learn3d/internal/config"
	"github.com/Faultbox/learn3d/internal/engine/camera"
	"github.com/Faultbox/learn3d/internal/engine/input"
	"github.com/Faultbox/learn3d/internal/engine/lighting"
	"github.com/Faultbox/learn3d/internal/engine/ui2d"
)

// StageView is the camera and light rig for one registry's stage, plus the
// orbit controls that drive the camera from mouse input.
type StageView struct {
	Camera *camera.OrbitCamera
	Rig    lighting.Rig
	Stage  catalog.Stage

	// Rect is where the viewport was last drawn, in UI points.
	Rect ui2d.Rect

	invertY  bool
	dragging bool
	mouseX   float32
	mouseY   float32
}

// RigFor converts the stage lights into a directional rig.
func RigFor(stage catalog.Stage) lighting.Rig {
	lights := make([]lighting.Directional, 0, len(stage.Lights))
	for _, l := range stage.Lights {
		lights = append(lights, lighting.FromPosition(l.Position, l.Color.Array(), l.Intensity))
	}
	return lighting.NewRig(stage.Ambient, lights...)
}

// NewStageView places a camera where the stage puts it.
func NewStageView(stage catalog.Stage, controls config.CameraConfig) *StageView {
	v := &StageView{
		Camera: camera.NewOrbitCamera(),
		Rig:    RigFor(stage),
		Stage:  stage,
	}
	v.Configure(controls)
	v.Reset()
	return v
}

// Configure applies the camera section of the config.
func (v *StageView) Configure(controls config.CameraConfig) {
	v.Camera.DragSensitivity = controls.DragSensitivity
	v.Camera.ZoomSensitivity = controls.ZoomSensitivity
	v.invertY = controls.InvertY
}

// Reset returns the camera to the stage's starting position.
func (v *StageView) Reset() {
	v.Camera.FOV = v.Stage.FOV
	v.Camera.SetZoomRange(v.Stage.MinDistance, v.Stage.MaxDistance)
	v.Camera.LookFrom(v.Stage.CameraPosition)
	v.dragging = false
}

// Dragging reports whether a drag that started in the viewport is active.
func (v *StageView) Dragging() bool {
	return v.dragging
}

// HandleEvent applies orbit and zoom input. Presses and wheel turns only
// count inside Rect and when overUI is false; a drag keeps orbiting when the
// pointer leaves the viewport. It reports whether the event was used.
func (v *StageView) HandleEvent(ev input.Event, overUI bool) bool {
	switch ev.Type {
	case input.EventMouseMove:
		v.mouseX, v.mouseY = float32(ev.MouseX), float32(ev.MouseY)
		if !v.dragging {
			return false
		}
		if !ev.LeftHeld() {
			v.dragging = false
			return false
		}
		dy := float32(ev.RelY)
		if v.invertY {
			dy = -dy
		}
		v.Camera.HandleDrag(float32(ev.RelX), dy)
		return true

	case input.EventMouseDown:
		v.mouseX, v.mouseY = float32(ev.MouseX), float32(ev.MouseY)
		if ev.Button == sdl.BUTTON_LEFT && !overUI && v.Rect.Contains(v.mouseX, v.mouseY) {
			v.dragging = true
			return true
		}

	case input.EventMouseUp:
		if ev.Button == sdl.BUTTON_LEFT && v.dragging {
			v.dragging = false
			return true
		}

	case input.EventMouseWheel:
		if !overUI && v.Rect.Contains(v.mouseX, v.mouseY) {
			v.Camera.HandleZoom(ev.Wheel)
			return true
		}
	}
	return false
}
