// Package camera provides the orbit camera used by the model viewport.
package camera

import (
	gomath "math"

	"github.com/Faultbox/learn3d/pkg/math"
)

// OrbitCamera orbits around a center point. It never pans.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	// Projection
	FOV  float32 // vertical, degrees
	Near float32
	Far  float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        5,
		MinDistance:     1,
		MaxDistance:     20,
		MinPitch:        -1.55,
		MaxPitch:        1.55,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FOV:             50,
		Near:            0.1,
		Far:             100,
	}
}

// LookFrom places the camera at eye, orbiting the origin.
func (c *OrbitCamera) LookFrom(eye math.Vec3) {
	c.Center = math.Vec3{}
	c.Distance = eye.Length()
	if c.Distance == 0 {
		c.Distance = 1
	}
	c.RotationX = float32(gomath.Asin(float64(eye.Y / c.Distance)))
	c.RotationY = float32(gomath.Atan2(float64(eye.X), float64(eye.Z)))
	c.clamp()
}

// SetZoomRange sets distance bounds and pulls the camera inside them.
func (c *OrbitCamera) SetZoomRange(minDist, maxDist float32) {
	c.MinDistance = minDist
	c.MaxDistance = maxDist
	c.clamp()
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))

	return c.Center.Add(math.V3(x, y, z))
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.V3(0, 1, 0))
}

// ProjectionMatrix returns the perspective projection for the given aspect.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(math.Radians(c.FOV), aspect, c.Near, c.Far)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity
	c.clamp()
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.clamp()
}

func (c *OrbitCamera) clamp() {
	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
