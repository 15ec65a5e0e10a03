package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/learn3d/pkg/math"
)

func TestLookFromRoundTrip(t *testing.T) {
	tests := []math.Vec3{
		math.V3(0, 0, 5),
		math.V3(5, 3, 5),
		math.V3(-2, 1, 4),
	}
	for _, eye := range tests {
		c := NewOrbitCamera()
		c.LookFrom(eye)
		got := c.Position()
		assert.InDelta(t, eye.X, got.X, 1e-4)
		assert.InDelta(t, eye.Y, got.Y, 1e-4)
		assert.InDelta(t, eye.Z, got.Z, 1e-4)
	}
}

func TestZoomClamped(t *testing.T) {
	c := NewOrbitCamera()
	c.LookFrom(math.V3(0, 0, 5))
	c.SetZoomRange(3, 8)

	for i := 0; i < 50; i++ {
		c.HandleZoom(1)
	}
	assert.Equal(t, float32(3), c.Distance)

	for i := 0; i < 50; i++ {
		c.HandleZoom(-1)
	}
	assert.Equal(t, float32(8), c.Distance)
}

func TestSetZoomRangePullsInside(t *testing.T) {
	c := NewOrbitCamera()
	c.LookFrom(math.V3(0, 0, 10))
	c.SetZoomRange(2, 8)
	assert.Equal(t, float32(8), c.Distance)
}

func TestDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 10000)
	assert.Equal(t, c.MaxPitch, c.RotationX)
	c.HandleDrag(0, -20000)
	assert.Equal(t, c.MinPitch, c.RotationX)
}

func TestDragKeepsDistance(t *testing.T) {
	c := NewOrbitCamera()
	c.LookFrom(math.V3(0, 0, 5))
	c.HandleDrag(120, -40)
	assert.InDelta(t, 5, c.Position().Length(), 1e-4)
}

func TestViewMatrixLooksAtCenter(t *testing.T) {
	c := NewOrbitCamera()
	c.LookFrom(math.V3(5, 3, 5))
	p := c.ViewMatrix().TransformVec3(math.Vec3{})
	assert.InDelta(t, 0, p.X, 1e-4)
	assert.InDelta(t, 0, p.Y, 1e-4)
	assert.InDelta(t, -c.Distance, p.Z, 1e-4)
}
