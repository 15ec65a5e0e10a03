// Package lighting provides the light rig uploaded to the mesh shader.
package lighting

import (
	"github.com/Faultbox/learn3d/pkg/math"
)

// MaxDirectionalLights is the maximum number of directional lights supported in shaders.
const MaxDirectionalLights = 4

// Directional is a light infinitely far away along Direction.
type Directional struct {
	Direction [3]float32 // Normalized, pointing from the surface towards the light
	Color     [3]float32 // RGB color (0-1 range)
	Intensity float32
}

// FromPosition returns a directional light shining from pos towards the origin.
// A light placed at the origin points straight down.
func FromPosition(pos math.Vec3, color [3]float32, intensity float32) Directional {
	dir := pos.Normalize()
	if dir.Length() == 0 {
		dir = math.V3(0, 1, 0)
	}
	return Directional{
		Direction: dir.Array(),
		Color:     clampColor(color),
		Intensity: intensity,
	}
}

func clampColor(c [3]float32) [3]float32 {
	for i := range c {
		c[i] = min(max(c[i], 0), 1)
	}
	return c
}

// Rig is the ambient term plus a bounded set of directional lights.
type Rig struct {
	Ambient float32
	Lights  []Directional
}

// NewRig creates a rig. Lights beyond MaxDirectionalLights are dropped.
func NewRig(ambient float32, lights ...Directional) Rig {
	if len(lights) > MaxDirectionalLights {
		lights = lights[:MaxDirectionalLights]
	}
	return Rig{Ambient: ambient, Lights: append([]Directional(nil), lights...)}
}

// Count returns the number of active lights.
func (r Rig) Count() int {
	return min(len(r.Lights), MaxDirectionalLights)
}

// Directions returns directions as a flat float32 slice for GPU upload.
// Format: [x0, y0, z0, x1, y1, z1, ...]
func (r Rig) Directions() []float32 {
	result := make([]float32, MaxDirectionalLights*3)
	for i, light := range r.Lights[:r.Count()] {
		copy(result[i*3:], light.Direction[:])
	}
	return result
}

// Radiance returns color times intensity as a flat float32 slice for GPU upload.
func (r Rig) Radiance() []float32 {
	result := make([]float32, MaxDirectionalLights*3)
	for i, light := range r.Lights[:r.Count()] {
		for c := 0; c < 3; c++ {
			result[i*3+c] = light.Color[c] * light.Intensity
		}
	}
	return result
}
