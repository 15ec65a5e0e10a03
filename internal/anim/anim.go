// Package anim drives per-frame transform updates of procedural models.
//
// Animators are pure step functions of the frame clock. The Driver binds them
// to the nodes of a mounted tree and applies them once per frame.
package anim

import (
	stdmath "math"

	"github.com/Faultbox/learn3d/internal/scene"
	"github.com/Faultbox/learn3d/pkg/math"
)

// Clock is the frame time in seconds.
type Clock = scene.Clock

// Animator is re-exported for callers that only import anim.
type Animator = scene.Animator

// Spin rotates continuously at Rate radians per second on each axis.
// Spun axes stay within [0, 2π).
type Spin struct {
	Rate math.Vec3
}

// SpinY returns a spin around the vertical axis.
func SpinY(rate float32) Spin {
	return Spin{Rate: math.V3(0, rate, 0)}
}

// SpinXY returns a spin around X and Y.
func SpinXY(x, y float32) Spin {
	return Spin{Rate: math.V3(x, y, 0)}
}

// SpinXYZ returns a spin around all three axes.
func SpinXYZ(x, y, z float32) Spin {
	return Spin{Rate: math.V3(x, y, z)}
}

// Step implements scene.Animator.
func (s Spin) Step(c Clock, _, cur scene.Transform) scene.Transform {
	if c.Delta == 0 {
		return cur
	}
	cur.Rotation.X = spinAxis(cur.Rotation.X, s.Rate.X, c.Delta)
	cur.Rotation.Y = spinAxis(cur.Rotation.Y, s.Rate.Y, c.Delta)
	cur.Rotation.Z = spinAxis(cur.Rotation.Z, s.Rate.Z, c.Delta)
	return cur
}

func spinAxis(angle, rate float32, delta float64) float32 {
	if rate == 0 {
		return angle
	}
	a := float32(math.WrapAngle(float64(angle) + float64(rate)*delta))
	if a >= math.TwoPi {
		// float32 rounding can land exactly on 2π
		a = 0
	}
	return a
}

// Pulse scales uniformly by 1 + A·sin(ωt) + B·sin(2ωt) relative to the rest
// scale. With A=0.05, B=0.03, Omega=4 it reads as a heartbeat.
type Pulse struct {
	A, B  float64
	Omega float64
}

// Heartbeat is the pulse used for the heart model.
var Heartbeat = Pulse{A: 0.05, B: 0.03, Omega: 4}

// Factor returns the scale multiplier at elapsed time t.
func (p Pulse) Factor(t float64) float64 {
	return 1 + p.A*stdmath.Sin(p.Omega*t) + p.B*stdmath.Sin(2*p.Omega*t)
}

// Bounds returns the closed range every Factor value lies in.
func (p Pulse) Bounds() (lo, hi float64) {
	amp := stdmath.Abs(p.A) + stdmath.Abs(p.B)
	return 1 - amp, 1 + amp
}

// Step implements scene.Animator.
func (p Pulse) Step(c Clock, rest, cur scene.Transform) scene.Transform {
	cur.Scale = rest.Scale.Scale(float32(p.Factor(c.Elapsed)))
	return cur
}

// Sway sets rotation X to sin(t·Frequency)·Amplitude, a slow nod.
type Sway struct {
	Amplitude float64
	Frequency float64
}

// Step implements scene.Animator.
func (s Sway) Step(c Clock, rest, cur scene.Transform) scene.Transform {
	cur.Rotation.X = rest.Rotation.X + float32(stdmath.Sin(c.Elapsed*s.Frequency)*s.Amplitude)
	return cur
}

// Float hovers a node around its rest transform: a vertical bob of at most
// FloatIntensity/10 and a rotation wobble scaled by RotationIntensity.
type Float struct {
	Speed             float64
	RotationIntensity float64
	FloatIntensity    float64
	Offset            float64
}

// Step implements scene.Animator.
func (f Float) Step(c Clock, rest, cur scene.Transform) scene.Transform {
	phase := (f.Offset + c.Elapsed) / 4 * f.Speed
	sin, cos := stdmath.Sincos(phase)

	cur.Rotation.X = rest.Rotation.X + float32(cos/8*f.RotationIntensity)
	cur.Rotation.Y = rest.Rotation.Y + float32(sin/8*f.RotationIntensity)
	cur.Rotation.Z = rest.Rotation.Z + float32(sin/20*f.RotationIntensity)
	cur.Position.Y = rest.Position.Y + float32(sin/10*f.FloatIntensity)
	return cur
}

// MaxLift is the largest vertical offset Step produces.
func (f Float) MaxLift() float64 {
	return stdmath.Abs(f.FloatIntensity) / 10
}

// Chain applies animators in order, each seeing the previous result.
type Chain []Animator

// Step implements scene.Animator.
func (ch Chain) Step(c Clock, rest, cur scene.Transform) scene.Transform {
	for _, a := range ch {
		cur = a.Step(c, rest, cur)
	}
	return cur
}
