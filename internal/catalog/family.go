package catalog

import (
	stdmath "math"
	"math/rand/v2"
	"strconv"

	"github.com/Faultbox/learn3d/internal/anim"
	"github.com/Faultbox/learn3d/internal/scene"
	"github.com/Faultbox/learn3d/pkg/math"
)

// SolidConfig describes a single primitive with an optional outline and spin.
type SolidConfig struct {
	Name     string
	Shape    scene.Shape
	Material scene.Material
	Edges    string // "#rrggbb", empty for none
	Spin     anim.Spin
	Position math.Vec3
}

// Solid builds one spinning primitive.
func Solid(c SolidConfig) *scene.Node {
	n := scene.Mesh(c.Name, c.Shape, c.Material)
	n.Transform.Position = c.Position
	if c.Edges != "" {
		n.WithEdges(scene.Hex(c.Edges))
	}
	if c.Spin.Rate != (math.Vec3{}) {
		n.Animate(c.Spin)
	}
	return n
}

// RadialConfig places Count copies of a primitive around the Y axis.
type RadialConfig struct {
	Name   string
	Count  int
	Radius float32
	Y      float32

	// Step is the angle between items; zero spreads them over a full turn.
	Step  float64
	Phase float64

	Shape   scene.Shape
	Palette []scene.Material // cycled by index
	Scale   math.Vec3        // zero means unit

	// Place overrides the circular placement.
	Place func(i int, angle float64) math.Vec3
	// Facing returns the item rotation; nil leaves it unrotated.
	Facing func(i int, angle float64) math.Vec3

	// Float wraps each item in a hover group. Speeds grow by FloatStep per index.
	Float     *anim.Float
	FloatStep float64
}

// Radial builds a group of repeated primitives.
func Radial(c RadialConfig) *scene.Node {
	step := c.Step
	if step == 0 && c.Count > 0 {
		step = 2 * stdmath.Pi / float64(c.Count)
	}
	g := scene.Group(c.Name)
	for i := 0; i < c.Count; i++ {
		angle := c.Phase + float64(i)*step
		name := c.Name + "/" + strconv.Itoa(i)

		n := scene.Mesh(name, c.Shape, c.Palette[i%len(c.Palette)])
		if c.Place != nil {
			n.Transform.Position = c.Place(i, angle)
		} else {
			s, co := stdmath.Sincos(angle)
			n.Transform.Position = math.V3(float32(co)*c.Radius, c.Y, float32(s)*c.Radius)
		}
		if c.Facing != nil {
			n.Transform.Rotation = c.Facing(i, angle)
		}
		if c.Scale != (math.Vec3{}) {
			n.Transform.Scale = c.Scale
		}

		if c.Float != nil {
			f := *c.Float
			f.Speed += float64(i) * c.FloatStep
			f.Offset = float64(i) * 2
			g.Add(scene.Group(name+"/float", n).Animate(f))
			continue
		}
		g.Add(n)
	}
	return g
}

// FaceOut turns each item to its placement angle around Y.
func FaceOut(_ int, angle float64) math.Vec3 {
	return math.V3(0, float32(angle), 0)
}

// AlongRadius lays a Y-aligned rod flat so it points from the axis toward its
// placement angle.
func AlongRadius(_ int, angle float64) math.Vec3 {
	return math.V3(0, float32(-angle), stdmath.Pi/2)
}

// Markers puts a small sphere at each point.
func Markers(name string, points []math.Vec3, radius float32, mat scene.Material) *scene.Node {
	g := scene.Group(name)
	for i, p := range points {
		m := scene.Mesh(name+"/"+strconv.Itoa(i), scene.NewSphere(radius), mat)
		m.Transform.Position = p
		g.Add(m)
	}
	return g
}

// HelixConfig describes a double helix of paired beads joined by rungs.
type HelixConfig struct {
	Name       string
	Levels     int
	Spacing    float32 // vertical distance between levels
	Twist      float64 // radians per level
	Radius     float32
	Bead       float32
	StrandA    scene.Material
	StrandB    scene.Material
	Rung       scene.Material
	RungRadius float32
}

// Helix builds the strands centered on the origin.
func Helix(c HelixConfig) *scene.Node {
	g := scene.Group(c.Name)
	half := c.Levels / 2
	for i := 0; i < c.Levels; i++ {
		y := float32(i-half) * c.Spacing
		angle := float64(i) * c.Twist
		s, co := stdmath.Sincos(angle)
		x, z := float32(co)*c.Radius, float32(s)*c.Radius

		level := scene.Group(c.Name + "/" + strconv.Itoa(i))
		level.Add(
			scene.Mesh("strand-a", scene.NewSphere(c.Bead), c.StrandA).At(x, y, z),
			scene.Mesh("strand-b", scene.NewSphere(c.Bead), c.StrandB).At(-x, y, -z),
			scene.Mesh("rung", scene.NewCylinder(c.RungRadius, c.RungRadius, 2*c.Radius, 8), c.Rung).
				At(0, y, 0).Rotated(0, float32(-angle), stdmath.Pi/2),
		)
		g.Add(level)
	}
	return g
}

// RowConfig lays out Count items in rows of PerRow along X.
type RowConfig struct {
	Name     string
	Count    int
	PerRow   int
	Spacing  float32
	Y        float32
	RowZ     []float32 // z of each row
	Shape    scene.Shape
	Material scene.Material
}

// Row builds a grid of identical primitives centered on X.
func Row(c RowConfig) *scene.Node {
	g := scene.Group(c.Name)
	center := float32(c.PerRow-1) / 2
	for i := 0; i < c.Count; i++ {
		x := (float32(i%c.PerRow) - center) * c.Spacing
		z := c.RowZ[i/c.PerRow]
		g.Add(scene.Mesh(c.Name+"/"+strconv.Itoa(i), c.Shape, c.Material).At(x, c.Y, z))
	}
	return g
}

// jitter returns a deterministic sequence in [-0.5, 0.5) so rebuilt trees
// are identical.
func jitter(seed uint64) func() float32 {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return func() float32 {
		return r.Float32() - 0.5
	}
}
