// Package mesh generates triangle meshes for the primitive shapes of the
// scene package, plus the hard-edge outlines drawn over them.
package mesh

import (
	stdmath "math"

	"github.com/Faultbox/learn3d/internal/scene"
	"github.com/Faultbox/learn3d/pkg/math"
)

// Vertex is a mesh vertex with position and normal.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Size returns the extent on each axis.
func (b Bounds) Size() [3]float32 {
	return [3]float32{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// Mesh holds triangle data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Triangles returns the triangle count.
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// flatShadingBelow is the segment count under which round shapes are shaded
// per face, so four-sided cones read as pyramids.
const flatShadingBelow = 12

// Build generates the mesh for s.
func Build(s scene.Shape) *Mesh {
	var m *Mesh
	switch s.Kind {
	case scene.Box:
		m = box(s.Width, s.Height, s.Depth)
	case scene.Sphere:
		m = sphere(s.Radius, s.RadialSegments, s.TubularSegments)
	case scene.Cone:
		m = cylinder(0, s.Radius, s.Height, s.RadialSegments)
	case scene.Cylinder:
		m = cylinder(s.Radius, s.RadiusBottom, s.Height, s.RadialSegments)
	case scene.Torus:
		m = torus(s.Radius, s.Tube, s.RadialSegments, s.TubularSegments)
	case scene.TorusKnot:
		m = torusKnot(s.Radius, s.Tube, s.TubularSegments, s.RadialSegments, s.P, s.Q)
	case scene.Ring:
		m = ring(s.InnerRadius, s.Tube, s.RadialSegments)
	case scene.Plane:
		m = plane(s.Width, s.Height)
	case scene.Octahedron, scene.Dodecahedron, scene.Icosahedron:
		m = polyhedron(s.Kind, s.Radius)
	default:
		m = &Mesh{}
	}
	m.computeBounds()
	return m
}

func (m *Mesh) add(p, n math.Vec3) uint32 {
	m.Vertices = append(m.Vertices, Vertex{Position: p.Array(), Normal: n.Array()})
	return uint32(len(m.Vertices) - 1)
}

func (m *Mesh) tri(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

func (m *Mesh) computeBounds() {
	if len(m.Vertices) == 0 {
		return
	}
	b := Bounds{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			b.Min[i] = min(b.Min[i], v.Position[i])
			b.Max[i] = max(b.Max[i], v.Position[i])
		}
	}
	m.Bounds = b
}

// flatten unwelds every triangle and gives it its face normal.
func flatten(m *Mesh) *Mesh {
	out := &Mesh{
		Vertices: make([]Vertex, 0, len(m.Indices)),
		Indices:  make([]uint32, 0, len(m.Indices)),
	}
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a := vec(m.Vertices[m.Indices[t]].Position)
		b := vec(m.Vertices[m.Indices[t+1]].Position)
		c := vec(m.Vertices[m.Indices[t+2]].Position)
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()
		out.tri(out.add(a, n), out.add(b, n), out.add(c, n))
	}
	return out
}

func vec(p [3]float32) math.Vec3 {
	return math.V3(p[0], p[1], p[2])
}

func sincos(a float64) (float32, float32) {
	s, c := stdmath.Sincos(a)
	return float32(s), float32(c)
}

func box(w, h, d float32) *Mesh {
	half := math.V3(w/2, h/2, d/2)
	// normal, u, v with u × v = normal
	faces := [6][3]math.Vec3{
		{math.V3(1, 0, 0), math.V3(0, 0, -1), math.V3(0, 1, 0)},
		{math.V3(-1, 0, 0), math.V3(0, 0, 1), math.V3(0, 1, 0)},
		{math.V3(0, 1, 0), math.V3(1, 0, 0), math.V3(0, 0, -1)},
		{math.V3(0, -1, 0), math.V3(1, 0, 0), math.V3(0, 0, 1)},
		{math.V3(0, 0, 1), math.V3(1, 0, 0), math.V3(0, 1, 0)},
		{math.V3(0, 0, -1), math.V3(-1, 0, 0), math.V3(0, 1, 0)},
	}
	m := &Mesh{}
	for _, f := range faces {
		n := f[0]
		c, u, v := n.Mul(half), f[1].Mul(half), f[2].Mul(half)
		i0 := m.add(c.Sub(u).Sub(v), n)
		i1 := m.add(c.Add(u).Sub(v), n)
		i2 := m.add(c.Add(u).Add(v), n)
		i3 := m.add(c.Sub(u).Add(v), n)
		m.tri(i0, i1, i2)
		m.tri(i0, i2, i3)
	}
	return m
}

func sphere(r float32, widthSegs, heightSegs int) *Mesh {
	widthSegs = max(widthSegs, 3)
	heightSegs = max(heightSegs, 2)
	m := &Mesh{}
	grid := make([][]uint32, heightSegs+1)
	for iy := 0; iy <= heightSegs; iy++ {
		v := float64(iy) / float64(heightSegs)
		sv, cv := sincos(v * stdmath.Pi)
		grid[iy] = make([]uint32, widthSegs+1)
		for ix := 0; ix <= widthSegs; ix++ {
			u := float64(ix) / float64(widthSegs)
			su, cu := sincos(u * 2 * stdmath.Pi)
			n := math.V3(-cu*sv, cv, su*sv)
			grid[iy][ix] = m.add(n.Scale(r), n)
		}
	}
	for iy := 0; iy < heightSegs; iy++ {
		for ix := 0; ix < widthSegs; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 {
				m.tri(a, b, d)
			}
			if iy != heightSegs-1 {
				m.tri(b, c, d)
			}
		}
	}
	return m
}

// cylinder builds a capped frustum along Y. A zero top radius makes a cone.
func cylinder(top, bottom, h float32, segs int) *Mesh {
	segs = max(segs, 3)
	m := &Mesh{}
	half := h / 2
	slope := (bottom - top) / h

	for i := 0; i < segs; i++ {
		s0, c0 := sincos(float64(i) / float64(segs) * 2 * stdmath.Pi)
		s1, c1 := sincos(float64(i+1) / float64(segs) * 2 * stdmath.Pi)
		n0 := math.V3(s0, slope, c0).Normalize()
		n1 := math.V3(s1, slope, c1).Normalize()

		t0 := math.V3(top*s0, half, top*c0)
		t1 := math.V3(top*s1, half, top*c1)
		b0 := math.V3(bottom*s0, -half, bottom*c0)
		b1 := math.V3(bottom*s1, -half, bottom*c1)

		if bottom > 0 {
			m.tri(m.add(t0, n0), m.add(b0, n0), m.add(b1, n1))
		}
		if top > 0 {
			m.tri(m.add(t0, n0), m.add(b1, n1), m.add(t1, n1))
		}
	}
	addCap := func(r, y float32, up bool) {
		if r <= 0 {
			return
		}
		n := math.V3(0, 1, 0)
		if !up {
			n = n.Scale(-1)
		}
		center := m.add(math.V3(0, y, 0), n)
		for i := 0; i < segs; i++ {
			s0, c0 := sincos(float64(i) / float64(segs) * 2 * stdmath.Pi)
			s1, c1 := sincos(float64(i+1) / float64(segs) * 2 * stdmath.Pi)
			p0 := m.add(math.V3(r*s0, y, r*c0), n)
			p1 := m.add(math.V3(r*s1, y, r*c1), n)
			if up {
				m.tri(center, p0, p1)
			} else {
				m.tri(center, p1, p0)
			}
		}
	}
	addCap(top, half, true)
	addCap(bottom, -half, false)

	if segs < flatShadingBelow {
		return flatten(m)
	}
	return m
}

func torus(radius, tube float32, radialSegs, tubularSegs int) *Mesh {
	radialSegs = max(radialSegs, 3)
	tubularSegs = max(tubularSegs, 3)
	m := &Mesh{}
	for j := 0; j <= radialSegs; j++ {
		sv, cv := sincos(float64(j) / float64(radialSegs) * 2 * stdmath.Pi)
		for i := 0; i <= tubularSegs; i++ {
			su, cu := sincos(float64(i) / float64(tubularSegs) * 2 * stdmath.Pi)
			p := math.V3((radius+tube*cv)*cu, (radius+tube*cv)*su, tube*sv)
			center := math.V3(radius*cu, radius*su, 0)
			m.add(p, p.Sub(center).Normalize())
		}
	}
	row := uint32(tubularSegs + 1)
	for j := uint32(1); j <= uint32(radialSegs); j++ {
		for i := uint32(1); i <= uint32(tubularSegs); i++ {
			a := row*j + i - 1
			b := row*(j-1) + i - 1
			c := row*(j-1) + i
			d := row*j + i
			m.tri(a, b, d)
			m.tri(b, c, d)
		}
	}
	return m
}

func knotPoint(u float64, p, q int, radius float32) math.Vec3 {
	qu := float64(q) / float64(p) * u
	cs := float32(stdmath.Cos(qu))
	su, cu := sincos(u)
	return math.V3(
		radius*(2+cs)*0.5*cu,
		radius*(2+cs)*0.5*su,
		radius*float32(stdmath.Sin(qu))*0.5,
	)
}

func torusKnot(radius, tube float32, tubularSegs, radialSegs, p, q int) *Mesh {
	tubularSegs = max(tubularSegs, 3)
	radialSegs = max(radialSegs, 3)
	if p == 0 || q == 0 {
		p, q = 2, 3
	}
	m := &Mesh{}
	for i := 0; i <= tubularSegs; i++ {
		u := float64(i) / float64(tubularSegs) * float64(p) * 2 * stdmath.Pi
		p1 := knotPoint(u, p, q, radius)
		p2 := knotPoint(u+0.01, p, q, radius)

		t := p2.Sub(p1)
		n := p2.Add(p1)
		b := t.Cross(n)
		n = b.Cross(t)
		b = b.Normalize()
		n = n.Normalize()

		for j := 0; j <= radialSegs; j++ {
			sv, cv := sincos(float64(j) / float64(radialSegs) * 2 * stdmath.Pi)
			cx := -tube * cv
			cy := tube * sv
			pos := p1.Add(n.Scale(cx)).Add(b.Scale(cy))
			m.add(pos, pos.Sub(p1).Normalize())
		}
	}
	row := uint32(radialSegs + 1)
	for j := uint32(1); j <= uint32(tubularSegs); j++ {
		for i := uint32(1); i <= uint32(radialSegs); i++ {
			a := row*(j-1) + (i - 1)
			b := row*j + (i - 1)
			c := row*j + i
			d := row*(j-1) + i
			m.tri(a, b, d)
			m.tri(b, c, d)
		}
	}
	return m
}

func ring(inner, outer float32, segs int) *Mesh {
	segs = max(segs, 3)
	m := &Mesh{}
	n := math.V3(0, 0, 1)
	for _, r := range []float32{inner, outer} {
		for i := 0; i <= segs; i++ {
			s, c := sincos(float64(i) / float64(segs) * 2 * stdmath.Pi)
			m.add(math.V3(r*c, r*s, 0), n)
		}
	}
	row := uint32(segs + 1)
	for i := uint32(0); i < uint32(segs); i++ {
		a := i
		b := a + row
		c := a + row + 1
		d := a + 1
		m.tri(a, b, d)
		m.tri(b, c, d)
	}
	return m
}

func plane(w, h float32) *Mesh {
	m := &Mesh{}
	n := math.V3(0, 0, 1)
	i0 := m.add(math.V3(-w/2, -h/2, 0), n)
	i1 := m.add(math.V3(w/2, -h/2, 0), n)
	i2 := m.add(math.V3(w/2, h/2, 0), n)
	i3 := m.add(math.V3(-w/2, h/2, 0), n)
	m.tri(i0, i1, i2)
	m.tri(i0, i2, i3)
	return m
}
