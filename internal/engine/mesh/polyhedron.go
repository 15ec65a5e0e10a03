package mesh

import (
	stdmath "math"

	"github.com/Faultbox/learn3d/internal/scene"
	"github.com/Faultbox/learn3d/pkg/math"
)

type solidData struct {
	vertices []float32
	indices  []uint32
}

var (
	phi    = float32((1 + stdmath.Sqrt(5)) / 2)
	invPhi = 1 / phi
)

var octahedronData = solidData{
	vertices: []float32{
		1, 0, 0, -1, 0, 0, 0, 1, 0,
		0, -1, 0, 0, 0, 1, 0, 0, -1,
	},
	indices: []uint32{
		0, 2, 4, 0, 4, 3, 0, 3, 5, 0, 5, 2,
		1, 2, 5, 1, 5, 3, 1, 3, 4, 1, 4, 2,
	},
}

var icosahedronData = solidData{
	vertices: []float32{
		-1, phi, 0, 1, phi, 0, -1, -phi, 0, 1, -phi, 0,
		0, -1, phi, 0, 1, phi, 0, -1, -phi, 0, 1, -phi,
		phi, 0, -1, phi, 0, 1, -phi, 0, -1, -phi, 0, 1,
	},
	indices: []uint32{
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	},
}

var dodecahedronData = solidData{
	vertices: []float32{
		-1, -1, -1, -1, -1, 1, -1, 1, -1, -1, 1, 1,
		1, -1, -1, 1, -1, 1, 1, 1, -1, 1, 1, 1,
		0, -invPhi, -phi, 0, -invPhi, phi, 0, invPhi, -phi, 0, invPhi, phi,
		-invPhi, -phi, 0, -invPhi, phi, 0, invPhi, -phi, 0, invPhi, phi, 0,
		-phi, 0, -invPhi, phi, 0, -invPhi, -phi, 0, invPhi, phi, 0, invPhi,
	},
	indices: []uint32{
		3, 11, 7, 3, 7, 15, 3, 15, 13,
		7, 19, 17, 7, 17, 6, 7, 6, 15,
		17, 4, 8, 17, 8, 10, 17, 10, 6,
		8, 0, 16, 8, 16, 2, 8, 2, 10,
		0, 12, 1, 0, 1, 18, 0, 18, 16,
		6, 10, 2, 6, 2, 13, 6, 13, 15,
		2, 16, 18, 2, 18, 3, 2, 3, 13,
		18, 1, 9, 18, 9, 11, 18, 11, 3,
		4, 14, 12, 4, 12, 0, 4, 0, 8,
		11, 9, 5, 11, 5, 19, 11, 19, 7,
		19, 5, 14, 19, 14, 4, 19, 4, 17,
		1, 12, 14, 1, 14, 5, 1, 5, 9,
	},
}

// polyhedron projects a unit solid onto a sphere of radius r and shades it
// per face. Triangles are wound to face away from the center.
func polyhedron(kind scene.Kind, r float32) *Mesh {
	var data solidData
	switch kind {
	case scene.Octahedron:
		data = octahedronData
	case scene.Dodecahedron:
		data = dodecahedronData
	default:
		data = icosahedronData
	}

	corner := func(i uint32) math.Vec3 {
		return math.V3(data.vertices[i*3], data.vertices[i*3+1], data.vertices[i*3+2]).Normalize().Scale(r)
	}

	m := &Mesh{}
	for t := 0; t+2 < len(data.indices); t += 3 {
		a, b, c := corner(data.indices[t]), corner(data.indices[t+1]), corner(data.indices[t+2])
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()
		if n.Dot(a.Add(b).Add(c)) < 0 {
			b, c = c, b
			n = n.Scale(-1)
		}
		m.tri(m.add(a, n), m.add(b, n), m.add(c, n))
	}
	return m
}
