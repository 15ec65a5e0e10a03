package mesh

import (
	stdmath "math"
	"testing"

	"github.com/Faultbox/learn3d/internal/scene"
)

var allShapes = []scene.Shape{
	scene.NewBox(2, 3, 4),
	scene.NewSphere(1.5),
	scene.NewCone(1.5, 3, 4),
	scene.NewCone(0.45, 1.2, 12),
	scene.NewCylinder(1, 1, 2.5, 32),
	scene.NewCylinder(0.15, 0.18, 0.8, 8),
	scene.NewTorus(1.2, 0.4, 16, 100),
	scene.NewTorusKnot(1, 0.3, 100, 16),
	scene.NewRing(1.2, 2, 32),
	scene.NewPlane(20, 20),
	scene.NewOctahedron(1.5),
	scene.NewDodecahedron(1.3),
	scene.NewIcosahedron(1.4),
}

func TestIndicesValid(t *testing.T) {
	for _, s := range allShapes {
		m := Build(s)
		if len(m.Indices) == 0 || len(m.Indices)%3 != 0 {
			t.Errorf("%s: index count %d", s, len(m.Indices))
			continue
		}
		for _, idx := range m.Indices {
			if int(idx) >= len(m.Vertices) {
				t.Errorf("%s: index %d out of range (%d vertices)", s, idx, len(m.Vertices))
				break
			}
		}
	}
}

func TestNormalsUnitLength(t *testing.T) {
	for _, s := range allShapes {
		m := Build(s)
		for i, v := range m.Vertices {
			l := vec(v.Normal).Length()
			if stdmath.Abs(float64(l-1)) > 1e-4 {
				t.Errorf("%s: vertex %d normal length %f", s, i, l)
				break
			}
		}
	}
}

// Winding must agree with the stored normals so back-face culling keeps the
// visible side.
func TestWindingMatchesNormals(t *testing.T) {
	for _, s := range allShapes {
		m := Build(s)
		for tr := 0; tr < len(m.Indices); tr += 3 {
			va, vb, vc := m.Vertices[m.Indices[tr]], m.Vertices[m.Indices[tr+1]], m.Vertices[m.Indices[tr+2]]
			a, b, c := vec(va.Position), vec(vb.Position), vec(vc.Position)
			face := b.Sub(a).Cross(c.Sub(a))
			if face.Length() < 1e-7 {
				continue
			}
			avg := vec(va.Normal).Add(vec(vb.Normal)).Add(vec(vc.Normal))
			if face.Dot(avg) <= 0 {
				t.Errorf("%s: triangle %d wound against its normals", s, tr/3)
				break
			}
		}
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		shape scene.Shape
		size  [3]float32
	}{
		{scene.NewBox(2, 3, 4), [3]float32{2, 3, 4}},
		{scene.NewSphere(1.5), [3]float32{3, 3, 3}},
		{scene.NewCone(1.5, 3, 4), [3]float32{3, 3, 3}},
		{scene.NewCylinder(1, 1, 2.5, 32), [3]float32{2, 2.5, 2}},
		{scene.NewTorus(1.2, 0.4, 16, 100), [3]float32{3.2, 3.2, 0.8}},
		{scene.NewRing(1.2, 2, 32), [3]float32{4, 4, 0}},
		{scene.NewPlane(20, 10), [3]float32{20, 10, 0}},
		{scene.NewOctahedron(1.5), [3]float32{3, 3, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			got := Build(tt.shape).Bounds.Size()
			for i := range got {
				if stdmath.Abs(float64(got[i]-tt.size[i])) > 1e-3 {
					t.Errorf("size = %v, want %v", got, tt.size)
					break
				}
			}
		})
	}
}

func TestPolyhedraOnSphere(t *testing.T) {
	for _, s := range []scene.Shape{scene.NewOctahedron(1.5), scene.NewDodecahedron(1.3), scene.NewIcosahedron(1.4)} {
		for _, v := range Build(s).Vertices {
			if d := vec(v.Position).Length(); stdmath.Abs(float64(d-s.Radius)) > 1e-4 {
				t.Errorf("%s: vertex at distance %f", s, d)
				break
			}
		}
	}
}

func TestTriangleCounts(t *testing.T) {
	tests := []struct {
		shape scene.Shape
		want  int
	}{
		{scene.NewBox(1, 1, 1), 12},
		{scene.NewOctahedron(1), 8},
		{scene.NewIcosahedron(1), 20},
		{scene.NewDodecahedron(1), 36},
		{scene.NewCone(1, 1, 4), 8},
		{scene.NewPlane(1, 1), 2},
		{scene.NewRing(1, 2, 32), 64},
	}
	for _, tt := range tests {
		if got := Build(tt.shape).Triangles(); got != tt.want {
			t.Errorf("%s: %d triangles, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestEdgeCounts(t *testing.T) {
	tests := []struct {
		shape scene.Shape
		want  int
	}{
		{scene.NewBox(2, 2, 2), 12},
		{scene.NewCone(1.5, 3, 4), 8},
		{scene.NewOctahedron(1.5), 12},
		{scene.NewIcosahedron(1.4), 30},
		{scene.NewDodecahedron(1.3), 30},
		{scene.NewCylinder(1, 1, 2.5, 32), 96},
		{scene.NewPlane(1, 1), 4},
	}
	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			lines := Edges(Build(tt.shape), DefaultEdgeThreshold)
			if len(lines)%6 != 0 {
				t.Fatalf("line data length %d not a multiple of 6", len(lines))
			}
			if got := len(lines) / 6; got != tt.want {
				t.Errorf("%d edges, want %d", got, tt.want)
			}
		})
	}
}

func TestCacheSharesMeshes(t *testing.T) {
	c := NewCache()
	a := c.Mesh(scene.NewSphere(0.08))
	b := c.Mesh(scene.NewSphere(0.08))
	if a != b {
		t.Error("identical shapes built twice")
	}
	c.Mesh(scene.NewSphere(0.05))
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if len(c.Edges(scene.NewBox(1, 1, 1))) != 12*6 {
		t.Error("box outline should have 12 edges")
	}
}
