package mesh

import (
	stdmath "math"

	"github.com/Faultbox/learn3d/pkg/math"
)

// DefaultEdgeThreshold is the dihedral angle, in degrees, above which an
// edge between two faces counts as hard.
const DefaultEdgeThreshold = 1.0

type posKey [3]int32

func keyOf(p [3]float32) posKey {
	const q = 1e4
	return posKey{
		int32(stdmath.Round(float64(p[0]) * q)),
		int32(stdmath.Round(float64(p[1]) * q)),
		int32(stdmath.Round(float64(p[2]) * q)),
	}
}

type edgeKey [2]posKey

func less(a, b posKey) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

type edgeInfo struct {
	a, b    [3]float32
	normals []math.Vec3
}

// Edges returns line segments, as consecutive endpoint pairs of xyz floats,
// for every boundary edge and every edge whose adjacent faces meet at more
// than thresholdDeg. Coplanar triangulation diagonals are dropped.
func Edges(m *Mesh, thresholdDeg float64) []float32 {
	cosLimit := float32(stdmath.Cos(thresholdDeg * stdmath.Pi / 180))

	edges := make(map[edgeKey]*edgeInfo)
	var order []edgeKey

	for t := 0; t+2 < len(m.Indices); t += 3 {
		p := [3][3]float32{
			m.Vertices[m.Indices[t]].Position,
			m.Vertices[m.Indices[t+1]].Position,
			m.Vertices[m.Indices[t+2]].Position,
		}
		k := [3]posKey{keyOf(p[0]), keyOf(p[1]), keyOf(p[2])}
		if k[0] == k[1] || k[1] == k[2] || k[0] == k[2] {
			continue
		}
		a, b, c := vec(p[0]), vec(p[1]), vec(p[2])
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()

		for e := 0; e < 3; e++ {
			i, j := e, (e+1)%3
			ka, kb := k[i], k[j]
			pa, pb := p[i], p[j]
			if less(kb, ka) {
				ka, kb = kb, ka
				pa, pb = pb, pa
			}
			key := edgeKey{ka, kb}
			info, ok := edges[key]
			if !ok {
				info = &edgeInfo{a: pa, b: pb}
				edges[key] = info
				order = append(order, key)
			}
			info.normals = append(info.normals, n)
		}
	}

	var lines []float32
	for _, key := range order {
		info := edges[key]
		hard := len(info.normals) == 1
		if len(info.normals) >= 2 {
			hard = info.normals[0].Dot(info.normals[1]) <= cosLimit
		}
		if hard {
			lines = append(lines, info.a[:]...)
			lines = append(lines, info.b[:]...)
		}
	}
	return lines
}
