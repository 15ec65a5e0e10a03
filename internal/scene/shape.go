package scene

import "fmt"

// Kind identifies a primitive volume.
type Kind int

const (
	Box Kind = iota
	Sphere
	Cone
	Cylinder
	Torus
	TorusKnot
	Ring
	Plane
	Octahedron
	Dodecahedron
	Icosahedron
)

var kindNames = [...]string{
	Box:          "box",
	Sphere:       "sphere",
	Cone:         "cone",
	Cylinder:     "cylinder",
	Torus:        "torus",
	TorusKnot:    "torusKnot",
	Ring:         "ring",
	Plane:        "plane",
	Octahedron:   "octahedron",
	Dodecahedron: "dodecahedron",
	Icosahedron:  "icosahedron",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns every primitive kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Shape is a primitive volume and its construction parameters. Field use
// depends on Kind; constructors below set only the relevant ones.
type Shape struct {
	Kind Kind

	Width, Height, Depth float32 // box, plane (width, height)
	Radius               float32 // sphere, cone, torus, torus knot, polyhedra; cylinder top
	RadiusBottom         float32 // cylinder
	Tube                 float32 // torus, torus knot; ring outer radius
	InnerRadius          float32 // ring

	RadialSegments  int
	TubularSegments int
	P, Q            int // torus knot winding
}

// NewBox returns an axis-aligned box centered on the origin.
func NewBox(w, h, d float32) Shape {
	return Shape{Kind: Box, Width: w, Height: h, Depth: d}
}

// NewSphere returns a UV sphere.
func NewSphere(r float32) Shape {
	return Shape{Kind: Sphere, Radius: r, RadialSegments: 32, TubularSegments: 16}
}

// NewCone returns a cone standing on Y with its base at -h/2. Four radial
// segments make a square pyramid.
func NewCone(r, h float32, segments int) Shape {
	return Shape{Kind: Cone, Radius: r, Height: h, RadialSegments: segments}
}

// NewCylinder returns a capped cylinder along Y.
func NewCylinder(top, bottom, h float32, segments int) Shape {
	return Shape{Kind: Cylinder, Radius: top, RadiusBottom: bottom, Height: h, RadialSegments: segments}
}

// NewTorus returns a torus in the XY plane.
func NewTorus(r, tube float32, radial, tubular int) Shape {
	return Shape{Kind: Torus, Radius: r, Tube: tube, RadialSegments: radial, TubularSegments: tubular}
}

// NewTorusKnot returns a (2,3) torus knot.
func NewTorusKnot(r, tube float32, tubular, radial int) Shape {
	return Shape{Kind: TorusKnot, Radius: r, Tube: tube, TubularSegments: tubular, RadialSegments: radial, P: 2, Q: 3}
}

// NewRing returns a flat annulus in the XY plane.
func NewRing(inner, outer float32, segments int) Shape {
	return Shape{Kind: Ring, InnerRadius: inner, Tube: outer, RadialSegments: segments}
}

// NewPlane returns a flat rectangle in the XY plane.
func NewPlane(w, h float32) Shape {
	return Shape{Kind: Plane, Width: w, Height: h}
}

// NewOctahedron returns a regular octahedron with circumradius r.
func NewOctahedron(r float32) Shape { return Shape{Kind: Octahedron, Radius: r} }

// NewDodecahedron returns a regular dodecahedron with circumradius r.
func NewDodecahedron(r float32) Shape { return Shape{Kind: Dodecahedron, Radius: r} }

// NewIcosahedron returns a regular icosahedron with circumradius r.
func NewIcosahedron(r float32) Shape { return Shape{Kind: Icosahedron, Radius: r} }

// String formats the shape with the parameters that matter for its kind.
func (s Shape) String() string {
	switch s.Kind {
	case Box:
		return fmt.Sprintf("box(%g, %g, %g)", s.Width, s.Height, s.Depth)
	case Sphere:
		return fmt.Sprintf("sphere(%g)", s.Radius)
	case Cone:
		return fmt.Sprintf("cone(%g, %g, %d)", s.Radius, s.Height, s.RadialSegments)
	case Cylinder:
		return fmt.Sprintf("cylinder(%g, %g, %g, %d)", s.Radius, s.RadiusBottom, s.Height, s.RadialSegments)
	case Torus:
		return fmt.Sprintf("torus(%g, %g, %d, %d)", s.Radius, s.Tube, s.RadialSegments, s.TubularSegments)
	case TorusKnot:
		return fmt.Sprintf("torusKnot(%g, %g, %d, %d)", s.Radius, s.Tube, s.TubularSegments, s.RadialSegments)
	case Ring:
		return fmt.Sprintf("ring(%g, %g, %d)", s.InnerRadius, s.Tube, s.RadialSegments)
	case Plane:
		return fmt.Sprintf("plane(%g, %g)", s.Width, s.Height)
	default:
		return fmt.Sprintf("%s(%g)", s.Kind, s.Radius)
	}
}
