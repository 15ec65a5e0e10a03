package catalog

import (
	stdmath "math"

	"github.com/Faultbox/learn3d/internal/anim"
	"github.com/Faultbox/learn3d/internal/scene"
	"github.com/Faultbox/learn3d/pkg/math"
)

const (
	violet   = "#8B5CF6"
	purple   = "#A855F7"
	lavender = "#C084FC"
	lilac    = "#C4B5FD"
	mist     = "#DDD6FE"
	gold     = "#FFD700"
	mint     = "#00FF88"
	signal   = "#FF4444"
	amber    = "#FFA500"
)

// crystal is the translucent finish shared by every geometric solid.
func crystal(hex string, metalness float32) scene.Material {
	return scene.Glass(hex, 0.8).Rough(0.1, metalness)
}

func centroid() *scene.Node {
	return scene.Mesh("centroid", scene.NewSphere(0.06), scene.Solid(signal).Glow(signal, 0.3))
}

var geometry = &Registry{
	Subject:     SubjectGeometry,
	Title:       "Interactive 3D Geometry",
	Tagline:     "Explore geometric shapes in three dimensions. Click and drag to rotate, scroll to zoom.",
	SelectLabel: "Select a Shape",
	Tips: []string{
		"Drag to rotate and examine from all angles",
		"Scroll to zoom in and study details",
		"Try visualizing cross-sections",
		"Count faces, edges, and vertices",
	},
	Stage: Stage{
		CameraPosition: math.V3(0, 0, 5),
		FOV:            50,
		MinDistance:    3,
		MaxDistance:    8,
		Ambient:        0.4,
		Lights: []Light{
			{Position: math.V3(10, 10, 5), Color: scene.Hex(violet), Intensity: 1},
			{Position: math.V3(-10, -10, -5), Color: scene.Hex(purple), Intensity: 0.5},
		},
		Float: &anim.Float{Speed: 1.4, RotationIntensity: 0.2, FloatIntensity: 0.3},
	},
	Descriptors: []Descriptor{
		{
			Name:        "Cube",
			Description: "A polyhedron with 6 square faces, 12 edges, and 8 vertices. Gold spheres mark vertices, green spheres mark face centers, and red marks the centroid.",
			Build:       buildCube,
		},
		{
			Name:        "Sphere",
			Description: "A perfectly round 3D shape. Gold points mark surface locations, green lines show radii, and purple circles represent great circles through the center.",
			Build:       buildSphere,
		},
		{
			Name:        "Pyramid",
			Description: "A square pyramid with 5 faces, 8 edges, and 5 vertices. Gold spheres mark vertices, green line shows height, orange lines show slant heights.",
			Build:       buildPyramid,
		},
		{
			Name:        "Torus",
			Description: "A doughnut-shaped surface generated by revolving a circle around an axis coplanar with the circle.",
			Build: solid(SolidConfig{
				Name:     "torus",
				Shape:    scene.NewTorus(1.2, 0.4, 16, 100),
				Material: crystal(violet, 0.4),
				Spin:     anim.SpinXY(0.4, 0.2),
			}),
		},
		{
			Name:        "Cylinder",
			Description: "A surface formed by parallel lines connecting two circular bases. Has 2 faces, 1 curved surface, and 2 edges.",
			Build: solid(SolidConfig{
				Name:     "cylinder",
				Shape:    scene.NewCylinder(1, 1, 2.5, 32),
				Material: crystal(purple, 0.3),
				Edges:    lilac,
				Spin:     anim.SpinXY(0.3, 0.4),
			}),
		},
		{
			Name:        "Dodecahedron",
			Description: "A regular polyhedron with 12 pentagonal faces, 20 vertices, and 30 edges. One of the five Platonic solids.",
			Build: solid(SolidConfig{
				Name:     "dodecahedron",
				Shape:    scene.NewDodecahedron(1.3),
				Material: crystal(lavender, 0.4),
				Edges:    mist,
				Spin:     anim.SpinXYZ(0.2, 0.3, 0.1),
			}),
		},
		{
			Name:        "Icosahedron",
			Description: "A regular polyhedron with 20 triangular faces, 12 vertices, and 30 edges. Another Platonic solid.",
			Build: solid(SolidConfig{
				Name:     "icosahedron",
				Shape:    scene.NewIcosahedron(1.4),
				Material: crystal(violet, 0.5),
				Edges:    lilac,
				Spin:     anim.SpinXYZ(0.4, 0.2, 0.3),
			}),
		},
		{
			Name:        "Torus Knot",
			Description: "A special type of knot that winds around a torus in a specific mathematical pattern, creating complex 3D curves.",
			Build: solid(SolidConfig{
				Name:     "torus-knot",
				Shape:    scene.NewTorusKnot(1, 0.3, 100, 16),
				Material: crystal(purple, 0.6),
				Spin:     anim.SpinXY(0.1, 0.5),
			}),
		},
		{
			Name:        "Octahedron",
			Description: "A regular polyhedron with 8 triangular faces, 6 vertices, and 12 edges. Dual of the cube.",
			Build: solid(SolidConfig{
				Name:     "octahedron",
				Shape:    scene.NewOctahedron(1.5),
				Material: crystal(lavender, 0.3),
				Edges:    mist,
				Spin:     anim.SpinXYZ(0.3, 0.4, 0.2),
			}),
		},
	},
}

func solid(c SolidConfig) func() *scene.Node {
	return func() *scene.Node { return Solid(c) }
}

func buildCube() *scene.Node {
	var corners []math.Vec3
	for _, z := range []float32{-1, 1} {
		corners = append(corners,
			math.V3(-1, -1, z), math.V3(1, -1, z), math.V3(1, 1, z), math.V3(-1, 1, z))
	}
	faces := []math.Vec3{
		math.V3(0, 0, 1), math.V3(0, 0, -1),
		math.V3(0, 1, 0), math.V3(0, -1, 0),
		math.V3(1, 0, 0), math.V3(-1, 0, 0),
	}
	return scene.Group("cube",
		Solid(SolidConfig{
			Name:     "body",
			Shape:    scene.NewBox(2, 2, 2),
			Material: crystal(violet, 0.2),
			Edges:    lilac,
			Spin:     anim.SpinXY(0.5, 0.3),
		}),
		Markers("vertices", corners, 0.08, scene.Solid(gold)),
		centroid(),
		Markers("face-centers", faces, 0.05, scene.Solid(mint)),
	)
}

func buildSphere() *scene.Node {
	greatCircle := scene.NewTorus(1.5, 0.02, 8, 32)
	ring := scene.Glass(lilac, 0.7)
	return scene.Group("sphere",
		Solid(SolidConfig{
			Name:     "body",
			Shape:    scene.NewSphere(1.5),
			Material: crystal(purple, 0.3),
			Spin:     anim.SpinXY(0.3, 0.4),
		}),
		centroid(),
		Radial(RadialConfig{
			Name:    "surface-points",
			Count:   6,
			Radius:  1.5,
			Shape:   scene.NewSphere(0.05),
			Palette: []scene.Material{scene.Solid(gold)},
		}),
		Radial(RadialConfig{
			Name:    "radii",
			Count:   6,
			Radius:  0.75,
			Shape:   scene.NewCylinder(0.01, 0.01, 1.5, 8),
			Palette: []scene.Material{scene.Glass(mint, 0.6)},
			Facing:  AlongRadius,
		}),
		scene.Mesh("equator", greatCircle, ring).Rotated(stdmath.Pi/2, 0, 0),
		scene.Mesh("meridian", greatCircle, ring).Rotated(0, stdmath.Pi/2, 0),
	)
}

func buildPyramid() *scene.Node {
	base := []math.Vec3{
		math.V3(1.5, -1.5, 0), math.V3(-1.5, -1.5, 0),
		math.V3(0, -1.5, 1.5), math.V3(0, -1.5, -1.5),
	}
	slant := float32(stdmath.Sqrt(3*3 + 1.5*1.5))
	// lean each rod inward so it runs from a base vertex to the apex
	lean := float32(stdmath.Atan(1.5 / 3))
	return scene.Group("pyramid",
		Solid(SolidConfig{
			Name:     "body",
			Shape:    scene.NewCone(1.5, 3, 4),
			Material: crystal(lavender, 0.2),
			Edges:    mist,
			Spin:     anim.SpinXY(0.2, 0.5),
		}),
		Markers("apex", []math.Vec3{math.V3(0, 1.5, 0)}, 0.08, scene.Solid(gold)),
		Markers("base-vertices", base, 0.08, scene.Solid(gold)),
		scene.Mesh("base-center", scene.NewSphere(0.06), scene.Solid(signal)).At(0, -1.5, 0),
		scene.Mesh("height", scene.NewCylinder(0.01, 0.01, 3, 8), scene.Glass(mint, 0.8)),
		Radial(RadialConfig{
			Name:    "slant-heights",
			Count:   4,
			Radius:  0.75,
			Shape:   scene.NewCylinder(0.008, 0.008, slant, 8),
			Palette: []scene.Material{scene.Glass(amber, 0.6)},
			Facing: func(_ int, angle float64) math.Vec3 {
				return math.V3(0, float32(-angle), lean)
			},
		}),
	)
}
