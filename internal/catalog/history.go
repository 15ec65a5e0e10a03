package catalog

import (
	stdmath "math"

	"github.com/Faultbox/learn3d/internal/anim"
	"github.com/Faultbox/learn3d/internal/scene"
	"github.com/Faultbox/learn3d/pkg/math"
)

// stone is the matte finish of every monument.
func stone(hex string, roughness float32) scene.Material {
	return scene.Solid(hex).Rough(roughness, 0.1)
}

func marble(hex string, roughness float32) scene.Material {
	return scene.Solid(hex).Rough(roughness, 0.2)
}

var history = &Registry{
	Subject:      SubjectHistory,
	Title:        "Historical Architecture",
	Tagline:      "Journey through time and explore magnificent ancient structures that shaped human civilization.",
	SelectLabel:  "Select a Historical Site",
	FactsHeading: "Historical Facts",
	Stage: Stage{
		CameraPosition: math.V3(5, 3, 5),
		FOV:            50,
		MinDistance:    3,
		MaxDistance:    12,
		Ambient:        0.4,
		Lights: []Light{
			{Position: math.V3(10, 10, 5), Color: scene.Hex("#FFA500"), Intensity: 1.2},
			{Position: math.V3(-5, 5, -5), Color: scene.Hex("#FFD700"), Intensity: 0.6},
		},
		Ground: func() *scene.Node {
			return scene.Mesh("ground", scene.NewPlane(20, 20), stone("#8B7355", 0.9)).
				At(0, -1, 0).Rotated(-stdmath.Pi/2, 0, 0)
		},
	},
	Descriptors: []Descriptor{
		{
			Name:        "Great Pyramid of Giza",
			Description: "One of the Seven Wonders of the Ancient World, built as a tomb for Pharaoh Khufu.",
			Period:      "2580-2510 BCE",
			Facts: []string{
				"Originally 146.5 meters tall",
				"Built with over 2 million stone blocks",
				"Aligned with cardinal directions",
				"Construction took approximately 20 years",
			},
			Build: buildGiza,
		},
		{
			Name:        "Roman Colosseum",
			Description: "The largest amphitheater ever built, used for gladiatorial contests and public spectacles.",
			Period:      "70-80 CE",
			Facts: []string{
				"Could hold 50,000-80,000 spectators",
				"Had a complex underground area called hypogeum",
				"Featured a retractable awning system",
				"Hosted mock naval battles called naumachiae",
			},
			Build: buildColosseum,
		},
		{
			Name:        "Parthenon",
			Description: "A temple dedicated to Athena, representing the pinnacle of ancient Greek architecture.",
			Period:      "447-432 BCE",
			Facts: []string{
				"Built on the Athenian Acropolis",
				"Made primarily of Pentelic marble",
				"Used optical illusions to appear perfectly straight",
				"Housed a 12-meter tall statue of Athena",
			},
			Build: buildParthenon,
		},
		{
			Name:        "Stonehenge",
			Description: "A prehistoric monument consisting of a ring of standing stones, possibly used for astronomical observations.",
			Period:      "3100-1600 BCE",
			Facts: []string{
				"Stones were transported from Wales, 240 km away",
				"Aligned with solstices and equinoxes",
				"Built in several phases over 1500 years",
				"Purpose remains largely mysterious",
			},
			Build: buildStonehenge,
		},
	},
}

func buildGiza() *scene.Node {
	return scene.Group("giza",
		Solid(SolidConfig{
			Name:     "pyramid",
			Shape:    scene.NewCone(2, 2, 4),
			Material: stone("#d4a574", 0.8),
			Edges:    "#b8956a",
			Spin:     anim.SpinY(0.1),
			Position: math.V3(0, 0.5, 0),
		}),
		Solid(SolidConfig{
			Name:     "platform",
			Shape:    scene.NewCylinder(2.5, 2.5, 0.3, 8),
			Material: stone("#c19b61", 0.9),
			Spin:     anim.SpinY(0.1),
			Position: math.V3(0, -0.8, 0),
		}),
		Radial(RadialConfig{
			Name:    "satellites",
			Count:   4,
			Radius:  3.2,
			Y:       -0.4,
			Shape:   scene.NewCone(0.3, 0.8, 4),
			Palette: []scene.Material{stone("#b8956a", 0.8)},
			Float:   &anim.Float{Speed: 0.5, RotationIntensity: 0.1, FloatIntensity: 0.05},
		}),
	)
}

func buildColosseum() *scene.Node {
	return scene.Group("colosseum",
		scene.Mesh("outer-ring", scene.NewRing(1.2, 2, 32), stone("#8d7053", 0.9).TwoSided()).
			Rotated(-stdmath.Pi/2, 0, 0),
		Radial(RadialConfig{
			Name:    "walls",
			Count:   16,
			Radius:  1.6,
			Y:       0.5,
			Shape:   scene.NewBox(0.1, 1, 0.4),
			Palette: []scene.Material{stone("#a67c5a", 0.9)},
			Facing:  FaceOut,
		}),
		scene.Mesh("arena", scene.NewCylinder(1.1, 1.1, 0.1, 32), stone("#d4a574", 0.9)).At(0, -0.2, 0),
		Radial(RadialConfig{
			Name:    "arches",
			Count:   8,
			Radius:  1.8,
			Y:       1,
			Shape:   scene.NewTorus(0.15, 0.05, 8, 16),
			Palette: []scene.Material{stone("#6b5b47", 0.9)},
		}),
	).Animate(anim.SpinY(0.05))
}

func buildParthenon() *scene.Node {
	return scene.Group("parthenon",
		scene.Mesh("stylobate", scene.NewBox(4, 0.3, 2.5), marble("#f0f0f0", 0.7)).At(0, -0.5, 0),
		Row(RowConfig{
			Name:     "columns",
			Count:    12,
			PerRow:   6,
			Spacing:  0.6,
			Y:        0.3,
			RowZ:     []float32{-1, 1},
			Shape:    scene.NewCylinder(0.08, 0.08, 1.6, 12),
			Material: marble("#f5f5f5", 0.6),
		}),
		scene.Mesh("roof", scene.NewBox(4.2, 0.2, 2.7), marble("#e8e8e8", 0.7)).At(0, 1.3, 0),
		scene.Mesh("pediment", scene.NewCone(2.1, 0.4, 3), marble("#e0e0e0", 0.7)).
			At(0, 1.6, -1.35).Rotated(stdmath.Pi/2, 0, 0),
	).Animate(anim.SpinY(0.08))
}

func buildStonehenge() *scene.Node {
	const radius = 2.5
	return scene.Group("stonehenge",
		Radial(RadialConfig{
			Name:    "sarsens",
			Count:   12,
			Radius:  radius,
			Y:       0.5,
			Shape:   scene.NewBox(0.3, 2, 0.8),
			Palette: []scene.Material{stone("#5a5a5a", 0.9)},
		}),
		// a lintel over every other pair of uprights
		Radial(RadialConfig{
			Name:    "lintels",
			Count:   6,
			Radius:  radius,
			Y:       1.6,
			Phase:   stdmath.Pi / 12,
			Shape:   scene.NewBox(0.8, 0.3, 0.3),
			Palette: []scene.Material{stone("#4a4a4a", 0.9)},
			Facing:  FaceOut,
		}),
		Radial(RadialConfig{
			Name:    "horseshoe",
			Count:   5,
			Radius:  1.2,
			Y:       0.8,
			Step:    stdmath.Pi / 6,
			Phase:   -stdmath.Pi / 2,
			Shape:   scene.NewBox(0.2, 3, 0.6),
			Palette: []scene.Material{stone("#666666", 0.9)},
			Float:   &anim.Float{Speed: 0.3, RotationIntensity: 0.05, FloatIntensity: 0.02},
		}),
		scene.Mesh("altar", scene.NewBox(0.8, 0.4, 1.2), stone("#4d4d4d", 0.9)).At(0, -0.1, 0),
	).Animate(anim.SpinY(0.06))
}
