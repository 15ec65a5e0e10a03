package catalog

import (
	stdmath "math"

	"github.com/Faultbox/learn3d/internal/anim"
	"github.com/Faultbox/learn3d/internal/scene"
	"github.com/Faultbox/learn3d/pkg/math"
)

// tissue is an opaque organic finish.
func tissue(hex string, roughness, metalness float32) scene.Material {
	return scene.Solid(hex).Rough(roughness, metalness)
}

// sulciSeed fixes the fold jitter of the brain model.
const sulciSeed = 86

var biology = &Registry{
	Subject:      SubjectBiology,
	Title:        "Interactive Biology & Anatomy",
	Tagline:      "Explore human anatomy and biological structures in 3D. Discover the amazing world inside living organisms.",
	SelectLabel:  "Select a Model",
	FactsHeading: "Did you know?",
	Stage: Stage{
		CameraPosition: math.V3(0, 0, 5),
		FOV:            50,
		MinDistance:    2,
		MaxDistance:    8,
		Ambient:        0.4,
		Lights: []Light{
			{Position: math.V3(10, 10, 5), Color: scene.Hex("#A855F7"), Intensity: 1},
			{Position: math.V3(-10, -10, -5), Color: scene.Hex("#C084FC"), Intensity: 0.5},
		},
	},
	Descriptors: []Descriptor{
		{
			Name:        "Human Heart",
			Description: "A detailed 3D model of the human heart showing the four chambers, major vessels, and coronary arteries.",
			Facts: []string{
				"Has 4 chambers: 2 atria (upper) and 2 ventricles (lower)",
				"Left ventricle is the strongest chamber, pumping blood to the body",
				"Coronary arteries supply blood to the heart muscle itself",
				"Beats approximately 100,000 times per day",
			},
			Build: buildHeart,
		},
		{
			Name:        "Human Brain",
			Description: "An anatomically accurate brain model showing cerebrum hemispheres, cerebellum, brain stem, and major structures.",
			Facts: []string{
				"Cerebrum has left and right hemispheres connected by corpus callosum",
				"Cerebellum controls balance and coordination",
				"Brain stem controls vital functions like breathing and heart rate",
				"Contains over 86 billion neurons with trillions of connections",
			},
			Build: buildBrain,
		},
		{
			Name:        "Cell Structure",
			Description: "The basic unit of life, containing various organelles that perform specific functions.",
			Facts: []string{
				"All living things are made of one or more cells",
				"The nucleus contains the cell's DNA",
				"Mitochondria are the powerhouses of the cell",
				"Cell membrane controls what enters and exits",
			},
			Build: buildCell,
		},
		{
			Name:        "DNA Double Helix",
			Description: "The molecular structure that carries genetic information in all living organisms.",
			Facts: []string{
				"Made of two complementary strands",
				"Contains four bases: A, T, G, and C",
				"Unwinds during DNA replication",
				"Found in the nucleus of every cell",
			},
			Build: buildDNA,
		},
	},
}

func buildHeart() *scene.Node {
	atrium := scene.NewSphere(0.35)
	atriumMat := tissue("#8b0000", 0.4, 0.1)
	ventricleMat := tissue("#dc2626", 0.3, 0.1)
	vesselMat := tissue("#a91e22", 0.3, 0.1)

	return scene.Group("heart",
		scene.Mesh("left-atrium", atrium, atriumMat).At(-0.4, 0.8, 0.2),
		scene.Mesh("right-atrium", atrium, atriumMat).At(0.4, 0.8, 0.2),
		scene.Mesh("left-ventricle", scene.NewCone(0.45, 1.2, 12), ventricleMat).
			At(-0.3, 0.1, 0).Rotated(0.2, 0, -0.1),
		scene.Mesh("right-ventricle", scene.NewCone(0.4, 1.1, 12), ventricleMat).
			At(0.35, 0.1, 0.1).Rotated(0.2, 0, 0.1),
		scene.Mesh("aorta", scene.NewCylinder(0.15, 0.18, 0.8, 8), vesselMat).
			At(-0.2, 1.3, 0).Rotated(0, 0, 0.3),
		scene.Mesh("pulmonary-artery", scene.NewCylinder(0.12, 0.15, 0.6, 8), vesselMat).
			At(0.2, 1.2, 0.2).Rotated(0, 0, -0.2),
		Radial(RadialConfig{
			Name:    "coronary-arteries",
			Count:   6,
			Shape:   scene.NewCylinder(0.02, 0.03, 0.4, 6),
			Palette: []scene.Material{tissue("#ff4444", 0.2, 0.2)},
			Place: func(_ int, angle float64) math.Vec3 {
				s, c := stdmath.Sincos(angle)
				return math.V3(float32(c)*0.5, 0.4+float32(s)*0.2, float32(s)*0.3)
			},
			Facing: func(i int, _ float64) math.Vec3 {
				return math.V3(float32(i)*0.3, float32(i)*0.5, 0)
			},
		}),
	).Animate(anim.Chain{anim.SpinY(0.2), anim.Heartbeat})
}

func buildBrain() *scene.Node {
	hemisphere := scene.NewSphere(0.7)
	cortex := tissue("#f4a261", 0.6, 0.1)
	next := jitter(sulciSeed)

	return scene.Group("brain",
		scene.Mesh("left-hemisphere", hemisphere, cortex).At(-0.5, 0.2, 0).Scaled(1, 1.1, 0.9),
		scene.Mesh("right-hemisphere", hemisphere, cortex).At(0.5, 0.2, 0).Scaled(1, 1.1, 0.9),
		scene.Mesh("corpus-callosum", scene.NewBox(0.3, 0.1, 0.8), tissue("#e76f51", 0.4, 0.2)).
			At(0, 0.1, 0).Scaled(0.8, 0.2, 0.6),
		scene.Mesh("cerebellum", scene.NewSphere(0.4), tissue("#d4a574", 0.5, 0.1)).
			At(0, -0.4, -0.6).Scaled(0.8, 0.6, 0.7),
		scene.Mesh("brain-stem", scene.NewCylinder(0.15, 0.25, 0.8, 12), tissue("#c97d47", 0.4, 0.2)).
			At(0, -0.8, -0.3).Rotated(0.2, 0, 0),
		scene.Mesh("frontal-lobe", scene.NewSphere(0.3), tissue("#f4a261", 0.7, 0.05)).
			At(0, 0.6, 0.4).Scaled(1.2, 0.5, 0.8),
		Radial(RadialConfig{
			Name:    "sulci",
			Count:   8,
			Shape:   scene.NewTorus(0.2, 0.02, 6, 12),
			Palette: []scene.Material{tissue("#e76f51", 0.5, 0.1)},
			Scale:   math.V3(0.8, 0.05, 0.1),
			Place: func(i int, angle float64) math.Vec3 {
				side := float32(-0.5)
				if i%2 == 1 {
					side = 0.5
				}
				s, c := stdmath.Sincos(angle)
				return math.V3(side+next()*0.3, 0.2+float32(s)*0.4, float32(c)*0.6)
			},
			Facing: func(_ int, angle float64) math.Vec3 {
				return math.V3(stdmath.Pi/2, float32(angle), 0)
			},
		}),
	).Animate(anim.Chain{anim.SpinY(0.15), anim.Sway{Amplitude: 0.05, Frequency: 0.3}})
}

func buildCell() *scene.Node {
	nucleus := scene.Mesh("nucleus", scene.NewSphere(0.6), tissue("#059669", 0.3, 0.2)).
		Animate(anim.SpinY(0.5))

	return scene.Group("cell",
		scene.Mesh("membrane", scene.NewSphere(1.5), scene.Glass("#10b981", 0.3).Rough(0.2, 0.1)),
		nucleus,
		Radial(RadialConfig{
			Name:  "organelles",
			Count: 8,
			Shape: scene.NewSphere(0.1),
			Palette: []scene.Material{
				tissue("#34d399", 0.3, 0.1),
				tissue("#6ee7b7", 0.3, 0.1),
			},
			Place: func(_ int, angle float64) math.Vec3 {
				s, c := stdmath.Sincos(angle)
				return math.V3(float32(c), float32(s)*0.3, float32(s))
			},
			Float:     &anim.Float{Speed: 1, RotationIntensity: 0.2, FloatIntensity: 0.1},
			FloatStep: 0.2,
		}),
	).Animate(anim.SpinY(0.15))
}

func buildDNA() *scene.Node {
	return scene.Group("dna",
		Helix(HelixConfig{
			Name:       "helix",
			Levels:     20,
			Spacing:    0.2,
			Twist:      0.5,
			Radius:     0.8,
			Bead:       0.08,
			StrandA:    tissue("#3b82f6", 0.3, 0.2),
			StrandB:    tissue("#ef4444", 0.3, 0.2),
			Rung:       tissue("#8b5cf6", 0.3, 0.2),
			RungRadius: 0.02,
		}),
	).Animate(anim.SpinY(0.4))
}
