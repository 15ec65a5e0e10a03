package catalog

import (
	"github.com/Faultbox/learn3d/internal/anim"
	"github.com/Faultbox/learn3d/internal/scene"
	"github.com/Faultbox/learn3d/pkg/math"
)

// Landing page copy.
const (
	HeroTitle    = "AR/VR Learning"
	HeroSubtitle = "Reimagined"
	HeroTagline  = "Step into the future of education with immersive 3D visualizations."
	HeroSubjects = "Geometry • Biology • History"
	HeroAction   = "Try Interactive Demo"
)

// HeroHighlights are the feature badges under the hero.
var HeroHighlights = []string{
	"Interactive 3D Models",
	"Immersive Learning",
	"Multiple Subjects",
}

var hero = &Registry{
	Subject: SubjectHero,
	Title:   "Choose Your Subject",
	Tagline: "Explore different fields of knowledge through cutting-edge AR/VR technology. Each subject offers unique interactive experiences designed to enhance understanding.",
	Stage: Stage{
		CameraPosition: math.V3(0, 0, 5),
		FOV:            60,
		MinDistance:    5,
		MaxDistance:    5,
		Ambient:        0.2,
		Lights: []Light{
			{Position: math.V3(10, 10, 5), Color: scene.Hex("#8B5CF6"), Intensity: 0.8},
			{Position: math.V3(-10, -10, -5), Color: scene.Hex("#A855F7"), Intensity: 0.4},
		},
	},
	Descriptors: []Descriptor{
		{
			Name:        "Background",
			Description: "Floating geometric shapes drifting behind the landing page.",
			Build:       buildHeroBackground,
		},
	},
}

type floater struct {
	shape scene.Shape
	color string
	pos   math.Vec3
	speed float64
}

func buildHeroBackground() *scene.Node {
	floaters := []floater{
		{scene.NewBox(1, 1, 1), "#8B5CF6", math.V3(-4, 2, -5), 1.2},
		{scene.NewSphere(0.8), "#A855F7", math.V3(4, -1, -8), 0.8},
		{scene.NewOctahedron(1.2), "#C084FC", math.V3(0, 3, -6), 1.5},
		{scene.NewBox(0.6, 0.6, 0.6), "#DDD6FE", math.V3(-2, -2, -4), 0.9},
		{scene.NewOctahedron(0.8), "#8B5CF6", math.V3(3, 1, -7), 1.1},
	}

	g := scene.Group("background")
	for i, f := range floaters {
		m := scene.Mesh(f.shape.Kind.String(), f.shape, scene.Glass(f.color, 0.3).Rough(0.1, 0.8))
		m.Transform.Position = f.pos
		g.Add(scene.Group("float", m).Animate(anim.Float{
			Speed:             f.speed,
			RotationIntensity: 0.4,
			FloatIntensity:    0.2,
			Offset:            float64(i) * 3,
		}))
	}
	return g.Animate(anim.SpinY(0.1))
}
