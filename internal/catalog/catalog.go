// Package catalog holds the fixed registries of procedural models shown by the
// viewer: geometric solids, anatomical models and historical structures.
//
// Registries are built once at process start and never mutated. Every
// descriptor's Build returns a fresh, deterministic node tree.
package catalog

import (
	"fmt"

	"github.com/Faultbox/learn3d/internal/anim"
	"github.com/Faultbox/learn3d/internal/scene"
	"github.com/Faultbox/learn3d/pkg/math"
)

// Subject keys.
const (
	SubjectGeometry = "geometry"
	SubjectBiology  = "biology"
	SubjectHistory  = "history"
	SubjectHero     = "hero"
)

// Descriptor pairs a model builder with its display metadata.
type Descriptor struct {
	Name        string
	Description string
	Facts       []string
	Period      string
	Build       func() *scene.Node
}

// Light is a directional light placed at Position and aimed at the origin.
type Light struct {
	Position  math.Vec3
	Color     scene.Color
	Intensity float32
}

// Stage is the viewport configuration shared by every model of a registry.
type Stage struct {
	CameraPosition math.Vec3
	FOV            float32 // degrees
	MinDistance    float32
	MaxDistance    float32
	Ambient        float32
	Lights         []Light

	// Float, when set, wraps the active model in an idle hover.
	Float *anim.Float

	// Ground, when set, builds a static node drawn under the model.
	Ground func() *scene.Node
}

// Registry is an ordered, fixed list of descriptors for one subject.
type Registry struct {
	Subject string
	Title   string
	Tagline string

	// Headings for the info panel.
	SelectLabel  string
	FactsHeading string
	Tips         []string

	Descriptors []Descriptor
	Stage       Stage
}

// Len returns the number of descriptors.
func (r *Registry) Len() int {
	return len(r.Descriptors)
}

// At returns descriptor i. An out-of-range index is a programming error.
func (r *Registry) At(i int) Descriptor {
	if i < 0 || i >= len(r.Descriptors) {
		panic(fmt.Sprintf("catalog: %s index %d out of range [0,%d)", r.Subject, i, len(r.Descriptors)))
	}
	return r.Descriptors[i]
}

// Names returns the descriptor names in order, for selector buttons.
func (r *Registry) Names() []string {
	names := make([]string, len(r.Descriptors))
	for i, d := range r.Descriptors {
		names[i] = d.Name
	}
	return names
}

// Index returns the position of the descriptor named name, or -1.
func (r *Registry) Index(name string) int {
	for i, d := range r.Descriptors {
		if d.Name == name {
			return i
		}
	}
	return -1
}

// Scene builds the full tree for descriptor i: the model, wrapped in the
// stage float when configured, plus the stage ground.
func (r *Registry) Scene(i int) *scene.Node {
	d := r.At(i)
	model := d.Build()

	root := scene.Group(r.Subject)
	if r.Stage.Float != nil {
		root.Add(scene.Group("float", model).Animate(*r.Stage.Float))
	} else {
		root.Add(model)
	}
	if r.Stage.Ground != nil {
		root.Add(r.Stage.Ground())
	}
	return root
}

// Subject is a landing-page card.
type Subject struct {
	Key         string
	Title       string
	Description string
	Features    []string
	Available   bool
}

// Action returns the card button label.
func (s Subject) Action() string {
	if s.Available {
		return "Explore Now"
	}
	return "Coming Soon"
}

var subjects = []Subject{
	{
		Key:         SubjectGeometry,
		Title:       "Geometry",
		Description: "Explore 3D shapes, spatial relationships, and geometric properties through interactive models.",
		Features: []string{
			"Interactive 3D shapes",
			"Angle calculations",
			"Volume & surface area",
			"Geometric proofs",
		},
		Available: true,
	},
	{
		Key:         SubjectBiology,
		Title:       "Biology & Anatomy",
		Description: "Visualize human anatomy, cell structures, and biological processes in stunning detail.",
		Features: []string{
			"Human anatomy models",
			"Cell structure exploration",
			"Organ system interactions",
			"Molecular visualization",
		},
	},
	{
		Key:         SubjectHistory,
		Title:       "History & Architecture",
		Description: "Step inside ancient buildings, explore historical sites, and witness civilizations.",
		Features: []string{
			"Ancient monuments",
			"Historical reconstructions",
			"Cultural artifacts",
			"Timeline visualization",
		},
	},
}

// Subjects returns the landing-page cards in display order.
func Subjects() []Subject {
	out := make([]Subject, len(subjects))
	copy(out, subjects)
	return out
}

var registries = map[string]*Registry{
	SubjectGeometry: geometry,
	SubjectBiology:  biology,
	SubjectHistory:  history,
	SubjectHero:     hero,
}

// Geometry returns the geometric solids registry.
func Geometry() *Registry { return geometry }

// Biology returns the anatomy and cell biology registry.
func Biology() *Registry { return biology }

// History returns the historical architecture registry.
func History() *Registry { return history }

// Hero returns the landing-page background.
func Hero() *Registry { return hero }

// BySubject returns the registry for a subject key.
func BySubject(key string) (*Registry, bool) {
	r, ok := registries[key]
	return r, ok
}

// SubjectKeys returns the keys of the demo subjects in navigation order.
func SubjectKeys() []string {
	return []string{SubjectGeometry, SubjectBiology, SubjectHistory}
}
