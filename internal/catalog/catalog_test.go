package catalog

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/learn3d/internal/scene"
	"github.com/Faultbox/learn3d/pkg/math"
)

func TestRegistryNames(t *testing.T) {
	tests := []struct {
		reg  *Registry
		want []string
	}{
		{Geometry(), []string{"Cube", "Sphere", "Pyramid", "Torus", "Cylinder", "Dodecahedron", "Icosahedron", "Torus Knot", "Octahedron"}},
		{Biology(), []string{"Human Heart", "Human Brain", "Cell Structure", "DNA Double Helix"}},
		{History(), []string{"Great Pyramid of Giza", "Roman Colosseum", "Parthenon", "Stonehenge"}},
	}
	for _, tt := range tests {
		t.Run(tt.reg.Subject, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.reg.Names())
			assert.Equal(t, len(tt.want), tt.reg.Len())
		})
	}
}

func TestDescriptorsFullyPopulated(t *testing.T) {
	for _, key := range append(SubjectKeys(), SubjectHero) {
		reg, ok := BySubject(key)
		require.True(t, ok, key)
		for i := 0; i < reg.Len(); i++ {
			d := reg.At(i)
			assert.NotEmpty(t, d.Name)
			assert.NotEmpty(t, d.Description, d.Name)
			require.NotNil(t, d.Build, d.Name)
			require.NotNil(t, d.Build(), d.Name)
		}
	}
	for _, d := range History().Descriptors {
		assert.NotEmpty(t, d.Period, d.Name)
		assert.Len(t, d.Facts, 4, d.Name)
	}
	for _, d := range Biology().Descriptors {
		assert.Len(t, d.Facts, 4, d.Name)
	}
}

func TestAtOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { Geometry().At(-1) })
	assert.Panics(t, func() { Geometry().At(Geometry().Len()) })
}

func TestBySubjectUnknown(t *testing.T) {
	_, ok := BySubject("chemistry")
	assert.False(t, ok)
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 2, Geometry().Index("Pyramid"))
	assert.Equal(t, -1, Geometry().Index("Heart"))
}

func TestBuildersAreDeterministic(t *testing.T) {
	for _, key := range append(SubjectKeys(), SubjectHero) {
		reg, _ := BySubject(key)
		for _, d := range reg.Descriptors {
			// Animator values hold no pointers, so equal trees compare equal.
			assert.Equal(t, d.Build(), d.Build(), d.Name)
		}
	}
}

func TestBuildReturnsFreshTrees(t *testing.T) {
	d := Geometry().At(0)
	a, b := d.Build(), d.Build()
	require.NotSame(t, a, b)
	a.Children[0].Transform.Rotation.X = 1
	assert.Zero(t, b.Children[0].Transform.Rotation.X)
}

func countPrefix(root *scene.Node, name string) int {
	g := root.Find(name)
	if g == nil {
		return 0
	}
	return len(g.Children)
}

func TestRepeatCounts(t *testing.T) {
	tests := []struct {
		reg   *Registry
		model string
		group string
		want  int
	}{
		{Geometry(), "Cube", "vertices", 8},
		{Geometry(), "Cube", "face-centers", 6},
		{Geometry(), "Sphere", "surface-points", 6},
		{Geometry(), "Sphere", "radii", 6},
		{Geometry(), "Pyramid", "base-vertices", 4},
		{Geometry(), "Pyramid", "slant-heights", 4},
		{Biology(), "Human Heart", "coronary-arteries", 6},
		{Biology(), "Human Brain", "sulci", 8},
		{Biology(), "Cell Structure", "organelles", 8},
		{Biology(), "DNA Double Helix", "helix", 20},
		{History(), "Great Pyramid of Giza", "satellites", 4},
		{History(), "Roman Colosseum", "walls", 16},
		{History(), "Roman Colosseum", "arches", 8},
		{History(), "Parthenon", "columns", 12},
		{History(), "Stonehenge", "sarsens", 12},
		{History(), "Stonehenge", "lintels", 6},
		{History(), "Stonehenge", "horseshoe", 5},
	}
	for _, tt := range tests {
		t.Run(tt.model+"/"+tt.group, func(t *testing.T) {
			root := tt.reg.At(tt.reg.Index(tt.model)).Build()
			assert.Equal(t, tt.want, countPrefix(root, tt.group))
		})
	}
}

func TestEveryModelAnimates(t *testing.T) {
	for _, key := range SubjectKeys() {
		reg, _ := BySubject(key)
		for _, d := range reg.Descriptors {
			assert.Positive(t, d.Build().Stats().Animated, d.Name)
		}
	}
}

func TestSceneWrapsStage(t *testing.T) {
	geo := Geometry().Scene(0)
	require.Len(t, geo.Children, 1)
	assert.Equal(t, "float", geo.Children[0].Name)
	assert.NotNil(t, geo.Children[0].Animator)

	hist := History().Scene(0)
	require.Len(t, hist.Children, 2)
	assert.Equal(t, "ground", hist.Children[1].Name)

	bio := Biology().Scene(0)
	require.Len(t, bio.Children, 1)
	assert.Equal(t, "heart", bio.Children[0].Name)
}

func TestStageZoomBounds(t *testing.T) {
	for _, key := range SubjectKeys() {
		reg, _ := BySubject(key)
		st := reg.Stage
		assert.Less(t, st.MinDistance, st.MaxDistance, key)
		assert.Len(t, st.Lights, 2, key)
		d := st.CameraPosition.Length()
		assert.GreaterOrEqual(t, d, st.MinDistance, key)
		assert.LessOrEqual(t, d, st.MaxDistance, key)
	}
}

func TestParthenonColumnLayout(t *testing.T) {
	cols := History().At(2).Build().Find("columns")
	require.NotNil(t, cols)
	first := cols.Children[0].Transform.Position
	last := cols.Children[11].Transform.Position
	assert.InDelta(t, -1.5, first.X, 1e-6)
	assert.InDelta(t, -1, first.Z, 1e-6)
	assert.InDelta(t, 1.5, last.X, 1e-6)
	assert.InDelta(t, 1, last.Z, 1e-6)
}

func TestAlongRadiusPointsOutward(t *testing.T) {
	for i := 0; i < 6; i++ {
		angle := float64(i) * stdmath.Pi / 3
		m := math.RotateEuler(AlongRadius(i, angle))
		axis := m.TransformDirection(math.V3(0, 1, 0))
		want := math.V3(float32(stdmath.Cos(angle)), 0, float32(stdmath.Sin(angle)))
		// Rods are symmetric, so either direction along the radius is fine.
		assert.InDelta(t, 1, stdmath.Abs(float64(axis.Dot(want))), 1e-5)
	}
}

func TestSubjects(t *testing.T) {
	cards := Subjects()
	require.Len(t, cards, 3)
	assert.True(t, cards[0].Available)
	assert.Equal(t, "Explore Now", cards[0].Action())
	assert.Equal(t, "Coming Soon", cards[1].Action())
	for i, c := range cards {
		assert.Equal(t, SubjectKeys()[i], c.Key)
		assert.Len(t, c.Features, 4)
	}

	// Callers get a copy.
	cards[0].Title = "changed"
	assert.Equal(t, "Geometry", Subjects()[0].Title)
}

func TestHeroBackground(t *testing.T) {
	root := Hero().At(0).Build()
	st := root.Stats()
	assert.Equal(t, 5, st.Meshes)
	assert.Equal(t, 6, st.Animated)
	assert.Equal(t, 2, st.ByKind[scene.Octahedron])
}
