package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/learn3d/pkg/math"
)

func TestIdentityTransformMatrix(t *testing.T) {
	assert.Equal(t, math.Identity(), IdentityTransform().Matrix())
}

func TestTranslationInFourthColumn(t *testing.T) {
	tr := IdentityTransform()
	tr.Position = math.V3(1, 2, 3)
	m := tr.Matrix()
	assert.Equal(t, []float32{1, 2, 3, 1}, m[12:16])
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff0000", Color{1, 0, 0}, false},
		{"00ff00", Color{0, 1, 0}, false},
		{"#000000", Color{}, false},
		{"#fff", Color{}, true},
		{"#gg0000", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorRoundTrip(t *testing.T) {
	for _, s := range []string{"#8b5cf6", "#ffd700", "#10b981", "#d4a574"} {
		assert.Equal(t, s, Hex(s).String())
	}
}

func TestHexPanicsOnGarbage(t *testing.T) {
	assert.Panics(t, func() { Hex("purple") })
}

func TestMaterialHelpers(t *testing.T) {
	m := Glass("#8B5CF6", 0.8).Rough(0.2, 0.1).TwoSided()
	assert.True(t, m.IsTranslucent())
	assert.True(t, m.DoubleSided)
	assert.InDelta(t, 0.2, m.Roughness, 1e-6)

	assert.False(t, Solid("#ffffff").IsTranslucent())
	assert.Equal(t, Hex("#ff4444"), Solid("#ff0000").Glow("#ff4444", 0.3).Emissive)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "torusKnot", TorusKnot.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
	assert.Len(t, Kinds(), 11)
}

func TestWalkComposesParentTransforms(t *testing.T) {
	child := Mesh("child", NewSphere(1), Solid("#ffffff")).At(1, 0, 0)
	root := Group("root", child).At(0, 5, 0)

	var got math.Vec3
	root.Walk(func(n *Node, world math.Mat4) bool {
		if n == child {
			got = world.Translation()
		}
		return true
	})
	assert.Equal(t, math.V3(1, 5, 0), got)
}

func TestWalkSkipsChildren(t *testing.T) {
	root := Group("root", Group("a", Mesh("leaf", NewBox(1, 1, 1), Solid("#ffffff"))))
	var seen []string
	root.Walk(func(n *Node, _ math.Mat4) bool {
		seen = append(seen, n.Name)
		return n.Name != "a"
	})
	assert.Equal(t, []string{"root", "a"}, seen)
}

func TestFindAndStats(t *testing.T) {
	root := Group("root",
		Mesh("box", NewBox(1, 1, 1), Solid("#ffffff")).WithEdges(Hex("#000000")),
		Group("inner",
			Mesh("s1", NewSphere(1), Solid("#ffffff")),
			Mesh("s2", NewSphere(1), Solid("#ffffff")),
		),
	)
	require.NotNil(t, root.Find("s2"))
	assert.Nil(t, root.Find("missing"))

	st := root.Stats()
	assert.Equal(t, 5, st.Nodes)
	assert.Equal(t, 3, st.Meshes)
	assert.Equal(t, 2, st.ByKind[Sphere])
	assert.Equal(t, 1, st.Outlined)
	assert.Equal(t, 2, st.MaxDepth)
	assert.True(t, root.IsGroup())
}
