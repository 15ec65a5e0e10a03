package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/learn3d/internal/scene"
	"github.com/Faultbox/learn3d/pkg/math"
)

func glassAt(name string, z float32) *scene.Node {
	return scene.Mesh(name, scene.NewSphere(0.2), scene.Glass("#FF6B6B", 0.5)).At(0, 0, z)
}

func TestCollectSplitsPasses(t *testing.T) {
	root := scene.Group("root",
		scene.Mesh("solid", scene.NewBox(1, 1, 1), scene.Solid("#8B5CF6")).WithEdges(scene.Hex("#A855F7")),
		glassAt("glass", 0),
		scene.Group("nested", scene.Mesh("inner", scene.NewCone(1, 2, 4), scene.Solid("#F59E0B"))),
	)

	var l DrawList
	l.Collect(root, math.LookAt(math.V3(0, 0, 5), math.Vec3{}, math.V3(0, 1, 0)))

	require.Len(t, l.Opaque, 2)
	require.Len(t, l.Translucent, 1)
	require.Len(t, l.Edges, 1)
	assert.Equal(t, "solid", l.Opaque[0].Node.Name)
	assert.Equal(t, "inner", l.Opaque[1].Node.Name)
	assert.Equal(t, "glass", l.Translucent[0].Node.Name)
}

func TestCollectSortsBackToFront(t *testing.T) {
	root := scene.Group("root",
		glassAt("near", 2),
		glassAt("far", -3),
		glassAt("middle", 0),
	)

	var l DrawList
	l.Collect(root, math.LookAt(math.V3(0, 0, 5), math.Vec3{}, math.V3(0, 1, 0)))

	require.Len(t, l.Translucent, 3)
	names := []string{l.Translucent[0].Node.Name, l.Translucent[1].Node.Name, l.Translucent[2].Node.Name}
	assert.Equal(t, []string{"far", "middle", "near"}, names)
	assert.InDelta(t, 8, l.Translucent[0].Depth, 1e-4)
	assert.InDelta(t, 3, l.Translucent[2].Depth, 1e-4)
}

func TestCollectUsesWorldTransforms(t *testing.T) {
	child := scene.Mesh("child", scene.NewBox(1, 1, 1), scene.Solid("#ffffff")).At(1, 0, 0)
	root := scene.Group("root", scene.Group("offset", child).At(0, 2, 0))

	var l DrawList
	l.Collect(root, math.Identity())

	require.Len(t, l.Opaque, 1)
	p := l.Opaque[0].World.Translation()
	assert.Equal(t, math.V3(1, 2, 0), p)
}

func TestCollectSkipsInvisible(t *testing.T) {
	hidden := scene.Mesh("hidden", scene.NewBox(1, 1, 1), scene.Glass("#ffffff", 0)).WithEdges(scene.Hex("#000000"))
	root := scene.Group("root", hidden)

	var l DrawList
	l.Collect(root, math.Identity())

	assert.Empty(t, l.Opaque)
	assert.Empty(t, l.Translucent)
	assert.Len(t, l.Edges, 1)
}

func TestCollectResets(t *testing.T) {
	var l DrawList
	l.Collect(scene.Group("a", glassAt("g", 0)), math.Identity())
	l.Collect(nil, math.Identity())

	assert.Empty(t, l.Opaque)
	assert.Empty(t, l.Translucent)
	assert.Empty(t, l.Edges)
}
