package render

import (
	"sort"

	"github.com/Faultbox/learn3d/internal/scene"
	"github.com/Faultbox/learn3d/pkg/math"
)

// Item is one mesh node with its world matrix.
type Item struct {
	Node  *scene.Node
	World math.Mat4
	Depth float32 // view-space distance of the node origin, larger is farther
}

// DrawList splits a tree into the two passes the renderer needs.
type DrawList struct {
	Opaque      []Item
	Translucent []Item // sorted back to front
	Edges       []Item
}

// Reset empties the list keeping capacity.
func (l *DrawList) Reset() {
	l.Opaque = l.Opaque[:0]
	l.Translucent = l.Translucent[:0]
	l.Edges = l.Edges[:0]
}

// Collect walks root and fills the list for a camera with the given view matrix.
// Meshes with zero opacity are not shaded, but their outlines still draw.
func (l *DrawList) Collect(root *scene.Node, view math.Mat4) {
	l.Reset()
	if root == nil {
		return
	}

	root.Walk(func(n *scene.Node, world math.Mat4) bool {
		if n.Shape == nil {
			return true
		}
		if n.Edges != nil {
			l.Edges = append(l.Edges, Item{Node: n, World: world})
		}
		if n.Material.Opacity <= 0 {
			return true
		}

		item := Item{Node: n, World: world}
		if n.Material.IsTranslucent() {
			item.Depth = -view.TransformVec3(world.Translation()).Z
			l.Translucent = append(l.Translucent, item)
		} else {
			l.Opaque = append(l.Opaque, item)
		}
		return true
	})

	sort.SliceStable(l.Translucent, func(i, j int) bool {
		return l.Translucent[i].Depth > l.Translucent[j].Depth
	})
}
