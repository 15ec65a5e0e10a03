// Package scene describes procedural models as a tree of primitive volumes.
//
// The tree is plain data: builders declare it, the animation driver mutates
// node transforms, and the renderer walks it every frame. Nothing here touches
// OpenGL.
package scene

import (
	"github.com/Faultbox/learn3d/pkg/math"
)

// Transform is a node's local position, XYZ Euler rotation (radians) and scale.
type Transform struct {
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
}

// IdentityTransform returns a transform at the origin with unit scale.
func IdentityTransform() Transform {
	return Transform{Scale: math.Splat(1)}
}

// Matrix returns the local model matrix.
func (t Transform) Matrix() math.Mat4 {
	return math.TRS(t.Position, t.Rotation, t.Scale)
}

// Clock is the frame time handed to animators, in seconds.
type Clock struct {
	Elapsed float64
	Delta   float64
}

// Animator computes a node's next transform for one frame. Step must be pure:
// the result depends only on the clock, the rest transform captured when the
// model was mounted, and the current transform. The interface sits here so
// nodes can carry one without importing package anim.
type Animator interface {
	Step(c Clock, rest, current Transform) Transform
}

// Node is one element of a procedural model. A node without a Shape is a group.
type Node struct {
	Name      string
	Shape     *Shape
	Material  Material
	Edges     *EdgeStyle
	Transform Transform
	Children  []*Node

	// Animator, when set, is driven once per frame while the model is mounted.
	Animator Animator
}

// EdgeStyle draws the hard edges of a shape as lines on top of it.
type EdgeStyle struct {
	Color Color
}

// Group returns an empty group node with the given children.
func Group(name string, children ...*Node) *Node {
	return &Node{
		Name:      name,
		Transform: IdentityTransform(),
		Children:  children,
	}
}

// Mesh returns a leaf node drawing shape with material.
func Mesh(name string, shape Shape, mat Material) *Node {
	return &Node{
		Name:      name,
		Shape:     &shape,
		Material:  mat,
		Transform: IdentityTransform(),
	}
}

// At sets the node position and returns the node for chaining.
func (n *Node) At(x, y, z float32) *Node {
	n.Transform.Position = math.V3(x, y, z)
	return n
}

// Rotated sets the node rotation and returns the node for chaining.
func (n *Node) Rotated(x, y, z float32) *Node {
	n.Transform.Rotation = math.V3(x, y, z)
	return n
}

// Scaled sets a per-axis scale and returns the node for chaining.
func (n *Node) Scaled(x, y, z float32) *Node {
	n.Transform.Scale = math.V3(x, y, z)
	return n
}

// WithEdges outlines the shape edges in c.
func (n *Node) WithEdges(c Color) *Node {
	n.Edges = &EdgeStyle{Color: c}
	return n
}

// Animate attaches an animator.
func (n *Node) Animate(a Animator) *Node {
	n.Animator = a
	return n
}

// Add appends children and returns the node.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// IsGroup reports whether the node draws nothing itself.
func (n *Node) IsGroup() bool {
	return n.Shape == nil
}

// Walk visits n and every descendant depth-first, passing each node's world
// matrix. Returning false from fn skips that node's children.
func (n *Node) Walk(fn func(node *Node, world math.Mat4) bool) {
	n.walk(math.Identity(), fn)
}

func (n *Node) walk(parent math.Mat4, fn func(*Node, math.Mat4) bool) {
	world := parent.Mul(n.Transform.Matrix())
	if !fn(n, world) {
		return
	}
	for _, c := range n.Children {
		c.walk(world, fn)
	}
}

// Visit calls fn for n and each descendant without computing matrices.
func (n *Node) Visit(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Visit(fn)
	}
}

// Find returns the first node named name, or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// Stats summarizes a tree.
type Stats struct {
	Nodes    int
	Meshes   int
	Animated int
	Outlined int
	ByKind   map[Kind]int
	MaxDepth int
}

// Stats counts nodes, meshes per kind and animated nodes.
func (n *Node) Stats() Stats {
	st := Stats{ByKind: make(map[Kind]int)}
	var visit func(*Node, int)
	visit = func(node *Node, depth int) {
		st.Nodes++
		if depth > st.MaxDepth {
			st.MaxDepth = depth
		}
		if node.Shape != nil {
			st.Meshes++
			st.ByKind[node.Shape.Kind]++
		}
		if node.Animator != nil {
			st.Animated++
		}
		if node.Edges != nil {
			st.Outlined++
		}
		for _, c := range node.Children {
			visit(c, depth+1)
		}
	}
	visit(n, 0)
	return st
}
