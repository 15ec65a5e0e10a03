package anim

import (
	"github.com/Faultbox/learn3d/internal/scene"
)

type binding struct {
	node *scene.Node
	rest scene.Transform
	anim Animator
}

// Driver applies the animators of a mounted tree once per Tick. It is not
// safe for concurrent use; the frame loop owns it.
type Driver struct {
	root     *scene.Node
	bindings []binding
}

// NewDriver returns an unmounted driver.
func NewDriver() *Driver {
	return &Driver{}
}

// Mount binds every animated node under root, capturing rest transforms.
// A previously mounted tree is released first.
func (d *Driver) Mount(root *scene.Node) {
	d.Unmount()
	if root == nil {
		return
	}
	d.root = root
	root.Visit(func(n *scene.Node) {
		if n.Animator != nil {
			d.bindings = append(d.bindings, binding{node: n, rest: n.Transform, anim: n.Animator})
		}
	})
}

// Unmount drops all bindings. Ticks after Unmount do nothing.
func (d *Driver) Unmount() {
	d.root = nil
	d.bindings = d.bindings[:0]
}

// Mounted reports whether a tree is bound.
func (d *Driver) Mounted() bool {
	return d.root != nil
}

// Root returns the mounted tree, or nil.
func (d *Driver) Root() *scene.Node {
	return d.root
}

// Bound returns the number of animated nodes.
func (d *Driver) Bound() int {
	return len(d.bindings)
}

// Tick advances every bound node by one frame.
func (d *Driver) Tick(c Clock) {
	for i := range d.bindings {
		b := &d.bindings[i]
		b.node.Transform = b.anim.Step(c, b.rest, b.node.Transform)
	}
}
