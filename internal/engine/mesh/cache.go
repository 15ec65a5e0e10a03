package mesh

import (
	"github.com/Faultbox/learn3d/internal/scene"
)

// Cache memoizes meshes and outlines per shape. Shapes are comparable values,
// so identical primitives across models share one entry.
type Cache struct {
	meshes map[scene.Shape]*Mesh
	edges  map[scene.Shape][]float32
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		meshes: make(map[scene.Shape]*Mesh),
		edges:  make(map[scene.Shape][]float32),
	}
}

// Mesh returns the mesh for s, building it on first use.
func (c *Cache) Mesh(s scene.Shape) *Mesh {
	if m, ok := c.meshes[s]; ok {
		return m
	}
	m := Build(s)
	c.meshes[s] = m
	return m
}

// Edges returns the outline for s, building it on first use.
func (c *Cache) Edges(s scene.Shape) []float32 {
	if e, ok := c.edges[s]; ok {
		return e
	}
	e := Edges(c.Mesh(s), DefaultEdgeThreshold)
	c.edges[s] = e
	return e
}

// Len returns the number of cached meshes.
func (c *Cache) Len() int {
	return len(c.meshes)
}
