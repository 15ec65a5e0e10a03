// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// MeshVertexShader transforms lit primitive meshes.
//
//go:embed mesh.vert
var MeshVertexShader string

// MeshFragmentShader shades primitives with ambient, directional and emissive terms.
//
//go:embed mesh.frag
var MeshFragmentShader string

// LineVertexShader is the vertex shader for edge outlines.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader is the fragment shader for edge outlines.
//
//go:embed line.frag
var LineFragmentShader string

// SolidVertexShader is the vertex shader for flat UI quads.
//
//go:embed solid.vert
var SolidVertexShader string

// SolidFragmentShader is the fragment shader for flat UI quads.
//
//go:embed solid.frag
var SolidFragmentShader string

// TextVertexShader is the vertex shader for glyph quads.
//
//go:embed text.vert
var TextVertexShader string

// TextFragmentShader samples glyph coverage from the font atlas.
//
//go:embed text.frag
var TextFragmentShader string
