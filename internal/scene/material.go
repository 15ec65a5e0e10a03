package scene

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a linear RGB triple in [0, 1].
type Color struct {
	R, G, B float32
}

// Hex parses a "#rrggbb" literal. It panics on malformed input since colors
// are compile-time constants of the model builders.
func Hex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{
		R: float32(v>>16&0xff) / 255,
		G: float32(v>>8&0xff) / 255,
		B: float32(v&0xff) / 255,
	}, nil
}

// String formats the color back as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

// Array returns the components for a GL uniform.
func (c Color) Array() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Material is a physically-inspired surface description.
type Material struct {
	Color             Color
	Opacity           float32
	Transparent       bool
	Roughness         float32
	Metalness         float32
	Emissive          Color
	EmissiveIntensity float32
	DoubleSided       bool
}

// Solid returns an opaque material with default roughness.
func Solid(hex string) Material {
	return Material{
		Color:     Hex(hex),
		Opacity:   1,
		Roughness: 0.5,
	}
}

// Glass returns a transparent material with the given opacity.
func Glass(hex string, opacity float32) Material {
	m := Solid(hex)
	m.Opacity = opacity
	m.Transparent = true
	return m
}

// Rough sets roughness and metalness.
func (m Material) Rough(roughness, metalness float32) Material {
	m.Roughness = roughness
	m.Metalness = metalness
	return m
}

// Glow sets the emissive color and intensity.
func (m Material) Glow(hex string, intensity float32) Material {
	m.Emissive = Hex(hex)
	m.EmissiveIntensity = intensity
	return m
}

// TwoSided marks the material as visible from both faces.
func (m Material) TwoSided() Material {
	m.DoubleSided = true
	return m
}

// IsTranslucent reports whether the material needs blending.
func (m Material) IsTranslucent() bool {
	return m.Transparent && m.Opacity < 1
}
