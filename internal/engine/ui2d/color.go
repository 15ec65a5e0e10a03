package ui2d

import "github.com/Faultbox/learn3d/internal/scene"

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Theme colors: deep indigo background with violet accents.
var (
	ColorTransparent = Color{0, 0, 0, 0}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}

	ColorBackground   = RGB(0x0c, 0x0a, 0x1d)
	ColorPanelBg      = RGBA(0x1a, 0x15, 0x33, 0xe6)
	ColorPanelBorder  = RGBA(0xff, 0xff, 0xff, 0x33)
	ColorButtonNormal = RGBA(0xff, 0xff, 0xff, 0x14)
	ColorButtonHover  = RGBA(0x8b, 0x5c, 0xf6, 0x66)
	ColorButtonActive = RGB(0x8b, 0x5c, 0xf6)
	ColorText         = RGB(0xf4, 0xf2, 0xff)
	ColorTextDim      = RGB(0x9c, 0x96, 0xb8)
	ColorPrimary      = RGB(0x8b, 0x5c, 0xf6)
	ColorSecondary    = RGB(0xa8, 0x55, 0xf7)
	ColorAccent       = RGB(0xf5, 0x9e, 0x0b)
	ColorHighlight    = RGB(0xc0, 0x84, 0xfc)
)

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// FromScene converts a material color to an opaque UI color.
func FromScene(c scene.Color) Color {
	return Color{c.R, c.G, c.B, 1}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Darken returns a darker version of the color.
func (c Color) Darken(factor float32) Color {
	return Color{
		R: c.R * (1 - factor),
		G: c.G * (1 - factor),
		B: c.B * (1 - factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of the color.
func (c Color) Lighten(factor float32) Color {
	return Color{
		R: c.R + (1-c.R)*factor,
		G: c.G + (1-c.G)*factor,
		B: c.B + (1-c.B)*factor,
		A: c.A,
	}
}
