package framebuffer

import (
	"image/color"
	"testing"
)

func TestFlipRGBA(t *testing.T) {
	// 2x3 image, bottom row first as GL returns it.
	pixels := []byte{
		1, 1, 1, 255, 2, 2, 2, 255, // y=0 in GL (bottom)
		3, 3, 3, 255, 4, 4, 4, 255,
		5, 5, 5, 255, 6, 6, 6, 255, // top
	}

	img := FlipRGBA(pixels, 2, 3)

	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 5},
		{1, 0, 6},
		{0, 1, 3},
		{1, 2, 2},
	}
	for _, tt := range tests {
		got := img.RGBAAt(tt.x, tt.y)
		if got != (color.RGBA{tt.want, tt.want, tt.want, 255}) {
			t.Errorf("RGBAAt(%d, %d) = %v, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}
