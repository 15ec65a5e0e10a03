package math

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	got := V3(1, 0, 0).Cross(V3(0, 1, 0))
	if got != V3(0, 0, 1) {
		t.Errorf("X cross Y: got %v, want Z", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := V3(3, 0, 4).Normalize()
	if abs(n.Length()-1) > 1e-6 {
		t.Errorf("Normalize length: got %f, want 1", n.Length())
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("Normalize of zero vector should stay zero")
	}
}

func TestVec3MinMax(t *testing.T) {
	a, b := V3(1, 5, -2), V3(3, -1, 0)
	if got := a.Min(b); got != V3(1, -1, -2) {
		t.Errorf("Min: got %v", got)
	}
	if got := a.Max(b); got != V3(3, 5, 0) {
		t.Errorf("Max: got %v", got)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{TwoPi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-1e-18, 0},
	}
	for _, tt := range tests {
		got := WrapAngle(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got < 0 || got >= TwoPi {
			t.Errorf("WrapAngle(%v) = %v out of [0, 2π)", tt.in, got)
		}
	}
}

func TestAngleDelta(t *testing.T) {
	if d := AngleDelta(0.1, TwoPi-0.1); math.Abs(d+0.2) > 1e-9 {
		t.Errorf("AngleDelta across zero: got %v, want -0.2", d)
	}
	if d := AngleDelta(1, 1.5); math.Abs(d-0.5) > 1e-9 {
		t.Errorf("AngleDelta: got %v, want 0.5", d)
	}
}
