package prim

import (
	"testing"

	"github.com/chewxy/math32"
)

const testTolerance = 1e-4

func approx(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}

func TestRoundedBoxDistance(t *testing.T) {
	center := V2(50, 50)
	half := V2(50, 50)

	tests := []struct {
		name   string
		p      Vec2
		radius float32
		want   float32
	}{
		{"center sharp", V2(50, 50), 0, -50},
		{"center rounded", V2(50, 50), 20, -50},
		{"right edge", V2(100, 50), 20, 0},
		{"top edge", V2(50, 0), 20, 0},
		{"outside right", V2(110, 50), 20, 10},
		{"inside near edge", V2(95, 50), 20, -5},
		{"sharp corner", V2(100, 100), 0, 0},
		{"rounded corner outside arc", V2(100, 100), 20, 20*math32.Sqrt2 - 20},
		{"corner arc point", V2(80+20/math32.Sqrt2, 80+20/math32.Sqrt2), 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundedBoxDistance(tt.p, center, half, tt.radius)
			if !approx(got, tt.want, testTolerance) {
				t.Errorf("RoundedBoxDistance(%v, r=%v) = %v, want %v", tt.p, tt.radius, got, tt.want)
			}
		})
	}
}

func TestRoundedBoxDistanceCenterIsMinusMinHalfExtent(t *testing.T) {
	rects := []Rect{
		R(0, 0, 100, 100),
		R(10, 20, 100, 40),
		R(-5, -5, 3, 80),
		R(0, 0, 1, 1),
	}
	for _, r := range rects {
		half := r.HalfExtents()
		minHalf := half.MinComponent()
		for _, radius := range []float32{0, minHalf / 4, minHalf / 2, minHalf} {
			got := RoundedBoxDistance(r.Center(), r.Center(), half, radius)
			if !approx(got, -minHalf, testTolerance) {
				t.Errorf("rect %v radius %v: center distance = %v, want %v", r, radius, got, -minHalf)
			}
		}
	}
}

func TestEllipseDistance(t *testing.T) {
	center := V2(50, 25)
	radii := V2(50, 25)

	tests := []struct {
		name string
		p    Vec2
		want float32
	}{
		{"center", V2(50, 25), -1},
		{"right vertex", V2(100, 25), 0},
		{"top vertex", V2(50, 0), 0},
		{"halfway on major axis", V2(75, 25), -0.5},
		{"outside", V2(150, 25), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EllipseDistance(tt.p, center, radii)
			if !approx(got, tt.want, testTolerance) {
				t.Errorf("EllipseDistance(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestEllipseDistanceDegenerateRadii(t *testing.T) {
	got := EllipseDistance(V2(1, 1), V2(0, 0), V2(0, 0))
	if math32.IsNaN(got) || math32.IsInf(got, 0) {
		t.Errorf("EllipseDistance with zero radii = %v, want finite", got)
	}
}

func TestEllipseGradient(t *testing.T) {
	center := V2(50, 25)
	radii := V2(50, 25)

	tests := []struct {
		name string
		p    Vec2
		want float32
	}{
		{"center uses minor radius", V2(50, 25), 1.0 / 25},
		{"on major axis", V2(100, 25), 1.0 / 50},
		{"on minor axis", V2(50, 0), 1.0 / 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ellipseGradient(tt.p, center, radii)
			if !approx(got, tt.want, 1e-6) {
				t.Errorf("ellipseGradient(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func BenchmarkRoundedBoxDistance(b *testing.B) {
	center, half := V2(50, 50), V2(50, 50)
	p := V2(97, 93)
	for b.Loop() {
		_ = RoundedBoxDistance(p, center, half, 12)
	}
}
