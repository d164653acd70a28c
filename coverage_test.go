package prim

import (
	"testing"
)

func TestFillCoverage(t *testing.T) {
	tests := []struct {
		name string
		d    float32
		aa   float32
		want float32
	}{
		{"on boundary", 0, 1, 0.5},
		{"on boundary wide aa", 0, 4, 0.5},
		{"deep inside", -10, 1, 1},
		{"far outside", 10, 1, 0},
		{"half band inside", -0.5, 1, 1},
		{"half band outside", 0.5, 1, 0},
		{"quarter band inside", -0.25, 1, 0.75},
		{"zero aa inside", -1, 0, 1},
		{"zero aa outside", 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FillCoverage(tt.d, tt.aa)
			if !approx(got, tt.want, testTolerance) {
				t.Errorf("FillCoverage(%v, %v) = %v, want %v", tt.d, tt.aa, got, tt.want)
			}
		})
	}
}

func TestFillCoverageBoundaryExact(t *testing.T) {
	for _, aa := range []float32{1e-3, 0.02, 1, 3} {
		if got := FillCoverage(0, aa); got != 0.5 {
			t.Errorf("FillCoverage(0, %v) = %v, want exactly 0.5", aa, got)
		}
	}
}

func TestFillCoverageMonotonic(t *testing.T) {
	for _, aa := range []float32{0.01, 1, 2.5} {
		prev := float32(1)
		for d := float32(-3); d <= 3; d += 0.01 {
			curr := FillCoverage(d, aa)
			if curr > prev {
				t.Fatalf("aa=%v: coverage increased at d=%v: prev=%v, curr=%v", aa, d, prev, curr)
			}
			prev = curr
		}
	}
}

func TestInsetRingCoverage(t *testing.T) {
	tests := []struct {
		name           string
		dOuter, dInner float32
		want           float32
	}{
		{"inside ring", -1, 3, 1},
		{"inside hole", -6, -2, 0},
		{"outside", 4, 8, 0},
		{"outer edge", 0, 4, 0.5},
		{"inverted fields clamp to zero", 2, -2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InsetRingCoverage(tt.dOuter, tt.dInner, 1)
			if !approx(got, tt.want, testTolerance) {
				t.Errorf("InsetRingCoverage(%v, %v) = %v, want %v", tt.dOuter, tt.dInner, got, tt.want)
			}
		})
	}
}

func TestInsetRingZeroStrokeVanishes(t *testing.T) {
	r := R(0, 0, 100, 60)
	const radius = 12
	for y := float32(0.5); y < 60; y += 3 {
		for x := float32(0.5); x < 100; x += 3 {
			p := V2(x, y)
			dOuter := RoundedBoxDistance(p, r.Center(), r.HalfExtents(), radius)
			dInner := RoundedBoxDistance(p, r.Center(), r.Inset(0).HalfExtents(), InnerRadius(radius, 0))
			if got := InsetRingCoverage(dOuter, dInner, 1); got > testTolerance {
				t.Fatalf("zero-width ring coverage at %v = %v, want 0", p, got)
			}
		}
	}
}

func TestBandedCoverage(t *testing.T) {
	tests := []struct {
		name        string
		d           float32
		strokeWidth float32
		want        float32
	}{
		{"on contour", 0, 4, 1},
		{"band edge outside", 2, 4, 0.5},
		{"band edge inside", -2, 4, 0.5},
		{"far inside", -10, 4, 0},
		{"far outside", 10, 4, 0},
		{"zero width on contour", 0, 0, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BandedCoverage(tt.d, tt.strokeWidth, 1)
			if !approx(got, tt.want, testTolerance) {
				t.Errorf("BandedCoverage(%v, %v) = %v, want %v", tt.d, tt.strokeWidth, got, tt.want)
			}
		})
	}
}

func TestInnerRadius(t *testing.T) {
	tests := []struct {
		radius, stroke, want float32
	}{
		{20, 4, 16},
		{4, 4, 0},
		{4, 10, 0},
		{0, 2, 0},
	}
	for _, tt := range tests {
		if got := InnerRadius(tt.radius, tt.stroke); got != tt.want {
			t.Errorf("InnerRadius(%v, %v) = %v, want %v", tt.radius, tt.stroke, got, tt.want)
		}
	}
}

func TestStrokeStrategyString(t *testing.T) {
	tests := []struct {
		s    StrokeStrategy
		want string
	}{
		{StrokeInset, "Inset"},
		{StrokeBanded, "Banded"},
		{StrokeStrategy(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("StrokeStrategy(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
