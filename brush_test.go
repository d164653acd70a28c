package prim

import (
	"testing"
)

func colorApprox(a, b RGBA, tol float32) bool {
	return approx(a.R, b.R, tol) && approx(a.G, b.G, tol) && approx(a.B, b.B, tol) && approx(a.A, b.A, tol)
}

func TestSolidBrush(t *testing.T) {
	b := Solid(Red)
	r := R(0, 0, 100, 50)
	for _, p := range []Vec2{V2(0, 0), V2(50, 25), V2(-10, 200)} {
		if got := b.ColorAt(r, p); got != Red {
			t.Errorf("Solid(Red).ColorAt(%v) = %v, want %v", p, got, Red)
		}
	}
}

func TestLinearGradientHorizontal(t *testing.T) {
	b := LinearGradient(Red, Blue, V2(0, 0), V2(1, 0))
	r := R(0, 0, 100, 50)

	tests := []struct {
		name string
		p    Vec2
		want RGBA
	}{
		{"midpoint top", V2(50, 0), RGBA{R: 0.5, B: 0.5, A: 1}},
		{"midpoint center", V2(50, 25), RGBA{R: 0.5, B: 0.5, A: 1}},
		{"midpoint bottom", V2(50, 50), RGBA{R: 0.5, B: 0.5, A: 1}},
		{"start", V2(0, 25), Red},
		{"end", V2(100, 25), Blue},
		{"quarter", V2(25, 10), RGBA{R: 0.75, B: 0.25, A: 1}},
		{"before start clamps", V2(-40, 25), Red},
		{"after end clamps", V2(180, 25), Blue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.ColorAt(r, tt.p)
			if !colorApprox(got, tt.want, testTolerance) {
				t.Errorf("ColorAt(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestLinearGradientIndependentOfRectSize(t *testing.T) {
	b := LinearGradient(Black, White, V2(0.2, 0.1), V2(0.9, 0.7))
	small := R(0, 0, 10, 5)
	large := R(300, -40, 1000, 500)
	for _, f := range []Vec2{V2(0, 0), V2(0.3, 0.8), V2(0.5, 0.5), V2(1, 1)} {
		a := b.ColorAt(small, small.At(f))
		c := b.ColorAt(large, large.At(f))
		if !colorApprox(a, c, testTolerance) {
			t.Errorf("local %v: small rect %v, large rect %v", f, a, c)
		}
	}
}

func TestLinearGradientScaleInvariant(t *testing.T) {
	origin := V2(0.3, 0.4)
	scaleAbout := func(p Vec2, k float32) Vec2 {
		return origin.Add(p.Sub(origin).Mul(k))
	}

	start, end := V2(0.1, 0.2), V2(0.8, 0.6)
	samples := []Vec2{V2(0, 0), V2(0.25, 0.5), V2(0.6, 0.3), V2(1, 1)}

	for _, k := range []float32{0.5, 2, 7.5} {
		base := LinearGradient(Red, Green, start, end)
		scaled := LinearGradient(Red, Green, scaleAbout(start, k), scaleAbout(end, k))
		for _, l := range samples {
			want := base.Offset(l)
			got := scaled.Offset(scaleAbout(l, k))
			if !approx(got, want, testTolerance) {
				t.Errorf("k=%v local=%v: t = %v, want %v", k, l, got, want)
			}
		}
	}
}

func TestLinearGradientZeroLengthAxis(t *testing.T) {
	b := LinearGradient(Red, Blue, V2(0.5, 0.5), V2(0.5, 0.5))
	r := R(0, 0, 100, 100)
	for _, p := range []Vec2{V2(0, 0), V2(50, 50), V2(100, 100)} {
		got := b.ColorAt(r, p)
		if !colorApprox(got, Red, testTolerance) && !colorApprox(got, Blue, testTolerance) {
			t.Errorf("zero-length axis ColorAt(%v) = %v, want Red or Blue", p, got)
		}
	}
}

func TestBrushUnknownTypeFallsBack(t *testing.T) {
	b := Brush{Type: BrushType(42), Color0: Green, Color1: Blue}
	if got := b.ColorAt(R(0, 0, 1, 1), V2(0.5, 0.5)); got != Green {
		t.Errorf("unknown brush ColorAt = %v, want Color0 %v", got, Green)
	}
}

func TestBrushTypeString(t *testing.T) {
	tests := []struct {
		bt   BrushType
		want string
	}{
		{BrushSolid, "Solid"},
		{BrushLinearGradient, "LinearGradient"},
		{BrushType(7), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.bt.String(); got != tt.want {
			t.Errorf("BrushType(%d).String() = %q, want %q", tt.bt, got, tt.want)
		}
	}
}
