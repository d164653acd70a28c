package prim

import (
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindRectangle, "Rectangle"},
		{KindRoundedRectangle, "RoundedRectangle"},
		{KindRoundedBorder, "RoundedBorder"},
		{KindEllipse, "Ellipse"},
		{KindEllipseStroke, "EllipseStroke"},
		{KindRoundedRectStroke, "RoundedRectStroke"},
		{KindGlyph, "Glyph"},
		{Kind(99), "Kind(99)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", uint8(tt.k), got, tt.want)
		}
	}
}

func TestKindStrokeStrategy(t *testing.T) {
	tests := []struct {
		k       Kind
		want    StrokeStrategy
		stroked bool
	}{
		{KindRectangle, 0, false},
		{KindRoundedRectangle, 0, false},
		{KindRoundedBorder, StrokeInset, true},
		{KindEllipse, 0, false},
		{KindEllipseStroke, StrokeBanded, true},
		{KindRoundedRectStroke, StrokeBanded, true},
		{KindGlyph, 0, false},
	}
	for _, tt := range tests {
		s, ok := tt.k.StrokeStrategy()
		if ok != tt.stroked || (ok && s != tt.want) {
			t.Errorf("%v.StrokeStrategy() = (%v, %v), want (%v, %v)", tt.k, s, ok, tt.want, tt.stroked)
		}
	}
}

func TestConstructorsDefaultToWhite(t *testing.T) {
	r := R(0, 0, 10, 10)
	for _, inst := range []Instance{
		Rectangle(r), RoundedRectangle(r, 2), RoundedBorder(r, 2, 1),
		Ellipse(r), EllipseStroke(r, 1), RoundedRectStroke(r, 2, 1),
	} {
		if inst.Brush != Solid(White) {
			t.Errorf("%v brush = %+v, want solid white", inst.Kind, inst.Brush)
		}
	}
}

func TestWithColor(t *testing.T) {
	g := Glyph(R(0, 0, 4, 4), UVRect{}, White).WithColor(Red)
	if g.Tint != Red {
		t.Errorf("glyph WithColor tint = %v, want red", g.Tint)
	}
	e := Ellipse(R(0, 0, 4, 4)).WithColor(Blue)
	if e.Brush != Solid(Blue) {
		t.Errorf("ellipse WithColor brush = %+v", e.Brush)
	}
}

func TestUVRect(t *testing.T) {
	uv := UVRect{U0: 0.1, V0: 0.2, U1: 0.3, V1: 0.6}
	if got := uv.At(V2(0.5, 0.5)); !approx(got.X, 0.2, 1e-6) || !approx(got.Y, 0.4, 1e-6) {
		t.Errorf("At(0.5,0.5) = %v", got)
	}
	f := uv.FlipV()
	if f.V0 != uv.V1 || f.V1 != uv.V0 || f.U0 != uv.U0 || f.U1 != uv.U1 {
		t.Errorf("FlipV = %+v", f)
	}
}

func TestClamped(t *testing.T) {
	tests := []struct {
		name       string
		inst       Instance
		wantRadius float32
		wantStroke float32
	}{
		{"radius too large", RoundedRectangle(R(0, 0, 20, 10), 30), 5, 0},
		{"negative radius", RoundedRectangle(R(0, 0, 20, 10), -3), 0, 0},
		{"border stroke too wide", RoundedBorder(R(0, 0, 20, 10), 2, 9), 2, 5},
		{"ellipse stroke limit", EllipseStroke(R(0, 0, 20, 10), 40), 0, 10},
		{"in range untouched", RoundedBorder(R(0, 0, 20, 10), 3, 2), 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.inst.Clamped()
			if got.Radius != tt.wantRadius || got.StrokeWidth != tt.wantStroke {
				t.Errorf("Clamped() radius=%v stroke=%v, want %v %v", got.Radius, got.StrokeWidth, tt.wantRadius, tt.wantStroke)
			}
		})
	}

	neg := Rectangle(R(0, 0, -4, 3)).Clamped()
	if neg.Rect.W != 0 || neg.Rect.H != 3 {
		t.Errorf("negative width not clamped: %v", neg.Rect)
	}
}
