package prim

import (
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a, b := V2(3, 4), V2(-1, 2)

	tests := []struct {
		name string
		got  Vec2
		want Vec2
	}{
		{"add", a.Add(b), V2(2, 6)},
		{"sub", a.Sub(b), V2(4, 2)},
		{"mul", a.Mul(2), V2(6, 8)},
		{"mulvec", a.MulVec(b), V2(-3, 8)},
		{"divvec", a.DivVec(V2(2, 4)), V2(1.5, 1)},
		{"abs", b.Abs(), V2(1, 2)},
		{"max", a.Max(V2(5, 1)), V2(5, 4)},
		{"maxscalar", b.MaxScalar(0), V2(0, 2)},
		{"lerp", V2(0, 10).Lerp(V2(10, 20), V2(0.5, 0.25)), V2(5, 12.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVec2Scalars(t *testing.T) {
	v := V2(3, 4)
	if got := v.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := v.LengthSq(); got != 25 {
		t.Errorf("LengthSq = %v, want 25", got)
	}
	if got := v.Dot(V2(2, -1)); got != 2 {
		t.Errorf("Dot = %v, want 2", got)
	}
	if v.MinComponent() != 3 || v.MaxComponent() != 4 {
		t.Errorf("Min/MaxComponent = %v/%v", v.MinComponent(), v.MaxComponent())
	}
}

func TestClamp01(t *testing.T) {
	for _, tt := range []struct{ in, want float32 }{{-1, 0}, {0, 0}, {0.3, 0.3}, {1, 1}, {7, 1}} {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRect(t *testing.T) {
	r := R(10, 20, 30, 40)
	if r.Center() != V2(25, 40) {
		t.Errorf("Center = %v", r.Center())
	}
	if r.HalfExtents() != V2(15, 20) {
		t.Errorf("HalfExtents = %v", r.HalfExtents())
	}
	if r.Max() != V2(40, 60) {
		t.Errorf("Max = %v", r.Max())
	}
	if got := r.Inset(5); got != R(15, 25, 20, 30) {
		t.Errorf("Inset(5) = %v", got)
	}
	if got := r.Inset(20); got.W != -10 {
		t.Errorf("Inset(20) should not clamp, got %v", got)
	}
	if !r.Contains(V2(10, 20)) || !r.Contains(V2(40, 60)) || r.Contains(V2(9.9, 30)) {
		t.Error("Contains should include edges and exclude outside points")
	}
	for _, empty := range []Rect{R(5, 5, 0, 0), R(10.5, 0, 0, 20), R(0, 3, 8, 0), R(0, 0, -4, 4)} {
		if empty.Contains(empty.Origin()) || empty.Contains(empty.Center()) {
			t.Errorf("empty %v should contain nothing", empty)
		}
	}
	if got := r.Local(V2(25, 40)); got != V2(0.5, 0.5) {
		t.Errorf("Local(center) = %v", got)
	}
	if got := r.At(V2(1, 0.5)); got != V2(40, 40) {
		t.Errorf("At(1,0.5) = %v", got)
	}
	if r.IsEmpty() || !R(0, 0, 0, 5).IsEmpty() {
		t.Error("IsEmpty mismatch")
	}
}
