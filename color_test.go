package prim

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#f00", Red},
		{"0f0", Green},
		{"#0000ff", Blue},
		{"ffffff80", RGBA{R: 1, G: 1, B: 1, A: 128.0 / 255}},
		{"#0008", RGBA{A: 136.0 / 255}},
		{"nonsense", Black},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Hex(tt.in); !colorApprox(got, tt.want, 1e-6) {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPremultiplyAndScale(t *testing.T) {
	c := RGBA{R: 1, G: 0.5, B: 0.25, A: 0.5}
	if got := c.Premultiply(); got != (RGBA{R: 0.5, G: 0.25, B: 0.125, A: 0.5}) {
		t.Errorf("Premultiply = %v", got)
	}
	if got := White.Scale(0.25); got != (RGBA{R: 0.25, G: 0.25, B: 0.25, A: 0.25}) {
		t.Errorf("Scale = %v", got)
	}
	if got := Red.Lerp(Blue, 0.5); got != (RGBA{R: 0.5, B: 0.5, A: 1}) {
		t.Errorf("Lerp = %v", got)
	}
}

func TestToLinear(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{1, 1},
		{0.5, 0.21404},
		{0.04045, 0.04045 / 12.92},
	}
	for _, tt := range tests {
		got := RGBA{R: tt.in, G: tt.in, B: tt.in, A: 0.3}.ToLinear()
		if !approx(got.R, tt.want, 1e-4) || got.A != 0.3 {
			t.Errorf("ToLinear(%v) = %v, want %v (alpha 0.3)", tt.in, got, tt.want)
		}
	}
}

func TestColorRoundTrip(t *testing.T) {
	in := color.NRGBA{R: 200, G: 100, B: 50, A: 128}
	c := FromColor(in)
	if got := c.Color(); got != in {
		t.Errorf("FromColor/Color round trip = %v, want %v", got, in)
	}
	r, g, b, a := RGBA{R: 2, G: -1, B: 0.5, A: 1}.Bytes()
	if r != 255 || g != 0 || b != 128 || a != 255 {
		t.Errorf("Bytes clamps/rounds = %d %d %d %d", r, g, b, a)
	}
}
