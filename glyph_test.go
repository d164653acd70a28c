package prim

import (
	"testing"
)

// constTexture returns the same texel everywhere.
type constTexture struct {
	r, g, b, a float32
}

func (c constTexture) Sample(u, v float32) (r, g, b, a float32) {
	return c.r, c.g, c.b, c.a
}

// uvTexture encodes the sampled coordinates into its output.
type uvTexture struct{}

func (uvTexture) Sample(u, v float32) (r, g, b, a float32) {
	return u, v, 0, 1
}

func TestSampleGlyphMask(t *testing.T) {
	mask := constTexture{0.7, 0.7, 0.7, 0.7}
	uv := UVRect{U0: 0, V0: 0, U1: 1, V1: 1}

	tests := []struct {
		name string
		tint RGBA
		want RGBA
	}{
		{"opaque black", Black, RGBA{A: 0.7}},
		{"opaque white", White, RGBA{R: 0.7, G: 0.7, B: 0.7, A: 0.7}},
		{"half transparent red", RGBA{R: 1, A: 0.5}, RGBA{R: 0.35, A: 0.35}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleGlyph(mask, GlyphMask, uv, V2(0.5, 0.5), tt.tint)
			if !colorApprox(got, tt.want, testTolerance) {
				t.Errorf("SampleGlyph(mask 0.7, %v) = %v, want %v", tt.tint, got, tt.want)
			}
		})
	}
}

func TestSampleGlyphColor(t *testing.T) {
	texel := constTexture{0.4, 0.2, 0.1, 0.5}
	uv := UVRect{U0: 0, V0: 0, U1: 1, V1: 1}

	got := SampleGlyph(texel, GlyphColor, uv, V2(0.5, 0.5), White)
	want := RGBA{R: 0.4, G: 0.2, B: 0.1, A: 0.5}
	if !colorApprox(got, want, testTolerance) {
		t.Errorf("white tint: got %v, want %v", got, want)
	}

	got = SampleGlyph(texel, GlyphColor, uv, V2(0.5, 0.5), RGBA{R: 1, G: 0.5, B: 0, A: 1})
	want = RGBA{R: 0.4, G: 0.1, B: 0, A: 0.5}
	if !colorApprox(got, want, testTolerance) {
		t.Errorf("colored tint: got %v, want %v", got, want)
	}

	// A translucent tint is premultiplied before the product, so it fades
	// the glyph's color channels as well as its alpha.
	got = SampleGlyph(texel, GlyphColor, uv, V2(0.5, 0.5), RGBA{R: 1, G: 0.5, B: 0, A: 0.5})
	want = RGBA{R: 0.2, G: 0.05, B: 0, A: 0.25}
	if !colorApprox(got, want, testTolerance) {
		t.Errorf("half-alpha tint: got %v, want %v", got, want)
	}
}

func TestSampleGlyphUVInterpolation(t *testing.T) {
	uv := UVRect{U0: 0.25, V0: 0.5, U1: 0.75, V1: 1}

	tests := []struct {
		corner Vec2
		u, v   float32
	}{
		{V2(0, 0), 0.25, 0.5},
		{V2(1, 0), 0.75, 0.5},
		{V2(1, 1), 0.75, 1},
		{V2(0.5, 0.5), 0.5, 0.75},
	}
	for _, tt := range tests {
		got := SampleGlyph(uvTexture{}, GlyphColor, uv, tt.corner, White)
		if !approx(got.R, tt.u, testTolerance) || !approx(got.G, tt.v, testTolerance) {
			t.Errorf("corner %v sampled (%v, %v), want (%v, %v)", tt.corner, got.R, got.G, tt.u, tt.v)
		}
	}
}

func TestSampleGlyphNilTexture(t *testing.T) {
	got := SampleGlyph(nil, GlyphMask, UVRect{U1: 1, V1: 1}, V2(0.5, 0.5), White)
	if got != Transparent {
		t.Errorf("nil texture = %v, want transparent", got)
	}
}

func TestGlyphModeString(t *testing.T) {
	if GlyphMask.String() != "Mask" || GlyphColor.String() != "Color" || GlyphMode(5).String() != "Unknown" {
		t.Error("unexpected GlyphMode names")
	}
}
