package prim

// GlyphMode selects how a glyph quad combines the atlas sample with its
// tint. It is chosen per draw batch by the caller; the atlas content is
// never inspected to guess it.
type GlyphMode uint8

const (
	// GlyphMask treats the atlas as a single-channel coverage mask.
	GlyphMask GlyphMode = iota

	// GlyphColor treats the atlas as premultiplied RGBA (color emoji and
	// other multi-color glyphs).
	GlyphColor
)

// String returns the mode name.
func (m GlyphMode) String() string {
	switch m {
	case GlyphMask:
		return "Mask"
	case GlyphColor:
		return "Color"
	default:
		return "Unknown"
	}
}

// Texture is a read-only atlas the glyph sampler can read from.
// Sample returns premultiplied RGBA at normalized coordinates (u, v);
// coverage masks report their value in every channel.
type Texture interface {
	Sample(u, v float32) (r, g, b, a float32)
}

// SampleGlyph returns the premultiplied color of a glyph quad at the given
// quad fraction.
//
// Mask mode yields (tint.rgb, tint.a·mask) before premultiplication. Color
// mode multiplies the premultiplied atlas texel by the premultiplied tint,
// which for an opaque tint is the plain component-wise product. A nil
// texture samples as fully transparent.
func SampleGlyph(tex Texture, mode GlyphMode, uv UVRect, corner Vec2, tint RGBA) RGBA {
	if tex == nil {
		return Transparent
	}
	st := uv.At(corner)
	r, g, b, a := tex.Sample(st.X, st.Y)
	if mode == GlyphColor {
		return RGBA{R: r, G: g, B: b, A: a}.Mul(tint.Premultiply())
	}
	return tint.Premultiply().Scale(a)
}
