package prim

// Sample is one evaluation point: a position in the instance's working
// space and the derivative magnitude AA, the number of working-space units
// one screen sample spans (1 for pixel-space frames).
type Sample struct {
	Pos Vec2
	AA  float32
}

// Coverage returns the anti-aliased coverage of inst at s, in [0, 1].
//
// Samples outside the instance's quad have zero coverage, as the quad is
// the only geometry the primitive generates. Glyph quads report full
// coverage; their alpha comes from the atlas.
func Coverage(inst Instance, s Sample) float32 {
	r := inst.Rect
	if !r.Contains(s.Pos) {
		return 0
	}

	p := s.Pos
	center := r.Center()
	half := r.HalfExtents()

	switch inst.Kind {
	case KindRoundedRectangle:
		return FillCoverage(RoundedBoxDistance(p, center, half, inst.Radius), s.AA)

	case KindRoundedBorder:
		sw := inst.StrokeWidth
		dOuter := RoundedBoxDistance(p, center, half, inst.Radius)
		dInner := RoundedBoxDistance(p, center, r.Inset(sw).HalfExtents(), InnerRadius(inst.Radius, sw))
		return InsetRingCoverage(dOuter, dInner, s.AA)

	case KindRoundedRectStroke:
		d := RoundedBoxDistance(p, center, half, inst.Radius)
		return BandedCoverage(d, inst.StrokeWidth, s.AA)

	case KindEllipse:
		d := EllipseDistance(p, center, half)
		g := ellipseGradient(p, center, half)
		return FillCoverage(d, s.AA*g)

	case KindEllipseStroke:
		// The distance stays in normalized ellipse space; the stroke width
		// and derivative are carried into that space instead.
		d := EllipseDistance(p, center, half)
		g := ellipseGradient(p, center, half)
		return BandedCoverage(d, inst.StrokeWidth*g, s.AA*g)

	default:
		// KindRectangle, KindGlyph and unknown kinds cover their quad.
		return 1
	}
}

// Shader evaluates instances into premultiplied colors. The zero value
// shades every shape kind; glyph quads additionally need Atlas.
//
// Shader holds only read-only references and is safe to use from many
// goroutines at once.
type Shader struct {
	// Atlas is the glyph texture bound for the current batch.
	Atlas Texture

	// GlyphMode tells how Atlas texels combine with glyph tints.
	GlyphMode GlyphMode
}

// Evaluate returns the premultiplied color of inst at s: the brush (or
// glyph sample) multiplied by coverage.
func (sh Shader) Evaluate(inst Instance, s Sample) RGBA {
	cov := Coverage(inst, s)
	if cov <= 0 {
		return Transparent
	}
	if inst.Kind == KindGlyph {
		corner := inst.Corner(s.Pos)
		return SampleGlyph(sh.Atlas, sh.GlyphMode, inst.UV, corner, inst.Tint).Scale(cov)
	}
	return inst.Brush.ColorAt(inst.Rect, s.Pos).Premultiply().Scale(cov)
}

// Evaluate shades a shape instance with a zero Shader. Glyph quads
// evaluate to transparent because no atlas is bound.
func Evaluate(inst Instance, s Sample) RGBA {
	return Shader{}.Evaluate(inst, s)
}
