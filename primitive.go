package prim

import "fmt"

// Kind identifies the primitive variant carried by an Instance.
// The set is closed; Evaluate dispatches on it with a single switch.
type Kind uint8

const (
	// KindRectangle is a plain rectangle: full coverage over its quad.
	KindRectangle Kind = iota

	// KindRoundedRectangle is a filled rectangle with circular corners.
	KindRoundedRectangle

	// KindRoundedBorder is a ring along the inside of a rounded rectangle,
	// composited with the inset strategy.
	KindRoundedBorder

	// KindEllipse is a filled ellipse inscribed in the rectangle.
	KindEllipse

	// KindEllipseStroke is an ellipse outline, composited with the banded
	// strategy.
	KindEllipseStroke

	// KindRoundedRectStroke is a rounded-rectangle outline centered on the
	// shape contour, composited with the banded strategy.
	KindRoundedRectStroke

	// KindGlyph is a textured quad sampling the glyph atlas.
	KindGlyph

	kindCount
)

var kindNames = [kindCount]string{
	KindRectangle:         "Rectangle",
	KindRoundedRectangle:  "RoundedRectangle",
	KindRoundedBorder:     "RoundedBorder",
	KindEllipse:           "Ellipse",
	KindEllipseStroke:     "EllipseStroke",
	KindRoundedRectStroke: "RoundedRectStroke",
	KindGlyph:             "Glyph",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// StrokeStrategy returns the stroke compositing strategy of the kind and
// whether the kind is stroked at all.
func (k Kind) StrokeStrategy() (StrokeStrategy, bool) {
	switch k {
	case KindRoundedBorder:
		return StrokeInset, true
	case KindEllipseStroke, KindRoundedRectStroke:
		return StrokeBanded, true
	default:
		return 0, false
	}
}

// UVRect is a sub-rectangle of the glyph atlas in normalized texture
// coordinates. (U0, V0) maps to the quad's (0,0) corner and (U1, V1) to its
// (1,1) corner; emitters that flip Y swap V0 and V1.
type UVRect struct {
	U0, V0, U1, V1 float32
}

// At bilinearly interpolates a quad fraction into the sub-rectangle.
func (r UVRect) At(f Vec2) Vec2 {
	return Vec2{X: r.U0, Y: r.V0}.Lerp(Vec2{X: r.U1, Y: r.V1}, f)
}

// FlipV returns the rectangle with V0 and V1 swapped.
func (r UVRect) FlipV() UVRect {
	return UVRect{U0: r.U0, V0: r.V1, U1: r.U1, V1: r.V0}
}

// Instance is one primitive record as produced by the scene builder.
// It is a tagged union: Kind selects which of the remaining fields are
// meaningful.
//
//	Kind                  Radius  StrokeWidth  Brush  UV/Tint
//	Rectangle               -         -          x       -
//	RoundedRectangle        x         -          x       -
//	RoundedBorder           x         x          x       -
//	Ellipse                 -         -          x       -
//	EllipseStroke           -         x          x       -
//	RoundedRectStroke       x         x          x       -
//	Glyph                   -         -          -       x
//
// Radius and StrokeWidth are in the same unit as Rect. Out-of-range values
// are not validated (see Clamped).
type Instance struct {
	Kind        Kind
	Rect        Rect
	Radius      float32
	StrokeWidth float32
	Brush       Brush
	UV          UVRect
	Tint        RGBA
}

// Rectangle creates a plain rectangle painted white.
func Rectangle(r Rect) Instance {
	return Instance{Kind: KindRectangle, Rect: r, Brush: Solid(White)}
}

// RoundedRectangle creates a filled rounded rectangle painted white.
func RoundedRectangle(r Rect, radius float32) Instance {
	return Instance{Kind: KindRoundedRectangle, Rect: r, Radius: radius, Brush: Solid(White)}
}

// RoundedBorder creates a ring of the given stroke width running along the
// inside of the rounded rectangle.
func RoundedBorder(r Rect, radius, strokeWidth float32) Instance {
	return Instance{
		Kind:        KindRoundedBorder,
		Rect:        r,
		Radius:      radius,
		StrokeWidth: strokeWidth,
		Brush:       Solid(White),
	}
}

// Ellipse creates a filled ellipse inscribed in r.
func Ellipse(r Rect) Instance {
	return Instance{Kind: KindEllipse, Rect: r, Brush: Solid(White)}
}

// EllipseStroke creates an ellipse outline centered on the contour of the
// ellipse inscribed in r.
func EllipseStroke(r Rect, strokeWidth float32) Instance {
	return Instance{Kind: KindEllipseStroke, Rect: r, StrokeWidth: strokeWidth, Brush: Solid(White)}
}

// RoundedRectStroke creates a rounded-rectangle outline centered on the
// shape contour. Half of the stroke falls outside r and is clipped by the
// quad; callers wanting the full band outset the rectangle by strokeWidth/2.
func RoundedRectStroke(r Rect, radius, strokeWidth float32) Instance {
	return Instance{
		Kind:        KindRoundedRectStroke,
		Rect:        r,
		Radius:      radius,
		StrokeWidth: strokeWidth,
		Brush:       Solid(White),
	}
}

// Glyph creates a glyph quad sampling uv from the atlas, tinted by tint.
// Color glyphs are normally drawn with a white tint.
func Glyph(r Rect, uv UVRect, tint RGBA) Instance {
	return Instance{Kind: KindGlyph, Rect: r, UV: uv, Tint: tint}
}

// WithBrush returns a copy of the instance using brush b.
func (inst Instance) WithBrush(b Brush) Instance {
	inst.Brush = b
	return inst
}

// WithColor returns a copy of the instance painted with a solid color.
// For glyphs the color becomes the tint.
func (inst Instance) WithColor(c RGBA) Instance {
	if inst.Kind == KindGlyph {
		inst.Tint = c
		return inst
	}
	inst.Brush = Solid(c)
	return inst
}

// Clamped returns a copy with the shape parameters forced into their
// expected ranges: negative extents become zero, the radius is limited to
// half the smaller side and the stroke width to the radius-independent
// extent of the shape. Evaluate never calls this; it is an opt-in for
// callers that want validation before submission.
func (inst Instance) Clamped() Instance {
	inst.Rect.W = max(inst.Rect.W, 0)
	inst.Rect.H = max(inst.Rect.H, 0)
	half := inst.Rect.HalfExtents().MinComponent()
	inst.Radius = min(max(inst.Radius, 0), half)
	limit := half
	if inst.Kind == KindEllipseStroke || inst.Kind == KindRoundedRectStroke {
		limit = 2 * half
	}
	inst.StrokeWidth = min(max(inst.StrokeWidth, 0), limit)
	return inst
}
