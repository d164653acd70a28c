package prim

// BrushType selects the fill rule of a shape.
type BrushType uint8

const (
	// BrushSolid paints Color0 everywhere.
	BrushSolid BrushType = iota

	// BrushLinearGradient interpolates Color0 → Color1 along the axis
	// Start → End, both expressed in the shape's local unit space.
	BrushLinearGradient
)

// String returns the brush type name.
func (t BrushType) String() string {
	switch t {
	case BrushSolid:
		return "Solid"
	case BrushLinearGradient:
		return "LinearGradient"
	default:
		return "Unknown"
	}
}

// Brush is the fill rule of a shape primitive. It is independent of the
// shape: any shape kind can carry any brush.
//
// Start and End live in the shape's local unit space, (0,0) being the
// rectangle's minimum corner and (1,1) its maximum corner. Endpoints outside
// [0,1]² are valid; the visible part of the ramp is then partial.
type Brush struct {
	Type   BrushType
	Color0 RGBA
	Color1 RGBA
	Start  Vec2
	End    Vec2
}

// Solid creates a solid brush.
//
// Example:
//
//	inst := prim.RoundedRectangle(prim.R(0, 0, 100, 40), 8).WithBrush(prim.Solid(prim.Red))
func Solid(c RGBA) Brush {
	return Brush{Type: BrushSolid, Color0: c}
}

// LinearGradient creates a two-stop linear gradient brush.
//
// Example:
//
//	// Left-to-right, red to blue.
//	b := prim.LinearGradient(prim.Red, prim.Blue, prim.V2(0, 0), prim.V2(1, 0))
func LinearGradient(c0, c1 RGBA, start, end Vec2) Brush {
	return Brush{
		Type:   BrushLinearGradient,
		Color0: c0,
		Color1: c1,
		Start:  start,
		End:    end,
	}
}

// ColorAt returns the straight-alpha color of the brush at p, where p is a
// position in the same space as rect. Unknown brush types fall back to
// Color0.
func (b Brush) ColorAt(rect Rect, p Vec2) RGBA {
	if b.Type != BrushLinearGradient {
		return b.Color0
	}
	return b.Color0.Lerp(b.Color1, b.Offset(rect.Local(p)))
}

// Offset returns the clamped gradient parameter t for a position already in
// local unit space.
//
// t = dot(local - Start, End - Start) / |End - Start|², with the squared
// length clamped to AAEpsilon so a zero-length axis yields Color0 or Color1
// rather than a division by zero.
func (b Brush) Offset(local Vec2) float32 {
	axis := b.End.Sub(b.Start)
	lengthSq := max(axis.LengthSq(), AAEpsilon)
	return clamp01(local.Sub(b.Start).Dot(axis) / lengthSq)
}
