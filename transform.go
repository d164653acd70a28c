package prim

// Viewport is the size of the render target in pixels. It is a per-frame
// parameter: every pixel-space primitive is projected with the viewport of
// the frame it is drawn in.
type Viewport struct {
	Width, Height float32
}

// VP is a convenience function to create a Viewport from integer sizes.
func VP(width, height int) Viewport {
	return Viewport{Width: float32(width), Height: float32(height)}
}

// size returns the viewport extents clamped away from zero.
func (v Viewport) size() Vec2 {
	return Vec2{X: v.Width, Y: v.Height}.MaxScalar(AAEpsilon)
}

// ToNDC maps a pixel position (Y down) to normalized device coordinates in
// [-1,1]² (Y up).
func (v Viewport) ToNDC(p Vec2) Vec2 {
	s := v.size()
	return Vec2{X: 2*p.X/s.X - 1, Y: 1 - 2*p.Y/s.Y}
}

// FromNDC is the inverse of ToNDC.
func (v Viewport) FromNDC(n Vec2) Vec2 {
	s := v.size()
	return Vec2{X: (n.X + 1) * 0.5 * s.X, Y: (1 - n.Y) * 0.5 * s.Y}
}

// RectToNDC converts a pixel rectangle to an NDC rectangle whose X, Y is
// the NDC minimum corner (the bottom-left of the pixel rectangle).
func (v Viewport) RectToNDC(r Rect) Rect {
	a := v.ToNDC(r.Origin())
	b := v.ToNDC(r.Max())
	return Rect{
		X: min(a.X, b.X),
		Y: min(a.Y, b.Y),
		W: max(a.X, b.X) - min(a.X, b.X),
		H: max(a.Y, b.Y) - min(a.Y, b.Y),
	}
}

// LengthToNDC converts an isotropic pixel length (radius, stroke width) to
// NDC using the smaller of the two axis scales.
func (v Viewport) LengthToNDC(l float32) float32 {
	s := v.size()
	return min(2*l/s.X, 2*l/s.Y)
}

// InstanceToNDC converts a pixel-space instance into the NDC calling
// convention. Because the NDC minimum corner is the visual bottom, the
// local Y axis is mirrored: gradient endpoints and glyph UVs are flipped so
// the primitive looks the same in both modes.
func (v Viewport) InstanceToNDC(inst Instance) Instance {
	inst.Rect = v.RectToNDC(inst.Rect)
	inst.Radius = v.LengthToNDC(inst.Radius)
	inst.StrokeWidth = v.LengthToNDC(inst.StrokeWidth)
	inst.Brush.Start.Y = 1 - inst.Brush.Start.Y
	inst.Brush.End.Y = 1 - inst.Brush.End.Y
	inst.UV = inst.UV.FlipV()
	return inst
}

// CoordMode is the calling convention of a frame's instance attributes.
type CoordMode uint8

const (
	// PixelSpace attributes are in pixels and are projected to NDC with
	// the frame viewport.
	PixelSpace CoordMode = iota

	// NDCSpace attributes were already projected by the layout stage; the
	// transform step is skipped.
	NDCSpace
)

// String returns the mode name.
func (m CoordMode) String() string {
	switch m {
	case PixelSpace:
		return "PixelSpace"
	case NDCSpace:
		return "NDCSpace"
	default:
		return "Unknown"
	}
}

// Frame carries the per-frame context the evaluators need: the viewport
// and the calling convention of the instance attributes.
type Frame struct {
	Viewport Viewport
	Mode     CoordMode
}

// Project maps a working-space position to NDC.
func (f Frame) Project(p Vec2) Vec2 {
	if f.Mode == NDCSpace {
		return p
	}
	return f.Viewport.ToNDC(p)
}

// ToPixels maps a working-space position to framebuffer pixels.
func (f Frame) ToPixels(p Vec2) Vec2 {
	if f.Mode == PixelSpace {
		return p
	}
	return f.Viewport.FromNDC(p)
}

// SampleAt returns the evaluation sample for the center of framebuffer
// pixel (px, py): its working-space position and how many working-space
// units one pixel spans.
func (f Frame) SampleAt(px, py int) Sample {
	center := Vec2{X: float32(px) + 0.5, Y: float32(py) + 0.5}
	if f.Mode == PixelSpace {
		return Sample{Pos: center, AA: 1}
	}
	s := f.Viewport.size()
	return Sample{
		Pos: f.Viewport.ToNDC(center),
		AA:  max(2/s.X, 2/s.Y),
	}
}

// PixelBounds returns the framebuffer-space bounding box of r, minimum and
// maximum corners.
func (f Frame) PixelBounds(r Rect) (lo, hi Vec2) {
	a := f.ToPixels(r.Origin())
	b := f.ToPixels(r.Max())
	lo = Vec2{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
	hi = Vec2{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
	return lo, hi
}
