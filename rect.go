package prim

// Rect is the bounding rectangle shared by every primitive.
// X, Y is the minimum corner; W and H are expected to be non-negative.
// The unit (pixels or NDC) depends on the frame's CoordMode.
type Rect struct {
	X, Y, W, H float32
}

// R is a convenience function to create a Rect.
func R(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Origin returns the minimum corner.
func (r Rect) Origin() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Size returns the rectangle extents as a vector.
func (r Rect) Size() Vec2 {
	return Vec2{X: r.W, Y: r.H}
}

// Max returns the maximum corner.
func (r Rect) Max() Vec2 {
	return Vec2{X: r.X + r.W, Y: r.Y + r.H}
}

// Center returns the rectangle center.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W*0.5, Y: r.Y + r.H*0.5}
}

// HalfExtents returns half the width and height.
func (r Rect) HalfExtents() Vec2 {
	return Vec2{X: r.W * 0.5, Y: r.H * 0.5}
}

// Inset shrinks the rectangle by d on every edge. The result is not
// clamped: an inset larger than half the extent yields negative sizes.
func (r Rect) Inset(d float32) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Contains reports whether p lies inside the rectangle, edges included.
// An empty rectangle contains no point, not even its own origin.
func (r Rect) Contains(p Vec2) bool {
	if r.IsEmpty() {
		return false
	}
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Local maps p into the rectangle's unit space, where (0,0) is the minimum
// corner and (1,1) the maximum corner. Zero extents are clamped to AAEpsilon
// so degenerate rectangles still produce finite values.
func (r Rect) Local(p Vec2) Vec2 {
	size := r.Size().MaxScalar(AAEpsilon)
	return p.Sub(r.Origin()).DivVec(size)
}

// At maps a unit-space fraction back into the rectangle.
func (r Rect) At(f Vec2) Vec2 {
	return r.Origin().Add(f.MulVec(r.Size()))
}
