package prim

import "github.com/chewxy/math32"

// Vec2 is a 2D position or displacement in float32, the precision the
// primitive attributes are uploaded with.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// MulVec returns the component-wise product of two vectors.
func (v Vec2) MulVec(w Vec2) Vec2 {
	return Vec2{X: v.X * w.X, Y: v.Y * w.Y}
}

// DivVec returns the component-wise quotient of two vectors.
// The caller is responsible for keeping w away from zero.
func (v Vec2) DivVec(w Vec2) Vec2 {
	return Vec2{X: v.X / w.X, Y: v.Y / w.Y}
}

// Abs returns the component-wise absolute value.
func (v Vec2) Abs() Vec2 {
	return Vec2{X: math32.Abs(v.X), Y: math32.Abs(v.Y)}
}

// Max returns the component-wise maximum of v and w.
func (v Vec2) Max(w Vec2) Vec2 {
	return Vec2{X: math32.Max(v.X, w.X), Y: math32.Max(v.Y, w.Y)}
}

// MaxScalar returns the component-wise maximum of v and s.
func (v Vec2) MaxScalar(s float32) Vec2 {
	return Vec2{X: math32.Max(v.X, s), Y: math32.Max(v.Y, s)}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared length of the vector.
func (v Vec2) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Lerp linearly interpolates each component between v and w.
func (v Vec2) Lerp(w, t Vec2) Vec2 {
	return Vec2{X: v.X + (w.X-v.X)*t.X, Y: v.Y + (w.Y-v.Y)*t.Y}
}

// MinComponent returns the smaller of X and Y.
func (v Vec2) MinComponent() float32 {
	return math32.Min(v.X, v.Y)
}

// MaxComponent returns the larger of X and Y.
func (v Vec2) MaxComponent() float32 {
	return math32.Max(v.X, v.Y)
}

// clamp01 clamps x to [0, 1].
func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
