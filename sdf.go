package prim

// RoundedBoxDistance returns the signed distance from p to an axis-aligned
// rounded box. Negative values are inside, positive values are outside,
// measured in the same units as p.
//
// With radius = 0 the box degenerates to a sharp rectangle.
func RoundedBoxDistance(p, center, halfExtents Vec2, radius float32) float32 {
	q := p.Sub(center).Abs().Sub(halfExtents.Sub(Vec2{X: radius, Y: radius}))
	outside := q.MaxScalar(0).Length()
	inside := min(q.MaxComponent(), 0)
	return outside + inside - radius
}

// EllipseDistance returns the signed distance from p to an axis-aligned
// ellipse, measured in the ellipse's normalized space: p is mapped so the
// ellipse becomes the unit circle and the result is length(p') - 1.
//
// This is not the Euclidean distance. A value of -1 is the center and 0 the
// contour regardless of the radii. Radii are clamped to AAEpsilon.
func EllipseDistance(p, center, radii Vec2) float32 {
	return ellipseSpace(p, center, radii).Length() - 1
}

// ellipseSpace maps p into the ellipse's normalized circular space.
func ellipseSpace(p, center, radii Vec2) Vec2 {
	return p.Sub(center).DivVec(radii.MaxScalar(AAEpsilon))
}

// ellipseGradient returns the magnitude of the gradient of EllipseDistance
// with respect to p, i.e. how many normalized units one input unit spans
// at p. At the center, where the direction is undefined, the steepest
// axis (the minor radius) is used.
func ellipseGradient(p, center, radii Vec2) float32 {
	r := radii.MaxScalar(AAEpsilon)
	q := p.Sub(center).DivVec(r)
	l := q.Length()
	if l < AAEpsilon {
		return 1 / r.MinComponent()
	}
	n := q.Mul(1 / l)
	return n.DivVec(r).Length()
}
