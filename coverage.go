package prim

import "github.com/chewxy/math32"

// AAEpsilon is added to every derivative and clamped into every divisor so
// degenerate inputs produce finite output instead of dividing by zero.
const AAEpsilon = 1e-6

// StrokeStrategy selects how a stroked shape turns distances into coverage.
// The two strategies are not numerically equivalent for non-trivial radii;
// each primitive family uses a fixed one.
type StrokeStrategy uint8

const (
	// StrokeInset subtracts the coverage of an inset shape from the coverage
	// of the outer shape. Used by rounded borders.
	StrokeInset StrokeStrategy = iota

	// StrokeBanded treats the stroke as a band of half-width strokeWidth/2
	// centered on the zero contour of a single distance field. Used by
	// ellipse and rounded-rectangle strokes.
	StrokeBanded
)

// String returns the strategy name.
func (s StrokeStrategy) String() string {
	switch s {
	case StrokeInset:
		return "Inset"
	case StrokeBanded:
		return "Banded"
	default:
		return "Unknown"
	}
}

// FillCoverage converts a signed distance d into anti-aliased coverage for
// a filled shape. aa is how many distance units one screen sample spans.
//
// Coverage is exactly 0.5 on the boundary and sweeps from 1 to 0 over one
// aa-wide band, giving ~1 sample of feathering at any scale.
func FillCoverage(d, aa float32) float32 {
	return clamp01(0.5 - d/(aa+AAEpsilon))
}

// InsetRingCoverage returns the coverage of a ring given the distance to the
// outer shape and the distance to the inset inner shape.
func InsetRingCoverage(dOuter, dInner, aa float32) float32 {
	return math32.Max(FillCoverage(dOuter, aa)-FillCoverage(dInner, aa), 0)
}

// BandedCoverage returns the coverage of a stroke of the given width centered
// on the zero contour of d.
func BandedCoverage(d, strokeWidth, aa float32) float32 {
	return clamp01(0.5 - (math32.Abs(d)-strokeWidth*0.5)/(aa+AAEpsilon))
}

// InnerRadius returns the corner radius of a rounded border's inset shape.
// It is the only parameter this package clamps.
func InnerRadius(radius, strokeWidth float32) float32 {
	return math32.Max(radius-strokeWidth, 0)
}
