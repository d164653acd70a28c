// Package prim evaluates the per-sample appearance of 2D UI primitives:
// rectangles, rounded rectangles, rounded borders, ellipses, ellipse and
// rounded-rectangle strokes, and textured glyph quads.
//
// # Overview
//
// Every primitive is described by an Instance: a bounding rectangle plus a
// handful of kind-specific attributes. Expand turns an instance into the six
// vertices of its bounding quad; Evaluate returns the premultiplied color the
// primitive contributes at one sample of that quad. The math is identical for
// the CPU rasterizer (package raster) and the WGSL shaders (package gpu).
//
// # Quick Start
//
//	frame := prim.Frame{Viewport: prim.VP(320, 200), Mode: prim.PixelSpace}
//	inst := prim.RoundedRectangle(prim.R(20, 20, 120, 60), 12).
//	    WithBrush(prim.LinearGradient(prim.Red, prim.Blue, prim.V2(0, 0), prim.V2(1, 0)))
//
//	c := prim.Evaluate(inst, frame.SampleAt(80, 50))
//
// # Shapes
//
// Fills use signed distance fields: RoundedBoxDistance for rectangles and
// EllipseDistance for ellipses. Coverage is derived from the distance and
// the screen-space derivative carried by Sample, giving about one sample of
// anti-aliasing at any scale.
//
// Strokes come in two flavors (see StrokeStrategy). Rounded borders
// subtract an inset shape from the outer one; ellipse and rounded-rectangle
// strokes band a single distance field around its contour.
//
// # Coordinate System
//
// A Frame carries the viewport and the calling convention:
//   - PixelSpace: origin at top-left, Y down, units are pixels
//   - NDCSpace: attributes already in [-1,1]², Y up
//
// Viewport.InstanceToNDC converts between the two so a scene renders the
// same either way.
//
// # Colors
//
// Instance colors are straight-alpha sRGB values in [0,1]. Evaluate returns
// premultiplied colors; the gpu package converts to linear light before
// upload (RGBA.ToLinear).
package prim
