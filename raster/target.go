// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/prim"
)

// Target is a CPU-accessible framebuffer the rasterizer writes into.
//
// Pixels hold 8-bit premultiplied RGBA in row-major order, the layout of
// image.RGBA. Format reports gputypes.TextureFormatRGBA8Unorm for such
// targets; the rasterizer rejects other formats.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// Pixels returns direct access to pixel data.
	Pixels() []byte

	// Stride returns the number of bytes per row.
	Stride() int
}

// PixmapTarget is a Target backed by *image.RGBA.
//
// Example:
//
//	target := raster.NewPixmapTarget(800, 600)
//	err := r.Render(target, frame, instances)
//	png.Encode(f, target.Image())
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a transparent target of the given size.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewPixmapTargetFromImage wraps an existing *image.RGBA without copying.
// The image bounds must start at the origin.
func NewPixmapTargetFromImage(img *image.RGBA) *PixmapTarget {
	return &PixmapTarget{img: img}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Format returns gputypes.TextureFormatRGBA8Unorm.
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns direct access to the pixel data.
func (t *PixmapTarget) Pixels() []byte {
	return t.img.Pix
}

// Stride returns the number of bytes per row.
func (t *PixmapTarget) Stride() int {
	return t.img.Stride
}

// Image returns the underlying image. It shares memory with the target.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.img
}

// Viewport returns the target size as a prim.Viewport.
func (t *PixmapTarget) Viewport() prim.Viewport {
	return prim.VP(t.Width(), t.Height())
}

// Clear fills the target with a straight-alpha color.
func (t *PixmapTarget) Clear(c prim.RGBA) {
	r, g, b, a := c.Premultiply().Bytes()
	pix := t.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
	}
}

// At returns the premultiplied color of pixel (x, y) as floats.
// Out-of-range coordinates return transparent.
func (t *PixmapTarget) At(x, y int) prim.RGBA {
	if !(image.Point{X: x, Y: y}).In(t.img.Bounds()) {
		return prim.Transparent
	}
	c := t.img.RGBAAt(x, y)
	return prim.RGBA{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// Resize replaces the pixels with a transparent image of the new size.
func (t *PixmapTarget) Resize(width, height int) {
	t.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

var _ Target = (*PixmapTarget)(nil)
