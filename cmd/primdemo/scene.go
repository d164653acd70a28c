package main

import (
	"image"
	"image/color"

	"github.com/gogpu/prim"
	"github.com/gogpu/prim/atlas"
)

// buildScene lays out one instance of every primitive kind on a 3×2 grid
// scaled to the frame, plus a row of glyphs sampled from glyphs.
func buildScene(width, height int, glyphs *atlas.Atlas) ([]prim.Instance, error) {
	w, h := float32(width), float32(height)
	cellW, cellH := w/3, h*0.4
	pad := min(cellW, cellH) * 0.1
	cell := func(col, row int) prim.Rect {
		return prim.R(float32(col)*cellW+pad, float32(row)*cellH+pad, cellW-2*pad, cellH-2*pad)
	}
	radius := min(cellW, cellH) * 0.15
	stroke := max(min(cellW, cellH)*0.04, 1)

	instances := []prim.Instance{
		prim.Rectangle(prim.R(0, 0, w, h)).WithBrush(
			prim.LinearGradient(prim.Hex("#1b2735"), prim.Hex("#090a0f"), prim.V2(0, 0), prim.V2(0, 1))),

		prim.Rectangle(cell(0, 0)).WithColor(prim.Hex("#e63946")),
		prim.RoundedRectangle(cell(1, 0), radius).WithBrush(
			prim.LinearGradient(prim.Hex("#f4a261"), prim.Hex("#e76f51"), prim.V2(0, 0), prim.V2(1, 1))),
		prim.RoundedBorder(cell(2, 0), radius, stroke).WithColor(prim.Hex("#2a9d8f")),

		prim.Ellipse(cell(0, 1)).WithBrush(
			prim.LinearGradient(prim.Hex("#8ecae6"), prim.Hex("#219ebc"), prim.V2(0, 0), prim.V2(1, 0))),
		prim.EllipseStroke(cell(1, 1), stroke).WithColor(prim.Hex("#ffb703")),
		prim.RoundedRectStroke(cell(2, 1).Inset(stroke/2), radius, stroke).WithColor(prim.Hex("#cdb4db")),
	}

	// Overlap a translucent ellipse across the first row.
	instances = append(instances,
		prim.Ellipse(prim.R(cellW*0.5, pad, cellW*2, cellH-2*pad)).WithColor(prim.RGBA{R: 1, G: 1, B: 1, A: 0.15}))

	glyphRow, err := glyphInstances(glyphs, prim.R(pad, 2*cellH+pad, w-2*pad, h-2*cellH-2*pad))
	if err != nil {
		return nil, err
	}
	return append(instances, glyphRow...), nil
}

// glyphInstances rasterizes synthetic glyph bitmaps into the atlas and
// returns one quad per glyph, laid out left to right inside area.
func glyphInstances(glyphs *atlas.Atlas, area prim.Rect) ([]prim.Instance, error) {
	const (
		count = 8
		src   = 12
	)
	size := min(area.W/count, area.H)
	if size < 1 {
		return nil, nil
	}
	texels := min(max(int(size), src), 64)

	tints := []prim.RGBA{
		prim.White, prim.Hex("#e63946"), prim.Hex("#f4a261"), prim.Hex("#2a9d8f"),
		prim.Hex("#8ecae6"), prim.Hex("#ffb703"), prim.Hex("#cdb4db"), prim.White,
	}
	out := make([]prim.Instance, 0, count)
	for i := range count {
		region, err := glyphs.Allocate(texels, texels)
		if err != nil {
			return nil, err
		}
		if err := glyphs.UploadScaled(region, syntheticGlyph(i, src)); err != nil {
			return nil, err
		}
		dst := prim.R(area.X+float32(i)*size, area.Y, size, size)
		out = append(out, glyphs.Glyph(dst, region, tints[i%len(tints)]))
	}
	return out, nil
}

// syntheticGlyph draws a small coverage bitmap: a ring whose thickness
// varies with variant, crossed by a bar.
func syntheticGlyph(variant, size int) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, size, size))
	c := float32(size) / 2
	outer := c - 1
	inner := outer - 1 - float32(variant%3)
	for y := range size {
		for x := range size {
			p := prim.V2(float32(x)+0.5, float32(y)+0.5)
			d := p.Sub(prim.V2(c, c)).Length()
			on := d <= outer && d >= inner
			if variant%2 == 1 && absf(p.Y-c) < 1 && d <= outer {
				on = true
			}
			if on {
				img.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	return img
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
