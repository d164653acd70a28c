// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/prim"
	"github.com/gogpu/prim/atlas"
	"github.com/gogpu/prim/internal/blend"
	"github.com/gogpu/prim/internal/parallel"
)

var (
	// ErrNilTarget is returned when rendering into a nil target.
	ErrNilTarget = errors.New("raster: nil target")

	// ErrUnsupportedFormat is returned for targets that are not RGBA8.
	ErrUnsupportedFormat = errors.New("raster: unsupported target format")

	// ErrViewportMismatch is returned when the frame viewport differs from
	// the target size.
	ErrViewportMismatch = errors.New("raster: frame viewport does not match target")
)

// Rasterizer is the CPU reference renderer. It expands every instance to
// its quad, evaluates the covered pixel centers with prim and composites
// the premultiplied result into the target.
//
// The target is split into tiles rendered in parallel; inside a tile,
// instances are composited in submission order, so the output does not
// depend on the worker count.
//
// A Rasterizer may be shared by several goroutines as long as they render
// into different targets.
type Rasterizer struct {
	opts options
	pool *parallel.WorkerPool
}

// New creates a Rasterizer. Call Close to stop its workers.
func New(opts ...Option) *Rasterizer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Rasterizer{
		opts: o,
		pool: parallel.NewWorkerPool(o.workers),
	}
	prim.Logger().Info("raster: rasterizer created",
		"workers", r.pool.Workers(), "tile", o.tileSize, "blend", o.mode)
	return r
}

// Close stops the worker goroutines. Rendering after Close still works but
// runs on the calling goroutine.
func (r *Rasterizer) Close() {
	r.pool.Close()
}

// Workers returns the number of rendering goroutines.
func (r *Rasterizer) Workers() int {
	return r.pool.Workers()
}

// Render draws instances into t using the atlas configured with WithAtlas.
func (r *Rasterizer) Render(t Target, f prim.Frame, instances []prim.Instance) error {
	return r.RenderBatch(t, f, r.opts.atlas, instances)
}

// RenderBatch draws instances into t sampling glyph quads from glyphs,
// which may be nil when the batch holds no glyphs. Mask and color atlases
// are drawn as separate batches.
//
// A zero frame viewport is taken from the target size.
func (r *Rasterizer) RenderBatch(t Target, f prim.Frame, glyphs *atlas.Atlas, instances []prim.Instance) error {
	if t == nil {
		return ErrNilTarget
	}
	if t.Format() != gputypes.TextureFormatRGBA8Unorm {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, t.Format())
	}
	w, h := t.Width(), t.Height()
	if f.Viewport == (prim.Viewport{}) {
		f.Viewport = prim.VP(w, h)
	} else if f.Viewport != prim.VP(w, h) {
		return fmt.Errorf("%w: viewport %vx%v, target %dx%d",
			ErrViewportMismatch, f.Viewport.Width, f.Viewport.Height, w, h)
	}
	if w == 0 || h == 0 || len(instances) == 0 {
		return nil
	}

	var sh prim.Shader
	if glyphs != nil {
		sh.Atlas = glyphs
		sh.GlyphMode = glyphs.Format().GlyphMode()
	}

	items, skippedGlyphs := cull(f, w, h, instances, glyphs != nil)
	if skippedGlyphs > 0 {
		prim.Logger().Warn("raster: glyph quads skipped, no atlas bound", "count", skippedGlyphs)
	}
	tiles := parallel.Tiles(w, h, r.opts.tileSize)
	prim.Logger().Debug("raster: frame",
		"instances", len(instances), "visible", len(items), "tiles", len(tiles),
		"mode", f.Mode, "width", w, "height", h)
	if len(items) == 0 {
		return nil
	}

	fn := blend.GetBlendFunc(r.opts.mode)
	skipEmpty := r.opts.mode != BlendSource && r.opts.mode != BlendClear
	pix, stride := t.Pixels(), t.Stride()

	r.pool.Run(len(tiles), func(i int) {
		tile := tiles[i]
		for _, it := range items {
			if !tile.Overlaps(it.x0, it.y0, it.x1, it.y1) {
				continue
			}
			x0, y0, x1, y1 := tile.Clip(it.x0, it.y0, it.x1, it.y1)
			for y := y0; y < y1; y++ {
				row := y * stride
				for x := x0; x < x1; x++ {
					s := f.SampleAt(x, y)
					if !it.inst.Rect.Contains(s.Pos) {
						continue
					}
					c := sh.Evaluate(it.inst, s)
					if skipEmpty && c == prim.Transparent {
						continue
					}
					sr, sg, sb, sa := c.Bytes()
					o := row + x*4
					pix[o], pix[o+1], pix[o+2], pix[o+3] = fn(sr, sg, sb, sa, pix[o], pix[o+1], pix[o+2], pix[o+3])
				}
			}
		}
	})
	return nil
}

// item is an instance with its clipped pixel bounds, [x0, x1) × [y0, y1).
type item struct {
	inst           prim.Instance
	x0, y0, x1, y1 int
}

// cull drops instances that cannot touch the framebuffer and computes the
// pixel box of the rest, one pixel wider than the quad on every side.
func cull(f prim.Frame, w, h int, instances []prim.Instance, haveAtlas bool) (items []item, skippedGlyphs int) {
	items = make([]item, 0, len(instances))
	for _, inst := range instances {
		if inst.Kind == prim.KindGlyph && !haveAtlas {
			skippedGlyphs++
			continue
		}
		// Zero-area quads rasterize no fragments.
		if inst.Rect.IsEmpty() {
			continue
		}
		lo, hi := f.PixelBounds(inst.Rect)
		// Also rejects NaN bounds.
		if !(lo.X <= hi.X && lo.Y <= hi.Y) {
			continue
		}
		x0 := clampCoord(math32.Floor(lo.X)-1, w)
		y0 := clampCoord(math32.Floor(lo.Y)-1, h)
		x1 := clampCoord(math32.Ceil(hi.X)+1, w)
		y1 := clampCoord(math32.Ceil(hi.Y)+1, h)
		if x0 >= x1 || y0 >= y1 {
			continue
		}
		items = append(items, item{inst: inst, x0: x0, y0: y0, x1: x1, y1: y1})
	}
	return items, skippedGlyphs
}

func clampCoord(v float32, limit int) int {
	if v <= 0 {
		return 0
	}
	if v >= float32(limit) {
		return limit
	}
	return int(v)
}
