// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"github.com/gogpu/prim/atlas"
	"github.com/gogpu/prim/internal/blend"
	"github.com/gogpu/prim/internal/parallel"
)

// BlendMode is the Porter-Duff operator used to composite samples into the
// target.
type BlendMode = blend.BlendMode

// Supported blend modes.
const (
	BlendClear           = blend.BlendClear
	BlendSource          = blend.BlendSource
	BlendDestination     = blend.BlendDestination
	BlendSourceOver      = blend.BlendSourceOver
	BlendDestinationOver = blend.BlendDestinationOver
	BlendDestinationOut  = blend.BlendDestinationOut
	BlendXor             = blend.BlendXor
	BlendPlus            = blend.BlendPlus
)

// ParseBlendMode looks up a blend mode by name ("source-over", "plus", ...).
func ParseBlendMode(name string) (BlendMode, error) {
	return blend.ParseBlendMode(name)
}

// Option configures a Rasterizer during creation.
//
// Example:
//
//	r := raster.New(raster.WithWorkers(4), raster.WithAtlas(glyphs))
//	defer r.Close()
type Option func(*options)

type options struct {
	workers  int
	tileSize int
	mode     BlendMode
	atlas    *atlas.Atlas
}

func defaultOptions() options {
	return options{
		workers:  0,
		tileSize: parallel.DefaultTileSize,
		mode:     BlendSourceOver,
	}
}

// WithWorkers sets the number of rendering goroutines. Zero or a negative
// value selects GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithTileSize sets the edge length of the square tiles rendered in
// parallel. Non-positive values select the default of 64 pixels.
func WithTileSize(size int) Option {
	return func(o *options) {
		if size <= 0 {
			size = parallel.DefaultTileSize
		}
		o.tileSize = size
	}
}

// WithBlendMode sets the compositing operator. The default is source-over.
func WithBlendMode(mode BlendMode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithAtlas binds the glyph atlas used by Render. Its format selects the
// glyph sampling mode.
func WithAtlas(a *atlas.Atlas) Option {
	return func(o *options) {
		o.atlas = a
	}
}
