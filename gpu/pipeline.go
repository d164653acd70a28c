// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"fmt"

	"github.com/gogpu/prim"
)

// Pipeline identifies one of the render pipelines a Renderer owns. Each
// pipeline serves a family of primitive kinds.
type Pipeline uint8

const (
	// PipelineRect draws rectangles, rounded rectangles, rounded borders
	// and rounded-rect strokes.
	PipelineRect Pipeline = iota

	// PipelineEllipse draws filled and stroked ellipses.
	PipelineEllipse

	// PipelineGlyphMask draws glyph quads over a coverage-mask atlas.
	PipelineGlyphMask

	// PipelineGlyphColor draws glyph quads over a premultiplied RGBA atlas.
	PipelineGlyphColor

	pipelineCount
)

var pipelineNames = [pipelineCount]string{
	PipelineRect:       "rect",
	PipelineEllipse:    "ellipse",
	PipelineGlyphMask:  "glyph_mask",
	PipelineGlyphColor: "glyph_color",
}

// String returns the pipeline name, also used in GPU debug labels.
func (p Pipeline) String() string {
	if p < pipelineCount {
		return pipelineNames[p]
	}
	return fmt.Sprintf("Pipeline(%d)", uint8(p))
}

// UsesAtlas reports whether the pipeline binds the glyph atlas.
func (p Pipeline) UsesAtlas() bool {
	return p == PipelineGlyphMask || p == PipelineGlyphColor
}

// FragmentEntryPoint returns the WGSL fragment entry point of the pipeline.
func (p Pipeline) FragmentEntryPoint() string {
	switch p {
	case PipelineGlyphMask:
		return "fs_mask"
	case PipelineGlyphColor:
		return "fs_color"
	default:
		return "fs_main"
	}
}

// PipelineFor returns the pipeline that draws instances of kind k. The
// glyph mode picks between the two glyph pipelines and is ignored for
// shape kinds.
func PipelineFor(k prim.Kind, mode prim.GlyphMode) Pipeline {
	switch k {
	case prim.KindEllipse, prim.KindEllipseStroke:
		return PipelineEllipse
	case prim.KindGlyph:
		if mode == prim.GlyphColor {
			return PipelineGlyphColor
		}
		return PipelineGlyphMask
	default:
		return PipelineRect
	}
}
