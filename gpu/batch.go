// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import "github.com/gogpu/prim"

// Batch is a run of consecutive instances drawn with one pipeline.
// First and Count index instances, not vertices.
type Batch struct {
	Pipeline Pipeline
	First    int
	Count    int
}

// FirstVertex returns the index of the batch's first vertex.
func (b Batch) FirstVertex() uint32 {
	return uint32(b.First * prim.QuadVertexCount) //nolint:gosec // instance counts fit uint32
}

// VertexCount returns the number of vertices the batch draws.
func (b Batch) VertexCount() uint32 {
	return uint32(b.Count * prim.QuadVertexCount) //nolint:gosec // instance counts fit uint32
}

// Batches splits instances into runs sharing a pipeline. Runs are never
// reordered or merged across a pipeline change, so drawing them in order
// paints later instances on top of earlier ones.
func Batches(instances []prim.Instance, mode prim.GlyphMode) []Batch {
	var out []Batch
	for i := range instances {
		p := PipelineFor(instances[i].Kind, mode)
		if n := len(out); n > 0 && out[n-1].Pipeline == p {
			out[n-1].Count++
			continue
		}
		out = append(out, Batch{Pipeline: p, First: i, Count: 1})
	}
	return out
}
