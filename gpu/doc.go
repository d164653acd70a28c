// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu draws primitive instances with wgpu/hal render pipelines.
//
// Every instance is expanded into six vertices that broadcast its
// attributes (see prim.Expand); the fragment shaders evaluate the same
// distance functions and coverage rules as the CPU evaluator in package
// prim, so both paths agree on edges, strokes and gradients.
//
// Instances are grouped into batches of consecutive instances sharing a
// pipeline. Batches are drawn in submission order, which keeps later
// instances on top of earlier ones.
//
// The package does not create a device. A Renderer receives one from the
// host application through a gpucontext.DeviceProvider:
//
//	r, err := gpu.NewRenderer(provider)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	if err := r.SetAtlas(glyphs); err != nil {
//	    return err
//	}
//	err = r.Render(view, prim.Frame{Viewport: prim.VP(w, h)}, instances)
package gpu
