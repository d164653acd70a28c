// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster renders prim instances on the CPU.
//
// It is the reference for the GPU path: the same prim.Evaluate runs for the
// center of every pixel each instance quad covers, and the premultiplied
// result is composited into an 8-bit RGBA target with a Porter-Duff
// operator.
//
// Example:
//
//	r := raster.New(raster.WithWorkers(4))
//	defer r.Close()
//
//	target := raster.NewPixmapTarget(320, 200)
//	frame := prim.Frame{Viewport: target.Viewport(), Mode: prim.PixelSpace}
//	err := r.Render(target, frame, []prim.Instance{
//	    prim.RoundedRectangle(prim.R(20, 20, 120, 60), 12).WithColor(prim.Red),
//	})
package raster
