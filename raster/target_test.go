// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/prim"
)

func TestPixmapTarget(t *testing.T) {
	target := NewPixmapTarget(40, 30)

	if target.Width() != 40 || target.Height() != 30 {
		t.Errorf("size = %dx%d, want 40x30", target.Width(), target.Height())
	}
	if target.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v", target.Format())
	}
	if target.Stride() != 160 || len(target.Pixels()) != 40*30*4 {
		t.Errorf("stride %d, %d bytes", target.Stride(), len(target.Pixels()))
	}
	if target.Viewport() != prim.VP(40, 30) {
		t.Errorf("Viewport() = %v", target.Viewport())
	}
}

func TestPixmapTargetClearPremultiplies(t *testing.T) {
	target := NewPixmapTarget(4, 4)
	target.Clear(prim.RGBA{R: 1, A: 0.5})

	c := target.Image().RGBAAt(2, 3)
	if c.R != 128 || c.G != 0 || c.B != 0 || c.A != 128 {
		t.Errorf("cleared pixel = %v, want premultiplied {128 0 0 128}", c)
	}
	got := target.At(2, 3)
	if got.A < 0.5 || got.A > 0.51 {
		t.Errorf("At(2,3) = %+v", got)
	}
	if target.At(-1, 0) != prim.Transparent {
		t.Error("At outside bounds should be transparent")
	}
}

func TestPixmapTargetFromImageAndResize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	target := NewPixmapTargetFromImage(img)
	if target.Image() != img {
		t.Error("NewPixmapTargetFromImage should not copy")
	}
	target.Resize(16, 2)
	if target.Width() != 16 || target.Height() != 2 {
		t.Errorf("after Resize size = %dx%d", target.Width(), target.Height())
	}
}
