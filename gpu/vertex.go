// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/prim"
)

// VertexStride is the byte stride per vertex shared by every pipeline.
// Layout per vertex:
//
//	position (vec2<f32>) = 8 bytes  (location 0)
//	corner   (vec2<f32>) = 8 bytes  (location 1)
//	rect     (vec4<f32>) = 16 bytes (location 2)  x, y, w, h
//	params   (vec4<f32>) = 16 bytes (location 3)  kind, radius, stroke, brush
//	color0   (vec4<f32>) = 16 bytes (location 4)  brush color 0 or glyph tint
//	color1   (vec4<f32>) = 16 bytes (location 5)
//	gradient (vec4<f32>) = 16 bytes (location 6)  start.xy, end.xy
//	uv       (vec4<f32>) = 16 bytes (location 7)  u0, v0, u1, v1
//
// Total = 112 bytes per vertex.
const VertexStride = 112

// UniformSize is the byte size of the per-frame uniform buffer.
// Layout: viewport (vec2<f32>) + mode (f32) + padding (f32) = 16 bytes.
const UniformSize = 16

// VertexLayout returns the vertex buffer layout shared by every pipeline.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},   // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},   // corner
				{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2},  // rect
				{Format: gputypes.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 3},  // params
				{Format: gputypes.VertexFormatFloat32x4, Offset: 48, ShaderLocation: 4},  // color0
				{Format: gputypes.VertexFormatFloat32x4, Offset: 64, ShaderLocation: 5},  // color1
				{Format: gputypes.VertexFormatFloat32x4, Offset: 80, ShaderLocation: 6},  // gradient
				{Format: gputypes.VertexFormatFloat32x4, Offset: 96, ShaderLocation: 7},  // uv
			},
		},
	}
}

// PackVertices appends the six expanded vertices of every instance to dst
// and returns the extended slice. With linear set, colors are converted
// from sRGB to linear light for render targets that encode on store.
func PackVertices(dst []byte, instances []prim.Instance, linear bool) []byte {
	need := len(instances) * prim.QuadVertexCount * VertexStride
	if cap(dst)-len(dst) < need {
		grown := make([]byte, len(dst), len(dst)+need)
		copy(grown, dst)
		dst = grown
	}
	for i := range instances {
		inst := instances[i]
		if linear {
			inst = linearColors(inst)
		}
		for _, v := range prim.Expand(inst) {
			off := len(dst)
			dst = dst[:off+VertexStride]
			writeVertex(dst[off:], &v)
		}
	}
	return dst
}

// linearColors returns inst with its brush colors and tint in linear light.
func linearColors(inst prim.Instance) prim.Instance {
	inst.Brush.Color0 = inst.Brush.Color0.ToLinear()
	inst.Brush.Color1 = inst.Brush.Color1.ToLinear()
	inst.Tint = inst.Tint.ToLinear()
	return inst
}

// writeVertex writes a single vertex into buf.
func writeVertex(buf []byte, v *prim.Vertex) {
	inst := &v.Instance
	c0 := inst.Brush.Color0
	if inst.Kind == prim.KindGlyph {
		c0 = inst.Tint
	}
	c1 := inst.Brush.Color1

	fields := [VertexStride / 4]float32{
		v.Position.X, v.Position.Y,
		v.Corner.X, v.Corner.Y,
		inst.Rect.X, inst.Rect.Y, inst.Rect.W, inst.Rect.H,
		float32(inst.Kind), inst.Radius, inst.StrokeWidth, float32(inst.Brush.Type),
		c0.R, c0.G, c0.B, c0.A,
		c1.R, c1.G, c1.B, c1.A,
		inst.Brush.Start.X, inst.Brush.Start.Y, inst.Brush.End.X, inst.Brush.End.Y,
		inst.UV.U0, inst.UV.V0, inst.UV.U1, inst.UV.V1,
	}
	for i, f := range fields {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
}

// makeUniform creates the 16-byte uniform buffer for frame f.
func makeUniform(f prim.Frame) []byte {
	buf := make([]byte, UniformSize)
	mode := float32(0)
	if f.Mode == prim.NDCSpace {
		mode = 1
	}
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(f.Viewport.Width))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(f.Viewport.Height))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(mode))
	// Padding bytes 12..15 remain zero.
	return buf
}
