// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	_ "embed"
	"encoding/binary"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/common.wgsl
var commonShaderSource string

//go:embed shaders/rect.wgsl
var rectShaderSource string

//go:embed shaders/ellipse.wgsl
var ellipseShaderSource string

//go:embed shaders/glyph.wgsl
var glyphShaderSource string

// ShaderSource returns the complete WGSL module of the pipeline: the shared
// vertex stage followed by the family's fragment stage.
func ShaderSource(p Pipeline) string {
	var family string
	switch p {
	case PipelineRect:
		family = rectShaderSource
	case PipelineEllipse:
		family = ellipseShaderSource
	case PipelineGlyphMask, PipelineGlyphColor:
		family = glyphShaderSource
	default:
		return ""
	}
	return commonShaderSource + "\n" + family
}

// CompileSPIRV translates the pipeline's WGSL module to SPIR-V with naga.
func CompileSPIRV(p Pipeline) ([]byte, error) {
	src := ShaderSource(p)
	if src == "" {
		return nil, fmt.Errorf("gpu: no shader for %s", p)
	}
	spirv, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile %s shader: %w", p, err)
	}
	return spirv, nil
}

// shaderModuleSource returns the hal source for the pipeline, compiled
// ahead of time to SPIR-V when spirv is set.
func shaderModuleSource(p Pipeline, spirv bool) (hal.ShaderSource, error) {
	if !spirv {
		src := ShaderSource(p)
		if src == "" {
			return hal.ShaderSource{}, fmt.Errorf("gpu: no shader for %s", p)
		}
		return hal.ShaderSource{WGSL: src}, nil
	}
	code, err := CompileSPIRV(p)
	if err != nil {
		return hal.ShaderSource{}, err
	}
	words, err := spirvWords(code)
	if err != nil {
		return hal.ShaderSource{}, fmt.Errorf("gpu: %s shader: %w", p, err)
	}
	return hal.ShaderSource{SPIRV: words}, nil
}

// spirvWords reinterprets a little-endian SPIR-V byte stream as words.
func spirvWords(code []byte) ([]uint32, error) {
	if len(code)%4 != 0 {
		return nil, fmt.Errorf("spir-v length %d is not a multiple of 4", len(code))
	}
	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(code[i*4:])
	}
	return words, nil
}
