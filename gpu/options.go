// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import "github.com/gogpu/gputypes"

// DefaultTargetFormat is the color format pipelines render to when neither
// an option nor the provider names one.
const DefaultTargetFormat = gputypes.TextureFormatBGRA8UnormSrgb

// Option configures a Renderer.
type Option func(*options)

type options struct {
	format gputypes.TextureFormat
	spirv  bool
	label  string
}

func defaultOptions() options {
	return options{label: "prim"}
}

// WithTargetFormat sets the color attachment format of the pipelines.
// sRGB formats receive linear colors; other formats receive sRGB colors
// unchanged.
func WithTargetFormat(f gputypes.TextureFormat) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithSPIRV makes the renderer compile shaders to SPIR-V with naga before
// creating shader modules, for backends that do not accept WGSL.
func WithSPIRV(enabled bool) Option {
	return func(o *options) {
		o.spirv = enabled
	}
}

// WithLabel sets the prefix of every GPU debug label.
func WithLabel(label string) Option {
	return func(o *options) {
		if label != "" {
			o.label = label
		}
	}
}
