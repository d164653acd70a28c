// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/prim"
	"github.com/gogpu/prim/atlas"
	"github.com/gogpu/wgpu/hal"
)

// Errors returned by Renderer.
var (
	// ErrNoHAL is returned when the device provider does not expose its
	// hal.Device and hal.Queue.
	ErrNoHAL = errors.New("gpu: provider does not expose HAL types")

	// ErrClosed is returned by Render after Close.
	ErrClosed = errors.New("gpu: renderer is closed")

	// ErrNilView is returned when Render has no color attachment.
	ErrNilView = errors.New("gpu: nil target view")

	// ErrEmptyViewport is returned when the frame viewport has no area.
	ErrEmptyViewport = errors.New("gpu: frame viewport is empty")
)

// halProvider is implemented by device providers that expose their HAL
// objects, e.g. the gogpu application context.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// Renderer draws primitive instances into a texture view. It owns one
// render pipeline per Pipeline value, created on first use, and a GPU
// mirror of the bound glyph atlas.
//
// Renderer is safe for concurrent use; frames are serialized.
type Renderer struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue
	opts   options
	format gputypes.TextureFormat

	uniformLayout hal.BindGroupLayout // binding 0
	glyphLayout   hal.BindGroupLayout // bindings 0..2
	shapePipe     hal.PipelineLayout
	glyphPipe     hal.PipelineLayout

	shaders   [pipelineCount]hal.ShaderModule
	pipelines [pipelineCount]hal.RenderPipeline

	atlas *atlas.Atlas
	tex   atlasTexture

	vertices []byte
	closed   bool
}

// atlasTexture is the GPU mirror of an atlas.Atlas.
type atlasTexture struct {
	source     *atlas.Atlas
	texture    hal.Texture
	view       hal.TextureView
	sampler    hal.Sampler
	width      int
	height     int
	format     atlas.Format
	filter     atlas.Filter
	generation uint64
	uploads    int
}

// NewRenderer creates a renderer on the provider's device. The provider
// must expose HalDevice() any and HalQueue() any returning hal.Device and
// hal.Queue.
//
// The target format is taken from WithTargetFormat, then from the
// provider's surface format, then DefaultTargetFormat.
func NewRenderer(provider gpucontext.DeviceProvider, opts ...Option) (*Renderer, error) {
	if provider == nil {
		return nil, ErrNoHAL
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHAL
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("gpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("gpu: provider HalQueue is not hal.Queue")
	}
	return NewRendererWithHAL(device, queue, withProviderFormat(provider, opts)...)
}

// withProviderFormat prepends the provider's surface format so an explicit
// WithTargetFormat still wins.
func withProviderFormat(provider gpucontext.DeviceProvider, opts []Option) []Option {
	f := provider.SurfaceFormat()
	if f == gputypes.TextureFormatUndefined {
		return opts
	}
	return append([]Option{WithTargetFormat(f)}, opts...)
}

// NewRendererWithHAL creates a renderer on an existing device and queue.
func NewRendererWithHAL(device hal.Device, queue hal.Queue, opts ...Option) (*Renderer, error) {
	if device == nil || queue == nil {
		return nil, ErrNoHAL
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.format == gputypes.TextureFormatUndefined {
		o.format = DefaultTargetFormat
	}

	r := &Renderer{
		device: device,
		queue:  queue,
		opts:   o,
		format: o.format,
	}
	if err := r.createLayouts(); err != nil {
		r.destroy()
		return nil, err
	}
	prim.Logger().Info("gpu: renderer created", "format", r.format, "spirv", o.spirv)
	return r, nil
}

// Format returns the color attachment format of the pipelines.
func (r *Renderer) Format() gputypes.TextureFormat {
	return r.format
}

// SetAtlas binds the glyph atlas used by subsequent frames. The texture is
// uploaded lazily, and again whenever the atlas generation changes. A nil
// atlas unbinds; glyph instances are then skipped.
func (r *Renderer) SetAtlas(a *atlas.Atlas) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	r.atlas = a
	return nil
}

// Render draws instances into view in submission order, loading the
// existing contents of the attachment. Positions are interpreted per the
// frame's coordinate mode; the frame viewport must match the view size.
func (r *Renderer) Render(view hal.TextureView, f prim.Frame, instances []prim.Instance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if view == nil {
		return ErrNilView
	}
	if f.Viewport.Width <= 0 || f.Viewport.Height <= 0 {
		return ErrEmptyViewport
	}

	instances = r.drawable(instances)
	if len(instances) == 0 {
		return nil
	}

	mode := prim.GlyphMask
	if r.atlas != nil {
		mode = r.atlas.Format().GlyphMode()
	}
	batches := Batches(instances, mode)

	glyphs := false
	for _, b := range batches {
		if err := r.ensurePipeline(b.Pipeline); err != nil {
			return err
		}
		glyphs = glyphs || b.Pipeline.UsesAtlas()
	}
	if glyphs {
		if err := r.syncAtlas(); err != nil {
			return err
		}
	}

	r.vertices = PackVertices(r.vertices[:0], instances, r.format.IsSrgb())
	prim.Logger().Debug("gpu: frame",
		"instances", len(instances), "batches", len(batches),
		"viewport", fmt.Sprintf("%gx%g", f.Viewport.Width, f.Viewport.Height), "mode", f.Mode)

	return r.draw(view, f, batches, glyphs)
}

// drawable drops glyph instances when no atlas is bound.
func (r *Renderer) drawable(instances []prim.Instance) []prim.Instance {
	if r.atlas != nil {
		return instances
	}
	kept := instances[:0:0]
	skipped := 0
	for _, inst := range instances {
		if inst.Kind == prim.KindGlyph {
			skipped++
			continue
		}
		kept = append(kept, inst)
	}
	if skipped == 0 {
		return instances
	}
	prim.Logger().Warn("gpu: glyph quads skipped, no atlas bound", "count", skipped)
	return kept
}

// draw creates the per-frame resources, encodes one render pass and waits
// for the GPU to finish with them.
func (r *Renderer) draw(view hal.TextureView, f prim.Frame, batches []Batch, glyphs bool) error {
	label := r.opts.label

	vertBuf, err := r.createAndUploadBuffer(label+"_vertices", r.vertices,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return err
	}
	defer r.device.DestroyBuffer(vertBuf)

	uniformBuf, err := r.createAndUploadBuffer(label+"_uniform", makeUniform(f),
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return err
	}
	defer r.device.DestroyBuffer(uniformBuf)

	uniformEntry := gputypes.BindGroupEntry{
		Binding: 0,
		Resource: gputypes.BufferBinding{
			Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: UniformSize,
		},
	}
	shapeGroup, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:   label + "_shape_bind",
		Layout:  r.uniformLayout,
		Entries: []gputypes.BindGroupEntry{uniformEntry},
	})
	if err != nil {
		return fmt.Errorf("gpu: create bind group: %w", err)
	}
	defer r.device.DestroyBindGroup(shapeGroup)

	var glyphGroup hal.BindGroup
	if glyphs {
		glyphGroup, err = r.device.CreateBindGroup(&hal.BindGroupDescriptor{
			Label:  label + "_glyph_bind",
			Layout: r.glyphLayout,
			Entries: []gputypes.BindGroupEntry{
				uniformEntry,
				{Binding: 1, Resource: gputypes.TextureViewBinding{TextureView: r.tex.view.NativeHandle()}},
				{Binding: 2, Resource: gputypes.SamplerBinding{Sampler: r.tex.sampler.NativeHandle()}},
			},
		})
		if err != nil {
			return fmt.Errorf("gpu: create glyph bind group: %w", err)
		}
		defer r.device.DestroyBindGroup(glyphGroup)
	}

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: label + "_encoder",
	})
	if err != nil {
		return fmt.Errorf("gpu: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding(label); err != nil {
		return fmt.Errorf("gpu: begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: label + "_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{
			{
				View:    view,
				LoadOp:  gputypes.LoadOpLoad,
				StoreOp: gputypes.StoreOpStore,
			},
		},
	})
	rp.SetVertexBuffer(0, vertBuf, 0)
	for _, b := range batches {
		rp.SetPipeline(r.pipelines[b.Pipeline])
		if b.Pipeline.UsesAtlas() {
			rp.SetBindGroup(0, glyphGroup, nil)
		} else {
			rp.SetBindGroup(0, shapeGroup, nil)
		}
		rp.Draw(b.VertexCount(), 1, b.FirstVertex(), 0)
	}
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("gpu: end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	if _, err := r.queue.Submit([]hal.CommandBuffer{cmdBuf}); err != nil {
		return fmt.Errorf("gpu: submit: %w", err)
	}
	// Per-frame buffers are destroyed on return.
	if err := r.device.WaitIdle(); err != nil {
		return fmt.Errorf("gpu: wait for GPU: %w", err)
	}
	return nil
}

// createLayouts creates the bind group and pipeline layouts shared by
// every pipeline.
func (r *Renderer) createLayouts() error {
	label := r.opts.label
	uniformEntry := gputypes.BindGroupLayoutEntry{
		Binding:    0,
		Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
		Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
	}

	uniformLayout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   label + "_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{uniformEntry},
	})
	if err != nil {
		return fmt.Errorf("gpu: create uniform layout: %w", err)
	}
	r.uniformLayout = uniformLayout

	// Bind group layout for glyphs:
	//   Binding 0: uniforms (vertex+fragment)
	//   Binding 1: atlas texture (fragment)
	//   Binding 2: sampler (fragment)
	glyphLayout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: label + "_glyph_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			uniformEntry,
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: create glyph layout: %w", err)
	}
	r.glyphLayout = glyphLayout

	shapePipe, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            label + "_shape_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{r.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("gpu: create shape pipeline layout: %w", err)
	}
	r.shapePipe = shapePipe

	glyphPipe, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            label + "_glyph_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{r.glyphLayout},
	})
	if err != nil {
		return fmt.Errorf("gpu: create glyph pipeline layout: %w", err)
	}
	r.glyphPipe = glyphPipe
	return nil
}

// ensurePipeline compiles the shader and creates the render pipeline for p
// if needed. Both glyph pipelines share one shader module.
func (r *Renderer) ensurePipeline(p Pipeline) error {
	if r.pipelines[p] != nil {
		return nil
	}
	module, err := r.ensureShader(p)
	if err != nil {
		return err
	}

	layout := r.shapePipe
	if p.UsesAtlas() {
		layout = r.glyphPipe
	}
	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  r.opts.label + "_" + p.String() + "_pipeline",
		Layout: layout,
		Vertex: hal.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers:    VertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     module,
			EntryPoint: p.FragmentEntryPoint(),
			Targets: []gputypes.ColorTargetState{
				{
					Format:    r.format,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: create %s pipeline: %w", p, err)
	}
	r.pipelines[p] = pipeline
	prim.Logger().Info("gpu: pipeline created", "pipeline", p)
	return nil
}

// ensureShader returns the shader module serving p.
func (r *Renderer) ensureShader(p Pipeline) (hal.ShaderModule, error) {
	slot := p
	if p == PipelineGlyphColor {
		slot = PipelineGlyphMask
	}
	if r.shaders[slot] != nil {
		return r.shaders[slot], nil
	}
	src, err := shaderModuleSource(p, r.opts.spirv)
	if err != nil {
		return nil, err
	}
	module, err := r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  r.opts.label + "_" + slot.String() + "_shader",
		Source: src,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create %s shader module: %w", p, err)
	}
	r.shaders[slot] = module
	return module, nil
}

// syncAtlas brings the GPU atlas mirror up to date with the bound atlas.
func (r *Renderer) syncAtlas() error {
	a := r.atlas
	t := &r.tex
	if t.texture != nil && (t.width != a.Width() || t.height != a.Height() || t.format != a.Format()) {
		r.destroyAtlasTexture()
	}
	if t.texture == nil {
		if err := r.createAtlasTexture(a); err != nil {
			return err
		}
	} else if t.source == a && t.generation == a.Generation() {
		return nil
	}
	if t.sampler == nil || t.filter != a.Filter() {
		if err := r.createSampler(a.Filter()); err != nil {
			return err
		}
	}

	gen := a.Generation()
	pix, stride := a.Pixels()
	w, h := uint32(a.Width()), uint32(a.Height()) //nolint:gosec // atlas sizes fit uint32
	err := r.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: t.texture, MipLevel: 0},
		pix,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(stride), //nolint:gosec // stride fits uint32
			RowsPerImage: h,
		},
		&hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	)
	if err != nil {
		return fmt.Errorf("gpu: upload atlas: %w", err)
	}
	t.source = a
	t.generation = gen
	t.uploads++
	prim.Logger().Debug("gpu: atlas uploaded", "label", a.Label(), "generation", gen)
	return nil
}

func (r *Renderer) createAtlasTexture(a *atlas.Atlas) error {
	format := a.Format().TextureFormat()
	w, h := uint32(a.Width()), uint32(a.Height()) //nolint:gosec // atlas sizes fit uint32
	label := r.opts.label + "_atlas"

	tex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("gpu: create atlas texture: %w", err)
	}
	view, err := r.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         label + "_view",
		Format:        format,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		r.device.DestroyTexture(tex)
		return fmt.Errorf("gpu: create atlas texture view: %w", err)
	}

	r.tex.texture = tex
	r.tex.view = view
	r.tex.width = a.Width()
	r.tex.height = a.Height()
	r.tex.format = a.Format()
	return nil
}

func (r *Renderer) createSampler(filter atlas.Filter) error {
	mode := gputypes.FilterModeLinear
	if filter == atlas.FilterNearest {
		mode = gputypes.FilterModeNearest
	}
	sampler, err := r.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        r.opts.label + "_atlas_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    mode,
		MinFilter:    mode,
		MipmapFilter: mode,
	})
	if err != nil {
		return fmt.Errorf("gpu: create atlas sampler: %w", err)
	}
	if r.tex.sampler != nil {
		r.device.DestroySampler(r.tex.sampler)
	}
	r.tex.sampler = sampler
	r.tex.filter = filter
	return nil
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
func (r *Renderer) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create %s: %w", label, err)
	}
	if err := r.queue.WriteBuffer(buf, 0, data); err != nil {
		r.device.DestroyBuffer(buf)
		return nil, fmt.Errorf("gpu: write %s: %w", label, err)
	}
	return buf, nil
}

// Close releases every GPU resource held by the renderer. The device and
// queue belong to the provider and are left alone. Safe to call multiple
// times.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.destroy()
	r.closed = true
}

func (r *Renderer) destroyAtlasTexture() {
	if r.tex.view != nil {
		r.device.DestroyTextureView(r.tex.view)
		r.tex.view = nil
	}
	if r.tex.texture != nil {
		r.device.DestroyTexture(r.tex.texture)
		r.tex.texture = nil
	}
	r.tex.source = nil
	r.tex.generation = 0
}

// destroy releases resources in reverse creation order.
func (r *Renderer) destroy() {
	r.destroyAtlasTexture()
	if r.tex.sampler != nil {
		r.device.DestroySampler(r.tex.sampler)
		r.tex.sampler = nil
	}
	for i := range r.pipelines {
		if r.pipelines[i] != nil {
			r.device.DestroyRenderPipeline(r.pipelines[i])
			r.pipelines[i] = nil
		}
	}
	for i := range r.shaders {
		if r.shaders[i] != nil {
			r.device.DestroyShaderModule(r.shaders[i])
			r.shaders[i] = nil
		}
	}
	if r.glyphPipe != nil {
		r.device.DestroyPipelineLayout(r.glyphPipe)
		r.glyphPipe = nil
	}
	if r.shapePipe != nil {
		r.device.DestroyPipelineLayout(r.shapePipe)
		r.shapePipe = nil
	}
	if r.glyphLayout != nil {
		r.device.DestroyBindGroupLayout(r.glyphLayout)
		r.glyphLayout = nil
	}
	if r.uniformLayout != nil {
		r.device.DestroyBindGroupLayout(r.uniformLayout)
		r.uniformLayout = nil
	}
	r.atlas = nil
	r.vertices = nil
}
