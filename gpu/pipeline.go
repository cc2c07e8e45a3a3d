// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

var (
	// ErrNilPipeline is returned when drawing with a nil pipeline.
	ErrNilPipeline = errors.New("rounded/gpu: pipeline is nil")

	// ErrNilSink is returned when drawing without a sink.
	ErrNilSink = errors.New("rounded/gpu: sink is nil")

	// ErrNoTextureGroup is returned when drawing without a group 1 bind group.
	ErrNoTextureGroup = errors.New("rounded/gpu: texture bind group is nil")
)

// viewportSetter is implemented by render passes that accept a viewport.
type viewportSetter interface {
	SetViewport(x, y, width, height, minDepth, maxDepth float32)
}

// Pipeline owns the shader, layouts, sampler and render pipeline used to
// draw rounded rectangles. Each draw covers one element; the element's
// geometry comes entirely from its uniform block.
//
// Bind groups:
//
//	group 0: uniform block (owned by Sink)
//	group 1: fill texture, outline texture, sampler (owned by the host)
type Pipeline struct {
	device hal.Device
	format gputypes.TextureFormat

	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	textureLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipeline      hal.RenderPipeline
	sampler       hal.Sampler

	logger *slog.Logger
}

// NewPipeline returns a pipeline targeting color attachments of format.
// The zero format selects BGRA8Unorm. GPU objects are created on first use.
func NewPipeline(device hal.Device, format gputypes.TextureFormat) *Pipeline {
	var undefined gputypes.TextureFormat
	if format == undefined {
		format = gputypes.TextureFormatBGRA8Unorm
	}
	return &Pipeline{device: device, format: format}
}

// SetLogger sets the logger for this pipeline only. nil silences it.
func (p *Pipeline) SetLogger(l *slog.Logger) { p.logger = l }

// Format returns the color attachment format.
func (p *Pipeline) Format() gputypes.TextureFormat { return p.format }

// TextureLayout returns the group 1 layout, creating the pipeline if needed.
// Hosts use it to build bind groups holding the fill and outline textures.
func (p *Pipeline) TextureLayout() (hal.BindGroupLayout, error) {
	if err := p.ensurePipeline(); err != nil {
		return nil, err
	}
	return p.textureLayout, nil
}

// Sampler returns the shared linear sampler, creating the pipeline if needed.
func (p *Pipeline) Sampler() (hal.Sampler, error) {
	if err := p.ensurePipeline(); err != nil {
		return nil, err
	}
	return p.sampler, nil
}

// ensurePipeline creates GPU objects on first call.
func (p *Pipeline) ensurePipeline() error {
	if p.pipeline != nil {
		return nil
	}
	if err := p.createPipeline(); err != nil {
		p.destroyPipeline()
		return err
	}
	logOrSilent(p.logger).Debug("rounded/gpu: pipeline created", "format", p.format)
	return nil
}

// createPipeline compiles the rounded shader and creates the render
// pipeline with premultiplied alpha blending.
func (p *Pipeline) createPipeline() error {
	if roundedShaderSource == "" {
		return fmt.Errorf("rounded shader source is empty")
	}

	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "rounded_shader",
		Source: hal.ShaderSource{WGSL: roundedShaderSource},
	})
	if err != nil {
		return fmt.Errorf("compile rounded shader: %w", err)
	}
	p.shader = shader

	uniformLayout, err := p.device.CreateBindGroupLayout(uniformLayoutDescriptor("rounded_uniform_layout"))
	if err != nil {
		return fmt.Errorf("create rounded uniform layout: %w", err)
	}
	p.uniformLayout = uniformLayout

	textureLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "rounded_texture_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			textureEntry(0),
			textureEntry(1),
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create rounded texture layout: %w", err)
	}
	p.textureLayout = textureLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "rounded_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.uniformLayout, p.textureLayout},
	})
	if err != nil {
		return fmt.Errorf("create rounded pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	sampler, err := p.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "rounded_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		return fmt.Errorf("create rounded sampler: %w", err)
	}
	p.sampler = sampler

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "rounded_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.format,
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
		return fmt.Errorf("create rounded pipeline: %w", err)
	}
	p.pipeline = pipeline
	return nil
}

func textureEntry(binding uint32) gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: gputypes.ShaderStageFragment,
		Texture: &gputypes.TextureBindingLayout{
			SampleType:    gputypes.TextureSampleTypeFloat,
			ViewDimension: gputypes.TextureViewDimension2D,
		},
	}
}

// RecordDraw flushes sink and records one draw of the element at (x, y)
// into rp. The viewport is set to the element's size when rp supports it.
// Elements with a non-positive size are skipped.
func (p *Pipeline) RecordDraw(rp hal.RenderPassEncoder, sink *Sink, textures hal.BindGroup, x, y float32) error {
	if p == nil {
		return ErrNilPipeline
	}
	if sink == nil {
		return ErrNilSink
	}
	if textures == nil {
		return ErrNoTextureGroup
	}
	if err := p.ensurePipeline(); err != nil {
		return err
	}
	if err := sink.Flush(); err != nil {
		return err
	}

	w, h := sink.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	if vs, ok := rp.(viewportSetter); ok {
		vs.SetViewport(x, y, w, h, 0, 1)
	}
	rp.SetPipeline(p.pipeline)
	rp.SetBindGroup(0, sink.BindGroup(), nil)
	rp.SetBindGroup(1, textures, nil)
	rp.Draw(6, 1, 0, 0)
	return nil
}

// Destroy releases all GPU resources held by the pipeline. Safe to call
// multiple times.
func (p *Pipeline) Destroy() {
	p.destroyPipeline()
}

// destroyPipeline releases pipeline resources in reverse creation order.
func (p *Pipeline) destroyPipeline() {
	if p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.sampler != nil {
		p.device.DestroySampler(p.sampler)
		p.sampler = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.textureLayout != nil {
		p.device.DestroyBindGroupLayout(p.textureLayout)
		p.textureLayout = nil
	}
	if p.uniformLayout != nil {
		p.device.DestroyBindGroupLayout(p.uniformLayout)
		p.uniformLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}
