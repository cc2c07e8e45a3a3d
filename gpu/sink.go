// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gg-rounded/material"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Sink is a material.Sink backed by a GPU uniform buffer.
//
// Writes land in a CPU-side material.Block; Flush uploads the block when it
// changed and (re)creates the buffer and bind group on first use. Texture
// handles are kept for the host, which binds them in group 1 through
// Pipeline.TextureLayout.
//
// Sink is not safe for concurrent use.
type Sink struct {
	device hal.Device
	queue  hal.Queue
	block  *material.Block
	logger *slog.Logger

	uniformLayout hal.BindGroupLayout
	uniformBuf    hal.Buffer
	bindGroup     hal.BindGroup
}

// NewSink creates a sink on the device shared by provider.
func NewSink(provider gpucontext.DeviceProvider) (*Sink, error) {
	device, queue, err := halFromProvider(provider)
	if err != nil {
		return nil, err
	}
	return NewSinkWithDevice(device, queue), nil
}

// NewSinkWithDevice creates a sink on an explicit HAL device and queue.
// GPU objects are created lazily by Flush.
func NewSinkWithDevice(device hal.Device, queue hal.Queue) *Sink {
	return &Sink{
		device: device,
		queue:  queue,
		block:  material.NewBlock(),
	}
}

// SetLogger sets the logger for this sink only. nil silences it.
// rounded.New calls it with the image's logger.
func (s *Sink) SetLogger(l *slog.Logger) { s.logger = l }

// Logger returns the sink's logger, never nil.
func (s *Sink) Logger() *slog.Logger { return logOrSilent(s.logger) }

// SetVector implements material.Sink.
func (s *Sink) SetVector(name string, v material.Vec4) { s.block.SetVector(name, v) }

// SetFloat implements material.Sink.
func (s *Sink) SetFloat(name string, v float32) { s.block.SetFloat(name, v) }

// SetColor implements material.Sink.
func (s *Sink) SetColor(name string, c material.Color) { s.block.SetColor(name, c) }

// SetTexture implements material.Sink.
func (s *Sink) SetTexture(name string, t material.Texture) { s.block.SetTexture(name, t) }

// Block returns the CPU-side uniform block.
func (s *Sink) Block() *material.Block { return s.block }

// FillTexture returns the texture written to _MainTex, or nil.
func (s *Sink) FillTexture() material.Texture { return s.block.Texture(material.FillTexture) }

// OutlineTexture returns the texture written to _OutlineTexture, or nil.
func (s *Sink) OutlineTexture() material.Texture {
	return s.block.Texture(material.OutlineTexture)
}

// Size returns the element size last written to _Size.
func (s *Sink) Size() (width, height float32) {
	return s.block.Float(16), s.block.Float(20)
}

// BindGroup returns the group 0 bind group, or nil before the first Flush.
func (s *Sink) BindGroup() hal.BindGroup { return s.bindGroup }

// Flush uploads the uniform block if it changed since the last Flush.
func (s *Sink) Flush() error {
	if s.uniformBuf == nil {
		if err := s.createResources(); err != nil {
			return err
		}
	} else if !s.block.Dirty() {
		return nil
	}
	s.queue.WriteBuffer(s.uniformBuf, 0, s.block.Bytes())
	s.block.ClearDirty()
	return nil
}

// createResources creates the uniform buffer, its layout and bind group.
func (s *Sink) createResources() error {
	layout, err := s.device.CreateBindGroupLayout(uniformLayoutDescriptor("rounded_sink_uniform_layout"))
	if err != nil {
		return fmt.Errorf("create uniform layout: %w", err)
	}
	s.uniformLayout = layout

	buf, err := s.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "rounded_uniform",
		Size:  material.BlockSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		s.Destroy()
		return fmt.Errorf("create uniform buffer: %w", err)
	}
	s.uniformBuf = buf

	bindGroup, err := s.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "rounded_uniform_bind",
		Layout: s.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: s.uniformBuf.NativeHandle(), Offset: 0, Size: material.BlockSize,
			}},
		},
	})
	if err != nil {
		s.Destroy()
		return fmt.Errorf("create bind group: %w", err)
	}
	s.bindGroup = bindGroup

	s.Logger().Debug("rounded/gpu: uniform buffer created", "size", material.BlockSize)
	return nil
}

// Destroy releases all GPU resources. The sink can be flushed again
// afterwards, which recreates them. Safe to call multiple times.
func (s *Sink) Destroy() {
	if s.device == nil {
		return
	}
	if s.bindGroup != nil {
		s.device.DestroyBindGroup(s.bindGroup)
		s.bindGroup = nil
	}
	if s.uniformBuf != nil {
		s.device.DestroyBuffer(s.uniformBuf)
		s.uniformBuf = nil
	}
	if s.uniformLayout != nil {
		s.device.DestroyBindGroupLayout(s.uniformLayout)
		s.uniformLayout = nil
	}
}

// uniformLayoutDescriptor describes group 0: the uniform block.
func uniformLayoutDescriptor(label string) *hal.BindGroupLayoutDescriptor {
	return &hal.BindGroupLayoutDescriptor{
		Label: label,
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	}
}
