// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

// Package gpu connects rounded images to a wgpu HAL device.
//
// [Sink] is a material.Sink that packs uniform writes into a
// material.Block and uploads it to a GPU uniform buffer on Flush.
// [Pipeline] compiles the embedded WGSL contract and records one draw per
// element.
//
// The device is received from the host, never created here:
//
//	sink, err := gpu.NewSink(app.GPUContextProvider())
//	if err != nil {
//	    return err
//	}
//	img, err := rounded.New(surface, sink)
//
// The provider must also expose HalDevice() any and HalQueue() any
// returning hal.Device and hal.Queue.
package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// ErrNoHAL is returned when a device provider does not expose HAL handles.
var ErrNoHAL = errors.New("rounded/gpu: provider does not expose HAL device and queue")

// halProvider is implemented by device providers offering direct HAL access.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// halFromProvider extracts the HAL device and queue from provider.
func halFromProvider(provider gpucontext.DeviceProvider) (hal.Device, hal.Queue, error) {
	if provider == nil {
		return nil, nil, fmt.Errorf("%w: provider is nil", ErrNoHAL)
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil, ErrNoHAL
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHAL)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHAL)
	}
	return device, queue, nil
}

// NewPipelineForProvider creates a pipeline on the provider's device that
// targets its surface format.
func NewPipelineForProvider(provider gpucontext.DeviceProvider) (*Pipeline, error) {
	device, _, err := halFromProvider(provider)
	if err != nil {
		return nil, err
	}
	return NewPipeline(device, provider.SurfaceFormat()), nil
}
