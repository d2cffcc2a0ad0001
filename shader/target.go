// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"errors"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// DefaultFormat is used when the host does not report a surface format.
const DefaultFormat = gputypes.TextureFormatRGBA8Unorm

// ErrNoHalDevice is returned by HalDevice when a provider does not expose a
// wgpu HAL device.
var ErrNoHalDevice = errors.New("shader: provider does not expose a HAL device")

// Target describes the surface the artwork module renders into.
type Target struct {
	Format gputypes.TextureFormat
	Size   gputypes.Extent3D
}

// TargetFor returns a width x height target in the provider's surface
// format. A nil provider, or one reporting an undefined format, yields
// DefaultFormat.
func TargetFor(provider gpucontext.DeviceProvider, width, height int) Target {
	format := DefaultFormat
	if provider != nil {
		if f := provider.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
			format = f
		}
	}
	return Target{
		Format: format,
		Size: gputypes.Extent3D{
			Width:              uint32(width),  //nolint:gosec // validated by caller
			Height:             uint32(height), //nolint:gosec // validated by caller
			DepthOrArrayLayers: 1,
		},
	}
}

// Uniforms returns the uniform block for this target at time t.
func (t Target) Uniforms(time float32) Uniforms {
	return Uniforms{Time: time, Width: float32(t.Size.Width), Height: float32(t.Size.Height)}
}

// HalDevice extracts the wgpu HAL device from a host provider. The provider
// must implement HalDevice() any, as gogpu's device provider does.
func HalDevice(provider any) (hal.Device, error) {
	hp, ok := provider.(interface{ HalDevice() any })
	if !ok {
		return nil, ErrNoHalDevice
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, ErrNoHalDevice
	}
	return device, nil
}

// NullDevice is a gpucontext.DeviceProvider with no GPU behind it, for
// headless runs that still want a Target.
type NullDevice struct{}

// Device returns nil.
func (NullDevice) Device() gpucontext.Device { return nil }

// Queue returns nil.
func (NullDevice) Queue() gpucontext.Queue { return nil }

// Adapter returns nil.
func (NullDevice) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns the undefined format.
func (NullDevice) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// AdapterInfo reports an unknown adapter.
func (NullDevice) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Name: "null", Type: gpucontext.AdapterTypeUnknown}
}

var _ gpucontext.DeviceProvider = NullDevice{}
