// Copyright 2025 SlangPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU dispatch device.
//
// WebGPU is a cross-platform graphics and compute API that works on:
//   - Windows (via D3D12)
//   - macOS (via Metal)
//   - Linux (via Vulkan)
//
// Example:
//
//	import (
//	    "github.com/jhelferty-nv/slangpy"
//	    "github.com/jhelferty-nv/slangpy/device/webgpu"
//	)
//
//	func main() {
//	    gpu, err := webgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer gpu.Release()
//
//	    ctx := slangpy.NewCallContext(gpu, slangpy.NewShape(1024, 1024), slangpy.Prim)
//	}
package webgpu

import (
	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/jhelferty-nv/slangpy"
	internalwebgpu "github.com/jhelferty-nv/slangpy/internal/device/webgpu"
)

// Device represents a WebGPU-backed dispatch target.
type Device = internalwebgpu.Device

// Compile-time check that Device implements slangpy.Device.
var _ slangpy.Device = (*Device)(nil)

// New opens the default high-performance WebGPU device.
//
// Call Release() when done to free GPU resources. Returns an error if
// WebGPU initialization fails (e.g. no compatible GPU).
func New() (*Device, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
//
// It attempts to initialize a WebGPU adapter to verify that a compatible
// GPU and drivers are present, which makes graceful fallback to the host
// device possible:
//
//	if webgpu.IsAvailable() {
//	    dev, _ = webgpu.New()
//	} else {
//	    dev = cpu.New()
//	}
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}

// ListAdapters returns information about all available GPU adapters.
func ListAdapters() ([]*wgpu.AdapterInfo, error) {
	return internalwebgpu.ListAdapters()
}
