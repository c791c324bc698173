// Copyright 2025 SlangPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package slangpy provides the public API for describing GPU kernel
// dispatches.
//
// The package defines the descriptor types a dispatch is assembled from:
//   - Shape: dimensions of a dispatch domain or argument, with explicit
//     validity (a Shape can be "not yet determined")
//   - CallMode: primal, backward or forward invocation
//   - AccessType: how a kernel accesses an argument
//   - CallContext: immutable bundle of device, call shape and call mode
//   - Device: handle to the compute device a dispatch targets
//
// Example:
//
//	dev := cpu.New()
//	shape := slangpy.NewShape(64, 64)
//	ctx := slangpy.NewCallContext(dev, shape, slangpy.Prim)
//	strides := ctx.CallShape().ContiguousStrides()
package slangpy

import (
	"github.com/jhelferty-nv/slangpy/internal/slangpy"
)

// Type aliases for public API

// Shape describes the dimensions of a dispatch domain or argument.
// The zero value is the invalid Shape.
type Shape = slangpy.Shape

// CallMode selects how a dispatch invokes its kernel.
type CallMode = slangpy.CallMode

// Call mode constants.
const (
	Prim CallMode = slangpy.Prim
	Bwds CallMode = slangpy.Bwds
	Fwds CallMode = slangpy.Fwds
)

// AccessType describes how a dispatch argument is accessed by the kernel.
type AccessType = slangpy.AccessType

// Access type constants.
const (
	AccessNone      AccessType = slangpy.AccessNone
	AccessRead      AccessType = slangpy.AccessRead
	AccessWrite     AccessType = slangpy.AccessWrite
	AccessReadWrite AccessType = slangpy.AccessReadWrite
)

// DeviceKind identifies the compute backend a device runs on.
type DeviceKind = slangpy.DeviceKind

// Device kind constants.
const (
	CPU    DeviceKind = slangpy.CPU
	CUDA   DeviceKind = slangpy.CUDA
	Vulkan DeviceKind = slangpy.Vulkan
	Metal  DeviceKind = slangpy.Metal
	WebGPU DeviceKind = slangpy.WebGPU
)

// Device is a shared handle to the compute device a dispatch targets.
// Implementations live in the device/cpu and device/webgpu packages.
type Device = slangpy.Device

// CallContext captures the fixed inputs of a single dispatch: the target
// device, the call shape and the call mode.
type CallContext = slangpy.CallContext

// Common errors. ErrInvalidShape and ErrDimOutOfRange are the panic
// values carried by Shape accessors on contract violations.
var (
	ErrInvalidShape      = slangpy.ErrInvalidShape
	ErrDimOutOfRange     = slangpy.ErrDimOutOfRange
	ErrUnknownCallMode   = slangpy.ErrUnknownCallMode
	ErrUnknownAccessType = slangpy.ErrUnknownAccessType
	ErrDeviceUnavailable = slangpy.ErrDeviceUnavailable
)

// Constructors

// NewShape returns a valid Shape with the given dimensions.
//
// Example:
//
//	shape := slangpy.NewShape(2, 3, 4)
//	fmt.Println(shape) // [2, 3, 4]
func NewShape(dims ...int) Shape {
	return slangpy.NewShape(dims...)
}

// ShapeFrom returns a Shape wrapping the given dimension slice.
// A nil slice yields the invalid Shape.
func ShapeFrom(dims []int) Shape {
	return slangpy.ShapeFrom(dims)
}

// NewCallContext bundles a device, call shape and call mode into an
// immutable CallContext.
//
// Example:
//
//	dev := cpu.New()
//	ctx := slangpy.NewCallContext(dev, slangpy.NewShape(64, 64), slangpy.Prim)
func NewCallContext(device Device, callShape Shape, mode CallMode) *CallContext {
	return slangpy.NewCallContext(device, callShape, mode)
}

// ParseCallMode returns the CallMode with the given canonical name
// ("prim", "bwds" or "fwds").
func ParseCallMode(s string) (CallMode, error) {
	return slangpy.ParseCallMode(s)
}

// ParseAccessType returns the AccessType with the given canonical name
// ("none", "read", "write" or "readwrite").
func ParseAccessType(s string) (AccessType, error) {
	return slangpy.ParseAccessType(s)
}
