// Package webgpu implements the WebGPU dispatch device.
// Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO WebGPU bindings.
package webgpu

import (
	"fmt"
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/google/uuid"

	"github.com/jhelferty-nv/slangpy/internal/logger"
	"github.com/jhelferty-nv/slangpy/internal/metrics"
	"github.com/jhelferty-nv/slangpy/internal/slangpy"
)

// Device is a WebGPU-backed dispatch target. It owns the WebGPU instance,
// adapter, device and queue for its lifetime and hands out the raw handles
// that binding and execution layers dispatch through.
type Device struct {
	id string

	mu       sync.Mutex
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	adapterInfo *wgpu.AdapterInfo
}

// New opens the default high-performance WebGPU device.
// Returns an error if WebGPU is not available or initialization fails.
func New() (dev *Device, err error) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			dev = nil
			err = fmt.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	instance := wgpu.CreateInstance(nil)
	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request adapter: %w", adapterErr)
	}

	adapterInfo := adapter.GetInfo()

	device, deviceErr := adapter.RequestDevice(nil)
	if deviceErr != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request device: %w", deviceErr)
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to get queue")
	}

	d := &Device{
		id:          uuid.New().String(),
		instance:    instance,
		adapter:     adapter,
		device:      device,
		queue:       queue,
		adapterInfo: &adapterInfo,
	}

	logger.Log.Info("webgpu device opened",
		"id", d.id,
		"adapter", adapterInfo.Device,
		"vendor", adapterInfo.Vendor)
	metrics.RecordDeviceOpen(slangpy.WebGPU.String())

	return d, nil
}

// Release frees all WebGPU resources in reverse acquisition order.
// Safe to call more than once.
func (d *Device) Release() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.instance == nil {
		return
	}

	if d.queue != nil {
		d.queue.Release()
		d.queue = nil
	}
	if d.device != nil {
		d.device.Release()
		d.device = nil
	}
	if d.adapter != nil {
		d.adapter.Release()
		d.adapter = nil
	}
	d.instance.Release()
	d.instance = nil

	logger.Log.Info("webgpu device released", "id", d.id)
	metrics.RecordDeviceClose(slangpy.WebGPU.String())
}

// Name returns a human-readable identifier for the device.
func (d *Device) Name() string {
	if d.adapterInfo != nil {
		return fmt.Sprintf("WebGPU (%s %s)", d.adapterInfo.Device, d.adapterInfo.Vendor)
	}
	return "WebGPU"
}

// Kind returns the compute backend the device runs on.
func (d *Device) Kind() slangpy.DeviceKind {
	return slangpy.WebGPU
}

// ID returns the unique identifier assigned to this device instance.
func (d *Device) ID() string {
	return d.id
}

// AdapterInfo returns information about the GPU adapter.
func (d *Device) AdapterInfo() *wgpu.AdapterInfo {
	return d.adapterInfo
}

// Handle returns the raw WebGPU device, or nil after Release.
// Binding and pipeline layers dispatch through this handle.
func (d *Device) Handle() *wgpu.Device {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.device
}

// Queue returns the raw WebGPU submission queue, or nil after Release.
func (d *Device) Queue() *wgpu.Queue {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.queue
}

// IsAvailable checks if WebGPU is available on this system.
func IsAvailable() (available bool) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return false
	}
	adapter.Release()

	return true
}

// ListAdapters returns information about all available GPU adapters.
func ListAdapters() (adapters []*wgpu.AdapterInfo, err error) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			adapters = nil
			err = fmt.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	// WebGPU has no adapter enumeration; report the default adapter.
	adapter, adapterErr := instance.RequestAdapter(nil)
	if adapterErr != nil {
		return nil, fmt.Errorf("webgpu: no adapters available: %w", adapterErr)
	}
	defer adapter.Release()

	info := adapter.GetInfo()

	return []*wgpu.AdapterInfo{&info}, nil
}
