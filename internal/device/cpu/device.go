// Package cpu implements the host dispatch device.
package cpu

import (
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/jhelferty-nv/slangpy/internal/metrics"
	"github.com/jhelferty-nv/slangpy/internal/slangpy"
)

// Device is the host dispatch target, used for CPU fallbacks and tests.
// It holds no native resources.
type Device struct {
	id      string
	threads int

	closeOnce sync.Once
}

// New creates a host device.
func New() *Device {
	d := &Device{
		id:      uuid.New().String(),
		threads: runtime.NumCPU(),
	}
	metrics.RecordDeviceOpen(slangpy.CPU.String())
	return d
}

// Name returns the device name.
func (d *Device) Name() string {
	return "CPU"
}

// Kind returns the compute backend the device runs on.
func (d *Device) Kind() slangpy.DeviceKind {
	return slangpy.CPU
}

// ID returns the unique identifier assigned to this device instance.
func (d *Device) ID() string {
	return d.id
}

// NumThreads returns the number of hardware threads available to
// host-side dispatch work.
func (d *Device) NumThreads() int {
	return d.threads
}

// Release marks the device closed. Safe to call more than once.
func (d *Device) Release() {
	d.closeOnce.Do(func() {
		metrics.RecordDeviceClose(slangpy.CPU.String())
	})
}
