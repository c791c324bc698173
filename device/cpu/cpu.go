// Copyright 2025 SlangPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/jhelferty-nv/slangpy"
	internalcpu "github.com/jhelferty-nv/slangpy/internal/device/cpu"
)

// Device represents the host dispatch target.
type Device = internalcpu.Device

// Compile-time check that Device implements slangpy.Device.
var _ slangpy.Device = (*Device)(nil)

// New creates a host device.
//
// Example:
//
//	import (
//	    "github.com/jhelferty-nv/slangpy"
//	    "github.com/jhelferty-nv/slangpy/device/cpu"
//	)
//
//	func main() {
//	    dev := cpu.New()
//	    ctx := slangpy.NewCallContext(dev, slangpy.NewShape(2, 3), slangpy.Prim)
//	}
func New() *Device {
	return internalcpu.New()
}
