// Copyright 2025 SlangPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the host dispatch device.
//
// # Overview
//
// The host device is the degenerate dispatch target: it identifies the
// CPU to call contexts without owning any native resources. It is the
// fallback when no GPU is available and the device of choice in tests.
//
// # Basic Usage
//
//	import (
//	    "github.com/jhelferty-nv/slangpy"
//	    "github.com/jhelferty-nv/slangpy/device/cpu"
//	)
//
//	func main() {
//	    dev := cpu.New()
//	    defer dev.Release()
//
//	    ctx := slangpy.NewCallContext(dev, slangpy.NewShape(64, 64), slangpy.Prim)
//	    _ = ctx
//	}
//
// # Thread Safety
//
// The host device is immutable after construction and safe for
// concurrent use.
package cpu
