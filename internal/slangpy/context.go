package slangpy

import (
	"github.com/jhelferty-nv/slangpy/internal/metrics"
)

// CallContext captures the fixed inputs of a single dispatch: the target
// device, the call shape and the call mode. A CallContext is immutable
// after construction.
type CallContext struct {
	device    Device
	callShape Shape
	callMode  CallMode
}

// NewCallContext bundles a device, call shape and call mode into a
// CallContext. The shape is stored as given: a dispatch whose domain is
// not resolved yet carries the invalid shape.
func NewCallContext(device Device, callShape Shape, mode CallMode) *CallContext {
	metrics.RecordCallContext(mode.String())
	if callShape.Valid() {
		elements := -1
		if callShape.Concrete() {
			elements = callShape.NumElements()
		}
		metrics.RecordCallShape(callShape.NDim(), elements)
	}
	return &CallContext{
		device:    device,
		callShape: callShape.Clone(),
		callMode:  mode,
	}
}

// Device returns the device the dispatch targets.
func (c *CallContext) Device() Device {
	return c.device
}

// CallShape returns a copy of the dispatch shape.
func (c *CallContext) CallShape() Shape {
	return c.callShape.Clone()
}

// CallMode returns the dispatch invocation mode.
func (c *CallContext) CallMode() CallMode {
	return c.callMode
}
