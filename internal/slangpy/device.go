package slangpy

// DeviceKind identifies the compute backend a device runs on.
type DeviceKind int

// Supported device kinds.
const (
	CPU DeviceKind = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

// String returns a human-readable name for the device kind.
func (k DeviceKind) String() string {
	switch k {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	case Vulkan:
		return "Vulkan"
	case Metal:
		return "Metal"
	case WebGPU:
		return "WebGPU"
	default:
		return "unknown"
	}
}

// Device is a shared handle to the compute device a dispatch targets.
// The descriptor types never drive the device themselves; binding and
// execution layers reach the hardware through the concrete implementation.
//
// Implementations:
//   - cpu: host device for fallbacks and tests
//   - webgpu: GPU device via WebGPU
type Device interface {
	// Name returns a human-readable device identifier for logs.
	Name() string
	// Kind returns the compute backend the device runs on.
	Kind() DeviceKind
}
