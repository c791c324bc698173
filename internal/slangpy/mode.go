package slangpy

import "fmt"

// CallMode selects how a dispatch invokes its kernel.
type CallMode int

// Dispatch invocation modes. Prim runs the kernel as written; Bwds and
// Fwds run its backward and forward derivative forms. The numeric values
// are stable and shared with binding layers.
const (
	Prim CallMode = iota
	Bwds
	Fwds
)

// String returns the canonical lowercase name of the call mode, or
// "unknown" for out-of-range values.
func (m CallMode) String() string {
	switch m {
	case Prim:
		return "prim"
	case Bwds:
		return "bwds"
	case Fwds:
		return "fwds"
	default:
		return "unknown"
	}
}

// ParseCallMode returns the CallMode with the given canonical name.
func ParseCallMode(s string) (CallMode, error) {
	switch s {
	case "prim":
		return Prim, nil
	case "bwds":
		return Bwds, nil
	case "fwds":
		return Fwds, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCallMode, s)
	}
}
