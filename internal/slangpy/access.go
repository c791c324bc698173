package slangpy

import "fmt"

// AccessType describes how a dispatch argument is accessed by the kernel.
type AccessType int

// Argument access patterns. AccessNone marks arguments that are bound
// but never dereferenced.
const (
	AccessNone AccessType = iota
	AccessRead
	AccessWrite
	AccessReadWrite
)

// String returns the canonical lowercase name of the access type, or
// "unknown" for out-of-range values.
func (a AccessType) String() string {
	switch a {
	case AccessNone:
		return "none"
	case AccessRead:
		return "read"
	case AccessWrite:
		return "write"
	case AccessReadWrite:
		return "readwrite"
	default:
		return "unknown"
	}
}

// ParseAccessType returns the AccessType with the given canonical name.
func ParseAccessType(s string) (AccessType, error) {
	switch s {
	case "none":
		return AccessNone, nil
	case "read":
		return AccessRead, nil
	case "write":
		return AccessWrite, nil
	case "readwrite":
		return AccessReadWrite, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAccessType, s)
	}
}
