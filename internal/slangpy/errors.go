package slangpy

import "errors"

// Common errors. ErrInvalidShape and ErrDimOutOfRange are panic values
// carried by Shape accessors on contract violations; the rest are
// returned normally.
var (
	ErrInvalidShape      = errors.New("shape is invalid")
	ErrDimOutOfRange     = errors.New("shape dimension index out of range")
	ErrUnknownCallMode   = errors.New("unknown call mode")
	ErrUnknownAccessType = errors.New("unknown access type")
	ErrDeviceUnavailable = errors.New("device unavailable")
)
