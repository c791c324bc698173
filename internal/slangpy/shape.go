// Package slangpy provides the core dispatch descriptor types: shapes,
// call modes, argument access types and the call context that binds a
// dispatch to its device.
package slangpy

import (
	"strconv"
	"strings"
)

// Shape describes the dimensions of a dispatch domain or argument.
//
// A Shape is either valid or invalid. The zero value is invalid: it carries
// no dimension data and stands for "shape not yet determined". A valid
// Shape holds a fixed-length sequence of dimension sizes; a valid Shape
// with zero dimensions is the scalar shape. Dimensions may hold the
// wildcard value -1 for sizes that are not resolved yet (see Concrete).
//
// Reading dimension data from an invalid Shape is a contract violation and
// panics with ErrInvalidShape. Valid, Equal, String and ContiguousStrides
// never panic.
type Shape struct {
	dims  []int
	valid bool
}

// NewShape returns a valid Shape with the given dimensions.
// The dimensions are copied. NewShape() is the scalar shape.
func NewShape(dims ...int) Shape {
	d := make([]int, len(dims))
	copy(d, dims)
	return Shape{dims: d, valid: true}
}

// ShapeFrom returns a Shape wrapping the given dimension slice.
// A nil slice yields the invalid Shape; any non-nil slice, including an
// empty one, is copied into a valid Shape.
func ShapeFrom(dims []int) Shape {
	if dims == nil {
		return Shape{}
	}
	return NewShape(dims...)
}

// Valid reports whether the shape holds dimension data.
func (s Shape) Valid() bool {
	return s.valid
}

func (s Shape) mustBeValid() {
	if !s.valid {
		panic(ErrInvalidShape)
	}
}

func (s Shape) checkBounds(i int) {
	if i < 0 || i >= len(s.dims) {
		panic(ErrDimOutOfRange)
	}
}

// NDim returns the number of dimensions.
// Panics with ErrInvalidShape if the shape is invalid.
func (s Shape) NDim() int {
	s.mustBeValid()
	return len(s.dims)
}

// Dims returns a copy of the dimension sizes.
// Panics with ErrInvalidShape if the shape is invalid.
func (s Shape) Dims() []int {
	s.mustBeValid()
	d := make([]int, len(s.dims))
	copy(d, s.dims)
	return d
}

// Dim returns the size of dimension i.
// Panics with ErrInvalidShape if the shape is invalid and with
// ErrDimOutOfRange if i is out of range.
func (s Shape) Dim(i int) int {
	s.mustBeValid()
	s.checkBounds(i)
	return s.dims[i]
}

// SetDim sets the size of dimension i. The dimension count is fixed at
// construction; only sizes can change.
// Panics with ErrInvalidShape if the shape is invalid and with
// ErrDimOutOfRange if i is out of range.
func (s *Shape) SetDim(i, size int) {
	s.mustBeValid()
	s.checkBounds(i)
	s.dims[i] = size
}

// NumElements returns the total number of elements spanned by the shape.
// The scalar shape has 1 element. The product is only meaningful for
// concrete shapes; callers must check Concrete when wildcard dimensions
// may be present.
// Panics with ErrInvalidShape if the shape is invalid.
func (s Shape) NumElements() int {
	s.mustBeValid()
	n := 1
	for _, dim := range s.dims {
		n *= dim
	}
	return n
}

// Concrete reports whether every dimension is resolved (no -1 wildcards).
// The scalar shape is concrete.
// Panics with ErrInvalidShape if the shape is invalid.
func (s Shape) Concrete() bool {
	s.mustBeValid()
	for _, dim := range s.dims {
		if dim == -1 {
			return false
		}
	}
	return true
}

// Concat returns a new Shape holding the dimensions of s followed by the
// dimensions of other. Concatenation is pure sequence append; no
// compatibility rules apply.
// Panics with ErrInvalidShape if either shape is invalid.
func (s Shape) Concat(other Shape) Shape {
	s.mustBeValid()
	other.mustBeValid()
	d := make([]int, 0, len(s.dims)+len(other.dims))
	d = append(d, s.dims...)
	d = append(d, other.dims...)
	return Shape{dims: d, valid: true}
}

// ContiguousStrides returns the row-major strides of the shape: the last
// dimension has stride 1 and each earlier dimension has the stride of the
// dimension after it times that dimension's size. An invalid shape yields
// an invalid result instead of panicking.
func (s Shape) ContiguousStrides() Shape {
	if !s.valid {
		return Shape{}
	}
	strides := make([]int, len(s.dims))
	total := 1
	for i := len(s.dims) - 1; i >= 0; i-- {
		strides[i] = total
		total *= s.dims[i]
	}
	return Shape{dims: strides, valid: true}
}

// Equal reports whether two shapes are equal. Two invalid shapes are
// equal, an invalid shape never equals a valid one, and valid shapes are
// equal when their dimension sequences match element-wise.
func (s Shape) Equal(other Shape) bool {
	if s.valid != other.valid {
		return false
	}
	if !s.valid {
		return true
	}
	if len(s.dims) != len(other.dims) {
		return false
	}
	for i := range s.dims {
		if s.dims[i] != other.dims[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape that shares no dimension storage
// with the original.
func (s Shape) Clone() Shape {
	if !s.valid {
		return Shape{}
	}
	return NewShape(s.dims...)
}

// String renders the shape as "[2, 3, 4]". The scalar shape renders as
// "[]" and the invalid shape as "[invalid]".
func (s Shape) String() string {
	if !s.valid {
		return "[invalid]"
	}
	parts := make([]string, len(s.dims))
	for i, dim := range s.dims {
		parts[i] = strconv.Itoa(dim)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
