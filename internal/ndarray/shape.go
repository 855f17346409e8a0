package ndarray

import (
	"fmt"
	"math"
)

// Shape represents the dimensions of an array. An empty shape is a scalar.
type Shape []int

// NumElements returns the total number of elements for the shape.
// The empty product is 1, so a scalar has one element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is non-negative and that the
// total element count fits in an int without overflowing.
func (s Shape) Validate() error {
	n := 1
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d", ErrInvalidShape, i, dim)
		}
		if dim > 0 && n > math.MaxInt/dim {
			return fmt.Errorf("%w: element count overflows at dimension %d", ErrInvalidShape, i)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ColMajorStrides calculates first-axis-fastest element strides for the
// shape: stride[i] = product of all dimensions before i.
func (s Shape) ColMajorStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[0] = 1
	for i := 1; i < len(s); i++ {
		strides[i] = strides[i-1] * s[i-1]
	}
	return strides
}

// RowMajorStrides calculates last-axis-fastest element strides for the
// shape: stride[i] = product of all dimensions after i.
func (s Shape) RowMajorStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}
