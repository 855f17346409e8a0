package ndarray

import (
	"bytes"
	"fmt"
	"unsafe"
)

// Array is an N-dimensional array of a single element kind. Elements are
// stored contiguously in first-axis-fastest (column-major) order, in host
// byte order. An empty shape is a scalar holding one element.
type Array struct {
	shape Shape
	dtype DataType
	data  []byte
}

// Zeros creates a new zero-filled array with the given type and shape.
func Zeros(dt DataType, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Array{
		shape: shape.Clone(),
		dtype: dt,
		data:  make([]byte, shape.NumElements()*dt.Size()),
	}, nil
}

// FromBytes wraps a raw element buffer as an array. The buffer must hold
// exactly NumElements*Size bytes in column-major host order; the array
// takes ownership of it.
func FromBytes(dt DataType, shape Shape, raw []byte) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(raw) != shape.NumElements()*dt.Size() {
		return nil, fmt.Errorf("%w: have %d bytes, shape %v of %v needs %d",
			ErrSizeMismatch, len(raw), shape, dt, shape.NumElements()*dt.Size())
	}
	return &Array{shape: shape.Clone(), dtype: dt, data: raw}, nil
}

// New creates an array from a slice of elements in column-major order.
// The element data is copied.
func New[T Element](shape Shape, data []T) (*Array, error) {
	dt, err := TypeFor[T]()
	if err != nil {
		return nil, err
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("%w: have %d elements, shape %v needs %d",
			ErrSizeMismatch, len(data), shape, shape.NumElements())
	}
	raw := make([]byte, len(data)*dt.Size())
	if len(data) > 0 {
		copy(raw, unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(raw)))
	}
	return &Array{shape: shape.Clone(), dtype: dt, data: raw}, nil
}

// FromSlice creates a one-dimensional array from a slice of elements.
func FromSlice[T Element](data []T) (*Array, error) {
	return New(Shape{len(data)}, data)
}

// FromScalar creates a rank-0 array holding a single element.
func FromScalar[T Element](v T) (*Array, error) {
	return New(Shape{}, []T{v})
}

// Shape returns a copy of the array's shape; mutating it does not
// affect the array.
func (a *Array) Shape() Shape {
	return a.shape.Clone()
}

// DType returns the array's element data type.
func (a *Array) DType() DataType {
	return a.dtype
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return a.shape.NumElements()
}

// ByteSize returns the total element buffer size in bytes.
func (a *Array) ByteSize() int {
	return len(a.data)
}

// Data returns the raw element buffer in column-major host order.
// WARNING: direct access to underlying memory. Use with caution.
func (a *Array) Data() []byte {
	return a.data
}

// view reinterprets the element buffer as a typed slice.
func view[T any](a *Array, want DataType) []T {
	if a.dtype != want {
		panic(fmt.Sprintf("array dtype is %s, not %s", a.dtype, want))
	}
	if a.NumElements() == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*T)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

// AsBool interprets the data as []bool. Panics on dtype mismatch.
func (a *Array) AsBool() []bool { return view[bool](a, Bool) }

// AsInt8 interprets the data as []int8. Panics on dtype mismatch.
func (a *Array) AsInt8() []int8 { return view[int8](a, Int8) }

// AsInt16 interprets the data as []int16. Panics on dtype mismatch.
func (a *Array) AsInt16() []int16 { return view[int16](a, Int16) }

// AsInt32 interprets the data as []int32. Panics on dtype mismatch.
func (a *Array) AsInt32() []int32 { return view[int32](a, Int32) }

// AsInt64 interprets the data as []int64. Panics on dtype mismatch.
func (a *Array) AsInt64() []int64 { return view[int64](a, Int64) }

// AsUint8 interprets the data as []uint8. Panics on dtype mismatch.
func (a *Array) AsUint8() []uint8 { return view[uint8](a, Uint8) }

// AsUint16 interprets the data as []uint16. Panics on dtype mismatch.
func (a *Array) AsUint16() []uint16 { return view[uint16](a, Uint16) }

// AsUint32 interprets the data as []uint32. Panics on dtype mismatch.
func (a *Array) AsUint32() []uint32 { return view[uint32](a, Uint32) }

// AsUint64 interprets the data as []uint64. Panics on dtype mismatch.
func (a *Array) AsUint64() []uint64 { return view[uint64](a, Uint64) }

// AsFloat16 interprets the data as []Float16. Panics on dtype mismatch.
func (a *Array) AsFloat16() []Float16 { return view[Float16](a, Half) }

// AsFloat32 interprets the data as []float32. Panics on dtype mismatch.
func (a *Array) AsFloat32() []float32 { return view[float32](a, Float32) }

// AsFloat64 interprets the data as []float64. Panics on dtype mismatch.
func (a *Array) AsFloat64() []float64 { return view[float64](a, Float64) }

// AsComplex64 interprets the data as []complex64. Panics on dtype mismatch.
func (a *Array) AsComplex64() []complex64 { return view[complex64](a, Complex64) }

// AsComplex128 interprets the data as []complex128. Panics on dtype mismatch.
func (a *Array) AsComplex128() []complex128 { return view[complex128](a, Complex128) }

// At returns the element at the given multi-index. The number of indices
// must equal the rank; addressing is column-major. Panics on a bad index.
func (a *Array) At(indices ...int) any {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("array rank is %d, got %d indices", len(a.shape), len(indices)))
	}
	strides := a.shape.ColMajorStrides()
	flat := 0
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("index %d out of range for axis %d (size %d)", idx, i, a.shape[i]))
		}
		flat += idx * strides[i]
	}
	return a.element(flat)
}

// Scalar returns the single element of a rank-0 array. Panics if the
// array has any axes.
func (a *Array) Scalar() any {
	if len(a.shape) != 0 {
		panic(fmt.Sprintf("array rank is %d, not a scalar", len(a.shape)))
	}
	return a.element(0)
}

// element returns the element at a flat column-major offset as a bare Go
// value of the array's element kind.
func (a *Array) element(flat int) any {
	switch a.dtype {
	case Bool:
		return a.AsBool()[flat]
	case Int8:
		return a.AsInt8()[flat]
	case Int16:
		return a.AsInt16()[flat]
	case Int32:
		return a.AsInt32()[flat]
	case Int64:
		return a.AsInt64()[flat]
	case Uint8:
		return a.AsUint8()[flat]
	case Uint16:
		return a.AsUint16()[flat]
	case Uint32:
		return a.AsUint32()[flat]
	case Uint64:
		return a.AsUint64()[flat]
	case Half:
		return a.AsFloat16()[flat]
	case Float32:
		return a.AsFloat32()[flat]
	case Float64:
		return a.AsFloat64()[flat]
	case Complex64:
		return a.AsComplex64()[flat]
	case Complex128:
		return a.AsComplex128()[flat]
	default:
		panic("unknown data type")
	}
}

// Equal reports whether two arrays have the same type, shape, and
// bit-identical element data.
func (a *Array) Equal(other *Array) bool {
	return a.dtype == other.dtype &&
		a.shape.Equal(other.shape) &&
		bytes.Equal(a.data, other.data)
}
