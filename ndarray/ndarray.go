// Package ndarray provides the array value type shared by the npy and npz
// codecs: an N-dimensional container of a single element kind, stored
// contiguously in first-axis-fastest (column-major) order in host byte
// order.
//
// Example usage:
//
//	arr, err := ndarray.New(ndarray.Shape{2, 3}, []float64{
//	    1, 4, 2, 5, 3, 6, // column-major: arr.At(0,0)=1, arr.At(0,2)=3
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(arr.DType(), arr.Shape()) // float64 [2 3]
package ndarray

import (
	"github.com/numgo-ml/npyz/internal/ndarray"
)

// Array is an N-dimensional array of a single element kind.
type Array = ndarray.Array

// Shape represents the dimensions of an array. An empty shape is a scalar.
type Shape = ndarray.Shape

// DataType represents runtime type information for array elements.
type DataType = ndarray.DataType

// ByteOrder identifies the byte order of multi-byte elements in a stream.
type ByteOrder = ndarray.ByteOrder

// Float16 holds the raw bits of an IEEE 754 half precision value.
type Float16 = ndarray.Float16

// Element is a constraint for Go types that can back an array element.
type Element = ndarray.Element

// Supported element data types.
const (
	Bool       = ndarray.Bool
	Int8       = ndarray.Int8
	Int16      = ndarray.Int16
	Int32      = ndarray.Int32
	Int64      = ndarray.Int64
	Uint8      = ndarray.Uint8
	Uint16     = ndarray.Uint16
	Uint32     = ndarray.Uint32
	Uint64     = ndarray.Uint64
	Half       = ndarray.Half
	Float32    = ndarray.Float32
	Float64    = ndarray.Float64
	Complex64  = ndarray.Complex64
	Complex128 = ndarray.Complex128
)

// Byte orders.
const (
	LittleEndian = ndarray.LittleEndian
	BigEndian    = ndarray.BigEndian
	NoOrder      = ndarray.NoOrder
)

// Common errors.
var (
	ErrUnsupportedType = ndarray.ErrUnsupportedType
	ErrInvalidShape    = ndarray.ErrInvalidShape
	ErrSizeMismatch    = ndarray.ErrSizeMismatch
)

// HostOrder is the byte order of multi-byte values in host memory.
var HostOrder = ndarray.HostOrder

// New creates an array from a slice of elements in column-major order.
func New[T Element](shape Shape, data []T) (*Array, error) {
	return ndarray.New(shape, data)
}

// FromSlice creates a one-dimensional array from a slice of elements.
func FromSlice[T Element](data []T) (*Array, error) {
	return ndarray.FromSlice(data)
}

// FromScalar creates a rank-0 array holding a single element.
func FromScalar[T Element](v T) (*Array, error) {
	return ndarray.FromScalar(v)
}

// Zeros creates a new zero-filled array with the given type and shape.
func Zeros(dt DataType, shape Shape) (*Array, error) {
	return ndarray.Zeros(dt, shape)
}

// FromBytes wraps a raw column-major element buffer as an array.
func FromBytes(dt DataType, shape Shape, raw []byte) (*Array, error) {
	return ndarray.FromBytes(dt, shape, raw)
}

// TypeOf resolves a type code (e.g. "f8", "i4") to its DataType.
func TypeOf(code string) (DataType, error) {
	return ndarray.TypeOf(code)
}

// CodeOf resolves a DataType to its type code.
func CodeOf(dt DataType) (string, error) {
	return ndarray.CodeOf(dt)
}

// Float16FromFloat32 converts a float32 to half precision bits.
func Float16FromFloat32(f float32) Float16 {
	return ndarray.Float16FromFloat32(f)
}
