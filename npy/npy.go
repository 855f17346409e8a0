// Package npy reads and writes the NPY single-array binary stream format.
//
// This package wraps the internal codec and exports the public API.
//
// Example usage:
//
//	import "github.com/numgo-ml/npyz/npy"
//
//	// Write a vector
//	if err := npy.WriteFile("v.npy", []float64{1, 2, 3}); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Read it back: rank >= 1 decodes to *ndarray.Array,
//	// rank 0 decodes to a bare scalar
//	v, err := npy.ReadFile("v.npy")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	arr := v.(*ndarray.Array)
//	fmt.Println(arr.AsFloat64()) // [1 2 3]
package npy

import (
	"io"

	"github.com/numgo-ml/npyz/internal/npy"
	"github.com/numgo-ml/npyz/ndarray"
)

// Header describes one NPY stream: element type, stream byte order,
// memory layout, and shape.
type Header = npy.Header

// Common errors.
var (
	ErrNotNPY             = npy.ErrNotNPY
	ErrUnsupportedVersion = npy.ErrUnsupportedVersion
	ErrMalformedHeader    = npy.ErrMalformedHeader
	ErrUnsupportedType    = ndarray.ErrUnsupportedType
	ErrShortRead          = npy.ErrShortRead
	ErrShortWrite         = npy.ErrShortWrite
)

// Read decodes one complete NPY stream. Rank-0 streams decode to a bare
// scalar of the element kind; everything else decodes to *ndarray.Array.
func Read(r io.Reader) (any, error) {
	return npy.Read(r)
}

// ReadArray decodes one complete NPY stream into an array, boxing rank-0
// streams as rank-0 arrays.
func ReadArray(r io.Reader) (*ndarray.Array, error) {
	return npy.ReadArray(r)
}

// ReadHeader parses only the stream prefix and returns the header without
// touching the payload.
func ReadHeader(r io.Reader) (*Header, error) {
	return npy.ReadHeader(r)
}

// ReadFile decodes a single .npy file.
func ReadFile(path string) (any, error) {
	return npy.ReadFile(path)
}

// ReadHeaderFile reads only the header of a .npy file.
func ReadHeaderFile(path string) (*Header, error) {
	return npy.ReadHeaderFile(path)
}

// Write encodes a value as one complete NPY stream. Accepted values are
// *ndarray.Array, bare scalars of any registered element kind, and
// one-dimensional slices of the native element types.
func Write(w io.Writer, v any) error {
	return npy.Write(w, v)
}

// WriteArray encodes an array as one complete NPY stream.
func WriteArray(w io.Writer, arr *ndarray.Array) error {
	return npy.WriteArray(w, arr)
}

// WriteFile encodes a value into a .npy file.
func WriteFile(path string, v any) error {
	return npy.WriteFile(path, v)
}
