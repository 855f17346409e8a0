package npy

import "errors"

// Common errors.
var (
	ErrNotNPY             = errors.New("not an NPY stream: bad magic")
	ErrUnsupportedVersion = errors.New("unsupported NPY format version")
	ErrMalformedHeader    = errors.New("malformed NPY header")
	ErrShortRead          = errors.New("short read")
	ErrShortWrite         = errors.New("short write")
)
