// Package npz reads and writes the NPZ archive format: a zip container
// whose entries are independent, complete NPY streams.
//
// This package wraps the internal codec and exports the public API.
//
// Example usage:
//
//	import "github.com/numgo-ml/npyz/npz"
//
//	warning, err := npz.WriteFile("data.npz", map[string]any{
//	    "x": []float64{1, 1, 1},
//	    "y": int64(3),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Read only x; y's payload is never opened
//	values, err := npz.ReadFile("data.npz", "x")
//	if err != nil {
//	    log.Fatal(err)
//	}
package npz

import (
	"io"

	"github.com/numgo-ml/npyz/internal/npz"
	"github.com/numgo-ml/npyz/npy"
)

// Suffix is appended to a logical variable name to form its entry name.
const Suffix = npz.Suffix

// WarnEmptyArchive is the caller-visible warning returned by Write when
// the value mapping is empty.
const WarnEmptyArchive = npz.WarnEmptyArchive

// ErrNotNPZ reports a stream that is not a readable zip container.
var ErrNotNPZ = npz.ErrNotNPZ

// Write encodes every value in the mapping as an independent NPY entry of
// a zip container written to w. An empty mapping still produces a valid
// archive but returns a non-empty warning.
func Write(w io.Writer, values map[string]any) (warning string, err error) {
	return npz.Write(w, values)
}

// WriteFile encodes the mapping into a .npz file.
func WriteFile(path string, values map[string]any) (warning string, err error) {
	return npz.WriteFile(path, values)
}

// Read decodes entries of an NPZ archive into a mapping keyed by logical
// name. When names are given, only matching entries (with or without the
// suffix) are opened and decoded. A failure on any requested entry aborts
// the whole read.
func Read(r io.ReaderAt, size int64, names ...string) (map[string]any, error) {
	return npz.Read(r, size, names...)
}

// ReadFile decodes entries of a .npz file.
func ReadFile(path string, names ...string) (map[string]any, error) {
	return npz.ReadFile(path, names...)
}

// Headers mirrors Read but stops after header parsing for each matching
// entry, returning metadata without materializing any payload.
func Headers(r io.ReaderAt, size int64, names ...string) (map[string]*npy.Header, error) {
	return npz.Headers(r, size, names...)
}

// HeadersFile reads only the headers of a .npz file.
func HeadersFile(path string, names ...string) (map[string]*npy.Header, error) {
	return npz.HeadersFile(path, names...)
}
