// Package npz implements the NPZ archive format: a zip container whose
// entries are independent, complete NPY streams. Entries are stored
// uncompressed; the entry name is the logical variable name plus the
// ".npy" suffix.
package npz

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/numgo-ml/npyz/internal/npy"
)

// Suffix is appended to a logical variable name to form its entry name.
const Suffix = ".npy"

// ErrNotNPZ reports a stream that is not a readable zip container.
var ErrNotNPZ = errors.New("not an NPZ archive")

// WarnEmptyArchive is the caller-visible warning returned by Write when
// the value mapping is empty. The archive is still written and is a
// structurally valid zero-entry container.
const WarnEmptyArchive = "zero entries written; archive may not be readable as intended"

// Write encodes every value in the mapping as an independent NPY entry of
// a zip container written to w. Entries are written in no guaranteed
// order. An empty mapping still produces a valid archive but returns a
// non-empty warning.
func Write(w io.Writer, values map[string]any) (warning string, err error) {
	zw := zip.NewWriter(w)
	for name, v := range values {
		entry, err := zw.CreateHeader(&zip.FileHeader{
			Name:   name + Suffix,
			Method: zip.Store,
		})
		if err != nil {
			return "", fmt.Errorf("failed to create entry %s: %w", name, err)
		}
		if err := npy.Write(entry, v); err != nil {
			return "", fmt.Errorf("failed to encode entry %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize archive: %w", err)
	}
	if len(values) == 0 {
		warning = WarnEmptyArchive
	}
	return warning, nil
}

// WriteFile encodes the mapping into a .npz file. The file is closed on
// every exit path.
func WriteFile(path string, values map[string]any) (warning string, err error) {
	f, err := os.Create(path) //nolint:gosec // G304: path comes from the caller by design
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	warning, err = Write(f, values)
	if err != nil {
		_ = f.Close() // Best effort close on error
		return "", err
	}
	return warning, f.Close()
}

// Read decodes entries of an NPZ archive into a mapping keyed by logical
// name (entry name with the suffix stripped). When names are given, only
// entries matching one of them (with or without the suffix) are opened
// and decoded; everything else is skipped untouched. A failure on any
// requested entry aborts the whole read.
func Read(r io.ReaderAt, size int64, names ...string) (map[string]any, error) {
	out := map[string]any{}
	err := eachEntry(r, size, names, func(logical string, rc io.Reader) error {
		v, err := npy.Read(rc)
		if err != nil {
			return err
		}
		out[logical] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReadFile decodes entries of a .npz file.
func ReadFile(path string, names ...string) (map[string]any, error) {
	f, size, err := openSized(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return Read(f, size, names...)
}

// Headers mirrors Read but stops after header parsing for each matching
// entry, returning metadata without materializing any payload.
func Headers(r io.ReaderAt, size int64, names ...string) (map[string]*npy.Header, error) {
	out := map[string]*npy.Header{}
	err := eachEntry(r, size, names, func(logical string, rc io.Reader) error {
		h, err := npy.ReadHeader(rc)
		if err != nil {
			return err
		}
		out[logical] = h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// HeadersFile reads only the headers of a .npz file.
func HeadersFile(path string, names ...string) (map[string]*npy.Header, error) {
	f, size, err := openSized(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return Headers(f, size, names...)
}

// eachEntry runs fn for every archive entry matching the desired names
// (all entries when names is empty). Entry streams are closed on every
// exit path; the first failure aborts the iteration.
func eachEntry(r io.ReaderAt, size int64, names []string, fn func(logical string, rc io.Reader) error) error {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotNPZ, err)
	}

	var want map[string]bool
	if len(names) > 0 {
		want = make(map[string]bool, len(names))
		for _, name := range names {
			want[name] = true
		}
	}

	for _, f := range zr.File {
		logical := strings.TrimSuffix(f.Name, Suffix)
		if want != nil && !want[f.Name] && !want[logical] {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("failed to open entry %s: %w", f.Name, err)
		}
		if err := fn(logical, rc); err != nil {
			_ = rc.Close() // Best effort close on error
			return fmt.Errorf("entry %s: %w", f.Name, err)
		}
		if err := rc.Close(); err != nil {
			return fmt.Errorf("failed to close entry %s: %w", f.Name, err)
		}
	}
	return nil
}

// openSized opens a file and returns it with its size, as needed by the
// zip reader.
func openSized(path string) (*os.File, int64, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from the caller by design
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close() // Best effort close on error
		return nil, 0, fmt.Errorf("failed to stat file: %w", err)
	}
	return f, info.Size(), nil
}
