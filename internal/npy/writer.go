package npy

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/numgo-ml/npyz/internal/ndarray"
)

// Write encodes a value as one complete NPY stream. Accepted values are
// *ndarray.Array, bare scalars of any registered element kind, and
// one-dimensional slices of the native element types. Streams are always
// written in first-axis-fastest order ('fortran_order': True) and host
// byte order; readers handle both layouts, writers emit exactly one.
func Write(w io.Writer, v any) error {
	arr, err := fromValue(v)
	if err != nil {
		return err
	}
	return WriteArray(w, arr)
}

// WriteArray encodes an array as one complete NPY stream.
func WriteArray(w io.Writer, arr *ndarray.Array) error {
	order := ndarray.HostOrder
	if arr.DType().Size() == 1 {
		order = ndarray.NoOrder
	}
	h := Header{
		DType:   arr.DType(),
		Order:   order,
		Fortran: true,
		Shape:   arr.Shape(),
	}

	text, major, err := h.marshal()
	if err != nil {
		return err
	}

	if err := writeFull(w, []byte(MagicBytes), "magic"); err != nil {
		return err
	}
	if err := writeFull(w, []byte{major, 0}, "version"); err != nil {
		return err
	}

	switch major {
	case 1:
		var raw [LenFieldV1]byte
		binary.LittleEndian.PutUint16(raw[:], uint16(len(text))) //nolint:gosec // G115: fits by construction
		if err := writeFull(w, raw[:], "header length"); err != nil {
			return err
		}
	case 2:
		var raw [LenFieldV2]byte
		binary.LittleEndian.PutUint32(raw[:], uint32(len(text))) //nolint:gosec // G115: fits by construction
		if err := writeFull(w, raw[:], "header length"); err != nil {
			return err
		}
	}

	if err := writeFull(w, text, "header text"); err != nil {
		return err
	}
	return writeFull(w, arr.Data(), "payload")
}

// WriteFile encodes a value into a .npy file. The file is closed on every
// exit path.
func WriteFile(path string, v any) error {
	f, err := os.Create(path) //nolint:gosec // G304: path comes from the caller by design
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Write(f, v); err != nil {
		_ = f.Close() // Best effort close on error
		return err
	}
	return f.Close()
}

// writeFull writes all of p, treating a partial transfer as fatal.
func writeFull(w io.Writer, p []byte, what string) error {
	n, err := w.Write(p)
	if err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrShortWrite, what, err)
	}
	if n < len(p) {
		return fmt.Errorf("%w: writing %s: %d of %d bytes", ErrShortWrite, what, n, len(p))
	}
	return nil
}
