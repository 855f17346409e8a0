package npy

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/numgo-ml/npyz/internal/ndarray"
)

// ReadHeader reads and parses the stream prefix (magic, version, length
// field, header text) and returns the header. The payload is not touched,
// which makes this the header-only introspection path.
func ReadHeader(r io.Reader) (*Header, error) {
	magic := make([]byte, MagicLen)
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("%w: reading magic: %v", ErrShortRead, err)
	}
	if string(magic) != MagicBytes {
		return nil, fmt.Errorf("%w: got % x", ErrNotNPY, magic)
	}

	version := make([]byte, VersionLen)
	if _, err := io.ReadFull(r, version); err != nil {
		return nil, fmt.Errorf("%w: reading version: %v", ErrShortRead, err)
	}

	var headerLen int
	switch version[0] {
	case 1:
		var raw [LenFieldV1]byte
		if _, err := io.ReadFull(r, raw[:]); err != nil {
			return nil, fmt.Errorf("%w: reading header length: %v", ErrShortRead, err)
		}
		headerLen = int(binary.LittleEndian.Uint16(raw[:]))
	case 2:
		var raw [LenFieldV2]byte
		if _, err := io.ReadFull(r, raw[:]); err != nil {
			return nil, fmt.Errorf("%w: reading header length: %v", ErrShortRead, err)
		}
		n := binary.LittleEndian.Uint32(raw[:])
		if n > maxHeaderLen {
			return nil, fmt.Errorf("%w: header length %d exceeds %d", ErrMalformedHeader, n, maxHeaderLen)
		}
		headerLen = int(n)
	default:
		return nil, fmt.Errorf("%w: major version %d", ErrUnsupportedVersion, version[0])
	}

	text := make([]byte, headerLen)
	if _, err := io.ReadFull(r, text); err != nil {
		return nil, fmt.Errorf("%w: reading header text: %v", ErrShortRead, err)
	}
	return ParseHeader(string(text))
}

// Read decodes one complete NPY stream. Rank-0 streams decode to a bare
// scalar of the element kind; everything else decodes to *ndarray.Array.
func Read(r io.Reader) (any, error) {
	arr, err := ReadArray(r)
	if err != nil {
		return nil, err
	}
	if len(arr.Shape()) == 0 {
		return arr.Scalar(), nil
	}
	return arr, nil
}

// ReadArray decodes one complete NPY stream into an array, boxing rank-0
// streams as rank-0 arrays.
func ReadArray(r io.Reader) (*ndarray.Array, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	return readPayload(r, h)
}

// ReadFile decodes a single .npy file. The file is closed on every exit
// path, including mid-parse failures.
func ReadFile(path string) (any, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from the caller by design
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Read(f)
}

// ReadHeaderFile reads only the header of a .npy file.
func ReadHeaderFile(path string) (*Header, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from the caller by design
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadHeader(f)
}

// readPayload reads the raw element bytes that follow a parsed header and
// normalizes them to host byte order and column-major layout.
func readPayload(r io.Reader, h *Header) (*ndarray.Array, error) {
	if err := h.Shape.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	if n := h.Shape.NumElements(); n > math.MaxInt/h.DType.Size() {
		return nil, fmt.Errorf("%w: payload of %d elements overflows", ErrMalformedHeader, n)
	}

	buf := make([]byte, h.NumBytes())
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: reading %d payload bytes: %v", ErrShortRead, len(buf), err)
	}

	if h.Order != ndarray.NoOrder && h.Order != ndarray.HostOrder {
		byteSwap(buf, h.DType.SwapSize())
	}
	if !h.Fortran && len(h.Shape) >= 2 {
		buf = rowToColMajor(buf, h.Shape, h.DType.Size())
	}
	return ndarray.FromBytes(h.DType, h.Shape, buf)
}

// byteSwap reverses each width-sized group in buf in place.
func byteSwap(buf []byte, width int) {
	for i := 0; i < len(buf); i += width {
		for l, r := i, i+width-1; l < r; l, r = l+1, r-1 {
			buf[l], buf[r] = buf[r], buf[l]
		}
	}
}
