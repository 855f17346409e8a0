package npy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/numgo-ml/npyz/internal/ndarray"
)

// Format constants.
const (
	MagicBytes = "\x93NUMPY"
	MagicLen   = 6
	VersionLen = 2 // major, minor

	// Prefix alignment: magic + version + length field + header text is
	// padded to a multiple of 16 bytes.
	HeaderAlignment = 16

	// Length field width per major version.
	LenFieldV1 = 2 // uint16 LE
	LenFieldV2 = 4 // uint32 LE

	maxHeaderV1 = 1<<16 - 1

	// Upper bound on a declared header text length, bounding the
	// allocation a hostile version-2 length field can force.
	maxHeaderLen = 1 << 24
)

// Header describes one NPY stream: element type, stream byte order,
// memory layout, and shape. A Header is parsed fresh on every read and
// built fresh on every write; it is never cached across arrays.
type Header struct {
	DType   ndarray.DataType
	Order   ndarray.ByteOrder
	Fortran bool
	Shape   ndarray.Shape
}

// NumBytes returns the payload size in bytes implied by the header.
func (h *Header) NumBytes() int {
	return h.Shape.NumElements() * h.DType.Size()
}

// marshal serializes the header to its exact textual form, space-padded
// with a trailing newline so the total stream prefix is 16-byte aligned,
// and returns the text together with the major version required to carry
// it (1 unless the text overflows the uint16 length field).
//
// The endian character in the descriptor always reflects the host byte
// order; this is not configurable per call.
func (h *Header) marshal() (text []byte, major byte, err error) {
	descr, err := ndarray.Descr(h.DType)
	if err != nil {
		return nil, 0, err
	}

	fortran := "False"
	if h.Fortran {
		fortran = "True"
	}

	var shape strings.Builder
	shape.WriteByte('(')
	for _, dim := range h.Shape {
		shape.WriteString(strconv.Itoa(dim))
		shape.WriteString(", ")
	}
	raw := shape.String()
	if len(h.Shape) > 0 {
		// Tuple-literal convention: every non-empty shape keeps a
		// trailing comma, "(3,)" and "(2, 3,)".
		raw = strings.TrimSuffix(raw, " ")
	}
	raw += ")"

	dict := fmt.Sprintf("{'descr': '%s', 'fortran_order': %s, 'shape': %s, }",
		descr, fortran, raw)

	major = 1
	prefix := MagicLen + VersionLen + LenFieldV1
	padded := alignUp(prefix+len(dict)+1, HeaderAlignment) - prefix
	if padded > maxHeaderV1 {
		major = 2
		prefix = MagicLen + VersionLen + LenFieldV2
		padded = alignUp(prefix+len(dict)+1, HeaderAlignment) - prefix
	}

	text = make([]byte, padded)
	copy(text, dict)
	for i := len(dict); i < padded-1; i++ {
		text[i] = ' '
	}
	text[padded-1] = '\n'
	return text, major, nil
}

// alignUp rounds n up to the next multiple of align.
func alignUp(n, align int) int {
	return (n + align - 1) / align * align
}
