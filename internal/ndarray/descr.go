package ndarray

import (
	"fmt"
	"unsafe"
)

// ByteOrder identifies the byte order of multi-byte elements in a stream.
type ByteOrder int

// Byte orders. NoOrder is used for one-byte kinds, where order does not
// apply.
const (
	LittleEndian ByteOrder = iota
	BigEndian
	NoOrder
)

// Char returns the descriptor prefix character for the byte order.
func (o ByteOrder) Char() byte {
	switch o {
	case LittleEndian:
		return '<'
	case BigEndian:
		return '>'
	case NoOrder:
		return '|'
	default:
		panic("unknown byte order")
	}
}

// String returns a human-readable name for the byte order.
func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	case NoOrder:
		return "not-applicable"
	default:
		return "unknown"
	}
}

// OrderOf returns the byte order for a descriptor prefix character.
func OrderOf(c byte) (ByteOrder, bool) {
	switch c {
	case '<':
		return LittleEndian, true
	case '>':
		return BigEndian, true
	case '|':
		return NoOrder, true
	default:
		return 0, false
	}
}

// HostOrder is the byte order of multi-byte values in host memory,
// determined once at process start by inspecting a reference pattern.
var HostOrder = func() ByteOrder {
	ref := uint16(0x00FF)
	b := *(*[2]byte)(unsafe.Pointer(&ref))
	if b[0] == 0xFF {
		return LittleEndian
	}
	return BigEndian
}()

// typeCodes is the fixed table behind the type registry. The mapping is a
// bijection: every code resolves to exactly one DataType and vice versa.
// Built once before first use and never mutated.
var typeCodes = []struct {
	code string
	dt   DataType
}{
	{"b1", Bool},
	{"i1", Int8},
	{"i2", Int16},
	{"i4", Int32},
	{"i8", Int64},
	{"u1", Uint8},
	{"u2", Uint16},
	{"u4", Uint32},
	{"u8", Uint64},
	{"f2", Half},
	{"f4", Float32},
	{"f8", Float64},
	{"c8", Complex64},
	{"c16", Complex128},
}

var (
	codeToType = func() map[string]DataType {
		m := make(map[string]DataType, len(typeCodes))
		for _, e := range typeCodes {
			m[e.code] = e.dt
		}
		return m
	}()
	typeToCode = func() map[DataType]string {
		m := make(map[DataType]string, len(typeCodes))
		for _, e := range typeCodes {
			m[e.dt] = e.code
		}
		return m
	}()
)

// TypeOf resolves a type code (e.g. "f8", "i4") to its DataType.
func TypeOf(code string) (DataType, error) {
	dt, ok := codeToType[code]
	if !ok {
		return 0, fmt.Errorf("%w: type code %q", ErrUnsupportedType, code)
	}
	return dt, nil
}

// CodeOf resolves a DataType to its type code.
func CodeOf(dt DataType) (string, error) {
	code, ok := typeToCode[dt]
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedType, dt)
	}
	return code, nil
}

// Descr returns the full descriptor string for a DataType as written by
// this host: the host endian character followed by the type code, or '|'
// for one-byte kinds.
func Descr(dt DataType) (string, error) {
	code, err := CodeOf(dt)
	if err != nil {
		return "", err
	}
	order := HostOrder
	if dt.Size() == 1 {
		order = NoOrder
	}
	return string(order.Char()) + code, nil
}
