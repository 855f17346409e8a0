package ndarray

// Element is a constraint for Go types that can back an array element.
// Float16 has no native Go type; it is represented by the named Float16
// type, whose underlying type is uint16.
type Element interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// DataType represents runtime type information for array elements.
type DataType int

// Supported element data types.
const (
	Bool DataType = iota
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Half
	Float32
	Float64
	Complex64
	Complex128
)

// Size returns the byte width of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Bool, Int8, Uint8:
		return 1
	case Int16, Uint16, Half:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		panic("unknown data type")
	}
}

// SwapSize returns the width of the smallest independently byte-swapped
// unit of the data type. Complex kinds swap each component separately.
func (dt DataType) SwapSize() int {
	switch dt {
	case Complex64, Complex128:
		return dt.Size() / 2
	default:
		return dt.Size()
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Half:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// TypeFor infers the DataType for a generic element type T.
func TypeFor[T Element]() (DataType, error) {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool, nil
	case int8:
		return Int8, nil
	case int16:
		return Int16, nil
	case int32:
		return Int32, nil
	case int64:
		return Int64, nil
	case uint8:
		return Uint8, nil
	case uint16:
		return Uint16, nil
	case uint32:
		return Uint32, nil
	case uint64:
		return Uint64, nil
	case Float16:
		return Half, nil
	case float32:
		return Float32, nil
	case float64:
		return Float64, nil
	case complex64:
		return Complex64, nil
	case complex128:
		return Complex128, nil
	default:
		return 0, ErrUnsupportedType
	}
}
