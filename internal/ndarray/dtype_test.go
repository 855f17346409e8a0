package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allTypes = []DataType{
	Bool, Int8, Int16, Int32, Int64,
	Uint8, Uint16, Uint32, Uint64,
	Half, Float32, Float64, Complex64, Complex128,
}

func TestRegistryBijection(t *testing.T) {
	for _, dt := range allTypes {
		code, err := CodeOf(dt)
		require.NoError(t, err, "CodeOf(%v)", dt)

		back, err := TypeOf(code)
		require.NoError(t, err, "TypeOf(%q)", code)
		assert.Equal(t, dt, back, "round trip through code %q", code)
	}
}

func TestRegistryCoversAllCodes(t *testing.T) {
	codes := map[string]DataType{
		"b1": Bool, "i1": Int8, "i2": Int16, "i4": Int32, "i8": Int64,
		"u1": Uint8, "u2": Uint16, "u4": Uint32, "u8": Uint64,
		"f2": Half, "f4": Float32, "f8": Float64,
		"c8": Complex64, "c16": Complex128,
	}
	require.Len(t, codes, 14)
	for code, want := range codes {
		dt, err := TypeOf(code)
		require.NoError(t, err)
		assert.Equal(t, want, dt)
	}
}

func TestTypeOfUnknownCode(t *testing.T) {
	_, err := TypeOf("f16")
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = TypeOf("")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestDataTypeSize(t *testing.T) {
	sizes := map[DataType]int{
		Bool: 1, Int8: 1, Uint8: 1,
		Int16: 2, Uint16: 2, Half: 2,
		Int32: 4, Uint32: 4, Float32: 4,
		Int64: 8, Uint64: 8, Float64: 8,
		Complex64: 8, Complex128: 16,
	}
	for dt, want := range sizes {
		assert.Equal(t, want, dt.Size(), "size of %v", dt)
	}
}

func TestSwapSize(t *testing.T) {
	assert.Equal(t, 4, Complex64.SwapSize())
	assert.Equal(t, 8, Complex128.SwapSize())
	assert.Equal(t, 8, Float64.SwapSize())
	assert.Equal(t, 1, Bool.SwapSize())
}

func TestDescr(t *testing.T) {
	// One-byte kinds never carry a byte order.
	d, err := Descr(Bool)
	require.NoError(t, err)
	assert.Equal(t, "|b1", d)

	d, err = Descr(Float64)
	require.NoError(t, err)
	assert.Equal(t, string(HostOrder.Char())+"f8", d)
}

func TestOrderOf(t *testing.T) {
	for c, want := range map[byte]ByteOrder{'<': LittleEndian, '>': BigEndian, '|': NoOrder} {
		got, ok := OrderOf(c)
		require.True(t, ok)
		assert.Equal(t, want, got)
		assert.Equal(t, c, got.Char())
	}
	_, ok := OrderOf('=')
	assert.False(t, ok)
}
