package npy

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgo-ml/npyz/internal/ndarray"
)

var allTypes = []ndarray.DataType{
	ndarray.Bool, ndarray.Int8, ndarray.Int16, ndarray.Int32, ndarray.Int64,
	ndarray.Uint8, ndarray.Uint16, ndarray.Uint32, ndarray.Uint64,
	ndarray.Half, ndarray.Float32, ndarray.Float64,
	ndarray.Complex64, ndarray.Complex128,
}

// patternArray builds a deterministic array of the given type and shape.
func patternArray(t *testing.T, dt ndarray.DataType, shape ndarray.Shape) *ndarray.Array {
	t.Helper()
	raw := make([]byte, shape.NumElements()*dt.Size())
	for i := range raw {
		b := byte(i*37 + 11)
		if dt == ndarray.Bool {
			b &= 1
		}
		raw[i] = b
	}
	arr, err := ndarray.FromBytes(dt, shape, raw)
	require.NoError(t, err)
	return arr
}

func TestRoundTripAllTypesAllRanks(t *testing.T) {
	shapes := []ndarray.Shape{{}, {5}, {2, 3}, {2, 3, 4}}
	for _, dt := range allTypes {
		for _, shape := range shapes {
			arr := patternArray(t, dt, shape)

			var buf bytes.Buffer
			require.NoError(t, WriteArray(&buf, arr), "%v %v", dt, shape)

			back, err := ReadArray(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err, "%v %v", dt, shape)
			assert.True(t, arr.Equal(back), "bit-for-bit round trip for %v %v", dt, shape)
		}
	}
}

func TestWriteEmitsFortranHostOrder(t *testing.T) {
	arr, err := ndarray.New(ndarray.Shape{2, 2}, []int32{1, 2, 3, 4})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteArray(&buf, arr))

	h, err := ReadHeader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.True(t, h.Fortran, "writers always emit first-axis-fastest")
	assert.Equal(t, ndarray.HostOrder, h.Order)
}

func TestRoundTripVector(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []float64{1.0, 1.0, 1.0}))

	v, err := Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	arr, ok := v.(*ndarray.Array)
	require.True(t, ok)
	assert.Equal(t, []float64{1.0, 1.0, 1.0}, arr.AsFloat64())
	assert.Equal(t, ndarray.Shape{3}, arr.Shape())
}

func TestRoundTripScalar(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, 3))

	v, err := Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, int64(3), v, "rank 0 decodes to a bare scalar, not a one-element array")
}

// buildStream assembles a version-1 stream by hand from a raw dict literal
// and payload bytes.
func buildStream(t *testing.T, dict string, payload []byte) []byte {
	t.Helper()
	prefix := MagicLen + VersionLen + LenFieldV1
	padded := alignUp(prefix+len(dict)+1, HeaderAlignment) - prefix

	text := make([]byte, padded)
	copy(text, dict)
	for i := len(dict); i < padded-1; i++ {
		text[i] = ' '
	}
	text[padded-1] = '\n'

	var buf bytes.Buffer
	buf.WriteString(MagicBytes)
	buf.Write([]byte{1, 0})
	var lenField [LenFieldV1]byte
	binary.LittleEndian.PutUint16(lenField[:], uint16(padded))
	buf.Write(lenField[:])
	buf.Write(text)
	buf.Write(payload)
	return buf.Bytes()
}

func TestDecodeRowMajorStream(t *testing.T) {
	// 2x3 int32 in row-major order: [[1 2 3] [4 5 6]].
	payload := make([]byte, 24)
	for i, v := range []int32{1, 2, 3, 4, 5, 6} {
		binary.LittleEndian.PutUint32(payload[i*4:], uint32(v))
	}
	stream := buildStream(t, "{'descr': '<i4', 'fortran_order': False, 'shape': (2, 3), }", payload)

	v, err := Read(bytes.NewReader(stream))
	require.NoError(t, err)
	arr := v.(*ndarray.Array)

	require.Equal(t, ndarray.Shape{2, 3}, arr.Shape())
	assert.Equal(t, int32(1), arr.At(0, 0), "first payload element")
	assert.Equal(t, int32(3), arr.At(0, 2))
	assert.Equal(t, int32(4), arr.At(1, 0))
	assert.Equal(t, int32(6), arr.At(1, 2), "last payload element")
}

func TestLayoutEquivalence(t *testing.T) {
	// The same logical 2x3 array, once written natively (fortran) and once
	// hand-built as a row-major stream, decodes to the same value.
	native, err := ndarray.New(ndarray.Shape{2, 3}, []int32{1, 4, 2, 5, 3, 6})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteArray(&buf, native))
	fromFortran, err := ReadArray(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	payload := make([]byte, 24)
	for i, v := range []int32{1, 2, 3, 4, 5, 6} {
		binary.LittleEndian.PutUint32(payload[i*4:], uint32(v))
	}
	stream := buildStream(t, "{'descr': '<i4', 'fortran_order': False, 'shape': (2, 3), }", payload)
	fromC, err := ReadArray(bytes.NewReader(stream))
	require.NoError(t, err)

	assert.True(t, fromFortran.Equal(fromC))
}

func TestDecodeBigEndianStream(t *testing.T) {
	payload := make([]byte, 8)
	binary.BigEndian.PutUint32(payload[0:], 0x01020304)
	binary.BigEndian.PutUint32(payload[4:], 0x0A0B0C0D)
	stream := buildStream(t, "{'descr': '>u4', 'fortran_order': True, 'shape': (2,), }", payload)

	v, err := Read(bytes.NewReader(stream))
	require.NoError(t, err)
	arr := v.(*ndarray.Array)
	assert.Equal(t, []uint32{0x01020304, 0x0A0B0C0D}, arr.AsUint32(),
		"payload converted from file byte order to native")
}

func TestDecodeForeignOrderComplex(t *testing.T) {
	// Complex elements byte-swap per component, not across the whole
	// 16-byte element.
	want := complex(1.5, -2.25)
	payload := make([]byte, 16)
	binary.BigEndian.PutUint64(payload[0:], uint64(0x3FF8000000000000))  // 1.5
	binary.BigEndian.PutUint64(payload[8:], uint64(0xC002000000000000))  // -2.25
	stream := buildStream(t, "{'descr': '>c16', 'fortran_order': True, 'shape': (), }", payload)

	v, err := Read(bytes.NewReader(stream))
	require.NoError(t, err)
	assert.Equal(t, want, v)
}

func TestRoundTripZeroLengthAxis(t *testing.T) {
	arr, err := ndarray.Zeros(ndarray.Float64, ndarray.Shape{0, 4})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteArray(&buf, arr))
	back, err := ReadArray(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.True(t, arr.Equal(back))
}

func TestWriteUnsupportedValue(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Write(&buf, "strings are not arrays"), ndarray.ErrUnsupportedType)
	assert.ErrorIs(t, Write(&buf, map[string]int{}), ndarray.ErrUnsupportedType)
}
