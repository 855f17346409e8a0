package npy

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgo-ml/npyz/internal/ndarray"
)

func TestMarshalExactText(t *testing.T) {
	h := &Header{DType: ndarray.Float64, Fortran: true, Shape: ndarray.Shape{3}}
	text, major, err := h.marshal()
	require.NoError(t, err)
	assert.EqualValues(t, 1, major)

	c := string(ndarray.HostOrder.Char())
	want := fmt.Sprintf("{'descr': '%sf8', 'fortran_order': True, 'shape': (3,), }", c)
	assert.Equal(t, want, strings.TrimRight(string(text), " \n"))
	assert.Equal(t, byte('\n'), text[len(text)-1])
}

func TestMarshalShapeForms(t *testing.T) {
	cases := []struct {
		shape ndarray.Shape
		want  string
	}{
		{ndarray.Shape{}, "'shape': ()"},
		{ndarray.Shape{3}, "'shape': (3,)"},
		{ndarray.Shape{2, 3}, "'shape': (2, 3,)"},
		{ndarray.Shape{4, 5, 6}, "'shape': (4, 5, 6,)"},
	}
	for _, c := range cases {
		h := &Header{DType: ndarray.Int32, Fortran: true, Shape: c.shape}
		text, _, err := h.marshal()
		require.NoError(t, err)
		assert.Contains(t, string(text), c.want, "shape %v", c.shape)
	}
}

func TestMarshalAlignment(t *testing.T) {
	shapes := []ndarray.Shape{
		{}, {1}, {3}, {100}, {2, 3}, {10, 20, 30}, {1, 1, 1, 1, 1, 1, 1},
		{123456789, 987654321, 42},
	}
	types := []ndarray.DataType{
		ndarray.Bool, ndarray.Int32, ndarray.Half, ndarray.Complex128,
	}
	for _, dt := range types {
		for _, shape := range shapes {
			h := &Header{DType: dt, Fortran: true, Shape: shape}
			text, major, err := h.marshal()
			require.NoError(t, err)

			lenField := LenFieldV1
			if major == 2 {
				lenField = LenFieldV2
			}
			total := MagicLen + VersionLen + lenField + len(text)
			assert.Zerof(t, total%HeaderAlignment,
				"prefix %d not 16-byte aligned for %v %v", total, dt, shape)
		}
	}
}

func TestMarshalVersion2ForHugeHeaders(t *testing.T) {
	// A rank high enough to overflow the uint16 length field forces the
	// 32-bit length field of version 2.
	shape := make(ndarray.Shape, 25000)
	for i := range shape {
		shape[i] = 1
	}
	h := &Header{DType: ndarray.Float32, Fortran: true, Shape: shape}
	text, major, err := h.marshal()
	require.NoError(t, err)
	assert.EqualValues(t, 2, major)
	assert.Greater(t, len(text), maxHeaderV1)

	total := MagicLen + VersionLen + LenFieldV2 + len(text)
	assert.Zero(t, total%HeaderAlignment)
}

func TestMarshalParseRoundTrip(t *testing.T) {
	h := &Header{DType: ndarray.Complex64, Fortran: true, Shape: ndarray.Shape{7, 1, 9}}
	text, _, err := h.marshal()
	require.NoError(t, err)

	back, err := ParseHeader(string(text))
	require.NoError(t, err)
	assert.Equal(t, h.DType, back.DType)
	assert.Equal(t, h.Fortran, back.Fortran)
	assert.Equal(t, h.Shape, back.Shape)
	assert.Equal(t, ndarray.HostOrder, back.Order)
}

func TestHeaderNumBytes(t *testing.T) {
	h := &Header{DType: ndarray.Int16, Shape: ndarray.Shape{2, 3}}
	assert.Equal(t, 12, h.NumBytes())

	scalar := &Header{DType: ndarray.Float64, Shape: ndarray.Shape{}}
	assert.Equal(t, 8, scalar.NumBytes())
}
