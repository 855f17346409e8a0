package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeNumElements(t *testing.T) {
	assert.Equal(t, 1, Shape{}.NumElements(), "empty product is 1 (scalar)")
	assert.Equal(t, 3, Shape{3}.NumElements())
	assert.Equal(t, 6, Shape{2, 3}.NumElements())
	assert.Equal(t, 0, Shape{2, 0, 3}.NumElements())
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, Shape{}.Validate())
	assert.NoError(t, Shape{0}.Validate(), "zero-length axes are allowed")
	assert.NoError(t, Shape{2, 3}.Validate())
	assert.ErrorIs(t, Shape{2, -1}.Validate(), ErrInvalidShape)
}

func TestShapeValidateOverflow(t *testing.T) {
	// 2^62 * 3 overflows int64 into a negative count; 2^62 * 4 wraps all
	// the way to zero. Both must be rejected, not computed modulo 2^64.
	assert.ErrorIs(t, Shape{1 << 62, 3}.Validate(), ErrInvalidShape)
	assert.ErrorIs(t, Shape{1 << 62, 4}.Validate(), ErrInvalidShape)
	assert.ErrorIs(t, Shape{1 << 31, 1 << 31, 4}.Validate(), ErrInvalidShape)
}

func TestShapeStrides(t *testing.T) {
	s := Shape{2, 3, 4}
	assert.Equal(t, []int{1, 2, 6}, s.ColMajorStrides())
	assert.Equal(t, []int{12, 4, 1}, s.RowMajorStrides())

	assert.Empty(t, Shape{}.ColMajorStrides())
	assert.Empty(t, Shape{}.RowMajorStrides())
}

func TestShapeEqualClone(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	assert.True(t, s.Equal(c))
	c[0] = 9
	assert.False(t, s.Equal(c), "clone does not share backing storage")
	assert.False(t, s.Equal(Shape{2}))
}
