package npy

import (
	"fmt"

	"github.com/numgo-ml/npyz/internal/ndarray"
)

// fromValue normalizes a caller-supplied value to an array. Bare scalars
// become rank-0 arrays; slices become one-dimensional arrays. Go's int
// and uint map to the 64-bit kinds.
//
//nolint:gocyclo,cyclop // One case per supported element kind
func fromValue(v any) (*ndarray.Array, error) {
	switch x := v.(type) {
	case *ndarray.Array:
		return x, nil

	case bool:
		return ndarray.FromScalar(x)
	case int8:
		return ndarray.FromScalar(x)
	case int16:
		return ndarray.FromScalar(x)
	case int32:
		return ndarray.FromScalar(x)
	case int64:
		return ndarray.FromScalar(x)
	case int:
		return ndarray.FromScalar(int64(x))
	case uint8:
		return ndarray.FromScalar(x)
	case uint16:
		return ndarray.FromScalar(x)
	case uint32:
		return ndarray.FromScalar(x)
	case uint64:
		return ndarray.FromScalar(x)
	case uint:
		return ndarray.FromScalar(uint64(x))
	case ndarray.Float16:
		return ndarray.FromScalar(x)
	case float32:
		return ndarray.FromScalar(x)
	case float64:
		return ndarray.FromScalar(x)
	case complex64:
		return ndarray.FromScalar(x)
	case complex128:
		return ndarray.FromScalar(x)

	case []bool:
		return ndarray.FromSlice(x)
	case []int8:
		return ndarray.FromSlice(x)
	case []int16:
		return ndarray.FromSlice(x)
	case []int32:
		return ndarray.FromSlice(x)
	case []int64:
		return ndarray.FromSlice(x)
	case []int:
		widened := make([]int64, len(x))
		for i, n := range x {
			widened[i] = int64(n)
		}
		return ndarray.FromSlice(widened)
	case []uint8:
		return ndarray.FromSlice(x)
	case []uint16:
		return ndarray.FromSlice(x)
	case []uint32:
		return ndarray.FromSlice(x)
	case []uint64:
		return ndarray.FromSlice(x)
	case []uint:
		widened := make([]uint64, len(x))
		for i, n := range x {
			widened[i] = uint64(n)
		}
		return ndarray.FromSlice(widened)
	case []ndarray.Float16:
		return ndarray.FromSlice(x)
	case []float32:
		return ndarray.FromSlice(x)
	case []float64:
		return ndarray.FromSlice(x)
	case []complex64:
		return ndarray.FromSlice(x)
	case []complex128:
		return ndarray.FromSlice(x)

	default:
		return nil, fmt.Errorf("%w: %T", ndarray.ErrUnsupportedType, v)
	}
}
