package npy

import "github.com/numgo-ml/npyz/internal/ndarray"

// rowToColMajor reorders a last-axis-fastest (row-major) element buffer
// into first-axis-fastest order for the same shape. Equivalent to viewing
// the buffer under the reversed shape and permuting the axes back.
func rowToColMajor(src []byte, shape ndarray.Shape, width int) []byte {
	dst := make([]byte, len(src))
	rowStrides := shape.RowMajorStrides()
	idx := make([]int, len(shape))

	n := shape.NumElements()
	srcEl := 0
	for out := 0; out < n; out++ {
		copy(dst[out*width:(out+1)*width], src[srcEl*width:(srcEl+1)*width])

		// Advance idx in column-major order, keeping srcEl in step.
		for d := 0; d < len(idx); d++ {
			idx[d]++
			srcEl += rowStrides[d]
			if idx[d] < shape[d] {
				break
			}
			idx[d] = 0
			srcEl -= shape[d] * rowStrides[d]
		}
	}
	return dst
}
