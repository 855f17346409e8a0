package ndarray

import "math"

// Float16 holds the raw bits of an IEEE 754 half precision value.
// Go has no native 16-bit float, so half precision elements are carried
// as bit patterns and converted on demand.
type Float16 uint16

// Float32 converts half precision bits to float32.
func (h Float16) Float32() float32 {
	sign := uint32(h>>15) & 0x1
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h) & 0x3FF

	var bits uint32
	switch exp {
	case 0:
		if mant == 0 {
			// Zero.
			bits = sign << 31
		} else {
			// Subnormal number - normalize it.
			exp = 1
			for (mant & 0x400) == 0 {
				mant <<= 1
				exp--
			}
			mant &= 0x3FF
			bits = sign<<31 | (exp+112)<<23 | mant<<13
		}
	case 0x1F:
		// Inf or NaN.
		bits = sign<<31 | 0xFF<<23 | mant<<13
	default:
		bits = sign<<31 | (exp+112)<<23 | mant<<13
	}
	return math.Float32frombits(bits)
}

// Float16FromFloat32 converts a float32 to half precision bits,
// rounding to nearest even.
func Float16FromFloat32(f float32) Float16 {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & 0x8000
	exp := int32(bits>>23)&0xFF - 127
	mant := bits & 0x7FFFFF

	switch {
	case exp == 128:
		// Inf or NaN. Keep a non-zero mantissa for NaN.
		if mant != 0 {
			mant = 0x200
		}
		return Float16(sign | 0x7C00 | uint16(mant>>13))
	case exp > 15:
		// Overflow to Inf.
		return Float16(sign | 0x7C00)
	case exp >= -14:
		// Normal number.
		h := sign | uint16(exp+15)<<10 | uint16(mant>>13)
		if mant&0x1000 != 0 && (mant&0xFFF != 0 || mant&0x2000 != 0) {
			h++ // round to nearest even
		}
		return Float16(h)
	case exp >= -24:
		// Subnormal.
		mant |= 0x800000
		shift := uint32(-exp - 1) //nolint:gosec // exp in [-24,-15], shift in [14,23]
		h := sign | uint16(mant>>shift)
		if mant&(1<<(shift-1)) != 0 {
			h++
		}
		return Float16(h)
	default:
		// Underflow to zero.
		return Float16(sign)
	}
}
