package ndarray

import "errors"

// Common errors.
var (
	ErrUnsupportedType = errors.New("unsupported element type")
	ErrInvalidShape    = errors.New("invalid shape")
	ErrSizeMismatch    = errors.New("data length does not match shape")
)
