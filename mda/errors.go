package mda

import "errors"

// Common errors
var (
	ErrUnknownTypeCode   = errors.New("unknown element type code")
	ErrInvalidDimCount   = errors.New("invalid number of dimensions")
	ErrTruncated         = errors.New("truncated input")
	ErrShapeMismatch     = errors.New("chunk shape does not match stored dimensions")
	ErrDimensionMismatch = errors.New("dimension count mismatch")
	ErrTypeMismatch      = errors.New("element type mismatch")
	ErrOutOfBounds       = errors.New("range out of bounds")
	ErrDimOverflow       = errors.New("dimension does not fit narrow header encoding")
	ErrClosed            = errors.New("handle is closed")
)
