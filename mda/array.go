package mda

import (
	"fmt"

	"github.com/spikekit/go-mda/internal/conv"
)

// Array is an in-memory dense multi-dimensional numeric array. The
// backing buffer holds raw little-endian elements in column-major order
// (first index varies fastest), identical to the on-disk layout, so the
// flat index of element (i1, i2, i3) is i1 + N1*i2 + N1*N2*i3.
type Array struct {
	dtype DataType
	dims  []int64
	data  []byte
}

// NewArray returns a zero-filled array of the given type and shape.
func NewArray(dt DataType, dims ...int64) (*Array, error) {
	h, err := NewHeader(dt, dims)
	if err != nil {
		return nil, err
	}
	size, err := h.DataSize()
	if err != nil {
		return nil, err
	}
	n, err := conv.Int64ToInt(size)
	if err != nil {
		return nil, err
	}
	return &Array{dtype: dt, dims: h.Dims, data: make([]byte, n)}, nil
}

// NewArrayFromBytes wraps raw column-major element data without
// copying. The data length must be exactly the element count times the
// element width.
func NewArrayFromBytes(dt DataType, data []byte, dims ...int64) (*Array, error) {
	h, err := NewHeader(dt, dims)
	if err != nil {
		return nil, err
	}
	want, err := h.DataSize()
	if err != nil {
		return nil, err
	}
	if int64(len(data)) != want {
		return nil, fmt.Errorf("%w: %d data bytes for %s array of shape %v (want %d)",
			ErrShapeMismatch, len(data), dt, dims, want)
	}
	return &Array{dtype: dt, dims: h.Dims, data: data}, nil
}

// DataType returns the element type.
func (a *Array) DataType() DataType {
	return a.dtype
}

// Dims returns a copy of the dimension sizes.
func (a *Array) Dims() []int64 {
	return append([]int64(nil), a.dims...)
}

// Dim returns the size of dimension i.
func (a *Array) Dim(i int) int64 {
	return a.dims[i]
}

// NumDims returns the number of dimensions.
func (a *Array) NumDims() int {
	return len(a.dims)
}

// NumElements returns the total element count.
func (a *Array) NumElements() int64 {
	n, _ := conv.ProductInt64(a.dims)
	return n
}

// Bytes returns the backing buffer in column-major order. The slice is
// not a copy; mutating it mutates the array.
func (a *Array) Bytes() []byte {
	return a.data
}

// FlatIndex converts multi-axis coordinates to the column-major flat
// index, with the first coordinate varying fastest.
func (a *Array) FlatIndex(idx ...int64) (int64, error) {
	if len(idx) != len(a.dims) {
		return 0, fmt.Errorf("%w: %d coordinates for %d dimensions", ErrDimensionMismatch, len(idx), len(a.dims))
	}
	flat := int64(0)
	stride := int64(1)
	for k, i := range idx {
		if i < 0 || i >= a.dims[k] {
			return 0, fmt.Errorf("%w: coordinate %d on axis %d of size %d", ErrOutOfBounds, i, k, a.dims[k])
		}
		flat += i * stride
		stride *= a.dims[k]
	}
	return flat, nil
}

// AsType returns a copy of the array converted element-wise to the
// given type. Integer targets truncate toward zero, matching a raw
// numeric cast.
func (a *Array) AsType(dt DataType) (*Array, error) {
	if dt == a.dtype {
		out, err := NewArray(a.dtype, a.dims...)
		if err != nil {
			return nil, err
		}
		copy(out.data, a.data)
		return out, nil
	}
	out, err := NewArray(dt, a.dims...)
	if err != nil {
		return nil, err
	}
	n := a.NumElements()
	for i := int64(0); i < n; i++ {
		setValueAt(out, i, valueAt(a, i))
	}
	return out, nil
}
