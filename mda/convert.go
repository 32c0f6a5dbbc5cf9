package mda

// Conversion between raw little-endian element buffers and Go slices.
// The stored element type is authoritative for decode; values are
// reinterpreted by byte width, never coerced implicitly.

import (
	"encoding/binary"
	"fmt"
	"math"
)

// NewUint8Array builds a Uint8 array from values in column-major flat order.
func NewUint8Array(values []uint8, dims ...int64) (*Array, error) {
	data := make([]byte, len(values))
	copy(data, values)
	return NewArrayFromBytes(Uint8, data, dims...)
}

// NewFloat32Array builds a Float32 array from values in column-major flat order.
func NewFloat32Array(values []float32, dims ...int64) (*Array, error) {
	data := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(v))
	}
	return NewArrayFromBytes(Float32, data, dims...)
}

// NewInt16Array builds an Int16 array from values in column-major flat order.
func NewInt16Array(values []int16, dims ...int64) (*Array, error) {
	data := make([]byte, 2*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(v))
	}
	return NewArrayFromBytes(Int16, data, dims...)
}

// NewInt32Array builds an Int32 array from values in column-major flat order.
func NewInt32Array(values []int32, dims ...int64) (*Array, error) {
	data := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(data[i*4:], uint32(v))
	}
	return NewArrayFromBytes(Int32, data, dims...)
}

// NewUint16Array builds a Uint16 array from values in column-major flat order.
func NewUint16Array(values []uint16, dims ...int64) (*Array, error) {
	data := make([]byte, 2*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint16(data[i*2:], v)
	}
	return NewArrayFromBytes(Uint16, data, dims...)
}

// NewFloat64Array builds a Float64 array from values in column-major flat order.
func NewFloat64Array(values []float64, dims ...int64) (*Array, error) {
	data := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(data[i*8:], math.Float64bits(v))
	}
	return NewArrayFromBytes(Float64, data, dims...)
}

// NewUint32Array builds a Uint32 array from values in column-major flat order.
func NewUint32Array(values []uint32, dims ...int64) (*Array, error) {
	data := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(data[i*4:], v)
	}
	return NewArrayFromBytes(Uint32, data, dims...)
}

func (a *Array) requireType(dt DataType) error {
	if a.dtype != dt {
		return fmt.Errorf("%w: array holds %s, requested %s", ErrTypeMismatch, a.dtype, dt)
	}
	return nil
}

// Uint8s returns the elements as a flat column-major slice.
func (a *Array) Uint8s() ([]uint8, error) {
	if err := a.requireType(Uint8); err != nil {
		return nil, err
	}
	out := make([]uint8, len(a.data))
	copy(out, a.data)
	return out, nil
}

// Float32s returns the elements as a flat column-major slice.
func (a *Array) Float32s() ([]float32, error) {
	if err := a.requireType(Float32); err != nil {
		return nil, err
	}
	out := make([]float32, len(a.data)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(a.data[i*4:]))
	}
	return out, nil
}

// Int16s returns the elements as a flat column-major slice.
func (a *Array) Int16s() ([]int16, error) {
	if err := a.requireType(Int16); err != nil {
		return nil, err
	}
	out := make([]int16, len(a.data)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(a.data[i*2:]))
	}
	return out, nil
}

// Int32s returns the elements as a flat column-major slice.
func (a *Array) Int32s() ([]int32, error) {
	if err := a.requireType(Int32); err != nil {
		return nil, err
	}
	out := make([]int32, len(a.data)/4)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(a.data[i*4:]))
	}
	return out, nil
}

// Uint16s returns the elements as a flat column-major slice.
func (a *Array) Uint16s() ([]uint16, error) {
	if err := a.requireType(Uint16); err != nil {
		return nil, err
	}
	out := make([]uint16, len(a.data)/2)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(a.data[i*2:])
	}
	return out, nil
}

// Float64s returns the elements as a flat column-major slice.
func (a *Array) Float64s() ([]float64, error) {
	if err := a.requireType(Float64); err != nil {
		return nil, err
	}
	out := make([]float64, len(a.data)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(a.data[i*8:]))
	}
	return out, nil
}

// Uint32s returns the elements as a flat column-major slice.
func (a *Array) Uint32s() ([]uint32, error) {
	if err := a.requireType(Uint32); err != nil {
		return nil, err
	}
	out := make([]uint32, len(a.data)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(a.data[i*4:])
	}
	return out, nil
}

// valueAt decodes element i as a float64, the widest common carrier.
func valueAt(a *Array, i int64) float64 {
	w := int64(a.dtype.Size())
	b := a.data[i*w:]
	switch a.dtype {
	case Uint8:
		return float64(b[0])
	case Float32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	case Int16:
		return float64(int16(binary.LittleEndian.Uint16(b)))
	case Int32:
		return float64(int32(binary.LittleEndian.Uint32(b)))
	case Uint16:
		return float64(binary.LittleEndian.Uint16(b))
	case Float64:
		return math.Float64frombits(binary.LittleEndian.Uint64(b))
	case Uint32:
		return float64(binary.LittleEndian.Uint32(b))
	}
	panic(fmt.Sprintf("mda: invalid DataType %d", int(a.dtype)))
}

// setValueAt encodes v into element i of a, truncating toward zero for
// integer element types.
func setValueAt(a *Array, i int64, v float64) {
	w := int64(a.dtype.Size())
	b := a.data[i*w:]
	switch a.dtype {
	case Uint8:
		b[0] = uint8(v)
	case Float32:
		binary.LittleEndian.PutUint32(b, math.Float32bits(float32(v)))
	case Int16:
		binary.LittleEndian.PutUint16(b, uint16(int16(v)))
	case Int32:
		binary.LittleEndian.PutUint32(b, uint32(int32(v)))
	case Uint16:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case Float64:
		binary.LittleEndian.PutUint64(b, math.Float64bits(v))
	case Uint32:
		binary.LittleEndian.PutUint32(b, uint32(v))
	default:
		panic(fmt.Sprintf("mda: invalid DataType %d", int(a.dtype)))
	}
}
