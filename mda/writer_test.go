package mda

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterFillsByColumn(t *testing.T) {
	path := tempPath(t)
	w, err := Create(path, Float32, 2, 3)
	require.NoError(t, err)
	require.Equal(t, []int64{2, 3}, w.Header().Dims)

	col := func(a, b float32) *Array {
		arr, err := NewFloat32Array([]float32{a, b}, 2, 1)
		require.NoError(t, err)
		return arr
	}

	// Columns land out of order; the layout is fixed at creation.
	require.NoError(t, w.WriteChunk2D(col(3, 6), 0, 2))
	require.NoError(t, w.WriteChunk2D(col(1, 4), 0, 0))
	require.NoError(t, w.WriteChunk2D(col(2, 5), 0, 1))
	require.NoError(t, w.Close())

	back, err := ReadFile(path)
	require.NoError(t, err)
	got, err := back.Float32s()
	require.NoError(t, err)
	require.Equal(t, []float32{1, 4, 2, 5, 3, 6}, got)
}

func TestWriterPartialFillLeavesZeros(t *testing.T) {
	path := tempPath(t)
	w, err := Create(path, Int32, 5)
	require.NoError(t, err)

	arr, err := NewInt32Array([]int32{7, 8}, 2)
	require.NoError(t, err)
	require.NoError(t, w.WriteChunk1D(arr, 1))
	require.NoError(t, w.Close())

	back, err := ReadFile(path)
	require.NoError(t, err)
	got, err := back.Int32s()
	require.NoError(t, err)
	require.Equal(t, []int32{0, 7, 8, 0, 0}, got)
}

func TestWriterThreeDimensional(t *testing.T) {
	path := tempPath(t)
	w, err := Create(path, Uint8, 2, 2, 2)
	require.NoError(t, err)

	plane := func(vals ...uint8) *Array {
		arr, err := NewUint8Array(vals, 2, 2, 1)
		require.NoError(t, err)
		return arr
	}
	require.NoError(t, w.WriteChunk3D(plane(5, 6, 7, 8), 0, 0, 1))
	require.NoError(t, w.WriteChunk3D(plane(1, 2, 3, 4), 0, 0, 0))
	require.NoError(t, w.Close())

	back, err := ReadFile(path)
	require.NoError(t, err)
	got, err := back.Uint8s()
	require.NoError(t, err)
	require.Equal(t, []uint8{1, 2, 3, 4, 5, 6, 7, 8}, got)
}

func TestWriterRejectsWrongType(t *testing.T) {
	path := tempPath(t)
	w, err := Create(path, Float32, 4)
	require.NoError(t, err)
	defer w.Close()

	arr, err := NewInt32Array([]int32{1, 2}, 2)
	require.NoError(t, err)
	require.ErrorIs(t, w.WriteChunk1D(arr, 0), ErrTypeMismatch)
}

func TestWriterRejectsOutOfBounds(t *testing.T) {
	path := tempPath(t)
	w, err := Create(path, Float32, 4)
	require.NoError(t, err)
	defer w.Close()

	arr, err := NewFloat32Array([]float32{1, 2}, 2)
	require.NoError(t, err)
	require.ErrorIs(t, w.WriteChunk1D(arr, 3), ErrOutOfBounds)
	require.ErrorIs(t, w.WriteChunk1D(arr, -1), ErrOutOfBounds)

	// Offsets near the int64 limit must not wrap past the bounds check.
	require.ErrorIs(t, w.WriteChunk1D(arr, math.MaxInt64-1), ErrOutOfBounds)
}

func TestWriterRejectsPartialFirstAxis(t *testing.T) {
	path := tempPath(t)
	w, err := Create(path, Float32, 2, 3)
	require.NoError(t, err)
	defer w.Close()

	arr, err := NewFloat32Array([]float32{1}, 1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, w.WriteChunk2D(arr, 0, 0), ErrShapeMismatch)
}

func TestWriterClosed(t *testing.T) {
	path := tempPath(t)
	w, err := Create(path, Float32, 2)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	arr, err := NewFloat32Array([]float32{1, 2}, 2)
	require.NoError(t, err)
	require.ErrorIs(t, w.WriteChunk1D(arr, 0), ErrClosed)
}

func TestWriterFileReadableWhileOpen(t *testing.T) {
	// The header and sizing are on disk from creation, so a zero-filled
	// file is already well-formed before any chunk lands.
	path := tempPath(t)
	w, err := Create(path, Int16, 3, 2)
	require.NoError(t, err)
	defer w.Close()

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()
	require.Equal(t, []int64{3, 2}, r.Dims())

	chunk, err := r.ReadChunk1D(context.Background(), 0, 6)
	require.NoError(t, err)
	got, err := chunk.Int16s()
	require.NoError(t, err)
	require.Equal(t, make([]int16, 6), got)
}
