package mda

import (
	"fmt"
	"os"

	"github.com/spikekit/go-mda/internal/conv"
)

// Writer fills an array file of a fixed shape chunk by chunk. The
// header and a zero-filled data region are laid out at creation, so
// chunks may land in any order.
//
// A Writer owns its file handle exclusively; single-writer discipline
// is the caller's responsibility.
type Writer struct {
	f      *os.File
	header *Header
	closed bool
}

// Create creates an array file of the given type and shape at path,
// replacing any existing file.
func Create(path string, dt DataType, dims ...int64) (*Writer, error) {
	h, err := NewHeader(dt, dims)
	if err != nil {
		return nil, err
	}
	size, err := h.DataSize()
	if err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating file: %w", err)
	}
	if err := h.Write(f); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("writing header: %w", err)
	}
	if err := f.Truncate(h.Size() + size); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("sizing data region: %w", err)
	}

	return &Writer{f: f, header: h}, nil
}

// Header returns the header of the file being written.
func (w *Writer) Header() *Header {
	return w.header
}

// WriteChunk1D writes arr's elements starting at flat index start.
func (w *Writer) WriteChunk1D(arr *Array, start int64) error {
	return w.writeFlat(arr, start)
}

// WriteChunk2D writes a two-dimensional block whose flat start is
// i1 + n1*i2, where n1 is arr's first dimension. The first axis must be
// written whole: arr's first dimension must equal the stored one,
// mirroring the read contract.
func (w *Writer) WriteChunk2D(arr *Array, i1, i2 int64) error {
	if w.header.NumDims() < 2 || arr.NumDims() != 2 {
		return fmt.Errorf("%w: 2-axis write of %d-dimensional block to %d-dimensional array",
			ErrDimensionMismatch, arr.NumDims(), w.header.NumDims())
	}
	n1 := arr.Dim(0)
	if n1 != w.header.Dims[0] {
		return fmt.Errorf("%w: first axis size %d, stored dimension %d", ErrShapeMismatch, n1, w.header.Dims[0])
	}
	return w.writeFlat(arr, i1+n1*i2)
}

// WriteChunk3D writes a three-dimensional block whose flat start is
// i1 + n1*i2 + n1*n2*i3. The first two axes must be written whole.
func (w *Writer) WriteChunk3D(arr *Array, i1, i2, i3 int64) error {
	if w.header.NumDims() < 3 || arr.NumDims() != 3 {
		return fmt.Errorf("%w: 3-axis write of %d-dimensional block to %d-dimensional array",
			ErrDimensionMismatch, arr.NumDims(), w.header.NumDims())
	}
	n1, n2 := arr.Dim(0), arr.Dim(1)
	if n1 != w.header.Dims[0] {
		return fmt.Errorf("%w: first axis size %d, stored dimension %d", ErrShapeMismatch, n1, w.header.Dims[0])
	}
	if n2 != w.header.Dims[1] {
		return fmt.Errorf("%w: second axis size %d, stored dimension %d", ErrShapeMismatch, n2, w.header.Dims[1])
	}
	return w.writeFlat(arr, i1+n1*i2+n1*n2*i3)
}

func (w *Writer) writeFlat(arr *Array, start int64) error {
	if w.closed {
		return ErrClosed
	}
	if arr.DataType() != w.header.DataType {
		return fmt.Errorf("%w: writing %s into %s array", ErrTypeMismatch, arr.DataType(), w.header.DataType)
	}
	// Ordered so that start+count cannot overflow int64.
	count := arr.NumElements()
	total := w.header.NumElements()
	if start < 0 || start > total || count > total-start {
		return fmt.Errorf("%w: %d elements at offset %d of %d", ErrOutOfBounds, count, start, total)
	}

	byteStart, err := conv.MulInt64(start, int64(w.header.BytesPerEntry))
	if err != nil {
		return err
	}
	if _, err := w.f.WriteAt(arr.data, w.header.Size()+byteStart); err != nil {
		return fmt.Errorf("writing %d bytes at offset %d: %w", len(arr.data), w.header.Size()+byteStart, err)
	}
	return nil
}

// Close flushes and closes the file. Closing twice is harmless.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.f.Sync(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}
