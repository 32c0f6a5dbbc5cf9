package mda

import (
	"fmt"
	"os"

	"github.com/spikekit/go-mda/internal/conv"
)

// Append grows the array at path along its final dimension by the
// contents of arr. The dimension count, every dimension except the
// last, and the element type must match the stored header exactly.
// Existing data bytes are never rewritten; only the header and the
// region after the previous end of data change.
//
// The new bytes are written before the header is rewritten, so a crash
// in between leaves a file whose header still describes the old, intact
// array (plus unreferenced trailing bytes) rather than one claiming
// more elements than are present.
//
// Append must not run concurrently with readers of the same file; that
// discipline belongs to the caller and is not enforced here.
func Append(path string, arr *Array) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}

	if err := appendTo(f, arr); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func appendTo(f *os.File, arr *Array) error {
	h, err := ReadHeader(f)
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}

	if arr.NumDims() != h.NumDims() {
		return fmt.Errorf("%w: appending %d-dimensional array to %d-dimensional file", ErrDimensionMismatch, arr.NumDims(), h.NumDims())
	}
	last := h.NumDims() - 1
	for k := 0; k < last; k++ {
		if arr.Dim(k) != h.Dims[k] {
			return fmt.Errorf("%w: axis %d size %d, stored dimension %d", ErrDimensionMismatch, k, arr.Dim(k), h.Dims[k])
		}
	}
	if arr.DataType() != h.DataType {
		return fmt.Errorf("%w: appending %s to %s file", ErrTypeMismatch, arr.DataType(), h.DataType)
	}
	if h.BytesPerEntry != h.DataType.Size() {
		return fmt.Errorf("%w: stored element width %d disagrees with %s", ErrTypeMismatch, h.BytesPerEntry, h.DataType)
	}

	newLast := h.Dims[last] + arr.Dim(last)
	if !h.WideDims {
		// The header length must stay fixed, so the grown dimension has
		// to remain encodable in the existing narrow field.
		if _, err := conv.Int64ToInt32(newLast); err != nil {
			return fmt.Errorf("%w: %d", ErrDimOverflow, newLast)
		}
	}

	oldBytes, err := conv.MulInt64(h.NumElements(), int64(h.BytesPerEntry))
	if err != nil {
		return err
	}
	if _, err := f.WriteAt(arr.data, h.Size()+oldBytes); err != nil {
		return fmt.Errorf("writing appended data: %w", err)
	}

	h.Dims[last] = newLast
	if err := h.Write(f); err != nil {
		return fmt.Errorf("rewriting header: %w", err)
	}
	return nil
}
