package mda

import (
	"fmt"
	"os"

	"github.com/spikekit/go-mda/internal/binary"
	"github.com/spikekit/go-mda/internal/conv"
)

// WriteFile writes arr to a new array file at path, replacing any
// existing file. The header is followed by the raw column-major element
// buffer.
func WriteFile(path string, arr *Array) error {
	h, err := NewHeader(arr.dtype, arr.dims)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := h.Write(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("writing header: %w", err)
	}
	if err := binary.NewWriter(f).At(h.Size()).WriteBytes(arr.data); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("writing data: %w", err)
	}
	return f.Close()
}

// ReadFile reads an entire array file into memory.
//
// The file is rejected when its stored element width disagrees with the
// stored type code; offsets computed from such a file would not line up
// with typed element access.
func ReadFile(path string) (*Array, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	h, err := ReadHeader(f)
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	size, err := h.DataSize()
	if err != nil {
		return nil, err
	}
	n, err := conv.Int64ToInt(size)
	if err != nil {
		return nil, err
	}

	data := make([]byte, n)
	if err := binary.NewReader(f).At(h.Size()).ReadFull(data); err != nil {
		return nil, fmt.Errorf("reading data: %w", truncated(err))
	}

	arr, err := NewArrayFromBytes(h.DataType, data, h.Dims...)
	if err != nil {
		return nil, fmt.Errorf("decoding data: %w", err)
	}
	return arr, nil
}
