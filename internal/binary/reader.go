// Package binary provides low-level binary I/O operations for MDA file parsing.
//
// The MDA format is little-endian throughout, so unlike general-purpose
// readers there is no byte-order configuration here.
package binary

import (
	"encoding/binary"
	"io"
)

// Reader provides methods for reading little-endian MDA binary data
// from an io.ReaderAt, tracking the current position.
type Reader struct {
	r   io.ReaderAt
	pos int64
}

// NewReader creates a binary reader positioned at the start of r.
func NewReader(r io.ReaderAt) *Reader {
	return &Reader{r: r, pos: 0}
}

// At returns a new reader positioned at the given offset.
// The new reader shares the underlying io.ReaderAt but has independent position.
func (r *Reader) At(offset int64) *Reader {
	return &Reader{r: r.r, pos: offset}
}

// ReadBytes reads exactly n bytes from the current position.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := r.r.ReadAt(buf, r.pos); err != nil {
		return nil, err
	}
	r.pos += int64(n)
	return buf, nil
}

// ReadInt32 reads a signed 32-bit little-endian integer.
func (r *Reader) ReadInt32() (int32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(buf)), nil
}

// ReadInt64 reads a signed 64-bit little-endian integer.
func (r *Reader) ReadInt64() (int64, error) {
	buf, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(buf)), nil
}

// ReadFull reads len(p) bytes from the current position into p.
func (r *Reader) ReadFull(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if _, err := r.r.ReadAt(p, r.pos); err != nil {
		return err
	}
	r.pos += int64(len(p))
	return nil
}
