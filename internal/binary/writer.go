// Package binary provides low-level binary I/O operations for MDA file parsing and writing.
package binary

import (
	"encoding/binary"
	"io"
)

// Writer provides methods for writing little-endian MDA binary data
// to an io.WriterAt, tracking the current position.
type Writer struct {
	w   io.WriterAt
	pos int64
}

// NewWriter creates a binary writer positioned at the start of w.
func NewWriter(w io.WriterAt) *Writer {
	return &Writer{w: w, pos: 0}
}

// At returns a new writer positioned at the given offset.
// The new writer shares the underlying io.WriterAt but has independent position.
func (w *Writer) At(offset int64) *Writer {
	return &Writer{w: w.w, pos: offset}
}

// WriteBytes writes the given bytes at the current position.
func (w *Writer) WriteBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	n, err := w.w.WriteAt(data, w.pos)
	w.pos += int64(n)
	return err
}

// WriteInt32 writes a signed 32-bit little-endian integer.
func (w *Writer) WriteInt32(v int32) error {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(v))
	return w.WriteBytes(buf)
}

// WriteInt64 writes a signed 64-bit little-endian integer.
func (w *Writer) WriteInt64(v int64) error {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(v))
	return w.WriteBytes(buf)
}
