package binary

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// bytesWriterAt implements io.WriterAt for testing.
type bytesWriterAt struct {
	buf []byte
}

func (b *bytesWriterAt) WriteAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, io.ErrUnexpectedEOF
	}
	if int(off)+len(p) > len(b.buf) {
		newBuf := make([]byte, int(off)+len(p))
		copy(newBuf, b.buf)
		b.buf = newBuf
	}
	copy(b.buf[off:], p)
	return len(p), nil
}

func TestWriterWriteInt32(t *testing.T) {
	buf := &bytesWriterAt{}
	w := NewWriter(buf)

	require.NoError(t, w.WriteInt32(-3))
	require.NoError(t, w.WriteInt32(258))

	require.Equal(t, []byte{
		0xFD, 0xFF, 0xFF, 0xFF,
		0x02, 0x01, 0x00, 0x00,
	}, buf.buf)
}

func TestWriterWriteInt64(t *testing.T) {
	buf := &bytesWriterAt{}
	w := NewWriter(buf)

	require.NoError(t, w.WriteInt64(2_000_000_001))

	require.Equal(t, []byte{0x01, 0x94, 0x35, 0x77, 0x00, 0x00, 0x00, 0x00}, buf.buf)
}

func TestWriterAt(t *testing.T) {
	buf := &bytesWriterAt{buf: make([]byte, 8)}
	w := NewWriter(buf)

	require.NoError(t, w.At(4).WriteInt32(7))
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x07, 0x00, 0x00, 0x00}, buf.buf)

	// Original writer position is unaffected.
	require.NoError(t, w.WriteInt32(9))
	require.Equal(t, []byte{0x09, 0x00, 0x00, 0x00, 0x07, 0x00, 0x00, 0x00}, buf.buf)
}

func TestWriterRoundTrip(t *testing.T) {
	buf := &bytesWriterAt{}
	w := NewWriter(buf)
	require.NoError(t, w.WriteInt32(-7))
	require.NoError(t, w.WriteInt64(1<<40))

	r := NewReader(readerAt(buf.buf))
	i32, err := r.ReadInt32()
	require.NoError(t, err)
	require.Equal(t, int32(-7), i32)
	i64, err := r.ReadInt64()
	require.NoError(t, err)
	require.Equal(t, int64(1<<40), i64)
}

// readerAt wraps a byte slice to implement io.ReaderAt.
type readerAt []byte

func (b readerAt) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(b)) {
		return 0, io.EOF
	}
	n := copy(p, b[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
