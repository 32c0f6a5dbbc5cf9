package binary

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderReadInt32(t *testing.T) {
	// Little-endian: -3 stored as [0xFD, 0xFF, 0xFF, 0xFF]
	data := bytes.NewReader([]byte{
		0xFD, 0xFF, 0xFF, 0xFF,
		0x02, 0x01, 0x00, 0x00,
	})
	r := NewReader(data)

	v, err := r.ReadInt32()
	require.NoError(t, err)
	require.Equal(t, int32(-3), v)

	v, err = r.ReadInt32()
	require.NoError(t, err)
	require.Equal(t, int32(0x0102), v)
}

func TestReaderReadInt64(t *testing.T) {
	data := bytes.NewReader([]byte{
		0x00, 0x94, 0x35, 0x77, 0x00, 0x00, 0x00, 0x00, // 2_000_000_000
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // -1
	})
	r := NewReader(data)

	v, err := r.ReadInt64()
	require.NoError(t, err)
	require.Equal(t, int64(2_000_000_000), v)

	v, err = r.ReadInt64()
	require.NoError(t, err)
	require.Equal(t, int64(-1), v)
}

func TestReaderTruncated(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02}))

	_, err := r.ReadInt32()
	require.Error(t, err)
}

func TestReaderAt(t *testing.T) {
	data := bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x00, 0x07, 0x00, 0x00, 0x00})
	r := NewReader(data)

	v, err := r.At(4).ReadInt32()
	require.NoError(t, err)
	require.Equal(t, int32(7), v)

	// Original reader position is unaffected.
	v, err = r.ReadInt32()
	require.NoError(t, err)
	require.Equal(t, int32(0), v)
}

func TestReaderReadFull(t *testing.T) {
	data := bytes.NewReader([]byte{0xAA, 0xBB, 0xCC, 0xDD})
	r := NewReader(data).At(1)

	buf := make([]byte, 2)
	require.NoError(t, r.ReadFull(buf))
	require.Equal(t, []byte{0xBB, 0xCC}, buf)

	// The cursor has advanced past the filled bytes.
	one := make([]byte, 1)
	require.NoError(t, r.ReadFull(one))
	require.Equal(t, []byte{0xDD}, one)
}

func TestReaderReadBytesZero(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))

	buf, err := r.ReadBytes(0)
	require.NoError(t, err)
	require.Nil(t, buf)
}
