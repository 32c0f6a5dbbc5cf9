package mda

import (
	"errors"
	"fmt"
	"io"

	"github.com/spikekit/go-mda/internal/binary"
	"github.com/spikekit/go-mda/internal/conv"
)

// Dimension count bounds fixed by the format.
const (
	MinDims = 1
	MaxDims = 6
)

// wideDimThreshold is the largest dimension size written with narrow
// (4-byte) dimension fields. Anything larger switches the header to
// 8-byte dimension encoding.
const wideDimThreshold = 2_000_000_000

// Header describes one stored array: element type, element width and
// ordered dimension sizes. The data region immediately follows the
// header and holds NumElements() * BytesPerEntry bytes.
type Header struct {
	// DataType is decoded from the stored type code.
	DataType DataType

	// BytesPerEntry is stored in the file independently of the type
	// code. The stored value is authoritative for offset and size
	// calculations even when it disagrees with DataType.Size().
	BytesPerEntry int

	// Dims holds the dimension sizes, between MinDims and MaxDims of
	// them, each positive.
	Dims []int64

	// WideDims marks 8-byte dimension encoding. Set when any dimension
	// exceeds the narrow threshold; preserved as read when decoding.
	WideDims bool
}

// NewHeader builds a header for an array of the given type and shape.
func NewHeader(dt DataType, dims []int64) (*Header, error) {
	h := &Header{
		DataType:      dt,
		BytesPerEntry: dt.Size(),
		Dims:          append([]int64(nil), dims...),
		WideDims:      needsWideDims(dims),
	}
	if err := h.validate(); err != nil {
		return nil, err
	}
	return h, nil
}

func needsWideDims(dims []int64) bool {
	for _, d := range dims {
		if d > wideDimThreshold {
			return true
		}
	}
	return false
}

func (h *Header) validate() error {
	if len(h.Dims) < MinDims || len(h.Dims) > MaxDims {
		return fmt.Errorf("%w: %d", ErrInvalidDimCount, len(h.Dims))
	}
	for _, d := range h.Dims {
		if d <= 0 {
			return fmt.Errorf("dimension must be positive, got %d", d)
		}
	}
	if h.BytesPerEntry <= 0 {
		return fmt.Errorf("bytes per entry must be positive, got %d", h.BytesPerEntry)
	}
	if _, err := h.DataSize(); err != nil {
		return err
	}
	return nil
}

// NumDims returns the number of dimensions.
func (h *Header) NumDims() int {
	return len(h.Dims)
}

// NumElements returns the total element count, the product of Dims.
// The product is overflow-checked when the header is built or decoded.
func (h *Header) NumElements() int64 {
	n, _ := conv.ProductInt64(h.Dims)
	return n
}

// DataSize returns the byte length of the data region.
func (h *Header) DataSize() (int64, error) {
	n, err := conv.ProductInt64(h.Dims)
	if err != nil {
		return 0, err
	}
	return conv.MulInt64(n, int64(h.BytesPerEntry))
}

// Size returns the header length in bytes. It is computed from the
// dimension count and encoding width, never stored in the stream.
func (h *Header) Size() int64 {
	if h.WideDims {
		return 12 + 8*int64(len(h.Dims))
	}
	return 4 * int64(3+len(h.Dims))
}

// ReadHeader decodes a header from the start of r.
//
// The three leading int32 fields are the type code, the bytes per
// entry, and a signed dimension count: a negative count signals wide
// (8-byte) dimension fields, and its absolute value is the true count.
// Old narrow files are byte-identical in the leading fields, so no
// separate version field exists.
func ReadHeader(r io.ReaderAt) (*Header, error) {
	br := binary.NewReader(r)

	code, err := br.ReadInt32()
	if err != nil {
		return nil, truncated(err)
	}
	bytesPerEntry, err := br.ReadInt32()
	if err != nil {
		return nil, truncated(err)
	}
	ndimsSigned, err := br.ReadInt32()
	if err != nil {
		return nil, truncated(err)
	}

	wide := ndimsSigned < 0
	ndims := ndimsSigned
	if wide {
		ndims = -ndims
	}
	if ndims < MinDims || ndims > MaxDims {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimCount, ndims)
	}

	dims := make([]int64, ndims)
	for i := range dims {
		if wide {
			dims[i], err = br.ReadInt64()
		} else {
			var d int32
			d, err = br.ReadInt32()
			dims[i] = int64(d)
		}
		if err != nil {
			return nil, truncated(err)
		}
	}

	dt, err := DataTypeFromCode(code)
	if err != nil {
		return nil, err
	}

	h := &Header{
		DataType:      dt,
		BytesPerEntry: int(bytesPerEntry),
		Dims:          dims,
		WideDims:      wide,
	}
	if err := h.validate(); err != nil {
		return nil, err
	}
	return h, nil
}

// Write encodes the header at the start of w. The dimension count is
// written negated when WideDims is set.
func (h *Header) Write(w io.WriterAt) error {
	if err := h.validate(); err != nil {
		return err
	}
	bpe, err := conv.Int64ToInt32(int64(h.BytesPerEntry))
	if err != nil {
		return err
	}

	bw := binary.NewWriter(w)
	if err := bw.WriteInt32(h.DataType.Code()); err != nil {
		return err
	}
	if err := bw.WriteInt32(bpe); err != nil {
		return err
	}
	ndims := int32(len(h.Dims))
	if h.WideDims {
		ndims = -ndims
	}
	if err := bw.WriteInt32(ndims); err != nil {
		return err
	}
	for _, d := range h.Dims {
		if h.WideDims {
			if err := bw.WriteInt64(d); err != nil {
				return err
			}
			continue
		}
		narrow, cerr := conv.Int64ToInt32(d)
		if cerr != nil {
			return fmt.Errorf("%w: %d", ErrDimOverflow, d)
		}
		if err := bw.WriteInt32(narrow); err != nil {
			return err
		}
	}
	return nil
}

// truncated maps short-read errors onto ErrTruncated, keeping the cause
// in the message.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	return err
}
