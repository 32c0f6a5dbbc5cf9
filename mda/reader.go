package mda

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spikekit/go-mda/internal/conv"
)

// headerProbeSize is how many leading bytes are staged from a source to
// decode the header. The largest possible header is 60 bytes; the probe
// is deliberately generous so one request always suffices.
const headerProbeSize = 200

// Reader provides chunked random access to an array file: the header is
// decoded once at open, then bounded sub-ranges of the data region are
// served without loading the whole array.
//
// A Reader owns its Source exclusively and assumes cooperative use: do
// not interleave reads with an Append to the same file.
type Reader struct {
	src        Source
	header     *Header
	dataOffset int64
	logger     *slog.Logger
	closed     bool
}

// Open opens a local array file for chunked reads.
func Open(path string, opts ...ReaderOption) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	r, err := openSource(context.Background(), &fileSource{f: f}, applyReaderOptions(opts))
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// OpenRemote opens an array file behind an HTTP(S) URL. The header is
// decoded from one small range request; each chunk read afterwards
// issues one more.
func OpenRemote(ctx context.Context, url string, opts ...ReaderOption) (*Reader, error) {
	o := applyReaderOptions(opts)
	return openSource(ctx, NewHTTPSource(url, o.client), o)
}

// OpenSource opens an array file on any Source. The Reader takes
// ownership of src and closes it on Close, including when opening
// fails.
func OpenSource(ctx context.Context, src Source, opts ...ReaderOption) (*Reader, error) {
	return openSource(ctx, src, applyReaderOptions(opts))
}

func openSource(ctx context.Context, src Source, o *readerOptions) (*Reader, error) {
	if o.header != nil {
		if err := o.header.validate(); err != nil {
			src.Close()
			return nil, err
		}
		return &Reader{src: src, header: o.header, dataOffset: 0, logger: o.logger}, nil
	}

	// Stage the leading bytes once, decode the header from the staging
	// buffer, then drop it.
	buf := make([]byte, headerProbeSize)
	n, err := src.ReadAt(ctx, buf, 0)
	if n == 0 && err != nil {
		src.Close()
		return nil, fmt.Errorf("reading header: %w", truncated(err))
	}
	h, err := ReadHeader(bytes.NewReader(buf[:n]))
	if err != nil {
		src.Close()
		return nil, fmt.Errorf("reading header: %w", err)
	}

	o.logger.Debug("header decoded",
		"dtype", h.DataType.String(),
		"dims", h.Dims,
		"wide_dims", h.WideDims,
	)
	return &Reader{src: src, header: h, dataOffset: h.Size(), logger: o.logger}, nil
}

// Header returns the decoded header.
func (r *Reader) Header() *Header {
	return r.header
}

// DataType returns the element type.
func (r *Reader) DataType() DataType {
	return r.header.DataType
}

// Dims returns a copy of the dimension sizes.
func (r *Reader) Dims() []int64 {
	return append([]int64(nil), r.header.Dims...)
}

// Dim returns the size of dimension i.
func (r *Reader) Dim(i int) int64 {
	return r.header.Dims[i]
}

// NumDims returns the number of dimensions.
func (r *Reader) NumDims() int {
	return r.header.NumDims()
}

// NumElements returns the total element count.
func (r *Reader) NumElements() int64 {
	return r.header.NumElements()
}

// Close releases the underlying source. Closing twice is harmless.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.src.Close()
}

// ReadChunk1D reads count elements starting at flat index start.
func (r *Reader) ReadChunk1D(ctx context.Context, start, count int64) (*Array, error) {
	data, err := r.readFlat(ctx, start, count)
	if err != nil {
		return nil, err
	}
	return NewArrayFromBytes(r.header.DataType, data, count)
}

// ReadChunk2D reads an (n1, n2) block whose flat start is i1 + n1*i2.
// The first axis must be read whole: n1 must equal the stored first
// dimension exactly. Partial first-axis reads are rejected because the
// column-major reshape is undefined for them.
func (r *Reader) ReadChunk2D(ctx context.Context, i1, i2, n1, n2 int64) (*Array, error) {
	if r.header.NumDims() < 2 {
		return nil, fmt.Errorf("%w: 2-axis read of %d-dimensional array", ErrDimensionMismatch, r.header.NumDims())
	}
	if n1 != r.header.Dims[0] {
		return nil, fmt.Errorf("%w: first axis size %d, stored dimension %d", ErrShapeMismatch, n1, r.header.Dims[0])
	}
	count, err := conv.MulInt64(n1, n2)
	if err != nil {
		return nil, err
	}
	data, err := r.readFlat(ctx, i1+n1*i2, count)
	if err != nil {
		return nil, err
	}
	return NewArrayFromBytes(r.header.DataType, data, n1, n2)
}

// ReadChunk3D reads an (n1, n2, n3) block whose flat start is
// i1 + n1*i2 + n1*n2*i3. The first two axes must be read whole: n1 and
// n2 must equal the stored first two dimensions exactly.
func (r *Reader) ReadChunk3D(ctx context.Context, i1, i2, i3, n1, n2, n3 int64) (*Array, error) {
	if r.header.NumDims() < 3 {
		return nil, fmt.Errorf("%w: 3-axis read of %d-dimensional array", ErrDimensionMismatch, r.header.NumDims())
	}
	if n1 != r.header.Dims[0] {
		return nil, fmt.Errorf("%w: first axis size %d, stored dimension %d", ErrShapeMismatch, n1, r.header.Dims[0])
	}
	if n2 != r.header.Dims[1] {
		return nil, fmt.Errorf("%w: second axis size %d, stored dimension %d", ErrShapeMismatch, n2, r.header.Dims[1])
	}
	count, err := conv.ProductInt64([]int64{n1, n2, n3})
	if err != nil {
		return nil, err
	}
	data, err := r.readFlat(ctx, i1+n1*i2+n1*n2*i3, count)
	if err != nil {
		return nil, err
	}
	return NewArrayFromBytes(r.header.DataType, data, n1, n2, n3)
}

// readFlat reads count elements starting at flat index start into a
// fresh buffer. Failed reads never hand back a partial buffer.
func (r *Reader) readFlat(ctx context.Context, start, count int64) ([]byte, error) {
	if r.closed {
		return nil, ErrClosed
	}
	// Ordered so that start+count cannot overflow int64.
	total := r.header.NumElements()
	if start < 0 || count < 0 || start > total || count > total-start {
		return nil, fmt.Errorf("%w: %d elements at offset %d of %d", ErrOutOfBounds, count, start, total)
	}

	bpe := int64(r.header.BytesPerEntry)
	byteStart, err := conv.MulInt64(start, bpe)
	if err != nil {
		return nil, err
	}
	size, err := conv.MulInt64(count, bpe)
	if err != nil {
		return nil, err
	}
	n, err := conv.Int64ToInt(size)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}

	offset := r.dataOffset + byteStart
	r.logger.Debug("chunk read", "flat_start", start, "count", count, "byte_offset", offset, "bytes", size)

	if _, err := r.src.ReadAt(ctx, buf, offset); err != nil {
		return nil, fmt.Errorf("reading %d bytes at offset %d: %w", size, offset, truncated(err))
	}
	return buf, nil
}
