package mda

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Source is a read-only, byte-addressable backing store for an array
// file. A Source is owned by one Reader for its lifetime; no
// concurrent-access guarantees are made.
type Source interface {
	// ReadAt reads len(p) bytes starting at byte offset off. A short
	// read returns the byte count together with io.EOF or
	// io.ErrUnexpectedEOF.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	io.Closer
}

// fileSource adapts an os.File to the Source interface.
type fileSource struct {
	f *os.File
}

func (s *fileSource) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	return s.f.ReadAt(p, off)
}

func (s *fileSource) Close() error {
	return s.f.Close()
}

// HTTPSource reads a remote array file over HTTP(S), issuing one byte
// range request per read. The response bytes are decoded from an
// in-memory buffer supplied by the caller; nothing is staged on disk.
// There is no pooling, prefetching or batching beyond what the
// underlying http.Client provides.
type HTTPSource struct {
	client *http.Client
	url    string
}

// NewHTTPSource creates a Source for the given URL. A nil client uses
// http.DefaultClient.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{client: client, url: url}
}

// URL returns the remote address.
func (s *HTTPSource) URL() string {
	return s.url
}

// ReadAt implements Source using a Range header with the standard
// inclusive convention, bytes=start-(end-1).
func (s *HTTPSource) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Range", fmt.Sprintf("bytes=%d-%d", off, off+int64(len(p))-1))

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusPartialContent:
	case http.StatusOK:
		// The server ignored the Range header and returned the whole
		// resource; skip forward to the requested offset.
		if _, err := io.CopyN(io.Discard, resp.Body, off); err != nil {
			if err == io.EOF {
				return 0, io.EOF
			}
			return 0, err
		}
	default:
		return 0, fmt.Errorf("range request for %q failed: %s", s.url, resp.Status)
	}

	return io.ReadFull(resp.Body, p)
}

// Close implements Source. The underlying client is shared and left
// open.
func (s *HTTPSource) Close() error {
	return nil
}
