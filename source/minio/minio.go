// Package minio provides a read-only mda.Source backed by an object in
// MinIO or any S3-compatible store, fetched with one ranged read per
// call.
package minio

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"

	"github.com/spikekit/go-mda/mda"
)

var _ mda.Source = (*Source)(nil)

// Source reads byte ranges of one object.
type Source struct {
	client *minio.Client
	bucket string
	key    string
}

// New creates a Source for the given bucket and object key.
func New(client *minio.Client, bucket, key string) *Source {
	return &Source{client: client, bucket: bucket, key: key}
}

// ReadAt implements mda.Source with one ranged GetObject per call.
func (s *Source) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	opts := minio.GetObjectOptions{}
	if err := opts.SetRange(off, off+int64(len(p))-1); err != nil {
		return 0, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, s.key, opts)
	if err != nil {
		return 0, err
	}
	defer obj.Close()

	return io.ReadFull(obj, p)
}

// Close implements mda.Source. The client is shared and left open.
func (s *Source) Close() error {
	return nil
}
