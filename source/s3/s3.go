// Package s3 provides a read-only mda.Source backed by an S3 object,
// fetched with one ranged GetObject request per read.
package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/spikekit/go-mda/mda"
)

var _ mda.Source = (*Source)(nil)

// Client is the subset of the S3 API the source needs. *s3.Client
// satisfies it; tests may substitute a fake.
type Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Source reads byte ranges of one S3 object.
type Source struct {
	client Client
	bucket string
	key    string
}

// New creates a Source for the given bucket and object key.
func New(client Client, bucket, key string) *Source {
	return &Source{client: client, bucket: bucket, key: key}
}

// ReadAt implements mda.Source using the standard inclusive range
// convention, bytes=start-(end-1).
func (s *Source) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	rangeHeader := fmt.Sprintf("bytes=%d-%d", off, off+int64(len(p))-1)

	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
		Range:  aws.String(rangeHeader),
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return io.ReadFull(resp.Body, p)
}

// Close implements mda.Source. The client is shared and left open.
func (s *Source) Close() error {
	return nil
}
