package s3

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"

	"github.com/spikekit/go-mda/mda"
)

// fakeClient serves ranged GetObject calls from an in-memory object.
type fakeClient struct {
	data   []byte
	bucket string
	key    string
	calls  int
}

func (f *fakeClient) GetObject(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error) {
	f.calls++
	if aws.ToString(params.Bucket) != f.bucket || aws.ToString(params.Key) != f.key {
		return nil, fmt.Errorf("no such object: %s/%s", aws.ToString(params.Bucket), aws.ToString(params.Key))
	}

	var start, end int64
	if _, err := fmt.Sscanf(aws.ToString(params.Range), "bytes=%d-%d", &start, &end); err != nil {
		return nil, fmt.Errorf("bad range %q: %w", aws.ToString(params.Range), err)
	}
	if start < 0 || start >= int64(len(f.data)) {
		return nil, fmt.Errorf("range start %d outside object of %d bytes", start, len(f.data))
	}
	if end >= int64(len(f.data)) {
		end = int64(len(f.data)) - 1
	}
	return &awss3.GetObjectOutput{
		Body: io.NopCloser(strings.NewReader(string(f.data[start : end+1]))),
	}, nil
}

func writeTestObject(t *testing.T) []byte {
	t.Helper()
	arr, err := mda.NewFloat32Array([]float32{1, 4, 2, 5, 3, 6}, 2, 3)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "data.mda")
	require.NoError(t, mda.WriteFile(path, arr))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func TestSourceReadAt(t *testing.T) {
	data := writeTestObject(t)
	client := &fakeClient{data: data, bucket: "recordings", key: "session1/raw.mda"}
	src := New(client, "recordings", "session1/raw.mda")

	buf := make([]byte, 8)
	n, err := src.ReadAt(context.Background(), buf, 4)
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, data[4:12], buf)
}

func TestSourceThroughReader(t *testing.T) {
	data := writeTestObject(t)
	client := &fakeClient{data: data, bucket: "recordings", key: "session1/raw.mda"}

	r, err := mda.OpenSource(context.Background(), New(client, "recordings", "session1/raw.mda"))
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, mda.Float32, r.DataType())
	require.Equal(t, []int64{2, 3}, r.Dims())

	chunk, err := r.ReadChunk2D(context.Background(), 0, 1, 2, 1)
	require.NoError(t, err)
	got, err := chunk.Float32s()
	require.NoError(t, err)
	require.Equal(t, []float32{2, 5}, got)

	// One request for the header, one per chunk.
	require.Equal(t, 2, client.calls)
}

func TestSourceMissingObject(t *testing.T) {
	client := &fakeClient{data: writeTestObject(t), bucket: "recordings", key: "present.mda"}
	src := New(client, "recordings", "absent.mda")

	_, err := src.ReadAt(context.Background(), make([]byte, 4), 0)
	require.Error(t, err)
}

func TestSourceEmptyRead(t *testing.T) {
	client := &fakeClient{data: writeTestObject(t), bucket: "b", key: "k"}
	src := New(client, "b", "k")

	n, err := src.ReadAt(context.Background(), nil, 0)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Zero(t, client.calls)
}
