package repository_storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridFSBlobStore_URLs(t *testing.T) {
	s := &gridFSBlobStore{urlPrefix: "https://archive.example" + BlobRoutePrefix}

	url := s.URLFor("/recordings/abc/main/1-x.png")
	assert.Equal(t, "https://archive.example/api/blobs/recordings/abc/main/1-x.png", url)
	assert.True(t, s.IsOwnedURL(url))
	assert.False(t, s.IsOwnedURL("https://archive.example/api/blobs/"))
	assert.False(t, s.IsOwnedURL("https://images.example/poster.jpg"))
}

func TestGridFSBlobStore_DeleteIgnoresForeignURL(t *testing.T) {
	s := &gridFSBlobStore{urlPrefix: "https://archive.example" + BlobRoutePrefix}

	assert.NoError(t, s.Delete(context.Background(), "https://images.example/poster.jpg"))
}

func TestProgressReader_ReportsPercent(t *testing.T) {
	var reported []float64
	r := &progressReader{
		ctx:        context.Background(),
		r:          bytes.NewReader(make([]byte, 10)),
		total:      10,
		onProgress: func(p float64) { reported = append(reported, p) },
	}

	buf := make([]byte, 4)
	for {
		_, err := r.Read(buf)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}

	assert.Equal(t, []float64{40, 80, 100}, reported)
}

func TestProgressReader_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &progressReader{ctx: ctx, r: bytes.NewReader([]byte("data")), total: 4}

	_, err := r.Read(make([]byte, 4))
	assert.ErrorIs(t, err, context.Canceled)
}
