package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_PutReturnsPublicURL(t *testing.T) {
	t.Parallel()

	bucket := memblob.OpenBucket(nil)
	store := NewBucketStorage(bucket, "https://assets.example.com/")

	url, err := store.Put(context.Background(), "creatives/abc.png", []byte{0x89, 0x50}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://assets.example.com/creatives/abc.png", url)

	data, err := bucket.ReadAll(context.Background(), "creatives/abc.png")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50}, data)

	require.NoError(t, store.Close())
}
