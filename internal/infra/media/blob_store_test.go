package media

import (
	"context"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	domainerrors "blog/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemStore(t *testing.T) *blobStore {
	t.Helper()

	store, err := OpenBlobStore(context.Background(), "mem://", "http://localhost:5000/media/")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestBlobStore_PutOpenDelete(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(t)
	data := []byte("\x89PNG\r\n\x1a\nfake")

	obj, err := store.Put(ctx, data, "image/png", "Cat.PNG")
	require.NoError(t, err)
	assert.True(t, ValidKey(obj.Key))
	assert.True(t, strings.HasSuffix(obj.Key, ".png"))
	assert.Equal(t, "http://localhost:5000/media/"+obj.Key, obj.URL)
	assert.Equal(t, int64(len(data)), obj.Size)

	reader, info, err := store.Open(ctx, obj.Key)
	require.NoError(t, err)
	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NoError(t, reader.Close())
	assert.Equal(t, data, got)
	assert.Equal(t, "image/png", info.ContentType)

	require.NoError(t, store.Delete(ctx, obj.Key))
	// Deleting twice is not an error.
	require.NoError(t, store.Delete(ctx, obj.Key))

	_, _, err = store.Open(ctx, obj.Key)
	assertMediaNotFound(t, err)
}

func TestBlobStore_IdenticalContentSharesKey(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(t)

	a, err := store.Put(ctx, []byte("same"), "video/mp4", "a.mp4")
	require.NoError(t, err)
	b, err := store.Put(ctx, []byte("same"), "video/mp4", "b.mp4")
	require.NoError(t, err)

	assert.Equal(t, a.Key, b.Key)
	assert.True(t, a.Created)
	assert.False(t, b.Created)
}

func TestBlobStore_ConcurrentIdenticalPutsCreateOnce(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(t)

	const writers = 16
	var (
		wg      sync.WaitGroup
		created atomic.Int32
	)
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			obj, err := store.Put(ctx, []byte("same-bytes"), "image/png", "x.png")
			if !assert.NoError(t, err) {
				return
			}
			if obj.Created {
				created.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
}

func TestBlobStore_OpenRejectsForeignKeys(t *testing.T) {
	store := newMemStore(t)

	for _, key := range []string{"../etc/passwd", "abc", strings.Repeat("a", 64) + ".tar.gz"} {
		_, _, err := store.Open(context.Background(), key)
		assertMediaNotFound(t, err)
	}
}

func TestObjectKey_Extension(t *testing.T) {
	assert.True(t, strings.HasSuffix(ObjectKey([]byte("x"), "image/jpeg", "photo.JPG"), ".jpg"))
	assert.True(t, strings.HasSuffix(ObjectKey([]byte("x"), "image/png", "no-extension"), ".png"))
	assert.Len(t, ObjectKey([]byte("x"), "application/x-unknown", "weird.ext!"), 64)
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "/media/k", publicURL("", "k"))
	assert.Equal(t, "https://cdn.example.com/k", publicURL("https://cdn.example.com/", "k"))
}

func assertMediaNotFound(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "MEDIA_NOT_FOUND", appErr.ErrorCode())
}
