package cache

import (
	"context"
	"testing"
	"time"

	"blog/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redisPostCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c, ok := NewRedisPostCache(client, time.Minute).(*redisPostCache)
	require.True(t, ok)

	return mr, c
}

func testPost() *entity.Post {
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	authorID := uuid.New()

	return &entity.Post{
		ID:       uuid.New(),
		Title:    "Hello",
		Content:  "<p>World</p>",
		AuthorID: authorID,
		Author:   &entity.User{ID: authorID, Username: "alice", Email: "a@x.com", PasswordHash: "secret-hash"},
		Media: []entity.MediaAttachment{
			{URL: "http://cdn/a.png", Kind: entity.MediaKindImage},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestRedisPostCache_PostRoundTrip(t *testing.T) {
	ctx := context.Background()
	mr, c := newTestCache(t)
	post := testPost()

	_, hit, err := c.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.SetPost(ctx, post))
	assert.Equal(t, time.Minute, mr.TTL(postKey(post.ID)))

	got, hit, err := c.GetPost(ctx, post.ID)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, post.Title, got.Title)
	assert.Equal(t, post.Media, got.Media)
	assert.True(t, post.CreatedAt.Equal(got.CreatedAt))
	require.NotNil(t, got.Author)
	assert.Equal(t, "alice", got.Author.Username)
	assert.Empty(t, got.Author.PasswordHash)
}

func TestRedisPostCache_ListAndInvalidate(t *testing.T) {
	ctx := context.Background()
	_, c := newTestCache(t)
	first, second := testPost(), testPost()

	require.NoError(t, c.SetPostList(ctx, []*entity.Post{first, second}))
	require.NoError(t, c.SetPost(ctx, first))

	posts, hit, err := c.GetPostList(ctx)
	require.NoError(t, err)
	require.True(t, hit)
	require.Len(t, posts, 2)
	assert.Equal(t, first.ID, posts[0].ID)

	require.NoError(t, c.Invalidate(ctx, first.ID))

	_, hit, err = c.GetPostList(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	_, hit, err = c.GetPost(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisPostCache_StaleSetAfterInvalidateIsDropped(t *testing.T) {
	ctx := context.Background()
	mr, c := newTestCache(t)
	post := testPost()

	// A reader missed and loaded the row, then a delete committed before it cached the result.
	_, hit, err := c.GetPost(ctx, post.ID)
	require.NoError(t, err)
	require.False(t, hit)
	_, hit, err = c.GetPostList(ctx)
	require.NoError(t, err)
	require.False(t, hit)

	require.NoError(t, c.Invalidate(ctx, post.ID))
	require.NoError(t, c.SetPost(ctx, post))
	require.NoError(t, c.SetPostList(ctx, []*entity.Post{post}))

	_, hit, err = c.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.False(t, hit)
	_, hit, err = c.GetPostList(ctx)
	require.NoError(t, err)
	assert.False(t, hit)

	// Once the marker expires the cache fills again.
	mr.FastForward(2 * time.Minute)
	require.NoError(t, c.SetPost(ctx, post))
	_, hit, err = c.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestRedisPostCache_ExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	mr, c := newTestCache(t)
	post := testPost()

	require.NoError(t, c.SetPost(ctx, post))
	mr.FastForward(2 * time.Minute)

	_, hit, err := c.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisPostCache_TransportErrorIsReported(t *testing.T) {
	mr, c := newTestCache(t)
	mr.Close()

	_, _, err := c.GetPost(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestNoopPostCache(t *testing.T) {
	ctx := context.Background()
	c := NewNoopPostCache()

	require.NoError(t, c.SetPost(ctx, testPost()))
	_, hit, err := c.GetPost(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, hit)
}
