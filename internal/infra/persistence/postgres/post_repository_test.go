package postgres

import (
	"context"
	"testing"
	"time"

	"blog/internal/domain/entity"
	"blog/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user := &entity.User{Username: username, Email: username + "@example.com", PasswordHash: "hash"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func newTestPost(authorID uuid.UUID, title string, createdAt time.Time) *entity.Post {
	return &entity.Post{
		Title:    title,
		Content:  "<p>body</p>",
		AuthorID: authorID,
		Media: []entity.MediaAttachment{
			{URL: "http://cdn/one.png", Kind: entity.MediaKindImage},
			{URL: "http://cdn/two.mp4", Kind: entity.MediaKindVideo},
		},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestPostRepository_CreateAndFindByID(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	author := createTestUser(t, db, "alice")
	repo := NewPostRepository(db)

	now := time.Now().UTC().Truncate(time.Microsecond)
	post := newTestPost(author.ID, "Hello", now)
	require.NoError(t, repo.Create(ctx, post))
	require.NotEqual(t, uuid.Nil, post.ID)

	got, err := repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Title)
	assert.Equal(t, "<p>body</p>", got.Content)
	assert.Equal(t, author.ID, got.AuthorID)
	require.NotNil(t, got.Author)
	assert.Equal(t, "alice", got.Author.Username)
	assert.Equal(t, post.Media, got.Media)
	assert.True(t, got.CreatedAt.Equal(got.UpdatedAt))
}

func TestPostRepository_FindByIDNotFound(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrPostNotFound)

	_, err = repo.FindByIDForUpdate(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrPostNotFound)
}

func TestPostRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	author := createTestUser(t, db, "alice")
	repo := NewPostRepository(db)

	base := time.Now().UTC().Truncate(time.Microsecond)
	require.NoError(t, repo.Create(ctx, newTestPost(author.ID, "first", base.Add(-2*time.Hour))))
	require.NoError(t, repo.Create(ctx, newTestPost(author.ID, "third", base)))
	require.NoError(t, repo.Create(ctx, newTestPost(author.ID, "second", base.Add(-time.Hour))))

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "third", posts[0].Title)
	assert.Equal(t, "second", posts[1].Title)
	assert.Equal(t, "first", posts[2].Title)
	for _, p := range posts {
		require.NotNil(t, p.Author)
		assert.Equal(t, "alice", p.Author.Username)
		assert.Len(t, p.Media, 2)
	}
}

func TestPostRepository_UpdateReplacesMediaAndKeepsAuthor(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	author := createTestUser(t, db, "alice")
	other := createTestUser(t, db, "mallory")
	repo := NewPostRepository(db)

	created := time.Now().UTC().Truncate(time.Microsecond)
	post := newTestPost(author.ID, "Hello", created)
	require.NoError(t, repo.Create(ctx, post))

	locked, err := repo.FindByIDForUpdate(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, locked.Media, 2)

	locked.Title = "Edited"
	locked.AuthorID = other.ID // must be ignored by Update
	locked.Media = []entity.MediaAttachment{{URL: "http://cdn/three.png", Kind: entity.MediaKindImage}}
	locked.UpdatedAt = created.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, locked))

	got, err := repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Edited", got.Title)
	assert.Equal(t, author.ID, got.AuthorID)
	assert.Equal(t, locked.Media, got.Media)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestPostRepository_UpdateMissingPost(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))

	err := repo.Update(context.Background(), &entity.Post{ID: uuid.New(), Title: "t", Content: "c", UpdatedAt: time.Now()})
	assert.ErrorIs(t, err, repository.ErrPostNotFound)
}

func TestPostRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	author := createTestUser(t, db, "alice")
	repo := NewPostRepository(db)

	post := newTestPost(author.ID, "Hello", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, post))

	require.NoError(t, repo.Delete(ctx, post.ID))

	_, err := repo.FindByID(ctx, post.ID)
	assert.ErrorIs(t, err, repository.ErrPostNotFound)

	var mediaRows int64
	require.NoError(t, db.Table("post_media").Where("post_id = ?", post.ID).Count(&mediaRows).Error)
	assert.Zero(t, mediaRows)

	assert.ErrorIs(t, repo.Delete(ctx, post.ID), repository.ErrPostNotFound)
}
