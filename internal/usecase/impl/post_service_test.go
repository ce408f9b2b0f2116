package impl

import (
	"context"
	"testing"
	"time"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	mockRepo "blog/internal/mocks/repository"
	mockSvc "blog/internal/mocks/service"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type postServiceFixtures struct {
	service    *postService
	txManager  *mockRepo.MockTransactionManager
	postRepo   *mockRepo.MockPostRepository
	txPostRepo *mockRepo.MockPostRepository
	mediaStore *mockSvc.MockMediaStore
	cache      *mockSvc.MockPostCache
	publisher  *mockSvc.MockEventPublisher
	qrService  *mockSvc.MockQRCodeService
	now        time.Time
}

func createTestPostService(t *testing.T) postServiceFixtures {
	f := postServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		postRepo:   mockRepo.NewMockPostRepository(t),
		txPostRepo: mockRepo.NewMockPostRepository(t),
		mediaStore: mockSvc.NewMockMediaStore(t),
		cache:      mockSvc.NewMockPostCache(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
		qrService:  mockSvc.NewMockQRCodeService(t),
		now:        time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC),
	}

	svc := NewPostService(PostServiceParams{
		TxManager:  f.txManager,
		PostRepo:   f.postRepo,
		MediaStore: f.mediaStore,
		Cache:      f.cache,
		Publisher:  f.publisher,
		QRService:  f.qrService,
		Config:     newTestConfig(3, 16),
		Logger:     newDiscardLogger(),
	}).(*postService)
	svc.now = func() time.Time { return f.now }
	f.service = svc

	return f
}

func (f postServiceFixtures) expectAfterCommit(eventType service.PostEventType) {
	f.cache.EXPECT().Invalidate(mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(nil).Once()
	f.publisher.EXPECT().
		PublishPostEvent(mock.Anything, mock.MatchedBy(func(e *service.PostEvent) bool { return e.Type == eventType })).
		Return(nil).
		Once()
}

func ownedPost(authorID uuid.UUID) *entity.Post {
	created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	return &entity.Post{
		ID:        uuid.New(),
		Title:     "Original",
		Content:   "<p>body</p>",
		AuthorID:  authorID,
		Media:     []entity.MediaAttachment{{URL: "/media/a.png", Kind: entity.MediaKindImage}},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestPostService_CreatePost_WithoutMedia(t *testing.T) {
	f := createTestPostService(t)
	authorID := uuid.New()

	expectTransaction(t, f.txManager, f.txPostRepo)
	f.txPostRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Post")).
		Run(func(_ context.Context, post *entity.Post) { post.ID = uuid.New() }).
		Return(nil)
	f.expectAfterCommit(service.PostEventCreated)

	post, err := f.service.CreatePost(context.Background(), authorID, usecase.CreatePostInput{
		Title:   "Hello",
		Content: "<p>world</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, authorID, post.AuthorID)
	assert.Nil(t, post.Author)
	assert.Empty(t, post.Media)
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
	assert.Equal(t, f.now.Truncate(time.Microsecond), post.CreatedAt)
}

func TestPostService_CreatePost_WithMedia(t *testing.T) {
	f := createTestPostService(t)
	authorID := uuid.New()

	f.mediaStore.EXPECT().Put(mock.Anything, []byte("img"), "image/png", "a.png").
		Return(&service.MediaObject{Key: "k1.png", URL: "/media/k1.png", Created: true}, nil)
	f.mediaStore.EXPECT().Put(mock.Anything, []byte("vid"), "video/mp4", "b.mp4").
		Return(&service.MediaObject{Key: "k2.mp4", URL: "/media/k2.mp4", Created: true}, nil)

	expectTransaction(t, f.txManager, f.txPostRepo)
	f.txPostRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Post")).Return(nil)
	f.expectAfterCommit(service.PostEventCreated)

	post, err := f.service.CreatePost(context.Background(), authorID, usecase.CreatePostInput{
		Title:   "Hello",
		Content: "body",
		Uploads: []usecase.MediaUpload{
			{Filename: "a.png", ContentType: "image/png", Data: []byte("img")},
			{Filename: "b.mp4", ContentType: "video/mp4", Data: []byte("vid")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []entity.MediaAttachment{
		{URL: "/media/k1.png", Kind: entity.MediaKindImage},
		{URL: "/media/k2.mp4", Kind: entity.MediaKindVideo},
	}, post.Media)
}

func TestPostService_CreatePost_RejectedBeforeAnyWrite(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.CreatePostInput
		errCode string
	}{
		{
			name:    "blank title",
			input:   usecase.CreatePostInput{Title: "  ", Content: "body"},
			errCode: "VALIDATION_FAILED",
		},
		{
			name:    "blank content",
			input:   usecase.CreatePostInput{Title: "t", Content: ""},
			errCode: "VALIDATION_FAILED",
		},
		{
			name: "unsupported kind",
			input: usecase.CreatePostInput{Title: "t", Content: "c", Uploads: []usecase.MediaUpload{
				{Filename: "a.png", ContentType: "image/png", Data: []byte("x")},
				{Filename: "doc.pdf", ContentType: "application/pdf", Data: []byte("x")},
			}},
			errCode: "UNSUPPORTED_MEDIA_KIND",
		},
		{
			name: "too many files",
			input: usecase.CreatePostInput{Title: "t", Content: "c", Uploads: []usecase.MediaUpload{
				{ContentType: "image/png"}, {ContentType: "image/png"}, {ContentType: "image/png"}, {ContentType: "image/png"},
			}},
			errCode: "TOO_MANY_MEDIA_FILES",
		},
		{
			name: "file too large",
			input: usecase.CreatePostInput{Title: "t", Content: "c", Uploads: []usecase.MediaUpload{
				{Filename: "big.png", ContentType: "image/png", Data: make([]byte, 17)},
			}},
			errCode: "MEDIA_TOO_LARGE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestPostService(t)

			_, err := f.service.CreatePost(context.Background(), uuid.New(), tt.input)

			require.Error(t, err)
			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.errCode, appErr.ErrorCode())
			f.mediaStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestPostService_CreatePost_UploadFailureRemovesStoredObjects(t *testing.T) {
	f := createTestPostService(t)

	f.mediaStore.EXPECT().Put(mock.Anything, []byte("one"), "image/png", "1.png").
		Return(&service.MediaObject{Key: "k1.png", URL: "/media/k1.png", Created: true}, nil)
	f.mediaStore.EXPECT().Put(mock.Anything, []byte("two"), "image/png", "2.png").
		Return(nil, errors.New("bucket unavailable"))
	f.mediaStore.EXPECT().Delete(mock.Anything, "k1.png").Return(nil).Once()

	_, err := f.service.CreatePost(context.Background(), uuid.New(), usecase.CreatePostInput{
		Title:   "t",
		Content: "c",
		Uploads: []usecase.MediaUpload{
			{Filename: "1.png", ContentType: "image/png", Data: []byte("one")},
			{Filename: "2.png", ContentType: "image/png", Data: []byte("two")},
		},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMediaUploadFailed))
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestPostService_CreatePost_PersistFailureRemovesOnlyNewObjects(t *testing.T) {
	f := createTestPostService(t)

	f.mediaStore.EXPECT().Put(mock.Anything, []byte("new"), "image/png", "new.png").
		Return(&service.MediaObject{Key: "new.png", URL: "/media/new.png", Created: true}, nil)
	f.mediaStore.EXPECT().Put(mock.Anything, []byte("old"), "image/png", "old.png").
		Return(&service.MediaObject{Key: "old.png", URL: "/media/old.png", Created: false}, nil)
	f.mediaStore.EXPECT().Delete(mock.Anything, "new.png").Return(nil).Once()

	expectTransaction(t, f.txManager, f.txPostRepo)
	f.txPostRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Post")).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to create post"))

	_, err := f.service.CreatePost(context.Background(), uuid.New(), usecase.CreatePostInput{
		Title:   "t",
		Content: "c",
		Uploads: []usecase.MediaUpload{
			{Filename: "new.png", ContentType: "image/png", Data: []byte("new")},
			{Filename: "old.png", ContentType: "image/png", Data: []byte("old")},
		},
	})

	require.Error(t, err)
	f.mediaStore.AssertNotCalled(t, "Delete", mock.Anything, "old.png")
	f.publisher.AssertNotCalled(t, "PublishPostEvent", mock.Anything, mock.Anything)
}

func TestPostService_CreatePost_PublishFailureIsNotFatal(t *testing.T) {
	f := createTestPostService(t)

	expectTransaction(t, f.txManager, f.txPostRepo)
	f.txPostRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Post")).Return(nil)
	f.cache.EXPECT().Invalidate(mock.Anything, mock.Anything).Return(errors.New("redis down"))
	f.publisher.EXPECT().PublishPostEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	post, err := f.service.CreatePost(context.Background(), uuid.New(), usecase.CreatePostInput{Title: "t", Content: "c"})

	require.NoError(t, err)
	assert.NotNil(t, post)
}

func TestPostService_CreatePost_SlowPublisherIsBounded(t *testing.T) {
	f := createTestPostService(t)
	f.service.afterCommitTimeout = 20 * time.Millisecond

	expectTransaction(t, f.txManager, f.txPostRepo)
	f.txPostRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Post")).Return(nil)
	f.cache.EXPECT().Invalidate(mock.Anything, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishPostEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.PostEvent) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			<-ctx.Done()

			return ctx.Err()
		})

	// The request context is already gone; the committed post must still be announced and returned.
	reqCtx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	post, err := f.service.CreatePost(reqCtx, uuid.New(), usecase.CreatePostInput{Title: "t", Content: "c"})

	require.NoError(t, err)
	assert.NotNil(t, post)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestPostService_GetPost(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		f := createTestPostService(t)
		post := ownedPost(uuid.New())

		f.cache.EXPECT().GetPost(mock.Anything, post.ID).Return(post, true, nil)

		got, err := f.service.GetPost(context.Background(), post.ID)
		require.NoError(t, err)
		assert.Equal(t, post, got)
		f.postRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		f := createTestPostService(t)
		post := ownedPost(uuid.New())

		f.cache.EXPECT().GetPost(mock.Anything, post.ID).Return(nil, false, nil)
		f.postRepo.EXPECT().FindByID(mock.Anything, post.ID).Return(post, nil)
		f.cache.EXPECT().SetPost(mock.Anything, post).Return(nil)

		got, err := f.service.GetPost(context.Background(), post.ID)
		require.NoError(t, err)
		assert.Equal(t, post, got)
	})

	t.Run("not found", func(t *testing.T) {
		f := createTestPostService(t)
		id := uuid.New()

		f.cache.EXPECT().GetPost(mock.Anything, id).Return(nil, false, errors.New("redis down"))
		f.postRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrPostNotFound)

		_, err := f.service.GetPost(context.Background(), id)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
	})
}

func TestPostService_ListPosts(t *testing.T) {
	f := createTestPostService(t)
	posts := []*entity.Post{ownedPost(uuid.New()), ownedPost(uuid.New())}

	f.cache.EXPECT().GetPostList(mock.Anything).Return(nil, false, nil)
	f.postRepo.EXPECT().List(mock.Anything).Return(posts, nil)
	f.cache.EXPECT().SetPostList(mock.Anything, posts).Return(errors.New("redis down"))

	got, err := f.service.ListPosts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, posts, got)
}

func TestPostService_UpdatePost_ByAuthor(t *testing.T) {
	f := createTestPostService(t)
	authorID := uuid.New()
	post := ownedPost(authorID)
	created := post.CreatedAt
	title := "Edited"

	expectTransaction(t, f.txManager, f.txPostRepo)
	f.txPostRepo.EXPECT().FindByIDForUpdate(mock.Anything, post.ID).Return(post, nil)
	f.txPostRepo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(p *entity.Post) bool {
			return p.Title == title && p.AuthorID == authorID
		})).
		Return(nil)
	f.expectAfterCommit(service.PostEventUpdated)

	updated, err := f.service.UpdatePost(context.Background(), authorID, post.ID, usecase.UpdatePostInput{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "Edited", updated.Title)
	assert.Equal(t, "<p>body</p>", updated.Content)
	assert.Equal(t, authorID, updated.AuthorID)
	assert.Equal(t, created, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created))
	assert.Len(t, updated.Media, 1)
}

func TestPostService_UpdatePost_ReplacesMedia(t *testing.T) {
	f := createTestPostService(t)
	authorID := uuid.New()
	post := ownedPost(authorID)
	media := []entity.MediaAttachment{{URL: "/media/v.mp4", Kind: entity.MediaKindVideo}}

	expectTransaction(t, f.txManager, f.txPostRepo)
	f.txPostRepo.EXPECT().FindByIDForUpdate(mock.Anything, post.ID).Return(post, nil)
	f.txPostRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*entity.Post")).Return(nil)
	f.expectAfterCommit(service.PostEventUpdated)

	updated, err := f.service.UpdatePost(context.Background(), authorID, post.ID, usecase.UpdatePostInput{Media: &media})

	require.NoError(t, err)
	assert.Equal(t, media, updated.Media)
}

func TestPostService_UpdatePost_ForeignCallerIsForbidden(t *testing.T) {
	f := createTestPostService(t)
	post := ownedPost(uuid.New())
	title := "Hijacked"

	expectTransaction(t, f.txManager, f.txPostRepo)
	f.txPostRepo.EXPECT().FindByIDForUpdate(mock.Anything, post.ID).Return(post, nil)

	_, err := f.service.UpdatePost(context.Background(), uuid.New(), post.ID, usecase.UpdatePostInput{Title: &title})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPostOwnershipViolation))
	f.txPostRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestPostService_UpdatePost_Missing(t *testing.T) {
	f := createTestPostService(t)
	id := uuid.New()
	title := "x"

	expectTransaction(t, f.txManager, f.txPostRepo)
	f.txPostRepo.EXPECT().FindByIDForUpdate(mock.Anything, id).Return(nil, repository.ErrPostNotFound)

	_, err := f.service.UpdatePost(context.Background(), uuid.New(), id, usecase.UpdatePostInput{Title: &title})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestPostService_UpdatePost_InvalidPatch(t *testing.T) {
	f := createTestPostService(t)
	blank := " "
	badMedia := []entity.MediaAttachment{{URL: "/media/x.pdf", Kind: "document"}}

	_, err := f.service.UpdatePost(context.Background(), uuid.New(), uuid.New(), usecase.UpdatePostInput{Title: &blank})
	require.True(t, isValidationError(err))

	_, err = f.service.UpdatePost(context.Background(), uuid.New(), uuid.New(), usecase.UpdatePostInput{Media: &badMedia})
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "UNSUPPORTED_MEDIA_KIND", appErr.ErrorCode())

	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestPostService_DeletePost(t *testing.T) {
	t.Run("by author", func(t *testing.T) {
		f := createTestPostService(t)
		authorID := uuid.New()
		post := ownedPost(authorID)

		expectTransaction(t, f.txManager, f.txPostRepo)
		f.txPostRepo.EXPECT().FindByIDForUpdate(mock.Anything, post.ID).Return(post, nil)
		f.txPostRepo.EXPECT().Delete(mock.Anything, post.ID).Return(nil)
		f.expectAfterCommit(service.PostEventDeleted)

		require.NoError(t, f.service.DeletePost(context.Background(), authorID, post.ID))
		f.mediaStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("foreign caller", func(t *testing.T) {
		f := createTestPostService(t)
		post := ownedPost(uuid.New())

		expectTransaction(t, f.txManager, f.txPostRepo)
		f.txPostRepo.EXPECT().FindByIDForUpdate(mock.Anything, post.ID).Return(post, nil)

		err := f.service.DeletePost(context.Background(), uuid.New(), post.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrPostOwnershipViolation))
		f.txPostRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("already gone", func(t *testing.T) {
		f := createTestPostService(t)
		id := uuid.New()

		expectTransaction(t, f.txManager, f.txPostRepo)
		f.txPostRepo.EXPECT().FindByIDForUpdate(mock.Anything, id).Return(nil, repository.ErrPostNotFound)

		err := f.service.DeletePost(context.Background(), uuid.New(), id)
		assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
	})
}

func TestPostService_SharePostQR(t *testing.T) {
	f := createTestPostService(t)
	post := ownedPost(uuid.New())

	f.cache.EXPECT().GetPost(mock.Anything, post.ID).Return(post, true, nil)
	f.qrService.EXPECT().GeneratePostQR(post.ID).Return([]byte("png"), nil)

	png, err := f.service.SharePostQR(context.Background(), post.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestPostService_SharePostQR_Missing(t *testing.T) {
	f := createTestPostService(t)
	id := uuid.New()

	f.cache.EXPECT().GetPost(mock.Anything, id).Return(nil, false, nil)
	f.postRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrPostNotFound)

	_, err := f.service.SharePostQR(context.Background(), id)

	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
	f.qrService.AssertNotCalled(t, "GeneratePostQR", mock.Anything)
}
