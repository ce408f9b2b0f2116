package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/lifecycle"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/errors"
	"blog/internal/usecase"
	"blog/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultMaxMediaFiles    = 10
	defaultMaxMediaFileSize = 100 << 20
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager   repository.TransactionManager
	postRepo    repository.PostRepository
	mediaStore  service.MediaStore
	cache       service.PostCache
	publisher   service.EventPublisher
	qrService   service.QRCodeService
	maxFiles    int
	maxFileSize int64

	// afterCommitTimeout bounds cache invalidation and event publishing once a mutation committed.
	afterCommitTimeout time.Duration
	logger             *slog.Logger
	now                func() time.Time
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	PostRepo   repository.PostRepository
	MediaStore service.MediaStore
	Cache      service.PostCache
	Publisher  service.EventPublisher
	QRService  service.QRCodeService
	Config     *config.Config
	Logger     *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	maxFiles, maxFileSize := defaultMaxMediaFiles, int64(defaultMaxMediaFileSize)
	if params.Config != nil && params.Config.Media != nil {
		if params.Config.Media.MaxFiles > 0 {
			maxFiles = params.Config.Media.MaxFiles
		}
		if params.Config.Media.MaxFileSize > 0 {
			maxFileSize = params.Config.Media.MaxFileSize
		}
	}

	return &postService{
		txManager:   params.TxManager,
		postRepo:    params.PostRepo,
		mediaStore:  params.MediaStore,
		cache:       params.Cache,
		publisher:   params.Publisher,
		qrService:   params.QRService,
		maxFiles:    maxFiles,
		maxFileSize: maxFileSize,

		afterCommitTimeout: lifecycle.DefaultTimeout,
		logger:             params.Logger,
		now:                time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// timestamp returns the current time at the precision the database keeps.
func (srv *postService) timestamp() time.Time {
	return srv.now().UTC().Truncate(time.Microsecond)
}

// CreatePost stores every upload, then persists the post with its media in one transaction.
// Either all uploads and the record are kept, or none are.
func (srv *postService) CreatePost(ctx context.Context, authorID uuid.UUID, input usecase.CreatePostInput) (*entity.Post, error) {
	if authorID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "missing author identity")
	}
	if err := validateTitleAndContent(&input.Title, &input.Content); err != nil {
		return nil, err
	}

	kinds, err := srv.classifyUploads(input.Uploads)
	if err != nil {
		return nil, err
	}

	writeCtx := context.WithoutCancel(ctx)

	stored, err := srv.storeUploads(writeCtx, input.Uploads)
	if err != nil {
		return nil, err
	}

	now := srv.timestamp()
	post := &entity.Post{
		Title:     input.Title,
		Content:   input.Content,
		AuthorID:  authorID,
		Media:     make([]entity.MediaAttachment, 0, len(stored)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i, obj := range stored {
		post.Media = append(post.Media, entity.MediaAttachment{URL: obj.URL, Kind: kinds[i]})
	}

	err = srv.txManager.Execute(writeCtx, func(factory repository.RepositoryFactory) error {
		return factory.NewPostRepository().Create(writeCtx, post)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to persist post", slog.Any("authorID", authorID), slog.Any("error", err))
		srv.discardUploads(writeCtx, stored)

		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).Info("Post created", slog.Any("postID", post.ID), slog.Int("media", len(post.Media)))
	srv.afterCommit(ctx, service.PostEventCreated, post)

	return post, nil
}

// ListPosts returns every post newest first.
func (srv *postService) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	if posts, ok, err := srv.cache.GetPostList(ctx); err != nil {
		srv.log(ctx).Warn("Post list cache read failed", slog.Any("error", err))
	} else if ok {
		return posts, nil
	}

	posts, err := srv.postRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	if err := srv.cache.SetPostList(ctx, posts); err != nil {
		srv.log(ctx).Warn("Post list cache write failed", slog.Any("error", err))
	}

	return posts, nil
}

// GetPost returns a single post with its author populated.
func (srv *postService) GetPost(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	if post, ok, err := srv.cache.GetPost(ctx, id); err != nil {
		srv.log(ctx).Warn("Post cache read failed", slog.Any("postID", id), slog.Any("error", err))
	} else if ok {
		return post, nil
	}

	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translatePostLookupError(err, id)
	}

	if err := srv.cache.SetPost(ctx, post); err != nil {
		srv.log(ctx).Warn("Post cache write failed", slog.Any("postID", id), slog.Any("error", err))
	}

	return post, nil
}

// UpdatePost locks the post, checks ownership and applies the patch, all in one transaction.
func (srv *postService) UpdatePost(ctx context.Context, callerID, id uuid.UUID, input usecase.UpdatePostInput) (*entity.Post, error) {
	if err := validateTitleAndContent(input.Title, input.Content); err != nil {
		return nil, err
	}
	if input.Media != nil {
		for _, m := range *input.Media {
			if !m.Kind.IsValid() || strings.TrimSpace(m.URL) == "" {
				return nil, domainerrors.ErrUnsupportedMediaKind.WithDetails("each media entry needs a url and a type of image or video")
			}
		}
	}

	patch := entity.PostPatch{Title: input.Title, Content: input.Content, Media: input.Media}
	writeCtx := context.WithoutCancel(ctx)

	var updated *entity.Post
	err := srv.txManager.Execute(writeCtx, func(factory repository.RepositoryFactory) error {
		postRepo := factory.NewPostRepository()

		post, err := srv.lockOwnedPost(writeCtx, postRepo, callerID, id)
		if err != nil {
			return err
		}

		patch.Apply(post)
		post.UpdatedAt = srv.timestamp()

		if err := postRepo.Update(writeCtx, post); err != nil {
			return translatePostLookupError(err, id)
		}

		updated = post

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Post update rejected", slog.Any("postID", id), slog.Any("callerID", callerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update post")
	}

	srv.log(ctx).Info("Post updated", slog.Any("postID", id))
	srv.afterCommit(ctx, service.PostEventUpdated, updated)

	return updated, nil
}

// DeletePost locks the post, checks ownership and removes it with its media rows.
// Stored media objects are kept since content-addressed keys may be shared between posts.
func (srv *postService) DeletePost(ctx context.Context, callerID, id uuid.UUID) error {
	writeCtx := context.WithoutCancel(ctx)

	var deleted *entity.Post
	err := srv.txManager.Execute(writeCtx, func(factory repository.RepositoryFactory) error {
		postRepo := factory.NewPostRepository()

		post, err := srv.lockOwnedPost(writeCtx, postRepo, callerID, id)
		if err != nil {
			return err
		}

		if err := postRepo.Delete(writeCtx, id); err != nil {
			return translatePostLookupError(err, id)
		}

		deleted = post

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Post delete rejected", slog.Any("postID", id), slog.Any("callerID", callerID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete post")
	}

	srv.log(ctx).Info("Post deleted", slog.Any("postID", id))
	srv.afterCommit(ctx, service.PostEventDeleted, deleted)

	return nil
}

// SharePostQR renders a QR code for an existing post.
func (srv *postService) SharePostQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.GetPost(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GeneratePostQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate post qr code")
	}

	return png, nil
}

// lockOwnedPost fetches the post under a row lock and rejects callers other than the author.
func (srv *postService) lockOwnedPost(ctx context.Context, postRepo repository.PostRepository, callerID, id uuid.UUID) (*entity.Post, error) {
	post, err := postRepo.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, translatePostLookupError(err, id)
	}

	if !post.IsOwnedBy(callerID) {
		return nil, errors.Wrap(domainerrors.ErrPostOwnershipViolation, "caller is not the author")
	}

	return post, nil
}

// classifyUploads checks count, size and kind of every upload before anything is written.
func (srv *postService) classifyUploads(uploads []usecase.MediaUpload) ([]entity.MediaKind, error) {
	if len(uploads) > srv.maxFiles {
		return nil, domainerrors.ErrTooManyMediaFiles.WithDetails("at most " + strconv.Itoa(srv.maxFiles) + " files are allowed")
	}

	kinds := make([]entity.MediaKind, 0, len(uploads))
	for _, upload := range uploads {
		if int64(len(upload.Data)) > srv.maxFileSize {
			return nil, domainerrors.ErrMediaTooLarge.WithDetails(upload.Filename + " exceeds " + util.FormatBytes(srv.maxFileSize))
		}

		kind, ok := entity.MediaKindFromContentType(upload.ContentType)
		if !ok {
			return nil, domainerrors.ErrUnsupportedMediaKind.WithDetails(upload.Filename)
		}
		kinds = append(kinds, kind)
	}

	return kinds, nil
}

// storeUploads puts every upload into the media store. On failure the objects already
// stored by this call are removed again.
func (srv *postService) storeUploads(ctx context.Context, uploads []usecase.MediaUpload) ([]*service.MediaObject, error) {
	stored := make([]*service.MediaObject, 0, len(uploads))
	for _, upload := range uploads {
		obj, err := srv.mediaStore.Put(ctx, upload.Data, upload.ContentType, upload.Filename)
		if err != nil {
			srv.log(ctx).Error("Failed to store media", slog.String("filename", upload.Filename), slog.Any("error", err))
			srv.discardUploads(ctx, stored)

			return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, err.Error())
		}
		stored = append(stored, obj)
	}

	return stored, nil
}

// discardUploads removes objects this request created. Pre-existing objects may back other posts.
// Best effort: a concurrent post that reused one of these objects in the meantime loses it.
func (srv *postService) discardUploads(ctx context.Context, stored []*service.MediaObject) {
	for _, obj := range stored {
		if !obj.Created {
			continue
		}
		if err := srv.mediaStore.Delete(ctx, obj.Key); err != nil {
			srv.log(ctx).Warn("Failed to remove orphaned media", slog.String("key", obj.Key), slog.Any("error", err))
		}
	}
}

// afterCommit drops cached reads and announces the mutation. Neither can fail the request.
func (srv *postService) afterCommit(ctx context.Context, eventType service.PostEventType, post *entity.Post) {
	bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), srv.afterCommitTimeout)
	defer cancel()

	if err := srv.cache.Invalidate(bgCtx, post.ID); err != nil {
		srv.log(ctx).Warn("Failed to invalidate post cache", slog.Any("postID", post.ID), slog.Any("error", err))
	}

	event := &service.PostEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		PostID:     post.ID.String(),
		AuthorID:   post.AuthorID.String(),
		Title:      post.Title,
		MediaCount: len(post.Media),
		OccurredAt: srv.now().UTC(),
	}
	if err := srv.publisher.PublishPostEvent(bgCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish post event", slog.String("type", string(eventType)), slog.Any("postID", post.ID), slog.Any("error", err))
	}
}

// validateTitleAndContent rejects provided fields that are blank. Nil fields are skipped.
func validateTitleAndContent(title, content *string) error {
	if title != nil && strings.TrimSpace(*title) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title must not be blank")
	}
	if content != nil && strings.TrimSpace(*content) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("content must not be blank")
	}

	return nil
}

func translatePostLookupError(err error, id uuid.UUID) error {
	if errors.Is(err, repository.ErrPostNotFound) {
		return errors.Wrap(domainerrors.ErrPostNotFound, id.String())
	}

	return errors.Wrap(err, "post repository failure")
}
