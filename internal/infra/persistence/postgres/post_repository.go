package postgres

import (
	"context"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// postRepository implements the domain.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

func orderedMedia(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Create inserts the post row and its media rows. Timestamps are taken from the entity.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	if post.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate post id")
		}
		post.ID = id
	}

	postM, err := fromPostDomain(post)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Omit("Author").Create(postM).Error; err != nil {
		return translatePostWriteError(err, "failed to create post")
	}

	return nil
}

// FindByID retrieves a post with its author and ordered media.
func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Media", orderedMedia).
		Where("id = ?", id).
		First(&postM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// FindByIDForUpdate locks the post row with SELECT ... FOR UPDATE. Only meaningful inside a transaction.
func (repo *postRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&postM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to lock post")
	}

	var mediaM []model.PostMediaModel
	if err := orderedMedia(repo.db.WithContext(ctx)).Where("post_id = ?", id).Find(&mediaM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load post media")
	}
	postM.Media = mediaM

	return toPostDomain(&postM), nil
}

// List returns every post newest first. Ties on created_at fall back to id, which is time ordered.
func (repo *postRepository) List(ctx context.Context) ([]*entity.Post, error) {
	var postsM []model.PostModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Media", orderedMedia).
		Order("created_at DESC").
		Order("id DESC").
		Find(&postsM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list posts")
	}

	posts := make([]*entity.Post, 0, len(postsM))
	for i := range postsM {
		posts = append(posts, toPostDomain(&postsM[i]))
	}

	return posts, nil
}

// Update writes the mutable columns and replaces the media rows. author_id is never written.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	db := repo.db.WithContext(ctx)

	result := db.Model(&model.PostModel{}).
		Where("id = ?", post.ID).
		UpdateColumns(map[string]any{
			"title":      post.Title,
			"content":    post.Content,
			"updated_at": post.UpdatedAt,
		})
	if result.Error != nil {
		return translatePostWriteError(result.Error, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	if err := db.Where("post_id = ?", post.ID).Delete(&model.PostMediaModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear post media")
	}

	mediaM, err := fromMediaDomain(post.ID, post.Media)
	if err != nil {
		return err
	}
	if len(mediaM) == 0 {
		return nil
	}

	if err := db.Create(&mediaM).Error; err != nil {
		return translatePostWriteError(err, "failed to write post media")
	}

	return nil
}

// Delete removes the media rows and the post.
func (repo *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("post_id = ?", id).Delete(&model.PostMediaModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete post media")
	}

	result := db.Where("id = ?", id).Delete(&model.PostModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

func translatePostWriteError(err error, details string) error {
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrUnsupportedMediaKind.WrapMessage(details)
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrUserNotFound.WrapMessage("post author does not exist")
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

// toPostDomain converts a GORM PostModel to a domain Post entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	media := make([]entity.MediaAttachment, 0, len(data.Media))
	for _, m := range data.Media {
		media = append(media, entity.MediaAttachment{
			URL:  m.URL,
			Kind: entity.MediaKind(m.Kind),
		})
	}

	return &entity.Post{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		AuthorID:  data.AuthorID,
		Author:    toUserDomain(data.Author),
		Media:     media,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPostDomain converts a domain Post entity to a GORM PostModel for persistence.
func fromPostDomain(data *entity.Post) (*model.PostModel, error) {
	media, err := fromMediaDomain(data.ID, data.Media)
	if err != nil {
		return nil, err
	}

	return &model.PostModel{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		AuthorID:  data.AuthorID,
		Media:     media,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

func fromMediaDomain(postID uuid.UUID, media []entity.MediaAttachment) ([]model.PostMediaModel, error) {
	rows := make([]model.PostMediaModel, 0, len(media))
	for i, m := range media {
		if !m.Kind.IsValid() {
			return nil, domainerrors.ErrUnsupportedMediaKind.WithDetails(string(m.Kind))
		}

		id, err := uuid.NewV7()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate media id")
		}

		rows = append(rows, model.PostMediaModel{
			ID:       id,
			PostID:   postID,
			Position: i,
			URL:      m.URL,
			Kind:     m.Kind.String(),
		})
	}

	return rows, nil
}
