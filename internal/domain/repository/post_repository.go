package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPostNotFound is returned when no post exists with the requested id.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines persistence operations for posts and their media attachments.
type PostRepository interface {
	// Create inserts the post together with its ordered media rows.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID returns the post with its author and media populated.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// FindByIDForUpdate returns the post and holds a row lock until the surrounding transaction ends.
	// The author is not populated.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// List returns every post newest first, with author and media populated.
	List(ctx context.Context) ([]*entity.Post, error)

	// Update writes title, content and updated_at, and replaces the media rows.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes the post and its media rows.
	Delete(ctx context.Context, id uuid.UUID) error
}
