package usecase

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// MediaUpload is one uploaded file as received by the delivery layer.
type MediaUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CreatePostInput defines the data required to publish a post.
// The author is never part of the input; it is the authenticated caller.
type CreatePostInput struct {
	Title   string
	Content string
	Uploads []MediaUpload
}

// UpdatePostInput carries a partial update. Nil fields are left unchanged.
type UpdatePostInput struct {
	Title   *string
	Content *string
	Media   *[]entity.MediaAttachment
}

// PostUsecase defines the interface for post-related business operations.
type PostUsecase interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, input CreatePostInput) (*entity.Post, error)
	ListPosts(ctx context.Context) ([]*entity.Post, error)
	GetPost(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	// UpdatePost applies the patch if the caller authored the post.
	UpdatePost(ctx context.Context, callerID, id uuid.UUID, input UpdatePostInput) (*entity.Post, error)
	// DeletePost removes the post if the caller authored it.
	DeletePost(ctx context.Context, callerID, id uuid.UUID) error
	// SharePostQR renders a QR code that links to an existing post.
	SharePostQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
