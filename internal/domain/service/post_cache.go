package service

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// PostCache is a read-through cache in front of the post reads.
// A miss returns (nil, false, nil); only transport failures are errors.
type PostCache interface {
	GetPost(ctx context.Context, id uuid.UUID) (*entity.Post, bool, error)
	SetPost(ctx context.Context, post *entity.Post) error
	GetPostList(ctx context.Context) ([]*entity.Post, bool, error)
	SetPostList(ctx context.Context, posts []*entity.Post) error

	// Invalidate drops the cached post and the cached list. A Set racing with it
	// must not bring back the state read before the mutation.
	Invalidate(ctx context.Context, id uuid.UUID) error
}
