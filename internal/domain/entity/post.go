package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a single blog post. AuthorID is set once at creation and never changes.
type Post struct {
	ID        uuid.UUID
	Title     string
	Content   string // Opaque formatted text, stored as-is.
	AuthorID  uuid.UUID
	Author    *User // Populated on reads; nil when only the id is known.
	Media     []MediaAttachment
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether the given identity authored the post.
func (p *Post) IsOwnedBy(userID uuid.UUID) bool {
	return p.AuthorID == userID
}

// PostPatch carries the mutable fields of a post. Nil fields are left untouched.
type PostPatch struct {
	Title   *string
	Content *string
	Media   *[]MediaAttachment
}

// Apply merges the patch into the post. Author and identity fields are never touched.
func (p PostPatch) Apply(post *Post) {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.Media != nil {
		post.Media = append([]MediaAttachment(nil), (*p.Media)...)
	}
}
