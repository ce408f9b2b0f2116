package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table. AuthorID references users.id.
type PostModel struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Title     string           `gorm:"type:text;not null"`
	Content   string           `gorm:"type:text;not null"`
	AuthorID  uuid.UUID        `gorm:"type:uuid;not null;index:idx_posts_author_id"`
	Author    *UserModel       `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Media     []PostMediaModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time        `gorm:"index:idx_posts_created_at"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}

// PostMediaModel mirrors the 'post_media' table. Rows are ordered by Position within a post.
type PostMediaModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	PostID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_media_position,priority:1"`
	Position int       `gorm:"not null;uniqueIndex:idx_post_media_position,priority:2"`
	URL      string    `gorm:"type:text;not null"`
	Kind     string    `gorm:"type:varchar(16);not null;check:chk_post_media_kind,kind IN ('image','video')"`
}

// TableName explicitly sets the table name for GORM.
func (PostMediaModel) TableName() string {
	return "post_media"
}

// All lists every persistence model in dependency order for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&PostModel{},
		&PostMediaModel{},
	}
}
