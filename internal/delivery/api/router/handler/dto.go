package handler

import (
	"time"

	"blog/internal/domain/entity"
)

// --- Requests ---

type registerRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// createPostRequest is the JSON form of a post without attachments.
// Multipart requests carry the same fields as form values.
type createPostRequest struct {
	Title   string `json:"title" form:"title" validate:"required,notblank"`
	Content string `json:"content" form:"content" validate:"required,notblank"`
}

// updatePostRequest is a partial update; absent fields are left unchanged.
// An "author" key, if sent, is not bound to anything.
type updatePostRequest struct {
	Title   *string         `json:"title"`
	Content *string         `json:"content"`
	Media   *[]mediaPayload `json:"media"`
}

type mediaPayload struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// --- Responses ---

type userSummary struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  userSummary `json:"user"`
}

type postResponse struct {
	ID        string         `json:"_id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Author    any            `json:"author"` // Bare id, or {_id, username} when populated.
	Media     []mediaPayload `json:"media"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func toPostResponse(post *entity.Post) postResponse {
	media := make([]mediaPayload, 0, len(post.Media))
	for _, m := range post.Media {
		media = append(media, mediaPayload{URL: m.URL, Type: m.Kind.String()})
	}

	var author any = post.AuthorID.String()
	if post.Author != nil {
		author = userSummary{ID: post.Author.ID.String(), Username: post.Author.Username}
	}

	return postResponse{
		ID:        post.ID.String(),
		Title:     post.Title,
		Content:   post.Content,
		Author:    author,
		Media:     media,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func toPostResponses(posts []*entity.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, toPostResponse(post))
	}

	return out
}

func (p *updatePostRequest) mediaAttachments() *[]entity.MediaAttachment {
	if p.Media == nil {
		return nil
	}

	media := make([]entity.MediaAttachment, 0, len(*p.Media))
	for _, m := range *p.Media {
		media = append(media, entity.MediaAttachment{URL: m.URL, Kind: entity.MediaKind(m.Type)})
	}

	return &media
}
