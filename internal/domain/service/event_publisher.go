package service

import (
	"context"
	"time"
)

// PostEventType names a committed post mutation.
type PostEventType string

const (
	PostEventCreated PostEventType = "post.created"
	PostEventUpdated PostEventType = "post.updated"
	PostEventDeleted PostEventType = "post.deleted"
)

// PostEvent is emitted after a post mutation has been committed.
type PostEvent struct {
	RequestID  string        `json:"request_id,omitempty"` // For distributed tracing
	Type       PostEventType `json:"type"`
	PostID     string        `json:"post_id"`
	AuthorID   string        `json:"author_id"`
	Title      string        `json:"title,omitempty"`
	MediaCount int           `json:"media_count"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPostEvent publishes a post lifecycle event
	PublishPostEvent(ctx context.Context, event *PostEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
