package service

import (
	"context"
	"io"
)

// MediaObject describes an object held by the media store.
type MediaObject struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
	Created     bool // False when an identical object was already stored.
}

// MediaStore persists uploaded attachment bytes and hands back a stable URL.
type MediaStore interface {
	// Put stores data under a content-derived key and returns the object's address.
	// An object that already exists under the key is left as it is.
	Put(ctx context.Context, data []byte, contentType, filename string) (*MediaObject, error)

	// Open streams a stored object. The caller closes the reader.
	Open(ctx context.Context, key string) (io.ReadCloser, *MediaObject, error)

	// Delete removes a stored object. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
}
