package entity

import (
	"mime"
	"strings"
)

// MediaKind is the resource kind of an attachment.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// IsValid reports whether the kind is one of the supported kinds.
func (k MediaKind) IsValid() bool {
	return k == MediaKindImage || k == MediaKindVideo
}

// String returns the string representation of MediaKind
func (k MediaKind) String() string {
	return string(k)
}

// MediaKindFromContentType classifies a MIME type. The second value is false for anything
// that is neither an image nor a video.
func MediaKindFromContentType(contentType string) (MediaKind, bool) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}

	switch {
	case strings.HasPrefix(mediaType, "image/"):
		return MediaKindImage, true
	case strings.HasPrefix(mediaType, "video/"):
		return MediaKindVideo, true
	default:
		return "", false
	}
}

// MediaAttachment references an externally stored object.
type MediaAttachment struct {
	URL  string
	Kind MediaKind
}
