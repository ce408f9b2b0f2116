package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for post share code generation
type QRCodeService interface {
	// GeneratePostQR renders a PNG QR code that links to the post
	GeneratePostQR(postID uuid.UUID) ([]byte, error)
}
