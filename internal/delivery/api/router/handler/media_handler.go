package handler

import (
	"net/http"

	"blog/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MediaHandler streams stored attachments.
type MediaHandler struct {
	store service.MediaStore
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(store service.MediaStore) *MediaHandler {
	return &MediaHandler{store: store}
}

// GetMedia handles GET /media/:key. Keys are content hashes, so responses never change.
func (h *MediaHandler) GetMedia(c echo.Context) error {
	reader, obj, err := h.store.Open(c.Request().Context(), c.Param("key"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer reader.Close()

	contentType := obj.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")

	return c.Stream(http.StatusOK, contentType, reader)
}
