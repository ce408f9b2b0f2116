package handler

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"blog/config"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadContext(t *testing.T, files map[string][]byte) echo.Context {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for name, data := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="media"; filename="`+name+`"`)
		h.Set("Content-Type", "image/png")
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/blogs", body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func newTestPostHandler(maxFiles int, maxFileSize int64) *PostHandler {
	cfg := &config.Config{Media: &config.MediaConfig{MaxFiles: maxFiles, MaxFileSize: maxFileSize}}

	return NewPostHandler(nil, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPostHandler_ReadUploads(t *testing.T) {
	t.Run("within limits", func(t *testing.T) {
		h := newTestPostHandler(2, 8)
		uploads, err := h.readUploads(newUploadContext(t, map[string][]byte{"a.png": []byte("12345678")}))

		require.NoError(t, err)
		require.Len(t, uploads, 1)
		assert.Equal(t, "a.png", uploads[0].Filename)
		assert.Equal(t, "image/png", uploads[0].ContentType)
		assert.Equal(t, []byte("12345678"), uploads[0].Data)
	})

	t.Run("too many files", func(t *testing.T) {
		h := newTestPostHandler(2, 8)
		_, err := h.readUploads(newUploadContext(t, map[string][]byte{
			"a.png": []byte("a"), "b.png": []byte("b"), "c.png": []byte("c"),
		}))

		assert.True(t, hasCode(err, "TOO_MANY_MEDIA_FILES"))
	})

	t.Run("declared size over the limit", func(t *testing.T) {
		h := newTestPostHandler(2, 8)
		_, err := h.readUploads(newUploadContext(t, map[string][]byte{"big.png": []byte("123456789")}))

		assert.True(t, hasCode(err, "MEDIA_TOO_LARGE"))
	})

	t.Run("not multipart", func(t *testing.T) {
		h := newTestPostHandler(2, 8)
		req := httptest.NewRequest(http.MethodPost, "/blogs", bytes.NewBufferString(`{"title":"t"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		uploads, err := h.readUploads(echo.New().NewContext(req, httptest.NewRecorder()))
		require.NoError(t, err)
		assert.Empty(t, uploads)
	})
}

func hasCode(err error, code string) bool {
	var appErr domainerrors.AppError

	return errors.As(err, &appErr) && appErr.ErrorCode() == code
}
