package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "blog/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewRequestIDMiddleware(logger)

	var seenID string
	var seenLogger *slog.Logger
	handler := m.Process(func(c echo.Context) error {
		seenID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		seenLogger = deliverycontext.GetLogger(c.Request().Context())

		return c.NoContent(http.StatusNoContent)
	})

	t.Run("propagates client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()

		assert.NoError(t, handler(echo.New().NewContext(req, rec)))
		assert.Equal(t, "client-id", seenID)
		assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.NotNil(t, seenLogger)
	})

	t.Run("replaces malformed client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "evil\nline "+strings.Repeat("x", 80))
		rec := httptest.NewRecorder()

		assert.NoError(t, handler(echo.New().NewContext(req, rec)))
		_, err := uuid.Parse(seenID)
		assert.NoError(t, err)
		assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()

		assert.NoError(t, handler(echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
		assert.NotEmpty(t, seenID)
		assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}
