package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "blog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware_RecordsRoutes(t *testing.T) {
	m := NewMetricsMiddleware()
	e := echo.New()
	e.Use(m.Handle)
	e.GET("/blogs/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return domainerrors.ErrPostNotFound.WrapMessage("missing")
		}

		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	for _, path := range []string{"/blogs/1", "/blogs/2", "/blogs/missing"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `http_requests_total{method="GET",route="/blogs/:id",status="200"} 2`), body)
	assert.True(t, strings.Contains(body, `http_requests_total{method="GET",route="/blogs/:id",status="404"} 1`), body)
	assert.Contains(t, body, "http_request_duration_seconds_bucket")
}
