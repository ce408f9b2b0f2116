package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Alive answers GET / for uptime probes.
func Alive(c echo.Context) error {
	return c.String(http.StatusOK, "Backend is alive")
}

// HealthCheck answers GET /health.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
