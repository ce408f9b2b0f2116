package middleware

import (
	"strings"

	deliverycontext "blog/internal/delivery/context"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
	"blog/internal/errors"

	"github.com/labstack/echo/v4"
)

const bearerScheme = "bearer "

// AuthMiddleware validates session tokens on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate accepts either a bare token or "Bearer <token>" in the Authorization header.
// On success the user ID is available through deliverycontext.GetUserID.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if tokenString == "" {
			return domainerrors.ErrMissingToken
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return errors.Wrap(err, "authentication failed")
		}

		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}

func extractToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) >= len(bearerScheme) && strings.EqualFold(header[:len(bearerScheme)], bearerScheme) {
		return strings.TrimSpace(header[len(bearerScheme):])
	}

	return header
}
