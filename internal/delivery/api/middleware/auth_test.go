package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "blog/internal/delivery/context"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
	"blog/internal/errors"
	mockSvc "blog/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractToken(t *testing.T) {
	tests := map[string]string{
		"":               "",
		"abc.def.ghi":    "abc.def.ghi",
		"Bearer abc":     "abc",
		"bearer abc":     "abc",
		"BEARER   abc  ": "abc",
		"  raw-token   ": "raw-token",
		"Bearerabc":      "Bearerabc",
	}

	for header, want := range tests {
		assert.Equal(t, want, extractToken(header), "header %q", header)
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID}, nil)

		req := httptest.NewRequest(http.MethodPost, "/blogs", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good")
		c := echo.New().NewContext(req, httptest.NewRecorder())

		called := false
		err := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
			called = true
			got, ok := deliverycontext.GetUserID(c)
			assert.True(t, ok)
			assert.Equal(t, userID, got)

			return nil
		})(c)

		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("missing header", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/blogs", nil), httptest.NewRecorder())

		err := NewAuthMiddleware(tokenSvc).Authenticate(func(echo.Context) error {
			t.Fatal("next must not run")

			return nil
		})(c)

		assert.True(t, errors.Is(err, domainerrors.ErrMissingToken))
	})

	t.Run("invalid token", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("bad").Return(nil, domainerrors.ErrInvalidToken.WrapMessage("expired"))

		req := httptest.NewRequest(http.MethodPost, "/blogs", nil)
		req.Header.Set(echo.HeaderAuthorization, "bad")
		c := echo.New().NewContext(req, httptest.NewRecorder())

		err := NewAuthMiddleware(tokenSvc).Authenticate(func(echo.Context) error {
			t.Fatal("next must not run")

			return nil
		})(c)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	})
}
