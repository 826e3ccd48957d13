package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "railbook/internal/delivery/context"
	"railbook/internal/domain/service"
	"railbook/internal/mocks"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestEcho(tokenSvc service.TokenService) *echo.Echo {
	e := echo.New()
	m := NewAuthMiddleware(tokenSvc)

	e.GET("/protected", func(c echo.Context) error {
		userID, ok := deliverycontext.GetUserID(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}

		return c.JSON(http.StatusOK, map[string]int64{"user_id": userID})
	}, m.Authenticate)

	return e
}

func doAuthRequest(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := new(mocks.MockTokenService)
	tokenSvc.On("Validate", "good-token").Return(&service.Claims{UserID: 42}, nil)

	e := newAuthTestEcho(tokenSvc)
	rec := doAuthRequest(e, "Bearer good-token")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":42}`, rec.Body.String())
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := newAuthTestEcho(new(mocks.MockTokenService))
	rec := doAuthRequest(e, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Not authenticated"}`, rec.Body.String())
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	e := newAuthTestEcho(new(mocks.MockTokenService))
	rec := doAuthRequest(e, "Basic dXNlcjpwdw==")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := new(mocks.MockTokenService)
	tokenSvc.On("Validate", "bad-token").Return(nil, errors.New("invalid or expired token"))

	e := newAuthTestEcho(tokenSvc)
	rec := doAuthRequest(e, "Bearer bad-token")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Invalid or expired token"}`, rec.Body.String())
}
