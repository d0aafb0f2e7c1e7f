package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/devasif/smart-task-management/pkg/helpers"
)

func newAuthRouter(t *testing.T, jwt *helpers.JWTManager) (*gin.Engine, *bool, *string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	handlerCalled := false
	seenEmail := ""
	r := gin.New()
	r.GET("/protected", Auth(jwt), func(c *gin.Context) {
		handlerCalled = true
		seenEmail = c.GetString(CtxUserEmailKey)
		c.Status(http.StatusOK)
	})
	return r, &handlerCalled, &seenEmail
}

func TestAuth_MissingHeaderRejectedBeforeHandler(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r, called, _ := newAuthRouter(t, jwt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, *called, "handler must not run without a bearer token")
}

func TestAuth_MalformedHeaderRejected(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)

	cases := []string{
		"Bearer",
		"Bearer ",
		"Basic dXNlcjpwYXNz",
		"bearer sometoken",
	}
	for _, header := range cases {
		r, called, _ := newAuthRouter(t, jwt)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		require.False(t, *called, "header %q", header)
	}
}

func TestAuth_InvalidTokenRejected(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r, called, _ := newAuthRouter(t, jwt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, *called)
}

func TestAuth_ValidTokenAttachesIdentity(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	token, _, err := jwt.Issue("alice@example.com")
	require.NoError(t, err)

	r, called, email := newAuthRouter(t, jwt)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, *called)
	require.Equal(t, "alice@example.com", *email)
}
