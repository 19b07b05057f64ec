package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahidraz23/bistro-bliss-server/pkg/auth"
)

var secret = []byte("test-secret")

type stubAdminChecker struct {
	admins map[string]bool
	err    error
}

func (s *stubAdminChecker) IsAdmin(_ context.Context, email string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.admins[email], nil
}

func newRouter(checker AdminChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", JWTAuth(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	r.GET("/admin", JWTAuth(secret), RequireAdmin(checker), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func bearer(t *testing.T, email string) string {
	t.Helper()
	tok, err := auth.CreateAccessToken(secret, email, "", time.Hour)
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestJWTAuthMissingHeader(t *testing.T) {
	r := newRouter(&stubAdminChecker{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthBadToken(t *testing.T) {
	r := newRouter(&stubAdminChecker{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthSetsClaims(t *testing.T) {
	r := newRouter(&stubAdminChecker{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", bearer(t, "alice@example.com"))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"alice@example.com"}`, w.Body.String())
}

func TestRequireAdminForbidden(t *testing.T) {
	r := newRouter(&stubAdminChecker{admins: map[string]bool{}})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", bearer(t, "alice@example.com"))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminAllowed(t *testing.T) {
	r := newRouter(&stubAdminChecker{admins: map[string]bool{"boss@example.com": true}})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", bearer(t, "boss@example.com"))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminStoreError(t *testing.T) {
	r := newRouter(&stubAdminChecker{err: errors.New("store down")})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", bearer(t, "alice@example.com"))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
