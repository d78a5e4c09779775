package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecepns/rnstore/internal/auth"
	"github.com/cecepns/rnstore/internal/models"
)

const secret = "test-secret"

func signedToken(t *testing.T) string {
	t.Helper()
	user := &models.AdminUser{Username: "admin"}
	user.ID = 7
	token, err := auth.Sign(secret, user, time.Hour)
	require.NoError(t, err)
	return token
}

func TestSignVerify(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		claims, err := auth.Verify(secret, signedToken(t))
		require.NoError(t, err)
		assert.Equal(t, uint(7), claims.UserID)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		_, err := auth.Verify("other-secret", signedToken(t))
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		user := &models.AdminUser{Username: "admin"}
		token, err := auth.Sign(secret, user, -time.Minute)
		require.NoError(t, err)
		_, err = auth.Verify(secret, token)
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := auth.Verify(secret, "not.a.token")
		assert.Error(t, err)
	})
}

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", auth.RequireToken(secret), func(c *gin.Context) {
		claims := auth.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})
	return r
}

func TestRequireToken(t *testing.T) {
	r := protectedRouter()

	t.Run("MissingHeader", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Access token required"}`, w.Body.String())
	})

	t.Run("NotBearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
	})

	t.Run("ValidToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"username":"admin"}`, w.Body.String())
	})
}
