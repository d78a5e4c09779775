package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextKey is where the middleware stores the verified claims.
const ContextKey = "authUser"

// RequireToken gates protected endpoints: 401 when no bearer credential is
// present, 403 when it fails verification.
func RequireToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := ""
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = parts[1]
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		claims, err := Verify(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}
		c.Set(ContextKey, claims)
		c.Next()
	}
}

// CurrentUser returns the claims attached by RequireToken, if any.
func CurrentUser(c *gin.Context) *Claims {
	if v, ok := c.Get(ContextKey); ok {
		if claims, ok := v.(*Claims); ok {
			return claims
		}
	}
	return nil
}
