package auth

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework
)

// ContextUserKey is the gin context key the session user id is stored under
const ContextUserKey = "userID"

// Middleware validates the bearer token and resolves the current user id
// into the request context. Routes behind it always see a session.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(ContextUserKey, claims.UserID) // Store userID in context
		c.Next()
	}
}

// UserID reads the session user id from the gin context, 0 when absent
func UserID(c *gin.Context) uint {
	if v, ok := c.Get(ContextUserKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
