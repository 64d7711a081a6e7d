package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vyoma/utils"
)

// Context keys set by RequireAuth.
const (
	ContextUserID = "userID"
	ContextEmail  = "userEmail"
)

// RequireAuth validates the Bearer token and stores the caller's identity in
// the request context.
func RequireAuth(tokens *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Missing or invalid authorization header",
			})
			return
		}

		claims, err := tokens.VerifyToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

// StorageGuard rejects store-dependent requests before they reach the
// handler while the credential store is unavailable. The OTP endpoints do
// not sit behind it; they have no store dependency.
func StorageGuard(available func() bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !available() {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"message": "Database connection unavailable",
				"error":   "The database is currently offline. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
