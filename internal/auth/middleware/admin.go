package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sb-infra/sbinfra-backend/internal/auth"
)

// RequireAdmin rejects requests whose X-Admin-Secret header does not
// match the configured secret. The denial carries no detail about
// whether the secret was wrong or missing.
func RequireAdmin(guard *auth.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !guard.Authorize(c.GetHeader(auth.HeaderName)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Unauthorized.",
			})
			return
		}
		c.Next()
	}
}
