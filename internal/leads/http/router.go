package http

import "github.com/gin-gonic/gin"

// Register attaches lead routes to the given router group. Submission
// is public; listing is behind the admin guard.
func (h *Handler) Register(rg *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	rg.POST("", h.submit)
	rg.GET("", requireAdmin, h.list)
}
