package http

import "github.com/gin-gonic/gin"

// Register attaches the admin verification routes to the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/verify", h.verify)
	rg.GET("/verify", h.check)
}
