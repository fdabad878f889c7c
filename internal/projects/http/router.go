package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group. Reads are
// public; writes require the admin guard.
func (h *Handler) Register(rg *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.POST("", requireAdmin, h.create)
	rg.PUT("/:id", requireAdmin, h.update)
	rg.DELETE("/:id", requireAdmin, h.delete)
}
