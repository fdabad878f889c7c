package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sb-infra/sbinfra-backend/internal/auth"
)

// Handler serves the admin credential verification endpoints used by
// the admin panel for login and session checks.
type Handler struct {
	guard *auth.Guard
}

func New(guard *auth.Guard) *Handler {
	return &Handler{guard: guard}
}

type verifyReq struct {
	Password string `json:"password" form:"password"`
	Secret   string `json:"secret" form:"secret"`
}

// verify accepts the secret in the body (password or secret field) and
// falls back to the header, so the login form and API clients share one
// endpoint.
func (h *Handler) verify(c *gin.Context) {
	var req verifyReq
	_ = c.ShouldBind(&req)

	supplied := req.Password
	if supplied == "" {
		supplied = req.Secret
	}
	if supplied == "" {
		supplied = c.GetHeader(auth.HeaderName)
	}

	if !h.guard.Authorize(supplied) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid password."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// check validates the header only; the admin panel polls it to keep a
// session alive.
func (h *Handler) check(c *gin.Context) {
	if !h.guard.Authorize(c.GetHeader(auth.HeaderName)) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
