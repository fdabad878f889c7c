package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sb-infra/sbinfra-backend/internal/auth"
)

func newVerifyRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(auth.NewGuard(secret)).Register(r.Group("/api/admin"))
	return r
}

func TestVerify_Post(t *testing.T) {
	router := newVerifyRouter("topsecret")

	t.Run("password in body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/admin/verify", strings.NewReader(`{"password":"topsecret"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success": true}`, rr.Body.String())
	})

	t.Run("secret field in body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/admin/verify", strings.NewReader(`{"secret":"topsecret"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("header fallback", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/admin/verify", nil)
		req.Header.Set("X-Admin-Secret", "topsecret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("body value is trimmed", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/admin/verify", strings.NewReader(`{"password":" topsecret "}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/admin/verify", strings.NewReader(`{"password":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"success": false, "error": "Invalid password."}`, rr.Body.String())
	})
}

func TestVerify_Get(t *testing.T) {
	router := newVerifyRouter("topsecret")

	t.Run("valid header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/verify", nil)
		req.Header.Set("X-Admin-Secret", "topsecret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/verify", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"success": false, "error": "Unauthorized."}`, rr.Body.String())
	})
}
