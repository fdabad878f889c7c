package http

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sb-infra/sbinfra-backend/internal/packages/repository"
)

// DefaultCity is served when the requested slug is absent or unknown.
const DefaultCity = "bengaluru"

// Handler serves the pricing-by-city lookup.
type Handler struct {
	repo *repository.PackageRepository
}

func New(repo *repository.PackageRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) get(c *gin.Context) {
	city := normalizeSlug(c.Query("city"))
	if city == "" {
		city = DefaultCity
	}

	table, err := h.repo.Table()
	if err != nil {
		log.Printf("Error fetching packages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Packages data not available."})
		return
	}

	cityData, ok := table[city]
	if !ok {
		cityData = table[DefaultCity]
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "city": city, "packages": cityData})
}

// Register attaches the packages route to the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.get)
}

// normalizeSlug lowercases the city and strips all whitespace.
func normalizeSlug(city string) string {
	return strings.Join(strings.Fields(strings.ToLower(city)), "")
}
