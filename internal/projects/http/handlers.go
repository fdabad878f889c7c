package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sb-infra/sbinfra-backend/internal/projects/domain"
	"github.com/sb-infra/sbinfra-backend/internal/projects/service"
)

type createReq struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	ImageURL    string `json:"imageUrl" form:"imageUrl"`
	Location    string `json:"location" form:"location"`
	Year        string `json:"year" form:"year"`
	Category    string `json:"category" form:"category"`
}

// updateReq uses pointers so an absent field is distinguishable from an
// empty one; only present fields are applied.
type updateReq struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
	ImageURL    *string `json:"imageUrl" form:"imageUrl"`
	Location    *string `json:"location" form:"location"`
	Year        *string `json:"year" form:"year"`
	Category    *string `json:"category" form:"category"`
}

func (h *Handler) list(c *gin.Context) {
	projects, err := h.svc.List()
	if err != nil {
		log.Printf("Error fetching projects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load projects."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "projects": projects})
}

func (h *Handler) get(c *gin.Context) {
	project, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Project not found."})
			return
		}
		log.Printf("Error fetching project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load project."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "project": project})
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body."})
		return
	}

	in := service.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Location:    req.Location,
		Year:        req.Year,
		Category:    req.Category,
	}
	if file, err := c.FormFile("image"); err == nil {
		in.Image = file
	}

	project, err := h.svc.Create(in)
	if err != nil {
		h.writeCreateUpdateError(c, err, "Failed to add project.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "project": project})
}

func (h *Handler) update(c *gin.Context) {
	var req updateReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body."})
		return
	}

	in := service.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Location:    req.Location,
		Year:        req.Year,
		Category:    req.Category,
	}
	if file, err := c.FormFile("image"); err == nil {
		in.Image = file
	}

	project, err := h.svc.Update(c.Param("id"), in)
	if err != nil {
		h.writeCreateUpdateError(c, err, "Failed to update project.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "project": project})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Project not found."})
			return
		}
		log.Printf("Error deleting project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete project."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) writeCreateUpdateError(c *gin.Context, err error, generic string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Title and description are required."})
	case service.IsImageRejected(err):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Project not found."})
	default:
		log.Printf("Error saving project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": generic})
	}
}
