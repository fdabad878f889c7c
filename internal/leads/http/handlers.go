package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sb-infra/sbinfra-backend/internal/leads/domain"
	"github.com/sb-infra/sbinfra-backend/internal/leads/service"
)

type submitReq struct {
	FullName string `json:"fullName" form:"fullName"`
	Mobile   string `json:"mobile" form:"mobile"`
	Location string `json:"location" form:"location"`
	Source   string `json:"source" form:"source"`
	Message  string `json:"message" form:"message"`
}

func (h *Handler) submit(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body."})
		return
	}

	lead, err := h.svc.Submit(service.SubmitInput{
		FullName: req.FullName,
		Mobile:   req.Mobile,
		Location: req.Location,
		Source:   req.Source,
		Message:  req.Message,
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Full name, mobile number and location are required.",
			})
			return
		}
		log.Printf("Error saving lead: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to submit. Please try again."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Thank you! We will contact you shortly.",
		"id":      lead.ID,
	})
}

func (h *Handler) list(c *gin.Context) {
	leads, err := h.svc.List()
	if err != nil {
		log.Printf("Error fetching leads: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load leads."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "leads": leads})
}
