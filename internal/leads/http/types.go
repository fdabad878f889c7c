package http

import "github.com/sb-infra/sbinfra-backend/internal/leads/service"

// Handler bundles the dependencies for lead HTTP endpoints.
type Handler struct {
	svc *service.LeadService
}

func New(svc *service.LeadService) *Handler {
	return &Handler{svc: svc}
}
