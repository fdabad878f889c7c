package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sb-infra/sbinfra-backend/internal/leads/domain"
	"github.com/sb-infra/sbinfra-backend/internal/leads/repository"
)

// SubmitInput carries a raw contact-form submission.
type SubmitInput struct {
	FullName string
	Mobile   string
	Location string
	Source   string
	Message  string
}

// LeadService handles lead intake business logic.
type LeadService struct {
	repo *repository.LeadRepository
}

// NewLeadService creates a new lead service.
func NewLeadService(repo *repository.LeadRepository) *LeadService {
	return &LeadService{repo: repo}
}

// Submit validates the submission and appends it to the lead collection.
// fullName, mobile and location are required; source defaults to
// "website" and message to empty.
func (s *LeadService) Submit(in SubmitInput) (*domain.Lead, error) {
	if strings.TrimSpace(in.FullName) == "" {
		return nil, &domain.ValidationError{Field: "fullName", Reason: "required"}
	}
	if strings.TrimSpace(in.Mobile) == "" {
		return nil, &domain.ValidationError{Field: "mobile", Reason: "required"}
	}
	if strings.TrimSpace(in.Location) == "" {
		return nil, &domain.ValidationError{Field: "location", Reason: "required"}
	}

	source := strings.TrimSpace(in.Source)
	if source == "" {
		source = "website"
	}

	lead := domain.Lead{
		ID:        uuid.New().String(),
		FullName:  strings.TrimSpace(in.FullName),
		Mobile:    strings.TrimSpace(in.Mobile),
		Location:  strings.TrimSpace(in.Location),
		Source:    source,
		Message:   strings.TrimSpace(in.Message),
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}

	if err := s.repo.Append(lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

// List returns every stored lead.
func (s *LeadService) List() ([]domain.Lead, error) {
	return s.repo.List()
}
