package repository

import (
	"github.com/sb-infra/sbinfra-backend/internal/leads/domain"
	"github.com/sb-infra/sbinfra-backend/internal/storage/jsonfile"
)

const collection = "leads"

// LeadRepository provides persistence operations for leads.
type LeadRepository struct {
	store *jsonfile.Store
}

// NewLeadRepository creates a new lead repository.
func NewLeadRepository(store *jsonfile.Store) *LeadRepository {
	return &LeadRepository{store: store}
}

// List returns all leads in submission order.
func (r *LeadRepository) List() ([]domain.Lead, error) {
	return jsonfile.Load[domain.Lead](r.store, collection)
}

// Append adds a lead to the end of the collection. Existing leads are
// never touched.
func (r *LeadRepository) Append(lead domain.Lead) error {
	return jsonfile.Update(r.store, collection, func(leads []domain.Lead) ([]domain.Lead, error) {
		return append(leads, lead), nil
	})
}
