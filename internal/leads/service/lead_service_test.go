package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sb-infra/sbinfra-backend/internal/leads/domain"
	"github.com/sb-infra/sbinfra-backend/internal/leads/repository"
	"github.com/sb-infra/sbinfra-backend/internal/storage/jsonfile"
)

func newLeadService(t *testing.T) *LeadService {
	t.Helper()
	store := jsonfile.New(t.TempDir())
	return NewLeadService(repository.NewLeadRepository(store))
}

func validInput() SubmitInput {
	return SubmitInput{
		FullName: "Asha Rao",
		Mobile:   "9876543210",
		Location: "Bengaluru",
	}
}

func TestSubmit_Valid(t *testing.T) {
	svc := newLeadService(t)

	lead, err := svc.Submit(SubmitInput{
		FullName: "  Asha Rao  ",
		Mobile:   " 9876543210 ",
		Location: " Bengaluru ",
		Message:  "  call me back ",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "Asha Rao", lead.FullName)
	assert.Equal(t, "9876543210", lead.Mobile)
	assert.Equal(t, "Bengaluru", lead.Location)
	assert.Equal(t, "website", lead.Source, "source defaults to website")
	assert.Equal(t, "call me back", lead.Message)

	created, err := time.Parse(time.RFC3339Nano, lead.CreatedAt)
	require.NoError(t, err, "createdAt must be parseable")
	assert.False(t, created.IsZero())

	stored, err := svc.List()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, *lead, stored[0])
}

func TestSubmit_ExplicitSourceKept(t *testing.T) {
	svc := newLeadService(t)

	in := validInput()
	in.Source = "footer-form"
	lead, err := svc.Submit(in)
	require.NoError(t, err)
	assert.Equal(t, "footer-form", lead.Source)
}

func TestSubmit_MissingRequiredFields(t *testing.T) {
	svc := newLeadService(t)

	cases := []struct {
		name  string
		in    SubmitInput
		field string
	}{
		{"missing fullName", SubmitInput{Mobile: "9876543210", Location: "Bengaluru"}, "fullName"},
		{"missing mobile", SubmitInput{FullName: "Asha Rao", Location: "Bengaluru"}, "mobile"},
		{"missing location", SubmitInput{FullName: "Asha Rao", Mobile: "9876543210"}, "location"},
		{"whitespace only", SubmitInput{FullName: "   ", Mobile: "9876543210", Location: "Bengaluru"}, "fullName"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(tc.in)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}

	// No rejected submission may have touched the collection.
	stored, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestSubmit_IDsUniqueAndTimestampsMonotonic(t *testing.T) {
	svc := newLeadService(t)

	seen := make(map[string]bool)
	var prev time.Time
	for i := 0; i < 10; i++ {
		lead, err := svc.Submit(validInput())
		require.NoError(t, err)

		assert.False(t, seen[lead.ID], "id %s assigned twice", lead.ID)
		seen[lead.ID] = true

		created, err := time.Parse(time.RFC3339Nano, lead.CreatedAt)
		require.NoError(t, err)
		assert.False(t, created.Before(prev), "createdAt went backwards")
		prev = created
	}

	stored, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, stored, 10)
}
