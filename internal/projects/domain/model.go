package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no project matches the requested id.
var ErrNotFound = errors.New("project not found")

// DefaultCategory is applied when a project is created without one.
const DefaultCategory = "Residential"

// Project is a single portfolio entry shown in the public gallery.
// ImageURL is either a store-managed upload path or an external URL
// supplied verbatim by the admin.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Location    string `json:"location"`
	Year        string `json:"year"`
	Category    string `json:"category"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ValidationError reports a missing or invalid project field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
