package domain

import "fmt"

// Lead is a single contact-form submission. Leads are append-only:
// once stored they are never updated or deleted.
type Lead struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Mobile    string `json:"mobile"`
	Location  string `json:"location"`
	Source    string `json:"source"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

// ValidationError reports a missing or invalid submission field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
