package model

import (
	"errors"
	"strings"
)

// ErrMissingFields is returned when a contact message omits a required field.
var ErrMissingFields = errors.New("all fields required")

// ContactMessage is a request-scoped contact-form submission. It is never
// stored; it exists only long enough to be validated and dispatched.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate checks that every field is present and non-blank.
func (m ContactMessage) Validate() error {
	switch {
	case strings.TrimSpace(m.Name) == "",
		strings.TrimSpace(m.Email) == "",
		strings.TrimSpace(m.Subject) == "",
		strings.TrimSpace(m.Message) == "":
		return ErrMissingFields
	}
	return nil
}
