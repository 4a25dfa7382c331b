package validation

import (
	"strings"

	"github.com/walavie/walavie-site/pkg/types"
)

const (
	MaxNameLength    = 100
	MaxMessageLength = 5000
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ValidateContact trims the payload and turns it into a store insert.
func ValidateContact(req ContactRequest) (types.InsertContactSubmission, *FieldError) {
	name := strings.TrimSpace(req.Name)
	message := strings.TrimSpace(req.Message)

	if ferr := requireString("name", name, "Name is required"); ferr != nil {
		return types.InsertContactSubmission{}, ferr
	}
	if ferr := maxLength("name", name, MaxNameLength, "Name must be at most 100 characters"); ferr != nil {
		return types.InsertContactSubmission{}, ferr
	}

	email, ferr := validEmail("email", req.Email)
	if ferr != nil {
		return types.InsertContactSubmission{}, ferr
	}

	if ferr := requireString("message", message, "Message is required"); ferr != nil {
		return types.InsertContactSubmission{}, ferr
	}
	if ferr := maxLength("message", message, MaxMessageLength, "Message must be at most 5000 characters"); ferr != nil {
		return types.InsertContactSubmission{}, ferr
	}

	return types.InsertContactSubmission{
		Name:    name,
		Email:   email,
		Message: message,
	}, nil
}
