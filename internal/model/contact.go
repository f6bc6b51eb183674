package model

import (
	"errors"
	"strings"
	"time"
)

// Contact form business rules. Each failure is reported separately so the
// caller can surface a precise message.
var (
	ErrContactMessageEmpty = errors.New("message is empty after removing markup")
	ErrContactNameRequired = errors.New("first name or last name is required")
	ErrContactReachback    = errors.New("email or phone number is required")
)

// Contact is a standalone support ticket. Message is stored after HTML
// stripping.
type Contact struct {
	ID        uint64    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate applies the OR-rules on an already-sanitized contact: the
// stripped message must be non-empty, at least one name field must be set,
// and at least one of email/phone must be set.
func (c *Contact) Validate() error {
	if strings.TrimSpace(c.Message) == "" {
		return ErrContactMessageEmpty
	}
	if strings.TrimSpace(c.FirstName) == "" && strings.TrimSpace(c.LastName) == "" {
		return ErrContactNameRequired
	}
	if strings.TrimSpace(c.Email) == "" && strings.TrimSpace(c.Phone) == "" {
		return ErrContactReachback
	}
	return nil
}
