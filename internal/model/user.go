package model

import "time"

// Role is the closed set of account roles. Route groups are gated on these
// values, so anything outside the set is rejected at signup.
type Role string

const (
	RoleCustomer    Role = "CUSTOMER"
	RoleScrapDealer Role = "SCRAP_DEALER"
	RoleAdmin       Role = "ADMIN"
)

// ParseRole normalizes a client-supplied role string. Unknown or empty
// values fall back to CUSTOMER; ADMIN accounts are never self-assigned
// through signup.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleScrapDealer:
		return RoleScrapDealer
	default:
		return RoleCustomer
	}
}

// User mirrors the `users` table. Accounts are never hard-deleted;
// IsActive exists for soft disablement.
type User struct {
	ID            uint64    `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Role          Role      `json:"role"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	ContactNumber string    `json:"contact_number"`
	Address       string    `json:"address"`
	DateOfBirth   string    `json:"date_of_birth"` // YYYY-MM-DD, optional
	Gender        string    `json:"gender"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RefreshToken models an entry in the `refresh_tokens` table. The plain
// token is never stored; only its SHA-256 hash.
type RefreshToken struct {
	ID        uint64
	UserID    uint64
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
