package model

import "time"

// ScrapDealer is a dealer profile distinct from the user account that owns
// it. A dealer publishes Availability slots for collection.
type ScrapDealer struct {
	ID            uint64    `json:"id"`
	UserID        uint64    `json:"user_id"`
	CompanyName   string    `json:"company_name"`
	ContactNumber string    `json:"contact_number"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Availability is a (date, location) tuple a dealer publishes as
// collectible. Location is joined in on search reads.
type Availability struct {
	ID            uint64    `json:"id"`
	ScrapDealerID uint64    `json:"scrap_dealer_id"`
	Date          string    `json:"date"` // YYYY-MM-DD
	LocationID    uint64    `json:"location_id"`
	Location      *Location `json:"location,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
