package model

import (
	"errors"
	"time"
)

// ErrInvalidCoordinates is returned when a location's latitude or longitude
// falls outside valid geographic ranges.
var ErrInvalidCoordinates = errors.New("latitude must be in [-90,90] and longitude in [-180,180]")

// Location is a named point dealers and bookings reference.
type Location struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate bounds-checks the coordinates.
func (l *Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 || l.Longitude < -180 || l.Longitude > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}
