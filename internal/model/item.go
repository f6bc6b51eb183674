package model

import (
	"errors"
	"time"
)

// ErrItemFieldsRequired is returned when an item is created or updated
// without both mandatory fields.
var ErrItemFieldsRequired = errors.New("item name and description are required")

// Item belongs to at most one booking. BookingID is nullable because an
// item may be created standalone and attached later.
type Item struct {
	ID          uint64    `json:"id"`
	BookingID   *uint64   `json:"booking_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Images      []Image   `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks the mandatory fields.
func (i *Item) Validate() error {
	if i.Name == "" || i.Description == "" {
		return ErrItemFieldsRequired
	}
	return nil
}

// Snapshot returns an independent copy of the item and its images.
func (i Item) Snapshot() Item {
	out := i
	if i.BookingID != nil {
		id := *i.BookingID
		out.BookingID = &id
	}
	out.Images = CloneImages(i.Images)
	return out
}

// CloneItems deep-copies a slice of items. The result is never nil so JSON
// responses render an empty array instead of null.
func CloneItems(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, it.Snapshot())
	}
	return out
}
