// Package repository contains data access logic separated from HTTP
// handlers. Sentinel errors let handlers map failures onto status codes
// without inspecting driver internals.
package repository

import "errors"

var (
	// ErrEmailExists is returned on signup when the email is taken.
	ErrEmailExists = errors.New("email already exists")

	// Per-entity not-found sentinels. Handlers translate each into 404.
	ErrUserNotFound         = errors.New("user not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrItemNotFound         = errors.New("item not found")
	ErrImageNotFound        = errors.New("image not found")
	ErrLocationNotFound     = errors.New("location not found")
	ErrAvailabilityNotFound = errors.New("availability not found")
	ErrScrapDealerNotFound  = errors.New("scrap dealer not found")
)
