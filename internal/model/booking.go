package model

import "time"

// CollectionType describes how the scrap changes hands.
type CollectionType string

const (
	CollectionHomePickup CollectionType = "HOME_PICKUP"
	CollectionDropOff    CollectionType = "DROP_OFF"
)

// PaymentMethod is how the dealer settles with the customer.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "CASH"
	PaymentPayNow       PaymentMethod = "PAYNOW"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// ValidCollectionType reports whether t is a member of the closed set.
func ValidCollectionType(t CollectionType) bool {
	return t == CollectionHomePickup || t == CollectionDropOff
}

// ValidPaymentMethod reports whether m is a member of the closed set.
func ValidPaymentMethod(m PaymentMethod) bool {
	return m == PaymentCash || m == PaymentPayNow || m == PaymentBankTransfer
}

// Booking is the aggregate root for a pickup. UserID is free text by
// contract, not a foreign key. The Location pointer is populated on reads
// when the booking references one; Items holds the owned item aggregate.
type Booking struct {
	ID               uint64         `json:"id"`
	UserID           string         `json:"user_id"`
	BookingDateTime  time.Time      `json:"booking_date_time"`
	AppointmentTime  time.Time      `json:"appointment_date_time"`
	LocationID       *uint64        `json:"location_id,omitempty"`
	Location         *Location      `json:"location,omitempty"`
	SameAsRegistered bool           `json:"collection_address_same_as_registered"`
	CollectionType   CollectionType `json:"collection_type"`
	PaymentMethod    PaymentMethod  `json:"payment_method"`
	Remarks          string         `json:"remarks"`
	Items            []Item         `json:"items"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// Snapshot returns an independent copy of the booking, including nested
// items and images, so callers can never mutate another read's state
// through a shared slice or pointer.
func (b Booking) Snapshot() Booking {
	out := b
	if b.Location != nil {
		loc := *b.Location
		out.Location = &loc
	}
	if b.LocationID != nil {
		id := *b.LocationID
		out.LocationID = &id
	}
	out.Items = CloneItems(b.Items)
	return out
}
