// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a collection booking is successfully
// created. It carries enough information for downstream consumers to log,
// notify, or trigger analytics without querying the primary database.
type BookingCreatedEvent struct {
	BookingID       uint64 `json:"booking_id"`
	UserID          string `json:"user_id"`
	AppointmentTime string `json:"appointment_time"`
	CollectionType  string `json:"collection_type"`
	PaymentMethod   string `json:"payment_method"`
	ItemCount       int    `json:"item_count"`
	CreatedAt       string `json:"created_at"`
}
