// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when the store accepts a booking.
// It carries enough for downstream consumers (confirmation emails,
// analytics, the booking log) to act without querying the primary store.
type BookingCreatedEvent struct {
	BookingID     string   `json:"booking_id"`
	BookingRef    string   `json:"booking_ref"`
	VenueID       string   `json:"venue_id"`
	CustomerName  string   `json:"customer_name"`
	CustomerEmail string   `json:"customer_email"`
	PartySize     int      `json:"party_size"`
	Date          string   `json:"date"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	TableIDs      []string `json:"table_ids"`
	TotalDeposit  int64    `json:"total_deposit_pence"`
	CreatedAt     string   `json:"created_at"`
}
