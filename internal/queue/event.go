// Package queue defines message payloads exchanged over the message broker.
package queue

// Reservation event actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ReservationEvent is published whenever a reservation is created,
// updated or deleted. It carries the full record so downstream
// consumers can log, notify, or feed analytics without querying the
// primary database.
type ReservationEvent struct {
	Action        string `json:"action"`
	ReservationID uint64 `json:"reservation_id"`
	GuestID       uint64 `json:"guest_id"`
	RoomID        uint64 `json:"room_id"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	Status        string `json:"status"`
	OccurredAt    string `json:"occurred_at"`
}
