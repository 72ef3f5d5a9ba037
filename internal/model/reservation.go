package model

// Reservation statuses. The initial status on creation is active; any
// status may follow any other, there is no terminal state.
const (
	ReservationActive    = "active"
	ReservationCompleted = "completed"
	ReservationCancelled = "cancelled"
)

// Reservation links one guest and one room over a date range. The
// guest and room references are stored as-is and are not verified to
// resolve to existing rows; a dangling reference simply yields NULL
// display fields in the joined views. Dates are plain YYYY-MM-DD text
// with no timezone or time-of-day component.
//
// Fields:
//  ID       – primary key identifier.
//  GuestID  – reference to guests.id (unverified).
//  RoomID   – reference to rooms.id (unverified).
//  CheckIn  – check-in date, YYYY-MM-DD.
//  CheckOut – check-out date, YYYY-MM-DD.
//  Status   – one of active, completed, cancelled.
type Reservation struct {
	ID       uint64 `json:"id"`        // reservations.id
	GuestID  uint64 `json:"guest_id"`  // reservations.guest_id
	RoomID   uint64 `json:"room_id"`   // reservations.room_id
	CheckIn  string `json:"check_in"`  // reservations.check_in
	CheckOut string `json:"check_out"` // reservations.check_out
	Status   string `json:"status"`    // reservations.status
}

// ReservationDetail is a reservation enriched with denormalized guest
// and room display fields, computed at read time by a LEFT JOIN and
// never persisted. The joined fields are nil when the reference is
// dangling.
type ReservationDetail struct {
	Reservation
	GuestName  *string `json:"guest_name"`  // guests.name via LEFT JOIN (nullable)
	GuestEmail *string `json:"guest_email"` // guests.email via LEFT JOIN (nullable)
	RoomNumber *string `json:"room_number"` // rooms.number via LEFT JOIN (nullable)
	RoomType   *string `json:"room_type"`   // rooms.type via LEFT JOIN (nullable)
}
