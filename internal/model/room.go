package model

// Room statuses. A room's status is independent of any reservation's
// status and is never synchronized automatically.
const (
	RoomAvailable   = "available"
	RoomOccupied    = "occupied"
	RoomMaintenance = "maintenance"
)

// Room is a bookable unit. Room numbers are required but not unique;
// the identifier is the only uniqueness in the model.
//
// Fields:
//  ID     – primary key identifier.
//  Number – room number shown to staff (required, free text).
//  Type   – room category such as single/double/suite/deluxe (nullable).
//  Status – one of available, occupied, maintenance.
//  Price  – nightly price, non-negative when present (nullable).
type Room struct {
	ID     uint64   `json:"id"`     // rooms.id
	Number string   `json:"number"` // rooms.number
	Type   *string  `json:"type"`   // rooms.type (nullable)
	Status string   `json:"status"` // rooms.status
	Price  *float64 `json:"price"`  // rooms.price (nullable)
}
