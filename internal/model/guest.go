package model

// Guest represents a person who can be linked to reservations.
// Only the name is mandatory; contact details and the free-form
// custom_fields column are optional and stored as NULL when absent.
// Deleting a guest never cascades into reservations, so a
// reservation may keep referencing an identifier that no longer
// resolves.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – guest's display name (required).
//  Email        – contact email (nullable).
//  Phone        – contact phone number (nullable).
//  CustomFields – free-form notes (nullable).
type Guest struct {
	ID           uint64  `json:"id"`            // guests.id
	Name         string  `json:"name"`          // guests.name
	Email        *string `json:"email"`         // guests.email (nullable)
	Phone        *string `json:"phone"`         // guests.phone (nullable)
	CustomFields *string `json:"custom_fields"` // guests.custom_fields (nullable)
}
