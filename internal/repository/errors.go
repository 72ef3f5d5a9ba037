// Package repository contains data access logic separated from HTTP
// handlers. This file defines the sentinel error values shared across
// the repositories so higher layers can distinguish a missing record
// from a storage fault. Handlers translate these into HTTP 404
// responses; every other repository error is an opaque storage fault
// surfaced as HTTP 500.
package repository

import "errors"

// ErrGuestNotFound is returned when a guest cannot be found in the DB.
var ErrGuestNotFound = errors.New("guest not found")

// ErrRoomNotFound is returned when a room cannot be found in the DB.
var ErrRoomNotFound = errors.New("room not found")

// ErrReservationNotFound is returned when a reservation cannot be found
// in the DB. Zero-row updates and deletes report it as well, so a
// repeated delete of the same identifier stays a not-found failure.
var ErrReservationNotFound = errors.New("reservation not found")
