// Package validate is the pure validation layer sitting between the HTTP
// handlers and storage. One function per entity kind checks required-field
// presence and applies status defaults; no cross-entity checks happen here,
// so referential existence of guest/room identifiers is never verified.
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// ValidationError reports a single malformed or missing field. Handlers
// translate it into an HTTP 400 response carrying the message verbatim.
type ValidationError struct {
	Field   string // json name of the offending field
	Message string // human-readable, field-level message
}

func (e *ValidationError) Error() string { return e.Message }

// v is the shared validator instance. Field names in error messages use
// the json tag so callers see wire names, not Go struct names.
var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return val
}

// GuestInput carries the writable guest fields of a create or update
// request. Only the name is mandatory.
type GuestInput struct {
	Name         string  `json:"name" validate:"required"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	CustomFields *string `json:"custom_fields"`
}

// RoomInput carries the writable room fields. The number is mandatory;
// status defaults to available and price may not be negative.
type RoomInput struct {
	Number string   `json:"number" validate:"required"`
	Type   *string  `json:"type"`
	Status string   `json:"status" validate:"omitempty,oneof=available occupied maintenance"`
	Price  *float64 `json:"price" validate:"omitempty,gte=0"`
}

// ReservationInput carries the writable reservation fields. All five are
// required except status, which defaults to active. Dates must be
// YYYY-MM-DD text.
type ReservationInput struct {
	GuestID  uint64 `json:"guest_id" validate:"required"`
	RoomID   uint64 `json:"room_id" validate:"required"`
	CheckIn  string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Status   string `json:"status" validate:"omitempty,oneof=active completed cancelled"`
}

// Guest trims and validates a guest input in place.
func Guest(in *GuestInput) error {
	in.Name = strings.TrimSpace(in.Name)
	return check(in)
}

// Room trims and validates a room input in place, defaulting the status
// to available when absent.
func Room(in *RoomInput) error {
	in.Number = strings.TrimSpace(in.Number)
	if in.Status == "" {
		in.Status = model.RoomAvailable
	}
	return check(in)
}

// Reservation validates a reservation input in place, defaulting the
// status to active when absent.
func Reservation(in *ReservationInput) error {
	in.CheckIn = strings.TrimSpace(in.CheckIn)
	in.CheckOut = strings.TrimSpace(in.CheckOut)
	if in.Status == "" {
		in.Status = model.ReservationActive
	}
	return check(in)
}

// check runs the validator and converts the first field error into a
// *ValidationError. Later errors are dropped: the UI surfaces one
// message at a time and the caller corrects and resubmits.
func check(in any) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return &ValidationError{Message: "invalid input"}
	}
	fe := errs[0]
	return &ValidationError{Field: fe.Field(), Message: messageFor(fe)}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s must be a YYYY-MM-DD date", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	case "gte":
		return fmt.Sprintf("%s must not be negative", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
