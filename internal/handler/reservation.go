package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/registry"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/validate"
)

// ReservationHandler exposes the reservation endpoints. Unlike the guest
// and room handlers it does not talk to a repository directly: all
// lifecycle logic lives in the registry, and the handler only maps its
// three failure kinds onto status codes — validation to 400, not-found
// to 404, anything else to an opaque 500.
type ReservationHandler struct {
	Registry *registry.Registry // owns the reservation lifecycle
}

// NewReservationHandler constructs a ReservationHandler with the
// provided registry.
func NewReservationHandler(reg *registry.Registry) *ReservationHandler {
	if reg == nil {
		panic("nil registry passed to NewReservationHandler")
	}
	return &ReservationHandler{Registry: reg}
}

// ListReservations handles GET /api/reservations and returns all
// reservations as joined records, most recent check-in first.
func (h *ReservationHandler) ListReservations(c echo.Context) error {
	items, err := h.Registry.ListReservations(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch reservations"})
	}
	if items == nil {
		items = []*model.ReservationDetail{}
	}
	return c.JSON(http.StatusOK, items)
}

// GetReservation handles GET /api/reservations/:id and returns the
// joined record. A dangling guest or room reference is not an error; the
// joined fields simply come back null.
func (h *ReservationHandler) GetReservation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	d, err := h.Registry.GetReservation(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch reservation"})
	}
	return c.JSON(http.StatusOK, d)
}

// CreateReservation handles POST /api/reservations. Guest ID, room ID,
// check-in and check-out are required; status defaults to active.
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var body validate.ReservationInput
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	rv, err := h.Registry.CreateReservation(c.Request().Context(), body)
	if err != nil {
		var ve *validate.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create reservation"})
	}
	return c.JSON(http.StatusCreated, rv)
}

// UpdateReservation handles PUT /api/reservations/:id. The record is
// replaced in full; status transitions are unconstrained, so any status
// may follow any other, including leaving cancelled or completed.
func (h *ReservationHandler) UpdateReservation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body validate.ReservationInput
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	rv, err := h.Registry.UpdateReservation(c.Request().Context(), id, body)
	if err != nil {
		var ve *validate.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Message})
		}
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update reservation"})
	}
	return c.JSON(http.StatusOK, rv)
}

// DeleteReservation handles DELETE /api/reservations/:id. Cancelled and
// completed reservations are deletable like any other; a second delete
// of the same identifier is a 404.
func (h *ReservationHandler) DeleteReservation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Registry.DeleteReservation(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete reservation"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Reservation deleted successfully"})
}
