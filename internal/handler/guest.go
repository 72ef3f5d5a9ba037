package handler // handler package translates HTTP requests into repository and registry calls

import (
	"errors"   // errors is used for sentinel comparisons
	"net/http" // http provides status code constants
	"strconv"  // strconv parses string identifiers to numeric types

	"github.com/labstack/echo/v4" // echo is the web framework used for handlers

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/validate"
)

// GuestHandler exposes the guest CRUD endpoints. Guests are a simple
// single-entity collaborator: no other entity is touched by any of these
// operations, so every handler is a straight bind -> validate -> repo
// call sequence.
type GuestHandler struct {
	Guests *repository.GuestRepo // access to the guests table
}

// NewGuestHandler constructs a GuestHandler with the provided repository.
func NewGuestHandler(guests *repository.GuestRepo) *GuestHandler {
	if guests == nil {
		panic("nil repository passed to NewGuestHandler")
	}
	return &GuestHandler{Guests: guests}
}

// parseID parses the :id path parameter shared by all entity endpoints.
func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// badRequest writes the field-level message of a validation failure.
func badRequest(c echo.Context, err error) error {
	var ve *validate.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Message})
	}
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
}

// ListGuests handles GET /api/guests and returns all guests ordered by name.
func (h *GuestHandler) ListGuests(c echo.Context) error {
	items, err := h.Guests.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch guests"})
	}
	if items == nil {
		items = []*model.Guest{} // empty list, not null
	}
	return c.JSON(http.StatusOK, items)
}

// GetGuest handles GET /api/guests/:id.
func (h *GuestHandler) GetGuest(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	g, err := h.Guests.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Guest not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch guest"})
	}
	return c.JSON(http.StatusOK, g)
}

// CreateGuest handles POST /api/guests. Only the name is required.
func (h *GuestHandler) CreateGuest(c echo.Context) error {
	var body validate.GuestInput
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validate.Guest(&body); err != nil {
		return badRequest(c, err)
	}
	g := &model.Guest{
		Name:         body.Name,
		Email:        body.Email,
		Phone:        body.Phone,
		CustomFields: body.CustomFields,
	}
	if err := h.Guests.Create(c.Request().Context(), g); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create guest"})
	}
	return c.JSON(http.StatusCreated, g)
}

// UpdateGuest handles PUT /api/guests/:id. The whole record is replaced;
// unchanged fields must be resent.
func (h *GuestHandler) UpdateGuest(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body validate.GuestInput
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validate.Guest(&body); err != nil {
		return badRequest(c, err)
	}
	g := &model.Guest{
		ID:           id,
		Name:         body.Name,
		Email:        body.Email,
		Phone:        body.Phone,
		CustomFields: body.CustomFields,
	}
	if err := h.Guests.Update(c.Request().Context(), g); err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Guest not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update guest"})
	}
	return c.JSON(http.StatusOK, g)
}

// DeleteGuest handles DELETE /api/guests/:id. Reservations referencing
// the guest are left untouched; their reference dangles.
func (h *GuestHandler) DeleteGuest(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Guests.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Guest not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete guest"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Guest deleted successfully"})
}
