package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/validate"
)

// RoomHandler exposes the room CRUD endpoints. A room's status is
// independent of any reservation's status and is never synchronized by
// these handlers.
type RoomHandler struct {
	Rooms *repository.RoomRepo // access to the rooms table
}

// NewRoomHandler constructs a RoomHandler with the provided repository.
func NewRoomHandler(rooms *repository.RoomRepo) *RoomHandler {
	if rooms == nil {
		panic("nil repository passed to NewRoomHandler")
	}
	return &RoomHandler{Rooms: rooms}
}

// ListRooms handles GET /api/rooms and returns all rooms ordered by number.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	items, err := h.Rooms.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch rooms"})
	}
	if items == nil {
		items = []*model.Room{}
	}
	return c.JSON(http.StatusOK, items)
}

// GetRoom handles GET /api/rooms/:id.
func (h *RoomHandler) GetRoom(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	rm, err := h.Rooms.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch room"})
	}
	return c.JSON(http.StatusOK, rm)
}

// CreateRoom handles POST /api/rooms. The number is required and the
// status defaults to available.
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var body validate.RoomInput
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validate.Room(&body); err != nil {
		return badRequest(c, err)
	}
	rm := &model.Room{
		Number: body.Number,
		Type:   body.Type,
		Status: body.Status,
		Price:  body.Price,
	}
	if err := h.Rooms.Create(c.Request().Context(), rm); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create room"})
	}
	return c.JSON(http.StatusCreated, rm)
}

// UpdateRoom handles PUT /api/rooms/:id with full-record replacement.
func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body validate.RoomInput
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validate.Room(&body); err != nil {
		return badRequest(c, err)
	}
	rm := &model.Room{
		ID:     id,
		Number: body.Number,
		Type:   body.Type,
		Status: body.Status,
		Price:  body.Price,
	}
	if err := h.Rooms.Update(c.Request().Context(), rm); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update room"})
	}
	return c.JSON(http.StatusOK, rm)
}

// DeleteRoom handles DELETE /api/rooms/:id without cascading into
// reservations.
func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Rooms.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete room"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Room deleted successfully"})
}
