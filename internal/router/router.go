package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/hotel-reservation/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers the complete API surface on the provided Echo
// instance. The health check stays outside the /api group's middleware so
// load balancers never see a rate-limited or cached response; everything
// else lives under /api with whatever middleware the caller supplies
// (rate limiting and response caching in production, nothing in tests).
func RegisterRoutes(e *echo.Echo, g *handler.GuestHandler, r *handler.RoomHandler, res *handler.ReservationHandler, mw ...echo.MiddlewareFunc) {
	// Health check used by the dashboard UI and monitoring.
	e.GET("/api/health", handler.Health)

	api := e.Group("/api", mw...)

	// Guest CRUD. Lists are ordered by name.
	api.GET("/guests", g.ListGuests)
	api.GET("/guests/:id", g.GetGuest)
	api.POST("/guests", g.CreateGuest)
	api.PUT("/guests/:id", g.UpdateGuest)
	api.DELETE("/guests/:id", g.DeleteGuest)

	// Room CRUD. Lists are ordered by room number.
	api.GET("/rooms", r.ListRooms)
	api.GET("/rooms/:id", r.GetRoom)
	api.POST("/rooms", r.CreateRoom)
	api.PUT("/rooms/:id", r.UpdateRoom)
	api.DELETE("/rooms/:id", r.DeleteRoom)

	// Reservation endpoints, served through the registry. Reads return
	// joined records; lists are ordered by check-in, most recent first.
	api.GET("/reservations", res.ListReservations)
	api.GET("/reservations/:id", res.GetReservation)
	api.POST("/reservations", res.CreateReservation)
	api.PUT("/reservations/:id", res.UpdateReservation)
	api.DELETE("/reservations/:id", res.DeleteReservation)
}
