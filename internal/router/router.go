// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Jonboyweb/MM-br3-sub001/internal/handler"
	"github.com/Jonboyweb/MM-br3-sub001/internal/middleware"
)

// Handlers groups everything the router wires up.  All fields must be
// non-nil; CacheMW may be a pass-through when Redis is unavailable.
type Handlers struct {
	Venues      *handler.VenueHandler
	Tables      *handler.TablesHandler
	Payments    *handler.PaymentHandler
	Bookings    *handler.BookingHandler
	Auth        *handler.AuthHandler
	Diagnostics *handler.DiagnosticsHandler
	CacheMW     echo.MiddlewareFunc
	JWTSecret   string
}

// Register wires all routes on the provided Echo instance.
func Register(e *echo.Echo, h Handlers) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	api := e.Group("/api")

	// Venue reads are cacheable: the payload changes only when the store
	// does.  Table routes are not cached because their availability
	// annotation is bound to the exact window being queried.
	api.GET("/venues", h.Venues.ListVenues, h.CacheMW)
	api.GET("/venue/:slug", h.Venues.GetVenue, h.CacheMW)

	api.GET("/tables/:venueId", h.Tables.GetTables)
	api.GET("/tables/:venueId/combinations", h.Tables.GetCombinations)

	api.POST("/payments/create-intent", h.Payments.CreateIntent)
	api.POST("/bookings", h.Bookings.CreateBooking)

	api.GET("/test-db", h.Diagnostics.TestDB)

	api.POST("/auth/login", h.Auth.Login)

	// Staff endpoints require a valid signed access token with a staff role.
	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuth(h.JWTSecret))
	admin.Use(middleware.RequireRole("STAFF", "MANAGER"))
	admin.GET("/bookings", h.Bookings.ListBookings)
}
