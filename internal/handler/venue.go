// Package handler exposes the public venue browsing endpoints.  Venue
// data is a read-only projection of the managed store; repeated reads
// with no intervening writes return identical payloads.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Jonboyweb/MM-br3-sub001/internal/model"
	"github.com/Jonboyweb/MM-br3-sub001/internal/repository"
)

// VenueStore is the venue read surface the handler depends on.
// *repository.VenueRepo is the production implementation.
type VenueStore interface {
	GetBySlug(ctx context.Context, slug string) (*model.Venue, error)
	ListActive(ctx context.Context) ([]model.Venue, error)
}

// VenueHandler serves the venue read endpoints.
type VenueHandler struct {
	Venues VenueStore
	Log    *slog.Logger
}

// NewVenueHandler constructs a VenueHandler.
func NewVenueHandler(venues VenueStore, log *slog.Logger) *VenueHandler {
	return &VenueHandler{Venues: venues, Log: log}
}

// GetVenue handles GET /api/venue/:slug.  An unknown slug yields 404
// with an error body and no venue field; store failures yield a generic
// 500 with the detail logged server-side only.
func (h *VenueHandler) GetVenue(c echo.Context) error {
	slug := c.Param("slug")
	v, err := h.Venues.GetBySlug(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		h.Log.Error("venue lookup failed", "slug", slug, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load venue"})
	}
	return c.JSON(http.StatusOK, echo.Map{"venue": v})
}

// ListVenues handles GET /api/venues, returning all active venues.
func (h *VenueHandler) ListVenues(c echo.Context) error {
	venues, err := h.Venues.ListActive(c.Request().Context())
	if err != nil {
		h.Log.Error("venue listing failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load venues"})
	}
	if venues == nil {
		venues = []model.Venue{}
	}
	return c.JSON(http.StatusOK, echo.Map{"venues": venues})
}
