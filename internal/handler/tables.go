package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Jonboyweb/MM-br3-sub001/internal/availability"
	"github.com/Jonboyweb/MM-br3-sub001/internal/booking"
	"github.com/Jonboyweb/MM-br3-sub001/internal/model"
)

// TableStore is the table read surface the handler depends on.
// *repository.TableRepo is the production implementation.
type TableStore interface {
	ListActiveByVenue(ctx context.Context, venueID string) ([]model.Table, error)
}

// TablesHandler serves the table browsing endpoints, annotating tables
// with availability when a complete time window is supplied.
type TablesHandler struct {
	Tables       TableStore
	Availability availability.Predicate
	Log          *slog.Logger
}

// NewTablesHandler constructs a TablesHandler.
func NewTablesHandler(tables TableStore, pred availability.Predicate, log *slog.Logger) *TablesHandler {
	return &TablesHandler{Tables: tables, Availability: pred, Log: log}
}

// GetTables handles GET /api/tables/:venueId?date=&startTime=&endTime=.
// Without a complete window the tables are returned as available by
// default.  With one, each table is checked concurrently against the
// store's predicate; a failed check degrades that one table to
// unavailable and the request still succeeds.
func (h *TablesHandler) GetTables(c echo.Context) error {
	venueID := c.Param("venueId")
	if venueID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "venue id is required"})
	}
	ctx := c.Request().Context()

	tables, err := h.Tables.ListActiveByVenue(ctx, venueID)
	if err != nil {
		h.Log.Error("table listing failed", "venue_id", venueID, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load tables"})
	}

	win := availability.ParseWindow(
		c.QueryParam("date"), c.QueryParam("startTime"), c.QueryParam("endTime"))
	annotated := availability.Annotate(ctx, h.Availability, h.Log, tables, win)

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"tables":  annotated,
		"counts":  availability.Counts(annotated),
	})
}

// GetCombinations handles
// GET /api/tables/:venueId/combinations?partySize=&date=&startTime=&endTime=.
// It suggests availability-aware table groupings for a party size along
// with the comfortable-capacity figure (party size plus a 20% buffer).
func (h *TablesHandler) GetCombinations(c echo.Context) error {
	venueID := c.Param("venueId")
	if venueID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "venue id is required"})
	}
	partySize, err := strconv.Atoi(c.QueryParam("partySize"))
	if err != nil || partySize <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "partySize must be a positive integer"})
	}
	ctx := c.Request().Context()

	tables, err := h.Tables.ListActiveByVenue(ctx, venueID)
	if err != nil {
		h.Log.Error("table listing failed", "venue_id", venueID, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load tables"})
	}

	win := availability.ParseWindow(
		c.QueryParam("date"), c.QueryParam("startTime"), c.QueryParam("endTime"))
	annotated := availability.Annotate(ctx, h.Availability, h.Log, tables, win)

	return c.JSON(http.StatusOK, echo.Map{
		"success":             true,
		"partySize":           partySize,
		"comfortableCapacity": booking.ComfortableCapacity(partySize),
		"combinations":        booking.Combinations(annotated, partySize),
	})
}
