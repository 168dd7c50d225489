package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Jonboyweb/MM-br3-sub001/internal/booking"
	"github.com/Jonboyweb/MM-br3-sub001/internal/model"
	"github.com/Jonboyweb/MM-br3-sub001/internal/queue"
)

// BookingStore is the booking surface the handler depends on.
// *repository.BookingRepo is the production implementation.
type BookingStore interface {
	Create(ctx context.Context, id, ref, customerName string, req *model.BookingRequest) (*model.BookingResult, error)
	ListByVenueDate(ctx context.Context, venueID, date string) ([]model.BookingRow, error)
}

// EventPublisher mirrors queue_publisher.PublishBookingCreated so tests
// can observe published events.
type EventPublisher func(ctx context.Context, event queue.BookingCreatedEvent) error

// BookingHandler serves booking creation and the staff booking list.
type BookingHandler struct {
	Bookings BookingStore
	Publish  EventPublisher
	Log      *slog.Logger
}

// NewBookingHandler constructs a BookingHandler.  publish may be nil
// when no broker is configured; events are then skipped.
func NewBookingHandler(bookings BookingStore, publish EventPublisher, log *slog.Logger) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Publish: publish, Log: log}
}

// CreateBooking handles POST /api/bookings.  It validates the form,
// generates the booking id and human-readable reference, hands the rest
// to the store's booking procedure and relays its verdict.  A business
// rejection from the procedure (table taken meanwhile) is 409; transport
// failures are 500.  The booking.created event is published after the
// fact and its failure never affects the response.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req model.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := validateBooking(&req); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	ref, err := booking.NewReference(time.Now().UTC())
	if err != nil {
		h.Log.Error("booking reference generation failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
	}
	customerName := strings.TrimSpace(req.FirstName + " " + req.LastName)

	res, err := h.Bookings.Create(c.Request().Context(), id, ref, customerName, &req)
	if err != nil {
		h.Log.Error("booking creation failed", "venue_id", req.VenueID, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
	}
	if !res.Success {
		return c.JSON(http.StatusConflict, echo.Map{
			"success": false,
			"error":   res.ErrorMessage,
		})
	}

	if h.Publish != nil {
		// fire-and-forget: the request context ends with the response,
		// so the publish gets its own deadline
		event := queue.BookingCreatedEvent{
			BookingID:     id,
			BookingRef:    res.BookingRef,
			VenueID:       req.VenueID,
			CustomerName:  customerName,
			CustomerEmail: req.Email,
			PartySize:     req.PartySize,
			Date:          req.Date,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			TableIDs:      req.TableIDs,
			TotalDeposit:  res.TotalDeposit,
			CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = h.Publish(ctx, event)
		}()
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success":      true,
		"bookingRef":   res.BookingRef,
		"totalDeposit": res.TotalDeposit,
	})
}

// ListBookings handles GET /api/admin/bookings?venueId=&date=.  It is a
// staff-only projection guarded by JWT and role middleware.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	venueID := c.QueryParam("venueId")
	if venueID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "venueId is required"})
	}
	rows, err := h.Bookings.ListByVenueDate(c.Request().Context(), venueID, c.QueryParam("date"))
	if err != nil {
		h.Log.Error("booking listing failed", "venue_id", venueID, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	if rows == nil {
		rows = []model.BookingRow{}
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": rows})
}

// validateBooking returns an error message for the first missing required
// field, or "" when the form is acceptable.
func validateBooking(req *model.BookingRequest) string {
	switch {
	case req.VenueID == "":
		return "venueId is required"
	case req.Email == "":
		return "email is required"
	case req.PartySize <= 0:
		return "partySize must be a positive integer"
	case req.Date == "":
		return "date is required"
	case req.StartTime == "" || req.EndTime == "":
		return "startTime and endTime are required"
	case len(req.TableIDs) == 0:
		return "at least one table must be selected"
	}
	return ""
}
