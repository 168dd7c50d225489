package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/stripe/stripe-go/v81"

	"github.com/Jonboyweb/MM-br3-sub001/internal/payments"
)

// IntentCreator is the payment surface the handler depends on.
// *payments.Client is the production implementation.
type IntentCreator interface {
	CreateIntent(ctx context.Context, req payments.IntentRequest) (*payments.Intent, error)
}

// PaymentHandler serves POST /api/payments/create-intent.
type PaymentHandler struct {
	Intents IntentCreator
	Log     *slog.Logger
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(intents IntentCreator, log *slog.Logger) *PaymentHandler {
	return &PaymentHandler{Intents: intents, Log: log}
}

// bookingData mirrors the client-held booking form attached to a payment
// request.  Everything except the email is optional at this stage; the
// metadata defaults below fill the gaps.
type bookingData struct {
	ID              string   `json:"id"`
	VenueID         string   `json:"venueId"`
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	PartySize       int      `json:"partySize"`
	Date            string   `json:"date"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	TableIDs        []string `json:"tableIds"`
	SpecialRequests string   `json:"specialRequests"`
}

// createIntentRequest is the request body.  Amount is a pointer so a
// missing amount is distinguishable from zero; it arrives as a JSON
// number and may carry a fractional part, which is rounded away before
// the processor sees it.
type createIntentRequest struct {
	Amount      *float64     `json:"amount"`
	Currency    string       `json:"currency"`
	BookingData *bookingData `json:"bookingData"`
	PaymentType string       `json:"paymentType"`
}

// CreateIntent validates the request and asks the processor for an
// authorization handle.  Validation failures return 400 before any
// processor call.  Processor errors are relayed with their own message
// (Stripe messages are safe to expose); anything else is a generic 500.
// No retries happen here: a failed creation is retried by the caller as
// a fresh request.
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Amount == nil || *req.Amount < payments.MinimumAmount {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": fmt.Sprintf("amount must be at least %d", payments.MinimumAmount),
		})
	}
	if req.BookingData == nil || req.BookingData.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking data with a customer email is required"})
	}

	paymentType := req.PaymentType
	if paymentType == "" {
		paymentType = "deposit"
	}
	description := "Table booking deposit"
	if paymentType == "full" {
		description = "Table booking full payment"
	}

	intent, err := h.Intents.CreateIntent(c.Request().Context(), payments.IntentRequest{
		Amount:       int64(math.Round(*req.Amount)),
		Currency:     req.Currency,
		Description:  description,
		ReceiptEmail: req.BookingData.Email,
		Metadata:     intentMetadata(req.BookingData, paymentType),
	})
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": stripeErr.Msg})
		}
		h.Log.Error("create intent failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "payment intent creation failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"clientSecret":    intent.ClientSecret,
		"paymentIntentId": intent.ID,
	})
}

// intentMetadata flattens the booking form into the processor metadata
// map used for reconciliation.  Optional fields default to the empty
// string; the booking id defaults to "pending" because the durable
// record may not exist yet when the intent is created.
func intentMetadata(b *bookingData, paymentType string) map[string]string {
	bookingID := b.ID
	if bookingID == "" {
		bookingID = "pending"
	}
	partySize := ""
	if b.PartySize > 0 {
		partySize = strconv.Itoa(b.PartySize)
	}
	return map[string]string{
		"bookingId":       bookingID,
		"venueId":         b.VenueID,
		"customerName":    strings.TrimSpace(b.FirstName + " " + b.LastName),
		"customerEmail":   b.Email,
		"customerPhone":   b.Phone,
		"partySize":       partySize,
		"bookingDate":     b.Date,
		"startTime":       b.StartTime,
		"endTime":         b.EndTime,
		"tableIds":        strings.Join(b.TableIDs, ","),
		"paymentType":     paymentType,
		"specialRequests": b.SpecialRequests,
	}
}
