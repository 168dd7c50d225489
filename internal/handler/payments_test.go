package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"

	"github.com/Jonboyweb/MM-br3-sub001/internal/payments"
)

// stubIntents records every request it receives and replies with a
// canned intent or error.
type stubIntents struct {
	requests []payments.IntentRequest
	intent   *payments.Intent
	err      error
}

func (s *stubIntents) CreateIntent(ctx context.Context, req payments.IntentRequest) (*payments.Intent, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	return s.intent, nil
}

func testLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postIntent(t *testing.T, h *PaymentHandler, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/create-intent", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.CreateIntent(e.NewContext(req, rec)))

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec, out
}

func TestCreateIntentRejectsLowAmount(t *testing.T) {
	stub := &stubIntents{}
	h := NewPaymentHandler(stub, testLog())

	for _, body := range []string{
		`{}`,
		`{"amount": 49, "bookingData": {"email": "a@b.com"}}`,
		`{"amount": 0, "bookingData": {"email": "a@b.com"}}`,
		`{"amount": -100, "bookingData": {"email": "a@b.com"}}`,
	} {
		rec, out := postIntent(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, out, "error")
	}
	assert.Empty(t, stub.requests, "no processor call may happen for invalid amounts")
}

func TestCreateIntentRejectsMissingEmail(t *testing.T) {
	stub := &stubIntents{}
	h := NewPaymentHandler(stub, testLog())

	for _, body := range []string{
		`{"amount": 2500}`,
		`{"amount": 2500, "bookingData": {}}`,
		`{"amount": 2500, "bookingData": {"firstName": "A"}}`,
	} {
		rec, out := postIntent(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, out, "error")
	}
	assert.Empty(t, stub.requests, "no processor call may happen without an email")
}

func TestCreateIntentDepositFlow(t *testing.T) {
	stub := &stubIntents{intent: &payments.Intent{ID: "pi_123", ClientSecret: "pi_123_secret"}}
	h := NewPaymentHandler(stub, testLog())

	rec, out := postIntent(t, h, `{
		"amount": 2500,
		"bookingData": {"email": "a@b.com", "firstName": "A", "partySize": 4},
		"paymentType": "deposit"
	}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pi_123_secret", out["clientSecret"])
	assert.Equal(t, "pi_123", out["paymentIntentId"])

	require.Len(t, stub.requests, 1)
	sent := stub.requests[0]
	assert.Equal(t, int64(2500), sent.Amount)
	assert.Equal(t, "a@b.com", sent.ReceiptEmail)
	assert.Equal(t, "Table booking deposit", sent.Description)
	assert.Equal(t, "deposit", sent.Metadata["paymentType"])
	assert.Equal(t, "4", sent.Metadata["partySize"])
	assert.Equal(t, "pending", sent.Metadata["bookingId"])
	assert.Equal(t, "A", sent.Metadata["customerName"])
}

func TestCreateIntentRoundsFractionalAmount(t *testing.T) {
	stub := &stubIntents{intent: &payments.Intent{ID: "pi_1", ClientSecret: "cs"}}
	h := NewPaymentHandler(stub, testLog())

	cases := []struct {
		body string
		want int64
	}{
		{`{"amount": 2500.4, "bookingData": {"email": "a@b.com"}}`, 2500},
		{`{"amount": 2500.5, "bookingData": {"email": "a@b.com"}}`, 2501},
		{`{"amount": 99.9, "bookingData": {"email": "a@b.com"}}`, 100},
	}
	for _, tc := range cases {
		rec, _ := postIntent(t, h, tc.body)
		require.Equal(t, http.StatusOK, rec.Code, tc.body)
		assert.Equal(t, tc.want, stub.requests[len(stub.requests)-1].Amount, tc.body)
	}
}

func TestCreateIntentFullPaymentDescription(t *testing.T) {
	stub := &stubIntents{intent: &payments.Intent{ID: "pi_1", ClientSecret: "cs"}}
	h := NewPaymentHandler(stub, testLog())

	rec, _ := postIntent(t, h, `{
		"amount": 40000,
		"bookingData": {"email": "a@b.com", "id": "bk-9", "tableIds": ["t-1","t-2"]},
		"paymentType": "full"
	}`)
	require.Equal(t, http.StatusOK, rec.Code)
	sent := stub.requests[0]
	assert.Equal(t, "Table booking full payment", sent.Description)
	assert.Equal(t, "full", sent.Metadata["paymentType"])
	assert.Equal(t, "bk-9", sent.Metadata["bookingId"])
	assert.Equal(t, "t-1,t-2", sent.Metadata["tableIds"])
	assert.Equal(t, "", sent.Metadata["partySize"], "zero party size flattens to empty string")
}

func TestCreateIntentRelaysProcessorError(t *testing.T) {
	stub := &stubIntents{err: &stripe.Error{Msg: "Your card was declined."}}
	h := NewPaymentHandler(stub, testLog())

	rec, out := postIntent(t, h, `{"amount": 2500, "bookingData": {"email": "a@b.com"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Your card was declined.", out["error"])
}

func TestCreateIntentHidesInternalError(t *testing.T) {
	stub := &stubIntents{err: errors.New("dial tcp: connection refused")}
	h := NewPaymentHandler(stub, testLog())

	rec, out := postIntent(t, h, `{"amount": 2500, "bookingData": {"email": "a@b.com"}}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, out["error"], "connection refused")
}
