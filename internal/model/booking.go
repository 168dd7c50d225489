package model

// BookingRequest carries the customer-submitted booking form.  It exists
// only for the duration of a booking attempt; the durable record lives in
// the managed store.
type BookingRequest struct {
	ID              string   `json:"id"`
	VenueID         string   `json:"venueId"`
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	PartySize       int      `json:"partySize"`
	Date            string   `json:"date"`      // YYYY-MM-DD
	StartTime       string   `json:"startTime"` // HH:MM
	EndTime         string   `json:"endTime"`   // HH:MM, may be past midnight
	TableIDs        []string `json:"tableIds"`
	SpecialRequests string   `json:"specialRequests"`
	Occasion        string   `json:"occasion"`
}

// BookingResult is the outcome reported by the store's booking procedure.
type BookingResult struct {
	BookingRef   string `json:"bookingRef"`
	TotalDeposit int64  `json:"totalDeposit"`
	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// BookingRow is a read-only projection of a stored booking, used by the
// staff listing endpoint.
type BookingRow struct {
	ID            string `json:"id"`
	BookingRef    string `json:"bookingRef"`
	VenueID       string `json:"venueId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	PartySize     int    `json:"partySize"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Status        string `json:"status"`
	TotalDeposit  int64  `json:"totalDeposit"`
	CreatedAt     string `json:"createdAt"`
}
