package repository // repository defines data access for bookings

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/Jonboyweb/MM-br3-sub001/internal/model"
)

// BookingRepo invokes the store's booking procedure and projects stored
// bookings for the staff listing.  All consistency (double-booking
// prevention, deposit calculation) lives inside create_booking; this
// repository only relays its verdict.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// Create calls the create_booking procedure with the normalised form data
// and the pre-generated booking id and reference.  The procedure returns a
// single row: (booking_ref, total_deposit, success, error_message).  A
// success=false row is a business rejection (e.g. table no longer free),
// not a transport error, so it is returned without an error.
func (r *BookingRepo) Create(ctx context.Context, id, ref, customerName string, req *model.BookingRequest) (*model.BookingResult, error) {
	tableIDs, err := json.Marshal(req.TableIDs)
	if err != nil {
		return nil, err
	}

	const q = `CALL create_booking(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	var res model.BookingResult
	var errMsg sql.NullString
	err = r.db.QueryRowContext(ctx, q,
		id, ref, req.VenueID,
		customerName, req.Email, req.Phone,
		req.PartySize, req.Date, req.StartTime, req.EndTime,
		string(tableIDs), req.SpecialRequests, req.Occasion,
	).Scan(&res.BookingRef, &res.TotalDeposit, &res.Success, &errMsg)
	if err != nil {
		return nil, err
	}
	res.ErrorMessage = errMsg.String
	return &res, nil
}

// ListByVenueDate retrieves bookings for a venue, optionally filtered to
// one booking date, newest first.
func (r *BookingRepo) ListByVenueDate(ctx context.Context, venueID, date string) ([]model.BookingRow, error) {
	q := `SELECT id, booking_ref, venue_id, customer_name, customer_email,
	             party_size, booking_date, start_time, end_time, status,
	             total_deposit, created_at
	      FROM bookings WHERE venue_id = ?`
	args := []any{venueID}
	if date != "" {
		q += ` AND booking_date = ?`
		args = append(args, date)
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.BookingRow
	for rows.Next() {
		var b model.BookingRow
		if err := rows.Scan(
			&b.ID, &b.BookingRef, &b.VenueID, &b.CustomerName, &b.CustomerEmail,
			&b.PartySize, &b.Date, &b.StartTime, &b.EndTime, &b.Status,
			&b.TotalDeposit, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
