package repository

import (
	"context"
	"database/sql"
)

// AvailabilityRepo wraps the store's check_table_availability function.
// The function implements all conflict detection (existing bookings,
// holds, windows that cross midnight) and is the authoritative source of
// truth; this service never reimplements it.
type AvailabilityRepo struct {
	db *sql.DB
}

// NewAvailabilityRepo constructs an AvailabilityRepo with the given DB handle.
func NewAvailabilityRepo(db *sql.DB) *AvailabilityRepo {
	return &AvailabilityRepo{db: db}
}

// Check reports whether a table is free for the given window.  date is
// YYYY-MM-DD, start and end are HH:MM clock times; an end before start
// means the window crosses midnight and is interpreted by the store.
// Any error here is the caller's cue to fail closed.
func (r *AvailabilityRepo) Check(ctx context.Context, tableID, date, start, end string) (bool, error) {
	const q = `SELECT check_table_availability(?, ?, ?, ?)`
	var available bool
	if err := r.db.QueryRowContext(ctx, q, tableID, date, start, end).Scan(&available); err != nil {
		return false, err
	}
	return available, nil
}
