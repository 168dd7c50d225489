package repository // repository defines data access for tables

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Jonboyweb/MM-br3-sub001/internal/model"
)

// ErrTableNotFound is returned when a table lookup yields no rows.
var ErrTableNotFound = errors.New("table not found")

// TableRepo provides read-only access to tables.  Tables are created and
// edited in the managed store; this service only projects them.
type TableRepo struct {
	db *sql.DB
}

// NewTableRepo constructs a TableRepo with the given DB handle.
func NewTableRepo(db *sql.DB) *TableRepo {
	return &TableRepo{db: db}
}

const tableColumns = `id, venue_id, table_number, display_name, location,
	capacity_min, capacity_max, capacity_preferred,
	is_premium, is_booth, position_x, position_y,
	min_spend, deposit_required, amenities, display_order, is_active`

// scanTable maps one table row and applies display defaults: a missing
// display name becomes "Table {number}" and missing amenities become an
// empty set.
func scanTable(row interface{ Scan(...any) error }) (*model.Table, error) {
	var t model.Table
	var displayName, amenities sql.NullString
	err := row.Scan(
		&t.ID, &t.VenueID, &t.TableNumber, &displayName, &t.Location,
		&t.CapacityMin, &t.CapacityMax, &t.CapacityPreferred,
		&t.IsPremium, &t.IsBooth, &t.PositionX, &t.PositionY,
		&t.MinSpend, &t.DepositRequired, &amenities, &t.DisplayOrder, &t.IsActive,
	)
	if err != nil {
		return nil, err
	}
	t.DisplayName = displayName.String
	if t.DisplayName == "" {
		t.DisplayName = fmt.Sprintf("Table %d", t.TableNumber)
	}
	t.Amenities = []string{}
	if amenities.Valid && amenities.String != "" {
		// amenities is a JSON array column; a malformed value falls back
		// to the empty set rather than failing the whole listing
		var parsed []string
		if err := json.Unmarshal([]byte(amenities.String), &parsed); err == nil && parsed != nil {
			t.Amenities = parsed
		}
	}
	return &t, nil
}

// ListActiveByVenue retrieves the active tables of a venue ordered by
// display order then table number.
func (r *TableRepo) ListActiveByVenue(ctx context.Context, venueID string) ([]model.Table, error) {
	const q = `SELECT ` + tableColumns + ` FROM tables
	           WHERE venue_id = ? AND is_active = TRUE
	           ORDER BY display_order, table_number`
	rows, err := r.db.QueryContext(ctx, q, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Table
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a single table by id (active or not).
func (r *TableRepo) GetByID(ctx context.Context, id string) (*model.Table, error) {
	const q = `SELECT ` + tableColumns + ` FROM tables WHERE id = ?`
	t, err := scanTable(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return t, nil
}

// FirstActive returns one active table, used by the connectivity
// diagnostic to exercise the availability predicate against a real row.
func (r *TableRepo) FirstActive(ctx context.Context) (*model.Table, error) {
	const q = `SELECT ` + tableColumns + ` FROM tables
	           WHERE is_active = TRUE
	           ORDER BY venue_id, display_order LIMIT 1`
	t, err := scanTable(r.db.QueryRowContext(ctx, q))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return t, nil
}
