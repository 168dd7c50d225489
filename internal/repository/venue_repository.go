package repository // repository defines data access for venues

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Jonboyweb/MM-br3-sub001/internal/model"
)

// VenueRepo provides read-only access to venues.  Venues are maintained
// in the managed store; this service never mutates them.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the given DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

const venueColumns = `id, slug, name, description, address, phone, email,
	capacity_total, capacity_main_bar, capacity_private_room,
	opening_hours, is_active`

// scanVenue maps one venue row, applying empty-string defaults for the
// nullable descriptive columns.
func scanVenue(row interface{ Scan(...any) error }) (*model.Venue, error) {
	var v model.Venue
	var description, address, phone, email, hours sql.NullString
	err := row.Scan(
		&v.ID, &v.Slug, &v.Name, &description, &address, &phone, &email,
		&v.Capacity.Total, &v.Capacity.MainBar, &v.Capacity.PrivateRoom,
		&hours, &v.IsActive,
	)
	if err != nil {
		return nil, err
	}
	v.Description = description.String
	v.Address = address.String
	v.Phone = phone.String
	v.Email = email.String
	v.OpeningHours = hours.String
	return &v, nil
}

// GetBySlug retrieves a venue by its public slug.  Returns
// ErrVenueNotFound when no row matches.
func (r *VenueRepo) GetBySlug(ctx context.Context, slug string) (*model.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues WHERE slug = ?`
	v, err := scanVenue(r.db.QueryRowContext(ctx, q, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}

// GetByID retrieves a venue by id.  Returns ErrVenueNotFound when no row
// matches.
func (r *VenueRepo) GetByID(ctx context.Context, id string) (*model.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues WHERE id = ?`
	v, err := scanVenue(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}

// ListActive retrieves all active venues ordered by name.
func (r *VenueRepo) ListActive(ctx context.Context) ([]model.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues WHERE is_active = TRUE ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
