package repository // repository defines data access for staff accounts

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Jonboyweb/MM-br3-sub001/internal/model"
)

// StaffRepo provides lookups of staff accounts used by the admin login.
type StaffRepo struct {
	db *sql.DB
}

// NewStaffRepo constructs a StaffRepo with the given DB handle.
func NewStaffRepo(db *sql.DB) *StaffRepo {
	return &StaffRepo{db: db}
}

// GetActiveByEmail retrieves an active staff account by email.  Returns
// ErrStaffNotFound when the account does not exist or is disabled, so the
// login handler can respond identically in both cases.
func (r *StaffRepo) GetActiveByEmail(ctx context.Context, email string) (*model.StaffUser, error) {
	const q = `SELECT id, email, password_hash, role, is_active
	           FROM staff_users WHERE email = ? AND is_active = TRUE`
	var u model.StaffUser
	err := r.db.QueryRowContext(ctx, q, email).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	return &u, nil
}
