// Package repository defines data access over the managed store.  This
// file holds sentinel errors shared across repositories so handlers can
// map failure modes to HTTP statuses without inspecting error strings.
package repository

import "errors"

// ErrVenueNotFound is returned when a venue lookup yields no rows.
// Handlers translate this into an HTTP 404 response.
var ErrVenueNotFound = errors.New("venue not found")

// ErrStaffNotFound is returned when a staff lookup yields no rows or the
// account is inactive.  The login handler translates this into a generic
// 401 so account existence is not leaked.
var ErrStaffNotFound = errors.New("staff user not found")
