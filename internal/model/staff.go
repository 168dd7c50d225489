package model

// StaffUser is a staff account used for the admin endpoints.  Passwords
// are stored as bcrypt hashes; the plain password never leaves the login
// handler.
type StaffUser struct {
	ID           string // staff_users.id
	Email        string // staff_users.email, unique
	PasswordHash string // bcrypt hash
	Role         string // STAFF | MANAGER
	IsActive     bool
}
