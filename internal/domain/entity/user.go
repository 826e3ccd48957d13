// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User represents a registered account. The PasswordHash field stores only the
// final two-stage hash; the plaintext and the intermediate digest are never
// persisted or logged anywhere in the system.
type User struct {
	ID           int64     // Numeric account identifier, generated by the database.
	Name         string    // Display name of the passenger.
	Phone        string    // Contact phone number, free-form.
	Email        string    // Login identifier, unique across all accounts.
	PasswordHash string    // bcrypt-over-SHA256 credential hash, opaque to callers.
	CreatedAt    time.Time // Timestamp of registration.
}

// PublicUser is the subset of account fields safe to return to clients.
type PublicUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public strips credential material from the account for API responses.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
