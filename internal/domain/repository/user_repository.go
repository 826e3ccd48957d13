// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"railbook/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single account by its numeric ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single account by exact email match.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new account and fills in the generated ID.
	// The email column carries a unique constraint; violations surface as
	// domain errors, not driver errors.
	Create(ctx context.Context, user *entity.User) error
}
