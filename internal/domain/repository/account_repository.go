// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"skycast/internal/domain/entity"
)

// Domain-specific errors for account persistence. The application layer
// branches on these without depending on database-specific errors.
var (
	// ErrAccountNotFound is returned when no account matches the identifier.
	// Absence is a valid lookup result, not a failure.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateAccount is returned when an insert collides with an
	// existing username or email. It specifically means a uniqueness
	// violation, never any other persistence failure.
	ErrDuplicateAccount = errors.New("account with the same username or email already exists")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// Create persists a new account and fills in its storage-assigned ID.
	// Each call is a single atomic insert: after an error the account does
	// not exist at all.
	Create(ctx context.Context, account *entity.Account) error

	// FindByIdentifier retrieves an account whose username or email equals
	// the given identifier. The same string is matched against both columns.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Account, error)
}
