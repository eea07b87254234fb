// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the core entity of the system, representing a registered user.
// The numeric ID is assigned by storage on insert and is opaque to callers.
type Account struct {
	ID           uint64    // Storage-assigned identifier, stable for the account's lifetime.
	Username     string    // Unique login name, also usable as a login identifier.
	Email        string    // Unique contact address, also usable as a login identifier.
	PasswordHash string    // PHC-encoded Argon2id hash (algorithm, parameters, salt, digest).
	CreatedAt    time.Time // Timestamp of when this account was created.
}
