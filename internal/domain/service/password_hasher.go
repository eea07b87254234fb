// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "context"

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying key derivation function (Argon2id), keeping the domain pure.
//
// Both operations are CPU-bound by design and may block on a bounded worker
// gate, which is why they take a context.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Two calls with
	// the same password produce different strings (random salt) that both verify.
	Hash(ctx context.Context, password string) (string, error)

	// Verify reports whether the password matches the hash. An empty hash
	// means "no such account": a fixed placeholder hash is substituted so the
	// computation performed is identical either way, hiding account existence
	// from timing measurement. Malformed hashes verify as false, never as an error.
	Verify(ctx context.Context, password, hash string) bool
}
