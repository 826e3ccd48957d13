// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing scheme, keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted, storable hash from a plaintext password.
	// The result embeds salt and cost, so verification needs no extra state.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash. It returns
	// false on any mismatch, including a malformed hash, and never panics.
	Check(password, hash string) bool
}
