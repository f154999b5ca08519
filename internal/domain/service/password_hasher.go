// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within
// a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the
// domain pure. No plaintext password is ever persisted or logged.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}

// PasswordPolicy validates password strength. Validate returns every violated
// rule at once rather than failing fast on the first.
type PasswordPolicy interface {
	// Validate returns a human-readable message per violated rule; an empty
	// slice means the password is acceptable.
	Validate(password string) []string
}
