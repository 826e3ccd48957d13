// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"

	"railbook/config"
	"railbook/internal/domain/service"
)

// passwordHasher implements service.PasswordHasher with a two-stage scheme:
// SHA-256 first, then bcrypt over the digest's hex representation.
//
// bcrypt only considers the first 72 bytes of its input; pre-hashing to a
// fixed 64-character hex digest keeps arbitrarily long passwords inside that
// limit while bcrypt still provides the tunable work factor and per-call salt.
type passwordHasher struct {
	cost int
}

// NewPasswordHasher builds the hasher from config. The cost defaults to a
// value that keeps a single hash at or above ~50ms on commodity hardware.
func NewPasswordHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &passwordHasher{cost: cost}
}

// NewPasswordHasherWithCost builds a hasher with an explicit bcrypt cost.
// Tests use a low cost to stay fast.
func NewPasswordHasherWithCost(cost int) service.PasswordHasher {
	return &passwordHasher{cost: cost}
}

// Hash generates the storable credential hash. bcrypt draws a fresh salt from
// a cryptographically secure source on every call and embeds salt and cost in
// the output, so two hashes of the same password differ yet both verify.
func (h *passwordHasher) Hash(password string) (string, error) {
	digest := stageOneDigest(password)

	bytes, err := bcrypt.GenerateFromPassword([]byte(digest), h.cost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// Check recomputes the stage-one digest and compares it against the stored
// bcrypt hash. Any failure, including a malformed hash, reports false.
func (h *passwordHasher) Check(password, hash string) bool {
	digest := stageOneDigest(password)

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(digest)) == nil
}

// stageOneDigest is the fixed-length first stage. The intermediate value is
// never stored or logged on its own.
func stageOneDigest(password string) string {
	sum := sha256.Sum256([]byte(password))

	return hex.EncodeToString(sum[:])
}
