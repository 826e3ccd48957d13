package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by session tokens.
type Claims struct {
	UserID int64
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// Tokens are stateless: there is no server-side session store, the lifecycle
// is purely issue-at-login, expire-after-TTL.
type TokenService interface {
	// Issue creates a signed token for the given account, expiring after ttl.
	Issue(userID int64, ttl time.Duration) (string, error)

	// Validate checks signature and expiry of a token string. Signature
	// mismatch, tampering and expiry all surface as the same error.
	Validate(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured lifetime for login tokens.
	AccessTokenTTL() time.Duration
}
