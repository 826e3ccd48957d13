// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"railbook/config"
	"railbook/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    []byte        // Symmetric HS256 signing secret.
	accessTTL time.Duration // Lifetime of issued login tokens.
}

// NewJWTService is the constructor for jwtService. The signing secret must be
// supplied through configuration; a hardcoded or empty secret is refused.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	accessTTL := 60 * time.Minute
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		accessTTL = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		secret:    []byte(cfg.SecretKey.Access),
		accessTTL: accessTTL,
	}, nil
}

// Issue creates a signed token whose payload carries the account id as the
// subject and an absolute expiry of now+ttl. Stateless: nothing is stored.
func (s *jwtService) Issue(userID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate parses and verifies a token string. A bad signature, a tampered
// payload and a past expiry all collapse into the same error so callers
// cannot distinguish them.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Reject any token not signed with the expected HMAC family.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	if claims.UserID == 0 && claims.Subject != "" {
		if id, parseErr := strconv.ParseInt(claims.Subject, 10, 64); parseErr == nil {
			claims.UserID = id
		}
	}

	return claims, nil
}

// AccessTokenTTL returns the configured lifetime for login tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
