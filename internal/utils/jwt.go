package utils // package utils provides the signed token helpers used by the flash cookie

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidFlash is returned when a flash token fails verification.
var ErrInvalidFlash = errors.New("invalid flash token")

// flashClaims carries the pending flash messages inside an HS256 JWT.
type flashClaims struct {
	Messages []string `json:"msgs"`
	jwt.RegisteredClaims
}

// SignFlash packs messages into a token signed with secret that expires
// after ttl.  The cookie holding it cannot be forged or edited by the
// client.
func SignFlash(secret string, messages []string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := flashClaims{
		Messages: messages,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseFlash verifies raw and returns the messages it carries.  Tokens
// signed with another secret or algorithm, or already expired, yield
// ErrInvalidFlash.
func ParseFlash(secret, raw string) ([]string, error) {
	var claims flashClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return nil, errors.Join(ErrInvalidFlash, err)
	}
	return claims.Messages, nil
}
