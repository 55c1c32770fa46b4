// Package token issues and verifies the bearer tokens handed to clients.
//
// Tokens are self-contained HS256 JWTs carrying the subject id, role,
// issued-at and expiry. There is no server-side session state and no refresh
// mechanism: an expired token is permanently unusable and the only remedy is
// re-authentication.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dashportal/auth-service/internal/core/domain"
)

const defaultTTL = time.Hour

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with a server-held secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token for the given subject. The role is embedded at issuance
// time and is not re-read from the store on verification.
func (i *Issuer) Issue(subjectID, role string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	})

	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates a token string and returns its subject id and role.
//
// Malformed structure, an unexpected signing method, a bad signature and an
// elapsed expiry all collapse to domain.ErrInvalidToken; the caller never
// learns which sub-case occurred.
func (i *Issuer) Verify(tokenString string) (subjectID, role string, err error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", "", domain.ErrInvalidToken
	}
	if c.Subject == "" || c.ExpiresAt == nil {
		return "", "", domain.ErrInvalidToken
	}
	return c.Subject, c.Role, nil
}
