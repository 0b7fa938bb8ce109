// Package token issues and verifies the signed session tokens that back
// cookie authentication. Tokens are self-contained HS256 JWTs; the server
// keeps no session state and cannot revoke a token before it expires.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/karanvir-s/employee-directory-api/internal/domain"
)

// Claims carries the authenticated account identity inside the token.
type Claims struct {
	jwt.RegisteredClaims
	AccountID int    `json:"uid"`
	Username  string `json:"username"`
}

// Codec signs and verifies session tokens. The signing secret is loaded once
// at startup and never rotated at runtime.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the validity window tokens are issued with. The session cookie
// max-age must match it.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

func (c *Codec) Issue(accountID int, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		AccountID: accountID,
		Username:  username,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify parses and validates a token string. Malformed tokens, signature
// mismatches and expired tokens all report domain.ErrInvalidToken; the
// underlying parse error is wrapped for server-side logging only and must not
// reach clients.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
