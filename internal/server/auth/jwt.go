// Package auth issues the session tokens returned by a successful login.
//
// The authenticator only depends on TokenIssuer. PlaceholderIssuer is the
// default and returns a fixed opaque value; JWTIssuer signs real HS256 tokens
// and can be swapped in through configuration without touching the store or
// the protocol.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer produces a session token for an authenticated username.
type TokenIssuer interface {
	IssueToken(username string) (string, error)
}

// PlaceholderIssuer hands out common.PlaceholderToken to everyone.
type PlaceholderIssuer struct{}

func (PlaceholderIssuer) IssueToken(string) (string, error) {
	return common.PlaceholderToken, nil
}

// Claims carries the registered JWT claims. The username is the subject.
type Claims struct {
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 tokens with a shared secret.
type JWTIssuer struct {
	secretKey        []byte
	validityDuration time.Duration
	now              func() time.Time
}

func NewJWTIssuer(secretKey []byte, validityDuration time.Duration) *JWTIssuer {
	return &JWTIssuer{secretKey: secretKey, validityDuration: validityDuration, now: time.Now}
}

func (j *JWTIssuer) IssueToken(username string) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.validityDuration)),
		},
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return tokenString, nil
}

// ParseUsername verifies tokenString and returns its subject. An empty
// username is a valid subject, since registration accepts it.
// Expired tokens yield common.ErrTokenExpired; any other failure yields
// common.ErrInvalidToken.
func (j *JWTIssuer) ParseUsername(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
