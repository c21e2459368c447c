// Package session issues and resolves role-selection tokens. There are no
// passwords: choosing a role signs in as that role's demo participant.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"contium/internal/user"
	id "contium/pkg/domain"
	dErrors "contium/pkg/domain-errors"
	"contium/pkg/requestcontext"
)

const issuer = "contium"

// Claims are the session token claims. Subject carries the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the subject as a user id.
func (c *Claims) UserID() (id.UserID, error) {
	return id.ParseUserID(c.Subject)
}

// Tokens signs and validates HS256 session tokens.
type Tokens struct {
	signingKey []byte
	ttl        time.Duration
}

func NewTokens(signingKey string, ttl time.Duration) *Tokens {
	if signingKey == "" {
		panic("session signing key is required")
	}
	return &Tokens{signingKey: []byte(signingKey), ttl: ttl}
}

// TTL is the lifetime of issued tokens.
func (t *Tokens) TTL() time.Duration { return t.ttl }

// Issue signs a token for u valid from the request time.
func (t *Tokens) Issue(ctx context.Context, u *user.User) (string, time.Time, error) {
	now := requestcontext.Now(ctx)
	expiresAt := now.Add(t.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	})
	signed, err := token.SignedString(t.signingKey)
	if err != nil {
		return "", time.Time{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign session token")
	}
	return signed, expiresAt, nil
}

// Parse validates signature, algorithm, issuer and expiry against the
// request time. All failures are unauthorized.
func (t *Tokens) Parse(ctx context.Context, tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "empty session token")
	}
	claims := new(Claims)
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}
		return t.signingKey, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return requestcontext.Now(ctx) }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "session expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid session token")
	}
	if !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid session token")
	}
	return claims, nil
}
