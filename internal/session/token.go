// Package session supplies bearer credentials for authenticated API calls.
// Token acquisition and refresh live outside this module; the client only
// needs something that can hand over the current token or say it has none.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"parquea/internal/apperrors"
)

// TokenSource yields the bearer token for the authenticated user.
// Implementations return apperrors.ErrAuthRequired when no usable
// credential exists, so callers can fail before dialing.
type TokenSource interface {
	Token() (string, error)
}

// StaticTokenSource returns a fixed token, or ErrAuthRequired if empty.
// Used by tests and by the CLI when a token is provided via config.
type StaticTokenSource string

func (s StaticTokenSource) Token() (string, error) {
	if s == "" {
		return "", apperrors.ErrAuthRequired
	}
	return string(s), nil
}

// JWTTokenSource wraps a raw JWT and refuses to hand it out once its exp
// claim has passed. The signature is not verified here; that is the
// backend's job. The client only avoids sending calls it knows will be
// rejected.
type JWTTokenSource struct {
	Raw string

	now func() time.Time
}

func NewJWTTokenSource(raw string) *JWTTokenSource {
	return &JWTTokenSource{Raw: raw, now: time.Now}
}

func (s *JWTTokenSource) Token() (string, error) {
	if s.Raw == "" {
		return "", apperrors.ErrAuthRequired
	}
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(s.Raw, claims)
	if err != nil {
		return "", apperrors.ErrAuthRequired
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return "", apperrors.ErrAuthRequired
	}
	now := s.now
	if now == nil {
		now = time.Now
	}
	if exp != nil && !exp.After(now()) {
		return "", apperrors.ErrAuthRequired
	}
	return s.Raw, nil
}
