package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parquea/internal/apperrors"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	})
	raw, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func TestStaticTokenSource(t *testing.T) {
	token, err := StaticTokenSource("abc").Token()
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = StaticTokenSource("").Token()
	assert.ErrorIs(t, err, apperrors.ErrAuthRequired)
}

func TestJWTTokenSourceValidToken(t *testing.T) {
	raw := signedToken(t, time.Now().Add(time.Hour))
	src := NewJWTTokenSource(raw)

	token, err := src.Token()
	require.NoError(t, err)
	assert.Equal(t, raw, token)
}

func TestJWTTokenSourceExpiredToken(t *testing.T) {
	src := NewJWTTokenSource(signedToken(t, time.Now().Add(-time.Minute)))

	_, err := src.Token()
	assert.ErrorIs(t, err, apperrors.ErrAuthRequired)
}

func TestJWTTokenSourceExpiryBoundary(t *testing.T) {
	exp := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	src := NewJWTTokenSource(signedToken(t, exp))

	src.now = func() time.Time { return exp.Add(-time.Second) }
	_, err := src.Token()
	assert.NoError(t, err)

	src.now = func() time.Time { return exp }
	_, err = src.Token()
	assert.ErrorIs(t, err, apperrors.ErrAuthRequired)
}

func TestJWTTokenSourceGarbage(t *testing.T) {
	_, err := NewJWTTokenSource("not.a.jwt").Token()
	assert.ErrorIs(t, err, apperrors.ErrAuthRequired)

	_, err = NewJWTTokenSource("").Token()
	assert.ErrorIs(t, err, apperrors.ErrAuthRequired)
}
