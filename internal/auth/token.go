package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"todoapp/internal/core/domain"
)

// CookieName is the cookie carrying the session token.
const CookieName = "access-token"

var ErrInvalidToken = errors.New("invalid session token")

type claims struct {
	UserID uint64 `json:"id"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256 session tokens. The secret and
// TTL are fixed at construction; the token embeds an explicit expiry that
// Validate checks itself rather than trusting library defaults.
type TokenManager struct {
	secret  []byte
	ttl     time.Duration
	nowFunc func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("token signing secret is required")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return &TokenManager{
		secret:  []byte(secret),
		ttl:     ttl,
		nowFunc: time.Now,
	}, nil
}

func (m *TokenManager) Issue(identity domain.Identity) (string, error) {
	now := m.nowFunc()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: identity.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Validate verifies signature and expiry and resolves the token to an
// identity. A token that verifies but carries no subject or id resolves to
// anonymous (nil identity, nil error); any decode or signature failure
// returns ErrInvalidToken.
func (m *TokenManager) Validate(tokenString string) (*domain.Identity, error) {
	var parsed claims
	token, err := jwt.ParseWithClaims(tokenString, &parsed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.nowFunc))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if parsed.ExpiresAt == nil || !m.nowFunc().Before(parsed.ExpiresAt.Time) {
		return nil, ErrInvalidToken
	}

	if parsed.Subject == "" || parsed.UserID == 0 {
		return nil, nil
	}

	return &domain.Identity{Username: parsed.Subject, UserID: parsed.UserID}, nil
}
