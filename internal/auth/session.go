package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
)

// SessionManager issues and validates short-lived operator session tokens
// (HS256 JWT). A session stands in for the shared secret on later calls.
type SessionManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	clock  clockwork.Clock
}

// NewSessionManager creates a SessionManager.
// secret must be at least 32 characters for HS256 security.
func NewSessionManager(secret, issuer string, ttl time.Duration, clock clockwork.Clock) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		clock:  clock,
	}
}

// Issue returns a signed session token for subject and its expiry.
func (m *SessionManager) Issue(subject string) (string, time.Time, error) {
	now := m.clock.Now()
	expires := now.Add(m.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    m.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}
	return signed, expires, nil
}

// Validate parses a session token and returns its subject.
func (m *SessionManager) Validate(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("token is empty")
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.clock.Now),
	)
	if err != nil {
		return "", fmt.Errorf("parse session: %w", err)
	}
	if !parsed.Valid {
		return "", fmt.Errorf("invalid session claims")
	}

	return claims.Subject, nil
}
