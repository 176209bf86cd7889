package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/sustainage/materiality-survey/internal/domain"
)

// Gate checks operator credentials against a single shared secret.
// The secret is supplied at construction; there is no package-level state.
type Gate struct {
	secret []byte
	hash   []byte
}

// NewGate creates a Gate comparing credentials to a plaintext secret in
// constant time.
func NewGate(secret string) *Gate {
	return &Gate{secret: []byte(secret)}
}

// NewHashedGate creates a Gate that verifies credentials against a bcrypt hash.
func NewHashedGate(hash string) *Gate {
	return &Gate{hash: []byte(hash)}
}

// Check returns nil if credential matches the shared secret,
// domain.ErrUnauthorized otherwise.
func (g *Gate) Check(credential string) error {
	if credential == "" {
		return domain.ErrUnauthorized
	}

	if g.hash != nil {
		err := bcrypt.CompareHashAndPassword(g.hash, []byte(credential))
		if err == nil {
			return nil
		}
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.ErrUnauthorized
		}
		return errors.Join(domain.ErrUnauthorized, err)
	}

	if len(g.secret) == 0 || subtle.ConstantTimeCompare(g.secret, []byte(credential)) != 1 {
		return domain.ErrUnauthorized
	}
	return nil
}
