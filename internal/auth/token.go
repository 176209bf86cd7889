package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
)

// TokenBytes is the entropy of a generated survey token.
const TokenBytes = 16

var tokenPattern = regexp.MustCompile(`^[0-9a-f]{32,128}$`)

// NewToken returns a random survey distribution token: TokenBytes bytes from
// crypto/rand, hex-encoded.
func NewToken() (string, error) {
	b := make([]byte, TokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// ValidToken reports whether a caller-supplied token has the accepted shape:
// 32 to 128 lower-case hex characters.
func ValidToken(token string) bool {
	return tokenPattern.MatchString(token)
}

// Fingerprint returns a short SHA-256 digest of a credential. It identifies
// which secret created a survey without storing the secret.
func Fingerprint(credential string) string {
	if credential == "" {
		return ""
	}
	h := sha256.Sum256([]byte(credential))
	return hex.EncodeToString(h[:8])
}
