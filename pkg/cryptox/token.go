package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// RefreshTokenBytes is the entropy of a refresh token (43 chars base64url).
const RefreshTokenBytes = 32

// OpaqueToken is a bearer secret handed to a client once. Only Fingerprint
// is persisted.
type OpaqueToken struct {
	Value       string
	Fingerprint string
}

// NewOpaqueToken reads n random bytes and returns them base64url encoded
// (no padding) alongside their fingerprint.
func NewOpaqueToken(n int) (OpaqueToken, error) {
	if n <= 0 {
		return OpaqueToken{}, fmt.Errorf("cryptox: token size must be positive, got %d", n)
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return OpaqueToken{}, fmt.Errorf("cryptox: read random: %w", err)
	}

	value := base64.RawURLEncoding.EncodeToString(buf)
	return OpaqueToken{Value: value, Fingerprint: FingerprintToken(value)}, nil
}

// FingerprintToken is the base64url SHA-256 of token. Lookups go through the
// fingerprint so a copy of the database holds nothing redeemable.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
