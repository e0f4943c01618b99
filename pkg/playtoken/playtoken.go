// Package playtoken implements the signed, time-limited playback token used to
// hand out access to a single video without exposing the provider identifier.
//
// A token is "<payload>.<signature>" where payload is the base64url encoding of
// the canonical JSON claim set and signature is the hex HMAC-SHA256 of the
// payload string. Tokens are stateless; there is nothing to look up or revoke.
package playtoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"
)

// separator cannot appear in base64url or hex output.
const separator = "."

// DefaultTTL is the playback validity window used when none is configured.
const DefaultTTL = time.Hour

var (
	// ErrInvalid is the single externally meaningful failure. Every
	// verification error wraps it.
	ErrInvalid = errors.New("playtoken: invalid or expired token")

	ErrMalformed        = fmt.Errorf("%w: malformed", ErrInvalid)
	ErrInvalidSignature = fmt.Errorf("%w: signature mismatch", ErrInvalid)
	ErrExpired          = fmt.Errorf("%w: expired", ErrInvalid)

	ErrIncompleteClaims = errors.New("playtoken: claims are incomplete")
	ErrNoSecret         = errors.New("playtoken: signing secret is empty")
)

// Claims is the signed payload. Issue serializes it with sorted keys, ", "
// and ": " separators and non-ASCII escaped as \uXXXX, then base64url encodes
// it with padding, so any issuer sharing the secret mints byte-identical
// tokens for the same claims.
type Claims struct {
	ExpiresAt int64  `json:"expires_at"`
	UserID    string `json:"user_id"`
	VideoID   string `json:"video_id"`
}

// NewClaims binds a video and user to a window ending now+ttl.
func NewClaims(videoID, userID string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		ExpiresAt: now.Add(ttl).Unix(),
		UserID:    userID,
		VideoID:   videoID,
	}
}

// Complete reports whether all three fields are populated.
func (c Claims) Complete() bool {
	return c.VideoID != "" && c.UserID != "" && c.ExpiresAt != 0
}

// Expiry returns ExpiresAt as a time.
func (c Claims) Expiry() time.Time {
	return time.Unix(c.ExpiresAt, 0).UTC()
}

// Issue encodes and signs the claims. The output is deterministic for a given
// claim set and secret.
func Issue(c Claims, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", ErrNoSecret
	}
	if !c.Complete() {
		return "", ErrIncompleteClaims
	}

	payload := base64.URLEncoding.EncodeToString(c.canonicalJSON())
	return payload + separator + sign(payload, secret), nil
}

func (c Claims) canonicalJSON() []byte {
	var b strings.Builder
	b.WriteString(`{"expires_at": `)
	b.WriteString(strconv.FormatInt(c.ExpiresAt, 10))
	b.WriteString(`, "user_id": `)
	writeString(&b, c.UserID)
	b.WriteString(`, "video_id": `)
	writeString(&b, c.VideoID)
	b.WriteByte('}')
	return []byte(b.String())
}

// writeString quotes s as an ASCII-only JSON string.
func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\b':
			b.WriteString(`\b`)
		case r == '\f':
			b.WriteString(`\f`)
		case r < 0x20 || (r > 0x7e && r <= 0xffff):
			fmt.Fprintf(b, `\u%04x`, r)
		case r > 0xffff:
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(b, `\u%04x\u%04x`, r1, r2)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}

// Verify checks the signature before touching the payload, then decodes the
// claims and rejects them once expires_at is strictly before now.
func Verify(token string, secret []byte, now time.Time) (Claims, error) {
	return verify(token, secret, now, 0)
}

func verify(token string, secret []byte, now time.Time, leeway time.Duration) (Claims, error) {
	if len(secret) == 0 {
		return Claims{}, ErrNoSecret
	}

	// 1. Shape
	parts := strings.Split(token, separator)
	if len(parts) != 2 {
		return Claims{}, ErrMalformed
	}
	payload, signature := parts[0], parts[1]

	// 2. Signature, constant time, before any parsing
	expected := sign(payload, secret)
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return Claims{}, ErrInvalidSignature
	}

	// 3. Decode; accept padded input from other encoders
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(payload, "="))
	if err != nil {
		return Claims{}, fmt.Errorf("%w: payload encoding", ErrMalformed)
	}

	// 4. Parse
	var c Claims
	if err := json.Unmarshal(raw, &c); err != nil {
		return Claims{}, fmt.Errorf("%w: payload json", ErrMalformed)
	}
	if !c.Complete() {
		return Claims{}, fmt.Errorf("%w: missing claims", ErrMalformed)
	}

	// 5. Expiry, against the full-precision clock
	if c.Expiry().Add(leeway).Before(now) {
		return Claims{}, ErrExpired
	}

	return c, nil
}

func sign(payload string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	_, _ = mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
