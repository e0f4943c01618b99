package domain

import "time"

// TokenPair is what signup, login and refresh hand back: a short-lived JWT
// access token and an opaque refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string        // "Bearer"
	ExpiresIn    time.Duration // access token lifetime
}

// RefreshToken is the stored refresh token record. Only the fingerprint of
// the opaque token is kept.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string // base64url SHA-256 of the opaque token
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Usable reports whether the token can still be exchanged at now.
func (t RefreshToken) Usable(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}
