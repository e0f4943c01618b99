package playtoken

import (
	"time"
)

// Codec binds a secret, clock and leeway once so callers only pass claims and
// tokens around. It holds no mutable state and is safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
	leeway time.Duration
	now    func() time.Time
}

// Option configures a Codec.
type Option func(*Codec)

// WithTTL sets the validity window used by Claims. Non-positive values keep
// DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(c *Codec) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithLeeway tolerates clock skew between instances. Zero (the default) is a
// strict comparison.
func WithLeeway(leeway time.Duration) Option {
	return func(c *Codec) {
		if leeway > 0 {
			c.leeway = leeway
		}
	}
}

// WithClock swaps the wall clock, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCodec returns a Codec for secret. The secret must be shared by every
// instance that verifies tokens issued by another.
func NewCodec(secret []byte, opts ...Option) (*Codec, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}

	c := &Codec{
		secret: append([]byte(nil), secret...),
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// TTL is the configured validity window.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Now returns the codec clock's current time.
func (c *Codec) Now() time.Time { return c.now() }

// Claims builds a claim set expiring TTL from the codec clock.
func (c *Codec) Claims(videoID, userID string) Claims {
	return NewClaims(videoID, userID, c.ttl, c.now())
}

// Issue signs the claims with the bound secret.
func (c *Codec) Issue(claims Claims) (string, error) {
	return Issue(claims, c.secret)
}

// Verify validates token against the bound secret and clock.
func (c *Codec) Verify(token string) (Claims, error) {
	return verify(token, c.secret, c.now(), c.leeway)
}
