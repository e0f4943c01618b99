package domain

import "time"

// PlaybackGrant is handed to an authenticated user who asked to watch a
// video. The token is the only thing needed to redeem it.
type PlaybackGrant struct {
	VideoID        string
	Token          string
	StreamEndpoint string // relative redemption URL carrying the token
	ExpiresAt      time.Time
}

// PlaybackDestination is the resolved, provider-specific place to play a
// video, returned only on redemption of a valid token.
type PlaybackDestination struct {
	EmbedURL string
	Title    string
}
