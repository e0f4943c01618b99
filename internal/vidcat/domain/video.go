package domain

import "time"

// Video is a catalog entry. ProviderID is the upstream (e.g. YouTube) id and
// must only ever be read when building a playback destination; it is
// excluded from JSON so an accidental encode cannot leak it.
type Video struct {
	ID           string
	Title        string
	Description  string
	ThumbnailURL string
	ProviderID   string `json:"-"`
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WatchProgress is the last reported position of a user in a video.
type WatchProgress struct {
	UserID          string
	VideoID         string
	ProgressSeconds int64
	LastWatchedAt   time.Time
}
