package vidsdk

import "time"

// User is the public view of an account.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Video is the public view of a catalog entry. It never carries the
// provider identifier.
type Video struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the body of POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse is returned by signup, login and refresh.
type AuthResponse struct {
	User         *User  `json:"user,omitempty"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// ProfileResponse is returned by GET /api/auth/me.
type ProfileResponse struct {
	User User `json:"user"`
}

// DashboardResponse is one page of active videos.
type DashboardResponse struct {
	Videos     []Video    `json:"videos"`
	Pagination Pagination `json:"pagination"`
}

// TrackRequest is the body of POST /api/video/track.
type TrackRequest struct {
	VideoID         string `json:"video_id"`
	ProgressSeconds int    `json:"progress_seconds"`
}

// StreamResponse is a playback grant. StreamEndpoint is a relative URL the
// holder redeems without further authentication.
type StreamResponse struct {
	VideoID        string    `json:"video_id"`
	PlaybackToken  string    `json:"playback_token"`
	StreamEndpoint string    `json:"stream_endpoint"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// PlayResponse is the resolved playback destination.
type PlayResponse struct {
	EmbedURL string `json:"embed_url"`
	Title    string `json:"title"`
}

// SeedResponse reports how many sample videos were inserted.
type SeedResponse struct {
	InsertedCount int `json:"inserted_count"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

// ProbeResponse is returned by the /livez and /readyz probes.
type ProbeResponse struct {
	Status  string       `json:"status"`
	Uptime  string       `json:"uptime"`
	Version string       `json:"version"`
	Checks  *ProbeChecks `json:"checks,omitempty"`
}

type ProbeChecks struct {
	Database string `json:"database"`
}
