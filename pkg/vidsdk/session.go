package vidsdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// refreshSkew refreshes access tokens this long before they expire.
const refreshSkew = 30 * time.Second

// Session is an authenticated conversation with the API. It is safe for
// concurrent use and refreshes its access token on demand.
type Session struct {
	client *Client

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time
}

// NewSession wraps an existing token pair.
func (c *Client) NewSession(auth *AuthResponse) *Session {
	return &Session{
		client:       c,
		accessToken:  auth.AccessToken,
		refreshToken: auth.RefreshToken,
		expiresAt:    expiryFrom(auth.ExpiresIn),
	}
}

func expiryFrom(expiresIn int) time.Time {
	return time.Now().Add(time.Duration(expiresIn)*time.Second - refreshSkew)
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// validToken returns an unexpired access token, refreshing if needed.
func (s *Session) validToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if time.Now().Before(s.expiresAt) {
		tok := s.accessToken
		s.mu.RUnlock()
		return tok, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Now().Before(s.expiresAt) {
		return s.accessToken, nil
	}
	if s.refreshToken == "" {
		return "", errors.New("vidsdk: access token expired and no refresh token available")
	}

	auth, err := s.client.Refresh(ctx, s.refreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to refresh token: %w", err)
	}
	s.accessToken = auth.AccessToken
	s.refreshToken = auth.RefreshToken
	s.expiresAt = expiryFrom(auth.ExpiresIn)
	return s.accessToken, nil
}

func (s *Session) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	tok, err := s.validToken(ctx)
	if err != nil {
		return nil, err
	}
	return s.client.doRequest(ctx, method, path, body, map[string]string{
		"Authorization": "Bearer " + tok,
	})
}

// Me returns the signed-in user.
func (s *Session) Me(ctx context.Context) (*User, error) {
	resp, err := s.do(ctx, http.MethodGet, "/api/auth/me", nil)
	if err != nil {
		return nil, err
	}
	var out ProfileResponse
	if err := decodeData(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Logout revokes the session's refresh tokens server side.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.do(ctx, http.MethodPost, "/api/auth/logout", nil)
	if err != nil {
		return err
	}
	if err := decodeData(resp, nil, http.StatusOK); err != nil {
		return err
	}

	s.mu.Lock()
	s.refreshToken = ""
	s.mu.Unlock()
	return nil
}

// Dashboard lists active videos. Zero page or limit uses the server default.
func (s *Session) Dashboard(ctx context.Context, page, limit int) (*DashboardResponse, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/api/video/dashboard"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := s.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var out DashboardResponse
	if err := decodeData(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Track records watch progress for a video.
func (s *Session) Track(ctx context.Context, videoID string, progressSeconds int) error {
	resp, err := s.do(ctx, http.MethodPost, "/api/video/track", TrackRequest{
		VideoID:         videoID,
		ProgressSeconds: progressSeconds,
	})
	if err != nil {
		return err
	}
	return decodeData(resp, nil, http.StatusOK)
}

// Stream requests a playback grant for a video.
func (s *Session) Stream(ctx context.Context, videoID string) (*StreamResponse, error) {
	resp, err := s.do(ctx, http.MethodGet, "/api/video/"+url.PathEscape(videoID)+"/stream", nil)
	if err != nil {
		return nil, err
	}
	var out StreamResponse
	if err := decodeData(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
