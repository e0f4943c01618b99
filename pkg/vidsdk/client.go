package vidsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SeedTokenHeader carries the operator token for POST /api/video/seed.
const SeedTokenHeader = "X-Seed-Token"

// Client talks to a vidcat server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client with a 10 second request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Health calls GET /api/health. The body is a bare object, not an envelope.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/health", nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, parseErrorResponse(resp, body)
	}

	var out HealthResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

// Signup creates an account and returns its first token pair.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/signup", req, nil)
	if err != nil {
		return nil, err
	}
	var out AuthResponse
	if err := decodeData(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/login",
		LoginRequest{Email: email, Password: password}, nil)
	if err != nil {
		return nil, err
	}
	var out AuthResponse
	if err := decodeData(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh rotates a refresh token. The old token stops working.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/refresh",
		RefreshRequest{RefreshToken: refreshToken}, nil)
	if err != nil {
		return nil, err
	}
	var out AuthResponse
	if err := decodeData(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoginSession logs in and wraps the tokens in a Session.
func (c *Client) LoginSession(ctx context.Context, email, password string) (*Session, error) {
	auth, err := c.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return c.NewSession(auth), nil
}

// Play redeems a playback token. No authentication is sent; the token is
// the capability.
func (c *Client) Play(ctx context.Context, playbackToken string) (*PlayResponse, error) {
	path := "/api/video/play?token=" + url.QueryEscape(playbackToken)
	return c.PlayEndpoint(ctx, path)
}

// PlayEndpoint follows a StreamEndpoint returned by Session.Stream.
func (c *Client) PlayEndpoint(ctx context.Context, endpoint string) (*PlayResponse, error) {
	if !strings.HasPrefix(endpoint, "/") {
		return nil, fmt.Errorf("vidsdk: stream endpoint must be a relative path, got %q", endpoint)
	}
	resp, err := c.doRequest(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return nil, err
	}
	var out PlayResponse
	if err := decodeData(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Seed inserts the sample catalog. seedToken may be empty when the server
// has no seed token configured.
func (c *Client) Seed(ctx context.Context, seedToken string) (*SeedResponse, error) {
	var headers map[string]string
	if seedToken != "" {
		headers = map[string]string{SeedTokenHeader: seedToken}
	}
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/video/seed", nil, headers)
	if err != nil {
		return nil, err
	}
	var out SeedResponse
	if err := decodeData(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}
