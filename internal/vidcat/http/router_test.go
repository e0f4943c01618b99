package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	vidcathttp "github.com/aussiebroadwan/vidcat/internal/vidcat/http"
	"github.com/aussiebroadwan/vidcat/internal/vidcat/service"
	"github.com/aussiebroadwan/vidcat/internal/vidcat/store/drivers/sqlite"
	"github.com/aussiebroadwan/vidcat/pkg/cryptox"
	"github.com/aussiebroadwan/vidcat/pkg/httpx"
	"github.com/aussiebroadwan/vidcat/pkg/jwtx"
	"github.com/aussiebroadwan/vidcat/pkg/playtoken"
	"github.com/aussiebroadwan/vidcat/pkg/slogx"
	"github.com/aussiebroadwan/vidcat/pkg/vidsdk"
	"github.com/stretchr/testify/require"
)

const testSeedToken = "seed-me"

type testServer struct {
	*httptest.Server
	client *vidsdk.Client
	store  *sqlite.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "vidcat.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	secret := []byte("jwt-secret-for-router-tests-0123456789")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(secret, "vidcat-test")
	require.NoError(t, err)

	codec, err := playtoken.NewCodec([]byte("playback-secret-for-router-tests-0123"))
	require.NoError(t, err)

	router := vidcathttp.NewRouter(verifier, "1.0.5", st, slogx.Discard(), []string{"https://app.example.com"})
	router.AuthService = &service.AuthService{
		Store:      st,
		Hasher:     cryptox.NewPasswordHasher("pepper"),
		Signer:     signer,
		Issuer:     "vidcat-test",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}
	router.CatalogService = &service.CatalogService{Store: st}
	router.ProgressService = &service.ProgressService{Store: st}
	router.PlaybackService = &service.PlaybackService{Store: st, Codec: codec}
	router.SeedService = &service.SeedService{Store: st}
	router.SeedToken = testSeedToken
	router.MetricsEnabled = true
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, client: vidsdk.NewClient(srv.URL), store: st}
}

func (s *testServer) get(t *testing.T, path string, header http.Header) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, s.URL+path, nil)
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func requireAPIError(t *testing.T, err error, status int, code string) *vidsdk.APIError {
	t.Helper()
	var apiErr *vidsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected *vidsdk.APIError, got %v", err)
	require.Equal(t, status, apiErr.Status)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}

func TestPlaybackFlow(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	seeded, err := srv.client.Seed(ctx, testSeedToken)
	require.NoError(t, err)
	require.Equal(t, len(service.SampleVideos), seeded.InsertedCount)

	auth, err := srv.client.Signup(ctx, vidsdk.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, "Bearer", auth.TokenType)
	require.Equal(t, 3600, auth.ExpiresIn)
	session := srv.client.NewSession(auth)

	me, err := session.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", me.Email)

	page, err := session.Dashboard(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page.Videos, 2)
	require.Equal(t, vidsdk.Pagination{Page: 1, Limit: 2, Total: 5, Pages: 3}, page.Pagination)
	require.Equal(t, service.SampleVideos[0].Title, page.Videos[0].Title)

	grant, err := session.Stream(ctx, page.Videos[1].ID)
	require.NoError(t, err)
	require.Equal(t, page.Videos[1].ID, grant.VideoID)
	require.True(t, strings.HasPrefix(grant.StreamEndpoint, "/api/video/play?token="))
	require.WithinDuration(t, time.Now().Add(time.Hour), grant.ExpiresAt, time.Minute)

	// Redemption needs nothing but the token.
	dest, err := srv.client.PlayEndpoint(ctx, grant.StreamEndpoint)
	require.NoError(t, err)
	require.Equal(t, "https://www.youtube.com/embed/"+service.SampleVideos[1].ProviderID, dest.EmbedURL)
	require.Equal(t, service.SampleVideos[1].Title, dest.Title)

	require.NoError(t, session.Track(ctx, page.Videos[1].ID, 120))

	refreshToken := session.RefreshToken()
	require.NoError(t, session.Logout(ctx))
	_, err = srv.client.Refresh(ctx, refreshToken)
	requireAPIError(t, err, http.StatusUnauthorized, vidsdk.CodeInvalidRefreshToken)
}

func TestCatalogNeverLeaksProviderIDs(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	_, err := srv.client.Seed(ctx, testSeedToken)
	require.NoError(t, err)
	auth, err := srv.client.Signup(ctx, vidsdk.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	bearer := http.Header{"Authorization": {"Bearer " + auth.AccessToken}}
	_, body := srv.get(t, "/api/video/dashboard?limit=100", bearer)
	for _, sv := range service.SampleVideos {
		require.NotContains(t, string(body), sv.ProviderID)
	}

	var env struct {
		Data vidsdk.DashboardResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &env))
	require.Len(t, env.Data.Videos, len(service.SampleVideos))

	_, body = srv.get(t, "/api/video/"+env.Data.Videos[0].ID+"/stream", bearer)
	for _, sv := range service.SampleVideos {
		require.NotContains(t, string(body), sv.ProviderID)
	}
}

func TestPlayRejections(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	resp, body := srv.get(t, "/api/video/play", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, string(body), vidsdk.CodeMissingPlaybackToken)
	require.Contains(t, string(body), "Playback token is required")

	for _, token := range []string{"garbage", "abc.def", "a.b.c"} {
		_, err := srv.client.Play(ctx, token)
		apiErr := requireAPIError(t, err, http.StatusBadRequest, vidsdk.CodeInvalidPlaybackToken)
		require.Equal(t, "Invalid or expired playback token", apiErr.Message)
	}
}

func TestStreamRequiresAuth(t *testing.T) {
	srv := newTestServer(t)

	resp, body := srv.get(t, "/api/video/anything/stream", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("WWW-Authenticate"))
	require.Contains(t, string(body), "Access token required")

	resp, _ = srv.get(t, "/api/video/anything/stream", http.Header{"Authorization": {"Bearer not-a-jwt"}})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestStreamUnknownVideo(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	auth, err := srv.client.Signup(ctx, vidsdk.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = srv.client.NewSession(auth).Stream(ctx, "missing")
	apiErr := requireAPIError(t, err, http.StatusNotFound, vidsdk.CodeVideoNotFound)
	require.Equal(t, "Video not found", apiErr.Message)
}

func TestSignupAndLoginErrors(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	_, err := srv.client.Signup(ctx, vidsdk.SignupRequest{Name: "A", Email: "nope", Password: "123"})
	apiErr := requireAPIError(t, err, http.StatusBadRequest, vidsdk.CodeValidationFailed)
	require.Equal(t, []string{
		"Name must be at least 2 characters",
		"Invalid email format",
		"Password must be at least 6 characters",
	}, apiErr.Errors)

	_, err = srv.client.Signup(ctx, vidsdk.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)
	_, err = srv.client.Signup(ctx, vidsdk.SignupRequest{Name: "Ada", Email: "ADA@example.com", Password: "secret1"})
	requireAPIError(t, err, http.StatusConflict, vidsdk.CodeEmailTaken)

	_, err = srv.client.Login(ctx, "ada@example.com", "wrong-password")
	apiErr = requireAPIError(t, err, http.StatusUnauthorized, vidsdk.CodeInvalidCredentials)
	require.Equal(t, "Invalid email or password", apiErr.Message)

	_, err = srv.client.Login(ctx, "ghost@example.com", "secret1")
	requireAPIError(t, err, http.StatusUnauthorized, vidsdk.CodeInvalidCredentials)

	sess, err := srv.client.LoginSession(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, sess.AccessToken())
}

func TestDashboardPaginationErrors(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	auth, err := srv.client.Signup(ctx, vidsdk.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)
	bearer := http.Header{"Authorization": {"Bearer " + auth.AccessToken}}

	for _, q := range []string{"page=0", "limit=101", "page=abc"} {
		resp, _ := srv.get(t, "/api/video/dashboard?"+q, bearer)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestTrackErrors(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	auth, err := srv.client.Signup(ctx, vidsdk.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)
	session := srv.client.NewSession(auth)

	err = session.Track(ctx, "", 10)
	requireAPIError(t, err, http.StatusBadRequest, vidsdk.CodeValidationFailed)

	err = session.Track(ctx, "missing", 10)
	requireAPIError(t, err, http.StatusNotFound, vidsdk.CodeVideoNotFound)
}

func TestSeedRequiresToken(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	_, err := srv.client.Seed(ctx, "")
	requireAPIError(t, err, http.StatusForbidden, vidsdk.CodeUnauthorized)

	_, err = srv.client.Seed(ctx, "wrong")
	requireAPIError(t, err, http.StatusForbidden, vidsdk.CodeUnauthorized)

	out, err := srv.client.Seed(ctx, testSeedToken)
	require.NoError(t, err)
	require.Equal(t, 5, out.InsertedCount)

	out, err = srv.client.Seed(ctx, testSeedToken)
	require.NoError(t, err)
	require.Zero(t, out.InsertedCount)
}

func TestSystemEndpoints(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	resp, body := srv.get(t, "/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Backend is Live - Version 1.0.5", string(body))

	health, err := srv.client.Health(ctx)
	require.NoError(t, err)
	require.Equal(t, vidsdk.HealthResponse{Status: "healthy", Message: "API is running", Version: "1.0.5"}, *health)

	resp, body = srv.get(t, "/livez", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var probe vidsdk.ProbeResponse
	require.NoError(t, json.Unmarshal(body, &probe))
	require.Equal(t, "ok", probe.Status)

	resp, body = srv.get(t, "/readyz", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &probe))
	require.Equal(t, "ok", probe.Checks.Database)

	resp, _ = srv.get(t, "/no/such/route", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = srv.get(t, "/swagger/index.html", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReadyzDegradedWhenStoreClosed(t *testing.T) {
	srv := newTestServer(t)
	require.NoError(t, srv.store.Close())

	resp, body := srv.get(t, "/readyz", nil)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	require.Contains(t, string(body), "degraded")
}

func TestMetricsEndpoint(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	_, err := srv.client.Play(ctx, "garbage")
	require.Error(t, err)

	resp, body := srv.get(t, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), `vidcat_playback_rejected_total{reason="malformed",stage="redeem"}`)
	require.Contains(t, string(body), `vidcat_http_requests_total{code="400",method="GET",route="GET /api/video/play"}`)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/auth/login", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Equal(t, "https://app.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRequestIDEchoed(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := srv.get(t, "/api/health", http.Header{"X-Request-Id": {"req-123"}})
	require.Equal(t, "req-123", resp.Header.Get("X-Request-ID"))

	var env httpx.Envelope
	_, body := srv.get(t, "/api/video/play", nil)
	require.NoError(t, json.Unmarshal(body, &env))
	require.False(t, env.Success)
}
