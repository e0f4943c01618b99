package service

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/vidcat/internal/vidcat/metrics"
	"github.com/aussiebroadwan/vidcat/pkg/playtoken"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

var testPlaybackSecret = []byte("playback-secret-for-tests-0123456789")

func newPlaybackService(t *testing.T, clock *fakeClock) *PlaybackService {
	t.Helper()
	codec, err := playtoken.NewCodec(testPlaybackSecret,
		playtoken.WithTTL(time.Hour),
		playtoken.WithClock(clock.Now),
	)
	require.NoError(t, err)
	return &PlaybackService{Store: newTestStore(t), Codec: codec}
}

func TestRequestPlayback(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Unix(1_700_000_000, 0))
	svc := newPlaybackService(t, clock)
	video := createVideo(t, svc.Store, "Growth", "_X0mgOOSpLU", true)

	before := testutil.ToFloat64(metrics.PlaybackIssuedTotal)

	grant, err := svc.RequestPlayback(ctx, video.ID, "user-1")
	require.NoError(t, err)
	require.Equal(t, video.ID, grant.VideoID)
	require.NotEmpty(t, grant.Token)
	require.Equal(t, clock.Now().Add(time.Hour).Unix(), grant.ExpiresAt.Unix())
	require.Equal(t, "/api/video/play?token="+url.QueryEscape(grant.Token), grant.StreamEndpoint)
	require.NotContains(t, grant.StreamEndpoint, video.ProviderID)
	require.NotContains(t, grant.Token, video.ProviderID)

	require.Equal(t, before+1, testutil.ToFloat64(metrics.PlaybackIssuedTotal))

	claims, err := svc.Codec.Verify(grant.Token)
	require.NoError(t, err)
	require.Equal(t, video.ID, claims.VideoID)
	require.Equal(t, "user-1", claims.UserID)
}

func TestRequestPlaybackRejections(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Unix(1_700_000_000, 0))
	svc := newPlaybackService(t, clock)
	active := createVideo(t, svc.Store, "Active", "prov-a", true)
	inactive := createVideo(t, svc.Store, "Inactive", "prov-i", false)

	t.Run("anonymous caller", func(t *testing.T) {
		_, err := svc.RequestPlayback(ctx, active.ID, "")
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("missing and inactive look the same", func(t *testing.T) {
		counter := metrics.PlaybackRejectedTotal.WithLabelValues(metrics.StageIssue, metrics.ReasonNotFound)
		before := testutil.ToFloat64(counter)

		_, err := svc.RequestPlayback(ctx, "no-such-video", "user-1")
		require.ErrorIs(t, err, ErrVideoNotFound)

		_, err = svc.RequestPlayback(ctx, inactive.ID, "user-1")
		require.ErrorIs(t, err, ErrVideoNotFound)

		require.Equal(t, before+2, testutil.ToFloat64(counter))
	})
}

func TestRequestPlaybackIsDeterministic(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Unix(1_700_000_000, 0))
	svc := newPlaybackService(t, clock)
	video := createVideo(t, svc.Store, "Same", "prov-s", true)

	a, err := svc.RequestPlayback(ctx, video.ID, "user-1")
	require.NoError(t, err)
	b, err := svc.RequestPlayback(ctx, video.ID, "user-1")
	require.NoError(t, err)
	require.Equal(t, a.Token, b.Token)
}

func TestRedeemPlayback(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Unix(1_700_000_000, 0))
	svc := newPlaybackService(t, clock)
	video := createVideo(t, svc.Store, "How Great Leaders Inspire Action", "qp0HIF3SfI4", true)

	grant, err := svc.RequestPlayback(ctx, video.ID, "user-1")
	require.NoError(t, err)

	before := testutil.ToFloat64(metrics.PlaybackRedeemedTotal)

	dest, err := svc.RedeemPlayback(ctx, grant.Token)
	require.NoError(t, err)
	require.Equal(t, "https://www.youtube.com/embed/qp0HIF3SfI4", dest.EmbedURL)
	require.Equal(t, video.Title, dest.Title)
	require.Equal(t, before+1, testutil.ToFloat64(metrics.PlaybackRedeemedTotal))

	t.Run("custom embed base", func(t *testing.T) {
		custom := *svc
		custom.EmbedBaseURL = "https://player.example.com/embed"
		dest, err := custom.RedeemPlayback(ctx, grant.Token)
		require.NoError(t, err)
		require.Equal(t, "https://player.example.com/embed/qp0HIF3SfI4", dest.EmbedURL)
	})
}

func TestRedeemPlaybackExpiry(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Unix(1_700_000_000, 0))
	svc := newPlaybackService(t, clock)
	video := createVideo(t, svc.Store, "Expiring", "prov-e", true)

	grant, err := svc.RequestPlayback(ctx, video.ID, "user-1")
	require.NoError(t, err)

	clock.Advance(30 * time.Minute)
	_, err = svc.RedeemPlayback(ctx, grant.Token)
	require.NoError(t, err)

	counter := metrics.PlaybackRejectedTotal.WithLabelValues(metrics.StageRedeem, metrics.ReasonExpired)
	before := testutil.ToFloat64(counter)

	clock.Advance(30*time.Minute + time.Second)
	_, err = svc.RedeemPlayback(ctx, grant.Token)
	require.ErrorIs(t, err, ErrInvalidPlaybackToken)
	require.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRedeemPlaybackRejectsBadTokens(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Unix(1_700_000_000, 0))
	svc := newPlaybackService(t, clock)
	video := createVideo(t, svc.Store, "Tamper", "prov-t", true)

	grant, err := svc.RequestPlayback(ctx, video.ID, "user-1")
	require.NoError(t, err)

	payload, sig, ok := strings.Cut(grant.Token, ".")
	require.True(t, ok)

	flip := func(s string) string {
		b := []byte(s)
		if b[0] == 'a' {
			b[0] = 'b'
		} else {
			b[0] = 'a'
		}
		return string(b)
	}

	otherCodec, err := playtoken.NewCodec([]byte("a-completely-different-secret-value"), playtoken.WithClock(clock.Now))
	require.NoError(t, err)
	foreign, err := otherCodec.Issue(otherCodec.Claims(video.ID, "user-1"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		reason string
	}{
		{"empty", "", metrics.ReasonMalformed},
		{"no separator", "garbage", metrics.ReasonMalformed},
		{"tampered signature", payload + "." + flip(sig), metrics.ReasonSignature},
		{"tampered payload", flip(payload) + "." + sig, metrics.ReasonSignature},
		{"wrong secret", foreign, metrics.ReasonSignature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := metrics.PlaybackRejectedTotal.WithLabelValues(metrics.StageRedeem, tt.reason)
			before := testutil.ToFloat64(counter)

			_, err := svc.RedeemPlayback(ctx, tt.token)
			require.ErrorIs(t, err, ErrInvalidPlaybackToken)
			require.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestRedeemPlaybackAfterDeactivation(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Unix(1_700_000_000, 0))
	svc := newPlaybackService(t, clock)
	video := createVideo(t, svc.Store, "Withdrawn", "prov-w", true)

	grant, err := svc.RequestPlayback(ctx, video.ID, "user-1")
	require.NoError(t, err)

	require.NoError(t, svc.Store.Videos().SetVideoActive(ctx, video.ID, false))

	counter := metrics.PlaybackRejectedTotal.WithLabelValues(metrics.StageRedeem, metrics.ReasonUnavailable)
	before := testutil.ToFloat64(counter)

	_, err = svc.RedeemPlayback(ctx, grant.Token)
	require.ErrorIs(t, err, ErrVideoNotFound)
	require.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRedeemPlaybackForUnknownVideo(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Unix(1_700_000_000, 0))
	svc := newPlaybackService(t, clock)

	// A correctly signed token for a video the catalog never had.
	token, err := svc.Codec.Issue(svc.Codec.Claims("ghost", "user-1"))
	require.NoError(t, err)

	_, err = svc.RedeemPlayback(ctx, token)
	require.ErrorIs(t, err, ErrVideoNotFound)
}
