package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/vidcat/internal/vidcat/domain"
	"github.com/aussiebroadwan/vidcat/internal/vidcat/metrics"
	"github.com/aussiebroadwan/vidcat/internal/vidcat/store"
	"github.com/aussiebroadwan/vidcat/pkg/playtoken"
	"github.com/aussiebroadwan/vidcat/pkg/slogx"
)

// DefaultEmbedBaseURL is where playback destinations point unless configured.
const DefaultEmbedBaseURL = "https://www.youtube.com/embed/"

// PlayPath is the redemption endpoint carried in every grant.
const PlayPath = "/api/video/play"

var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrVideoNotFound        = errors.New("video_not_found")
	ErrInvalidPlaybackToken = errors.New("invalid_playback_token")
)

// PlaybackService issues playback tokens for active videos and later trades
// them for the provider destination. Nothing is persisted between the two
// steps; the token carries all the state.
type PlaybackService struct {
	Store        store.Store
	Codec        *playtoken.Codec
	EmbedBaseURL string
}

// RequestPlayback grants userID a time-limited capability to play videoID.
// Missing and inactive videos are both ErrVideoNotFound.
func (s *PlaybackService) RequestPlayback(ctx context.Context, videoID, userID string) (domain.PlaybackGrant, error) {
	l := slogx.FromContext(ctx)

	if userID == "" {
		return domain.PlaybackGrant{}, ErrUnauthorized
	}

	video, err := s.Store.Videos().FindActiveVideo(ctx, videoID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.RecordPlaybackRejected(metrics.StageIssue, metrics.ReasonNotFound)
			l.Info("playback refused", slog.String("video_id", videoID), slog.String("reason", metrics.ReasonNotFound))
			return domain.PlaybackGrant{}, ErrVideoNotFound
		}
		return domain.PlaybackGrant{}, fmt.Errorf("lookup video: %w", err)
	}

	claims := s.Codec.Claims(video.ID, userID)
	token, err := s.Codec.Issue(claims)
	if err != nil {
		return domain.PlaybackGrant{}, fmt.Errorf("issue playback token: %w", err)
	}

	metrics.RecordPlaybackIssued()
	l.Info("playback token issued",
		slog.String("video_id", video.ID),
		slog.Time("expires_at", claims.Expiry()),
	)

	return domain.PlaybackGrant{
		VideoID:        video.ID,
		Token:          token,
		StreamEndpoint: StreamEndpoint(token),
		ExpiresAt:      claims.Expiry(),
	}, nil
}

// RedeemPlayback resolves a playback token to its destination. The token is
// the only credential. Every token failure is ErrInvalidPlaybackToken; the
// precise cause is logged and counted only.
func (s *PlaybackService) RedeemPlayback(ctx context.Context, token string) (domain.PlaybackDestination, error) {
	l := slogx.FromContext(ctx)

	claims, err := s.Codec.Verify(token)
	if err != nil {
		reason := rejectReason(err)
		metrics.RecordPlaybackRejected(metrics.StageRedeem, reason)
		l.Info("playback token rejected", slog.String("reason", reason))
		return domain.PlaybackDestination{}, ErrInvalidPlaybackToken
	}

	video, err := s.Store.Videos().GetVideoByID(ctx, claims.VideoID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		metrics.RecordPlaybackRejected(metrics.StageRedeem, metrics.ReasonNotFound)
		l.Info("playback redemption for missing video", slog.String("video_id", claims.VideoID))
		return domain.PlaybackDestination{}, ErrVideoNotFound
	case err != nil:
		return domain.PlaybackDestination{}, fmt.Errorf("lookup video: %w", err)
	case !video.Active:
		metrics.RecordPlaybackRejected(metrics.StageRedeem, metrics.ReasonUnavailable)
		l.Info("playback redemption for inactive video", slog.String("video_id", video.ID))
		return domain.PlaybackDestination{}, ErrVideoNotFound
	}

	metrics.RecordPlaybackRedeemed()
	l.Info("playback token redeemed",
		slog.String("video_id", video.ID),
		slog.String("user_id", claims.UserID),
	)

	return domain.PlaybackDestination{
		EmbedURL: s.embedURL(video.ProviderID),
		Title:    video.Title,
	}, nil
}

func (s *PlaybackService) embedURL(providerID string) string {
	base := s.EmbedBaseURL
	if base == "" {
		base = DefaultEmbedBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + url.PathEscape(providerID)
}

// StreamEndpoint is the relative redemption URL for token.
func StreamEndpoint(token string) string {
	return PlayPath + "?token=" + url.QueryEscape(token)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, playtoken.ErrInvalidSignature):
		return metrics.ReasonSignature
	case errors.Is(err, playtoken.ErrExpired):
		return metrics.ReasonExpired
	default:
		return metrics.ReasonMalformed
	}
}
