package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/vidcat/internal/vidcat/domain"
	"github.com/aussiebroadwan/vidcat/internal/vidcat/store"
	"github.com/aussiebroadwan/vidcat/pkg/slogx"
)

var (
	ErrVideoIDRequired = errors.New("video_id is required")
	ErrInvalidProgress = errors.New("progress_seconds must be a non-negative integer")
)

type ProgressService struct {
	Store store.Store

	// Now defaults to time.Now.
	Now func() time.Time
}

// Track records how far userID got into videoID, replacing any earlier
// record for the pair.
func (s *ProgressService) Track(ctx context.Context, userID, videoID string, progressSeconds int64) (domain.WatchProgress, error) {
	if userID == "" {
		return domain.WatchProgress{}, ErrUnauthorized
	}
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return domain.WatchProgress{}, ErrVideoIDRequired
	}
	if progressSeconds < 0 {
		return domain.WatchProgress{}, ErrInvalidProgress
	}

	if _, err := s.Store.Videos().GetVideoByID(ctx, videoID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.WatchProgress{}, ErrVideoNotFound
		}
		return domain.WatchProgress{}, fmt.Errorf("lookup video: %w", err)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	p := domain.WatchProgress{
		UserID:          userID,
		VideoID:         videoID,
		ProgressSeconds: progressSeconds,
		LastWatchedAt:   now().UTC(),
	}
	if err := s.Store.WatchProgress().UpsertProgress(ctx, p); err != nil {
		// The video can vanish between lookup and write.
		if errors.Is(err, store.ErrNotFound) {
			return domain.WatchProgress{}, ErrVideoNotFound
		}
		return domain.WatchProgress{}, fmt.Errorf("upsert progress: %w", err)
	}

	slogx.FromContext(ctx).Debug("progress tracked",
		slog.String("video_id", videoID),
		slog.Int64("progress_seconds", progressSeconds),
	)
	return p, nil
}
