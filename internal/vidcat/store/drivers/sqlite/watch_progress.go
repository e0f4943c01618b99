package sqlite

import (
	"context"

	"github.com/aussiebroadwan/vidcat/internal/vidcat/domain"
	"github.com/aussiebroadwan/vidcat/internal/vidcat/store/drivers/sqlite/gen"
)

type watchProgressRepo struct {
	q *gen.Queries
}

func (r *watchProgressRepo) UpsertProgress(ctx context.Context, p domain.WatchProgress) error {
	err := r.q.UpsertProgress(ctx, gen.UpsertProgressParams{
		UserID:          p.UserID,
		VideoID:         p.VideoID,
		ProgressSeconds: p.ProgressSeconds,
		LastWatchedAt:   toUnix(p.LastWatchedAt),
	})
	return mapConstraint(err)
}

func (r *watchProgressRepo) GetProgress(
	ctx context.Context,
	userID, videoID string,
) (domain.WatchProgress, error) {
	row, err := r.q.GetProgress(ctx, gen.GetProgressParams{UserID: userID, VideoID: videoID})
	if err != nil {
		return domain.WatchProgress{}, mapNotFound(err)
	}
	return mapWatchProgress(row), nil
}
