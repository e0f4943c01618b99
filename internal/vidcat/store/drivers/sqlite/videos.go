package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/vidcat/internal/vidcat/domain"
	"github.com/aussiebroadwan/vidcat/internal/vidcat/store"
	"github.com/aussiebroadwan/vidcat/internal/vidcat/store/drivers/sqlite/gen"
)

type videosRepo struct {
	q *gen.Queries
}

func (r *videosRepo) GetVideoByID(ctx context.Context, id string) (domain.Video, error) {
	row, err := r.q.GetVideoByID(ctx, id)
	if err != nil {
		return domain.Video{}, mapNotFound(err)
	}
	return mapVideo(row), nil
}

func (r *videosRepo) FindActiveVideo(ctx context.Context, id string) (domain.Video, error) {
	row, err := r.q.FindActiveVideo(ctx, id)
	if err != nil {
		return domain.Video{}, mapNotFound(err)
	}
	return mapVideo(row), nil
}

func (r *videosRepo) GetVideoByTitle(ctx context.Context, title string) (domain.Video, error) {
	row, err := r.q.GetVideoByTitle(ctx, title)
	if err != nil {
		return domain.Video{}, mapNotFound(err)
	}
	return mapVideo(row), nil
}

func (r *videosRepo) ListActiveVideos(ctx context.Context, limit, offset int) ([]domain.Video, error) {
	rows, err := r.q.ListActiveVideos(ctx, gen.ListActiveVideosParams{
		Limit:  int64(limit),
		Offset: int64(offset),
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.Video, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapVideo(row))
	}
	return out, nil
}

func (r *videosRepo) CountActiveVideos(ctx context.Context) (int, error) {
	n, err := r.q.CountActiveVideos(ctx)
	return int(n), err
}

func (r *videosRepo) CreateVideo(ctx context.Context, v domain.Video) error {
	err := r.q.CreateVideo(ctx, gen.CreateVideoParams{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		ThumbnailUrl: v.ThumbnailURL,
		ProviderID:   v.ProviderID,
		Active:       toFlag(v.Active),
		CreatedAt:    toUnix(v.CreatedAt),
		UpdatedAt:    toUnix(v.UpdatedAt),
	})
	return mapConstraint(err)
}

func (r *videosRepo) SetVideoActive(ctx context.Context, id string, active bool) error {
	n, err := r.q.SetVideoActive(ctx, gen.SetVideoActiveParams{
		Active:    toFlag(active),
		UpdatedAt: toUnix(time.Now()),
		ID:        id,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
