package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/vidcat/internal/vidcat/domain"
	"github.com/aussiebroadwan/vidcat/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestTrack(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	now := time.Unix(1_700_000_000, 0).UTC()
	svc := &ProgressService{Store: st, Now: func() time.Time { return now }}

	user := domain.User{ID: idx.New().String(), Name: "Ada", Email: "ada@example.com", PasswordHash: "x", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, st.Users().CreateUser(ctx, user))
	video := createVideo(t, st, "Tracked", "prov", true)

	p, err := svc.Track(ctx, user.ID, video.ID, 42)
	require.NoError(t, err)
	require.Equal(t, int64(42), p.ProgressSeconds)

	now = now.Add(time.Minute)
	_, err = svc.Track(ctx, user.ID, video.ID, 90)
	require.NoError(t, err)

	got, err := st.WatchProgress().GetProgress(ctx, user.ID, video.ID)
	require.NoError(t, err)
	require.Equal(t, int64(90), got.ProgressSeconds)
	require.Equal(t, now, got.LastWatchedAt)

	t.Run("validation", func(t *testing.T) {
		_, err := svc.Track(ctx, user.ID, "", 10)
		require.ErrorIs(t, err, ErrVideoIDRequired)

		_, err = svc.Track(ctx, user.ID, video.ID, -1)
		require.ErrorIs(t, err, ErrInvalidProgress)

		_, err = svc.Track(ctx, "", video.ID, 1)
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown video", func(t *testing.T) {
		_, err := svc.Track(ctx, user.ID, "missing", 1)
		require.ErrorIs(t, err, ErrVideoNotFound)
	})

	t.Run("zero is allowed", func(t *testing.T) {
		_, err := svc.Track(ctx, user.ID, video.ID, 0)
		require.NoError(t, err)
	})
}
