package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/vidcat/internal/vidcat/domain"
	"github.com/aussiebroadwan/vidcat/internal/vidcat/store"
	"github.com/aussiebroadwan/vidcat/internal/vidcat/store/drivers/sqlite"
	"github.com/aussiebroadwan/vidcat/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "vidcat.db"))
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedUser(t *testing.T, s store.Store, email string) domain.User {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Second)
	u := domain.User{
		ID:           idx.New().String(),
		Name:         "Ada",
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func seedVideo(t *testing.T, s store.Store, title string, active bool, created time.Time) domain.Video {
	t.Helper()
	v := domain.Video{
		ID:           idx.NewAt(created).String(),
		Title:        title,
		Description:  "about " + title,
		ThumbnailURL: "https://img.example.com/" + title + ".jpg",
		ProviderID:   "prov-" + title,
		Active:       active,
		CreatedAt:    created.UTC().Truncate(time.Second),
		UpdatedAt:    created.UTC().Truncate(time.Second),
	}
	require.NoError(t, s.Videos().CreateVideo(context.Background(), v))
	return v
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	u := seedUser(t, s, "ada@example.com")

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u, got)

	got, err = s.Users().GetUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = s.Users().GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	dup := u
	dup.ID = idx.New().String()
	require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
}

func TestVideos(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	base := time.Unix(1700000000, 0)

	a := seedVideo(t, s, "a", true, base)
	b := seedVideo(t, s, "b", false, base.Add(time.Minute))
	c := seedVideo(t, s, "c", true, base.Add(2*time.Minute))

	t.Run("find active", func(t *testing.T) {
		got, err := s.Videos().FindActiveVideo(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, a, got)

		_, err = s.Videos().FindActiveVideo(ctx, b.ID)
		require.ErrorIs(t, err, store.ErrNotFound, "inactive is indistinguishable from missing")

		_, err = s.Videos().FindActiveVideo(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)

		got, err = s.Videos().GetVideoByID(ctx, b.ID)
		require.NoError(t, err)
		require.False(t, got.Active)
	})

	t.Run("list and count active", func(t *testing.T) {
		n, err := s.Videos().CountActiveVideos(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, n)

		page, err := s.Videos().ListActiveVideos(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, page, 2)
		require.Equal(t, a.ID, page[0].ID)
		require.Equal(t, c.ID, page[1].ID)

		page, err = s.Videos().ListActiveVideos(ctx, 1, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		require.Equal(t, c.ID, page[0].ID)

		page, err = s.Videos().ListActiveVideos(ctx, 10, 50)
		require.NoError(t, err)
		require.Empty(t, page)
	})

	t.Run("by title", func(t *testing.T) {
		got, err := s.Videos().GetVideoByTitle(ctx, "c")
		require.NoError(t, err)
		require.Equal(t, c.ID, got.ID)

		_, err = s.Videos().GetVideoByTitle(ctx, "zzz")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("set active", func(t *testing.T) {
		require.NoError(t, s.Videos().SetVideoActive(ctx, a.ID, false))
		_, err := s.Videos().FindActiveVideo(ctx, a.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		require.NoError(t, s.Videos().SetVideoActive(ctx, a.ID, true))
		_, err = s.Videos().FindActiveVideo(ctx, a.ID)
		require.NoError(t, err)

		require.ErrorIs(t, s.Videos().SetVideoActive(ctx, idx.New().String(), true), store.ErrNotFound)
	})
}

func TestWatchProgress(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	u := seedUser(t, s, "ada@example.com")
	v := seedVideo(t, s, "a", true, time.Now())

	first := domain.WatchProgress{
		UserID:          u.ID,
		VideoID:         v.ID,
		ProgressSeconds: 30,
		LastWatchedAt:   time.Unix(1700000000, 0).UTC(),
	}
	require.NoError(t, s.WatchProgress().UpsertProgress(ctx, first))

	second := first
	second.ProgressSeconds = 95
	second.LastWatchedAt = first.LastWatchedAt.Add(time.Minute)
	require.NoError(t, s.WatchProgress().UpsertProgress(ctx, second))

	got, err := s.WatchProgress().GetProgress(ctx, u.ID, v.ID)
	require.NoError(t, err)
	require.Equal(t, second, got)

	missing := first
	missing.VideoID = idx.New().String()
	require.ErrorIs(t, s.WatchProgress().UpsertProgress(ctx, missing), store.ErrNotFound)

	_, err = s.WatchProgress().GetProgress(ctx, u.ID, missing.VideoID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRefreshTokens(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	u := seedUser(t, s, "ada@example.com")
	now := time.Unix(1700000000, 0).UTC()

	mk := func(hash string, expires time.Time) domain.RefreshToken {
		rt := domain.RefreshToken{
			ID:        idx.New().String(),
			UserID:    u.ID,
			TokenHash: hash,
			ExpiresAt: expires,
			CreatedAt: now,
			UpdatedAt: now,
		}
		require.NoError(t, s.RefreshTokens().CreateRefreshToken(ctx, rt))
		return rt
	}

	live := mk("live", now.Add(time.Hour))
	mk("expired", now.Add(-time.Second))
	mk("revoked", now.Add(time.Hour))

	got, err := s.RefreshTokens().GetRefreshTokenByHash(ctx, "live")
	require.NoError(t, err)
	require.Equal(t, live, got)
	require.True(t, got.Usable(now))

	require.NoError(t, s.RefreshTokens().RevokeRefreshToken(ctx, "revoked", now))
	require.ErrorIs(t, s.RefreshTokens().RevokeRefreshToken(ctx, "revoked", now), store.ErrNotFound,
		"second revoke loses the race")

	n, err := s.RefreshTokens().DeleteStaleRefreshTokens(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	_, err = s.RefreshTokens().GetRefreshTokenByHash(ctx, "expired")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.RefreshTokens().RevokeUserRefreshTokens(ctx, u.ID, now))
	got, err = s.RefreshTokens().GetRefreshTokenByHash(ctx, "live")
	require.NoError(t, err)
	require.True(t, got.Revoked)
	require.False(t, got.Usable(now))

	require.ErrorIs(t, s.RefreshTokens().CreateRefreshToken(ctx, live), store.ErrAlreadyExists)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	boom := context.Canceled

	err := s.WithTx(ctx, func(tx store.Tx) error {
		seedUser(t, tx, "tx@example.com")
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Users().GetUserByEmail(ctx, "tx@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
		seedUser(t, tx, "tx@example.com")
		return nil
	}))
	_, err = s.Users().GetUserByEmail(ctx, "tx@example.com")
	require.NoError(t, err)
}
