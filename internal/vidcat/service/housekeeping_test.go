package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/vidcat/internal/vidcat/domain"
	"github.com/aussiebroadwan/vidcat/pkg/idx"
	"github.com/aussiebroadwan/vidcat/pkg/slogx"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestHousekeepingSweep(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	now := time.Unix(1_700_000_000, 0).UTC()

	user := domain.User{ID: idx.New().String(), Name: "Ada", Email: "ada@example.com", PasswordHash: "x", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, st.Users().CreateUser(ctx, user))

	mk := func(hash string, expires time.Time) {
		require.NoError(t, st.RefreshTokens().CreateRefreshToken(ctx, domain.RefreshToken{
			ID:        idx.New().String(),
			UserID:    user.ID,
			TokenHash: hash,
			ExpiresAt: expires,
			CreatedAt: now,
			UpdatedAt: now,
		}))
	}
	mk("expired", now.Add(-time.Hour))
	mk("revoked", now.Add(time.Hour))
	mk("live", now.Add(time.Hour))
	require.NoError(t, st.RefreshTokens().RevokeRefreshToken(ctx, "revoked", now))

	hk := NewHousekeepingService(st, slogx.Discard(), time.Hour)
	hk.Now = func() time.Time { return now }

	require.Equal(t, int64(2), hk.Sweep(ctx))

	_, err := st.RefreshTokens().GetRefreshTokenByHash(ctx, "live")
	require.NoError(t, err)
	require.Zero(t, hk.Sweep(ctx))
}

func TestHousekeepingStartStop(t *testing.T) {
	defer goleak.VerifyNone(t,
		goleak.IgnoreCurrent(),
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	)

	hk := NewHousekeepingService(newTestStore(t), slogx.Discard(), 10*time.Millisecond)
	hk.Start()
	time.Sleep(30 * time.Millisecond)
	hk.Stop()
}

func TestNewHousekeepingServiceDefaults(t *testing.T) {
	hk := NewHousekeepingService(nil, nil, 0)
	require.Equal(t, time.Hour, hk.Interval)
	require.NotNil(t, hk.Logger)
}
