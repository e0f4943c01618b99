package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/vidcat/internal/vidcat/domain"
	"github.com/aussiebroadwan/vidcat/internal/vidcat/store"
	"github.com/aussiebroadwan/vidcat/internal/vidcat/store/drivers/sqlite"
	"github.com/aussiebroadwan/vidcat/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "vidcat.db"))
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func createVideo(t *testing.T, s store.Store, title, providerID string, active bool) domain.Video {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Second)
	v := domain.Video{
		ID:          idx.New().String(),
		Title:       title,
		Description: "about " + title,
		ProviderID:  providerID,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, s.Videos().CreateVideo(context.Background(), v))
	return v
}

// fakeClock is a settable clock shared between a codec and a test.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{t: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}
