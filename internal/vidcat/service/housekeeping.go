package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/vidcat/internal/vidcat/store"
)

// HousekeepingService periodically removes expired and revoked refresh
// tokens so the table does not grow without bound.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Now defaults to time.Now.
	Now func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non-positive
// interval defaults to one hour.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until any in-progress sweep has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Sweep once on startup.
	s.Sweep(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Sweep(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Sweep deletes stale refresh tokens once and returns how many went.
func (s *HousekeepingService) Sweep(ctx context.Context) int64 {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	n, err := s.Store.RefreshTokens().DeleteStaleRefreshTokens(ctx, now().UTC())
	if err != nil {
		s.Logger.Error("failed to delete stale refresh tokens", "error", err)
		return 0
	}
	s.Logger.Info("housekeeping sweep completed", "refresh_tokens_deleted", n)
	return n
}
