package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/vidcat/internal/vidcat/domain"
	"github.com/aussiebroadwan/vidcat/internal/vidcat/store"
	"github.com/aussiebroadwan/vidcat/pkg/idx"
	"github.com/aussiebroadwan/vidcat/pkg/slogx"
)

// SampleVideo is a catalog entry shipped with the service.
type SampleVideo struct {
	Title       string
	Description string
	ProviderID  string
}

// SampleVideos is the starter catalog.
var SampleVideos = []SampleVideo{
	{
		Title:       "The Power of Believing You Can Improve",
		Description: "Carol Dweck talks about the growth mindset and how our beliefs about learning shape our success.",
		ProviderID:  "_X0mgOOSpLU",
	},
	{
		Title:       "How Great Leaders Inspire Action",
		Description: "Simon Sinek explains the golden circle and why some leaders and organizations are more innovative.",
		ProviderID:  "qp0HIF3SfI4",
	},
	{
		Title:       "Your Body Language Shapes Who You Are",
		Description: "Amy Cuddy shows how power posing can change your mind, body, and life.",
		ProviderID:  "Ks-_Mh1QhMc",
	},
	{
		Title:       "The Happy Secret to Better Work",
		Description: "Shawn Achor reveals how positive psychology can boost happiness and productivity.",
		ProviderID:  "fLJsdqxnZb0",
	},
	{
		Title:       "The Skill of Self Confidence",
		Description: "Dr. Ivan Joseph explains how self-confidence is developed through practice and persistence.",
		ProviderID:  "w-HYZv6HzAs",
	},
}

type SeedService struct {
	Store  store.Store
	Videos []SampleVideo // defaults to SampleVideos

	// Now defaults to time.Now.
	Now func() time.Time
}

// Seed inserts every sample video whose title is not in the catalog yet and
// reports how many were added. Running it twice adds nothing the second time.
func (s *SeedService) Seed(ctx context.Context) (int, error) {
	videos := s.Videos
	if videos == nil {
		videos = SampleVideos
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	inserted := 0
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, sv := range videos {
			_, err := tx.Videos().GetVideoByTitle(ctx, sv.Title)
			if err == nil {
				continue
			}
			if !errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("lookup %q: %w", sv.Title, err)
			}

			ts := now().UTC()
			v := domain.Video{
				ID:          idx.NewAt(ts).String(),
				Title:       sv.Title,
				Description: sv.Description,
				ProviderID:  sv.ProviderID,
				Active:      true,
				CreatedAt:   ts,
				UpdatedAt:   ts,
			}
			if err := tx.Videos().CreateVideo(ctx, v); err != nil {
				return fmt.Errorf("create %q: %w", sv.Title, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slogx.FromContext(ctx).Info("catalog seeded", slog.Int("inserted", inserted))
	return inserted, nil
}
