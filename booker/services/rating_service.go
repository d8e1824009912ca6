package services

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/squaredcircle/booker/booker/engine"
	"github.com/squaredcircle/booker/booker/game"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const (
	ratingCacheSize      = 1000
	ratingCacheTTL       = 5 * time.Minute
	maxConcurrentRatings = 5
)

type cachedRating struct {
	rating    int
	timestamp time.Time
}

// RatingService computes and caches match ratings. Show-wide rating runs
// the per-match calculations concurrently under a semaphore.
type RatingService struct {
	eng   *engine.Engine
	cache *lru.Cache
	sem   *semaphore.Weighted
}

func NewRatingService(eng *engine.Engine) *RatingService {
	cache, _ := lru.New(ratingCacheSize)
	return &RatingService{
		eng:   eng,
		cache: cache,
		sem:   semaphore.NewWeighted(maxConcurrentRatings),
	}
}

// MatchRating scores one match, serving repeats from cache.
func (s *RatingService) MatchRating(m game.Match, wrestlers map[string]game.Wrestler) int {
	key := ratingKey(m)
	if v, ok := s.cache.Get(key); ok {
		cached := v.(cachedRating)
		if time.Since(cached.timestamp) < ratingCacheTTL {
			return cached.rating
		}
		s.cache.Remove(key)
	}

	rating := s.eng.MatchRating(m, wrestlers)
	s.cache.Add(key, cachedRating{rating: rating, timestamp: time.Now()})
	return rating
}

// ShowRating scores every match on a card concurrently and averages the
// results. An empty card rates zero.
func (s *RatingService) ShowRating(ctx context.Context, show game.Show, wrestlers map[string]game.Wrestler) (int, error) {
	if len(show.Matches) == 0 {
		return 0, nil
	}

	ratings := make([]int, len(show.Matches))
	g, ctx := errgroup.WithContext(ctx)

	for i, m := range show.Matches {
		i, m := i, m
		g.Go(func() error {
			if err := s.sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer s.sem.Release(1)
			ratings[i] = s.MatchRating(m, wrestlers)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, r := range ratings {
		total += r
	}
	return total / len(ratings), nil
}

// InvalidateCache drops every cached rating; callers invalidate after
// roster mutations that change workrates.
func (s *RatingService) InvalidateCache() {
	s.cache.Purge()
}

func ratingKey(m game.Match) string {
	key := m.Type
	for _, id := range m.Participants {
		key += "|" + id
	}
	return fmt.Sprintf("rating:%s", key)
}
