package question

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/quizzfoot/platform/internal/quiz"
	"github.com/quizzfoot/platform/internal/rng"
)

// poolFactor oversizes pool fetches so random packs do not degenerate to
// the same leading rows.
const poolFactor = 10

// ErrInsufficientPool means the category pool cannot fill the requested
// pack size.
var ErrInsufficientPool = errors.New("insufficient questions")

// PackCache defines pack cache behavior (implemented by the Redis-backed
// Cache).
type PackCache interface {
	Get(ctx context.Context, req PackRequest) (*PackResponse, error)
	Set(ctx context.Context, req PackRequest, resp PackResponse) error
}

// PoolSource supplies candidate questions (implemented by Repository).
type PoolSource interface {
	Pool(ctx context.Context, category string, limit int32) ([]quiz.Question, error)
}

// Service selects question packs from the curated pool: uniformly random
// for regular quizzes, seeded by calendar day for the shared daily quiz.
type Service struct {
	source PoolSource
	cache  PackCache
	logger zerolog.Logger
}

func NewService(source PoolSource, cache PackCache, logger zerolog.Logger) *Service {
	return &Service{source: source, cache: cache, logger: logger}
}

// FetchPack returns a question pack for one session. Requests carrying a
// DayID are deterministic and cached; others are freshly shuffled.
func (s *Service) FetchPack(ctx context.Context, req PackRequest) (PackResponse, error) {
	if req.Count <= 0 {
		req.Count = QuizSize
		if req.DayID != "" {
			req.Count = DailySize
		}
	}

	if req.DayID != "" && s.cache != nil {
		if cached, err := s.cache.Get(ctx, req); err == nil && cached != nil {
			return *cached, nil
		}
	}

	pool, err := s.source.Pool(ctx, req.Category, int32(req.Count*poolFactor))
	if err != nil {
		return PackResponse{}, fmt.Errorf("fetch question pool: %w", err)
	}
	if len(pool) < req.Count {
		return PackResponse{}, fmt.Errorf("%w: need %d got %d", ErrInsufficientPool, req.Count, len(pool))
	}

	if req.DayID != "" {
		// Sort before the seeded shuffle so every replica picks the same
		// pack regardless of pool scan order.
		sort.Slice(pool, func(i, j int) bool { return pool[i].ID < pool[j].ID })
		rng.ShuffleSlice(rng.NewSeq(rng.DaySeed(req.DayID)), pool)
	} else {
		rng.Shuffle(pool)
	}

	resp := PackResponse{Questions: pool[:req.Count], DayID: req.DayID}

	if req.DayID != "" && s.cache != nil {
		if err := s.cache.Set(ctx, req, resp); err != nil {
			s.logger.Warn().Err(err).Str("day", req.DayID).Msg("cache daily pack")
		}
	}
	return resp, nil
}
