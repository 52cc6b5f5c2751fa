package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/quizzfoot/platform/internal/scoring"
)

// Store is the persistence surface the service needs (implemented by
// Repository).
type Store interface {
	Get(ctx context.Context, userID string) (Profile, error)
	GetOrCreate(ctx context.Context, userID, username string) (Profile, error)
	Save(ctx context.Context, p Profile) error
	InsertAttempt(ctx context.Context, a Attempt) (int64, error)
	RecentAttempts(ctx context.Context, userID string, limit int32) ([]Attempt, error)
}

// RankSink receives XP updates for ranking. Pushes are best effort.
type RankSink interface {
	UpdateScore(ctx context.Context, userID, username string, totalXP, gainedXP int) error
}

// Service folds finished games into persistent player progression.
type Service struct {
	store  Store
	ranks  RankSink
	logger zerolog.Logger
	clock  func() time.Time
}

func NewService(store Store, ranks RankSink, logger zerolog.Logger) *Service {
	return &Service{store: store, ranks: ranks, logger: logger, clock: time.Now}
}

// Get returns a player's profile.
func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	return s.store.Get(ctx, userID)
}

// History returns a player's recent attempts.
func (s *Service) History(ctx context.Context, userID string, limit int32) ([]Attempt, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.store.RecentAttempts(ctx, userID, limit)
}

// ApplyQuizResult folds a finished quiz into the player's profile: XP,
// level, daily streak, counters, badge unlocks, an attempt row, and a
// ranking push. Ranking failures are logged, never surfaced.
func (s *Service) ApplyQuizResult(ctx context.Context, userID, username, mode string, result scoring.QuizResult) (Outcome, error) {
	p, err := s.store.GetOrCreate(ctx, userID, username)
	if err != nil {
		return Outcome{}, fmt.Errorf("load profile: %w", err)
	}

	now := s.clock().UTC()
	before := p.Snapshot()
	levelBefore := before.Level
	if levelBefore == 0 {
		levelBefore = 1
	}

	if mode == ModeDaily {
		before = scoring.RecordDailyPlay(before, now)
	}
	unlocked := scoring.CheckBadgeUnlocks(before, result)
	p.applySnapshot(scoring.UpdateProfile(before, result))
	p.LastPlayedAt = now

	var fresh []string
	for _, id := range unlocked {
		if !p.HasBadge(id) {
			p.Badges = append(p.Badges, id)
			fresh = append(fresh, id)
		}
	}

	if err := s.store.Save(ctx, p); err != nil {
		return Outcome{}, fmt.Errorf("save profile: %w", err)
	}

	attempt := Attempt{
		UserID:     userID,
		Mode:       mode,
		Score:      result.Score,
		Total:      result.Total,
		XP:         result.TotalXP,
		Accuracy:   result.Accuracy,
		BestStreak: result.BestStreak,
		Answers:    result.Answers,
	}
	if _, err := s.store.InsertAttempt(ctx, attempt); err != nil {
		return Outcome{}, fmt.Errorf("record attempt: %w", err)
	}

	if s.ranks != nil {
		if err := s.ranks.UpdateScore(ctx, userID, p.Username, p.XP, result.TotalXP); err != nil {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("push ranking update")
		}
	}

	return Outcome{
		Profile:   p,
		XPGained:  result.TotalXP,
		LeveledUp: p.Level > levelBefore,
		NewBadges: fresh,
	}, nil
}
