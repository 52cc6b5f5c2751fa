package leaderboard

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quizzfoot/platform/internal/scoring"
)

// Supported ranking windows.
const (
	WindowDaily   = "daily"
	WindowWeekly  = "weekly"
	WindowAllTime = "all_time"
)

var defaultWindows = []string{WindowDaily, WindowWeekly, WindowAllTime}

// Entry is one ranked player as sent to clients.
type Entry struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	XP       int    `json:"xp"`
	Level    int    `json:"level"`
	Games    int    `json:"games"`
}

// Record captures one finished game's contribution to the rankings.
type Record struct {
	UserID   string
	Username string
	// TotalXP is the player's lifetime XP (all-time board is absolute).
	TotalXP int
	// GainedXP is this game's XP (windowed boards accumulate deltas).
	GainedXP int
}

// ServiceOptions configures the ranking service.
type ServiceOptions struct {
	TopN           int
	Windows        []string
	WindowTTL      time.Duration
	RedisKeyPrefix string
}

// Service keeps XP rankings in Redis sorted sets, one per window, with a
// per-user metadata hash alongside.
type Service struct {
	redis     *redis.Client
	logger    zerolog.Logger
	topN      int
	windows   []string
	windowTTL time.Duration
	prefix    string
}

func NewService(redis *redis.Client, logger zerolog.Logger, opts ServiceOptions) *Service {
	topN := opts.TopN
	if topN <= 0 {
		topN = 50
	}
	windows := opts.Windows
	if len(windows) == 0 {
		windows = defaultWindows
	}
	ttl := opts.WindowTTL
	if ttl <= 0 {
		ttl = 31 * 24 * time.Hour
	}
	prefix := opts.RedisKeyPrefix
	if prefix == "" {
		prefix = "lb"
	}
	return &Service{
		redis:     redis,
		logger:    logger.With().Str("component", "leaderboard").Logger(),
		topN:      topN,
		windows:   windows,
		windowTTL: ttl,
		prefix:    prefix,
	}
}

// Push folds one finished game into every configured window.
func (s *Service) Push(ctx context.Context, rec Record) error {
	for _, window := range s.windows {
		if err := s.updateWindow(ctx, window, rec); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) updateWindow(ctx context.Context, window string, rec Record) error {
	zKey := s.boardKey(window)
	metaKey := s.metaKey(window, rec.UserID)

	pipe := s.redis.TxPipeline()
	if window == WindowAllTime {
		pipe.ZAdd(ctx, zKey, redis.Z{Score: float64(rec.TotalXP), Member: rec.UserID})
	} else {
		pipe.ZIncrBy(ctx, zKey, float64(rec.GainedXP), rec.UserID)
	}
	pipe.HIncrBy(ctx, metaKey, "games", 1)
	pipe.HSet(ctx, metaKey, map[string]interface{}{"username": rec.Username})
	if window != WindowAllTime {
		pipe.Expire(ctx, zKey, s.windowTTL)
		pipe.Expire(ctx, metaKey, s.windowTTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("update ranking window %s: %w", window, err)
	}
	return nil
}

// Top returns the highest-ranked entries for a window.
func (s *Service) Top(ctx context.Context, window string, limit int) ([]Entry, error) {
	if !ValidWindow(window) {
		return nil, fmt.Errorf("unknown ranking window %q", window)
	}
	if limit <= 0 || limit > s.topN {
		limit = s.topN
	}

	results, err := s.redis.ZRevRangeWithScores(ctx, s.boardKey(window), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch rankings: %w", err)
	}

	entries := make([]Entry, 0, len(results))
	for i, z := range results {
		userID, _ := z.Member.(string)
		entry := Entry{
			Rank:   i + 1,
			UserID: userID,
			XP:     int(z.Score),
			Level:  scoring.LevelFromXP(int(z.Score)),
		}
		meta, err := s.redis.HGetAll(ctx, s.metaKey(window, userID)).Result()
		if err != nil {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("read ranking metadata")
		} else {
			entry.Username = meta["username"]
			entry.Games, _ = strconv.Atoi(meta["games"])
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Rank returns a player's position in a window, or 0 when unranked.
func (s *Service) Rank(ctx context.Context, window, userID string) (int, error) {
	rank, err := s.redis.ZRevRank(ctx, s.boardKey(window), userID).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("fetch rank: %w", err)
	}
	return int(rank) + 1, nil
}

// ValidWindow reports whether a window name is served.
func ValidWindow(window string) bool {
	switch window {
	case WindowDaily, WindowWeekly, WindowAllTime:
		return true
	}
	return false
}

func (s *Service) boardKey(window string) string {
	return fmt.Sprintf("%s:%s", s.prefix, window)
}

func (s *Service) metaKey(window, userID string) string {
	return fmt.Sprintf("%s:%s:meta:%s", s.prefix, window, userID)
}
