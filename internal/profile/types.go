package profile

import (
	"time"

	"github.com/quizzfoot/platform/internal/scoring"
)

// Game modes recorded on attempts.
const (
	ModeQuiz  = "quiz"
	ModeDaily = "daily"
	ModeBingo = "bingo"
	ModeGrid  = "grid"
)

// Profile is a player's persistent progression record.
type Profile struct {
	UserID         string    `json:"user_id"`
	Username       string    `json:"username"`
	XP             int       `json:"xp"`
	Level          int       `json:"level"`
	Streak         int       `json:"streak"`
	BestStreak     int       `json:"best_streak"`
	GamesPlayed    int       `json:"games_played"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalAnswers   int       `json:"total_answers"`
	DailyStreak    int       `json:"daily_streak"`
	LastDailyAt    time.Time `json:"last_daily_at"`
	LastPlayedAt   time.Time `json:"last_played_at"`
	Badges         []string  `json:"badges"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Snapshot extracts the fields the scorer folds results into.
func (p Profile) Snapshot() scoring.ProfileSnapshot {
	return scoring.ProfileSnapshot{
		XP:             p.XP,
		Level:          p.Level,
		Streak:         p.Streak,
		BestStreak:     p.BestStreak,
		GamesPlayed:    p.GamesPlayed,
		CorrectAnswers: p.CorrectAnswers,
		TotalAnswers:   p.TotalAnswers,
		DailyStreak:    p.DailyStreak,
		LastDailyAt:    p.LastDailyAt,
	}
}

func (p *Profile) applySnapshot(s scoring.ProfileSnapshot) {
	p.XP = s.XP
	p.Level = s.Level
	p.Streak = s.Streak
	p.BestStreak = s.BestStreak
	p.GamesPlayed = s.GamesPlayed
	p.CorrectAnswers = s.CorrectAnswers
	p.TotalAnswers = s.TotalAnswers
	p.DailyStreak = s.DailyStreak
	p.LastDailyAt = s.LastDailyAt
}

// HasBadge reports whether the profile already owns a badge.
func (p Profile) HasBadge(id string) bool {
	for _, b := range p.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// Attempt is one finished game, kept for history and stats.
type Attempt struct {
	ID         int64                  `json:"id"`
	UserID     string                 `json:"user_id"`
	Mode       string                 `json:"mode"`
	Score      int                    `json:"score"`
	Total      int                    `json:"total"`
	XP         int                    `json:"xp"`
	Accuracy   int                    `json:"accuracy"`
	BestStreak int                    `json:"best_streak"`
	Answers    []scoring.AnswerRecord `json:"answers,omitempty"`
	PlayedAt   time.Time              `json:"played_at"`
}

// Outcome is what applying a finished game yields for the client.
type Outcome struct {
	Profile   Profile  `json:"profile"`
	XPGained  int      `json:"xp_gained"`
	LeveledUp bool     `json:"leveled_up"`
	NewBadges []string `json:"new_badges"`
}
