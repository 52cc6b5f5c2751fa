package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound marks a lookup for a profile that does not exist yet.
var ErrNotFound = errors.New("profile not found")

// Repository persists profiles and attempts in Postgres.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Get(ctx context.Context, userID string) (Profile, error) {
	var p Profile
	err := r.pool.QueryRow(ctx,
		`SELECT user_id, username, xp, level, streak, best_streak, games_played,
		        correct_answers, total_answers, daily_streak, last_daily_at,
		        last_played_at, badges, created_at, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(
		&p.UserID, &p.Username, &p.XP, &p.Level, &p.Streak, &p.BestStreak,
		&p.GamesPlayed, &p.CorrectAnswers, &p.TotalAnswers, &p.DailyStreak,
		&p.LastDailyAt, &p.LastPlayedAt, &p.Badges,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// GetOrCreate fetches a profile, creating a level-1 record on first contact.
func (r *Repository) GetOrCreate(ctx context.Context, userID, username string) (Profile, error) {
	p, err := r.Get(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Profile{}, err
	}

	err = r.pool.QueryRow(ctx,
		`INSERT INTO profiles (user_id, username, level)
		 VALUES ($1, $2, 1)
		 ON CONFLICT (user_id) DO UPDATE SET username = EXCLUDED.username
		 RETURNING user_id, username, xp, level, streak, best_streak, games_played,
		           correct_answers, total_answers, daily_streak, last_daily_at,
		           last_played_at, badges, created_at, updated_at`,
		userID, username,
	).Scan(
		&p.UserID, &p.Username, &p.XP, &p.Level, &p.Streak, &p.BestStreak,
		&p.GamesPlayed, &p.CorrectAnswers, &p.TotalAnswers, &p.DailyStreak,
		&p.LastDailyAt, &p.LastPlayedAt, &p.Badges,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return Profile{}, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}

func (r *Repository) Save(ctx context.Context, p Profile) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE profiles
		 SET username = $2, xp = $3, level = $4, streak = $5, best_streak = $6,
		     games_played = $7, correct_answers = $8, total_answers = $9,
		     badges = $10, daily_streak = $11, last_daily_at = $12,
		     last_played_at = $13, updated_at = now()
		 WHERE user_id = $1`,
		p.UserID, p.Username, p.XP, p.Level, p.Streak, p.BestStreak,
		p.GamesPlayed, p.CorrectAnswers, p.TotalAnswers, p.Badges,
		p.DailyStreak, p.LastDailyAt, p.LastPlayedAt,
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *Repository) InsertAttempt(ctx context.Context, a Attempt) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO attempts (user_id, mode, score, total, xp, accuracy, best_streak, answers)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		a.UserID, a.Mode, a.Score, a.Total, a.XP, a.Accuracy, a.BestStreak, a.Answers,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert attempt: %w", err)
	}
	return id, nil
}

// RecentAttempts returns a player's latest attempts, newest first.
func (r *Repository) RecentAttempts(ctx context.Context, userID string, limit int32) ([]Attempt, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, mode, score, total, xp, accuracy, best_streak, answers, played_at
		 FROM attempts WHERE user_id = $1
		 ORDER BY played_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		if err := rows.Scan(&a.ID, &a.UserID, &a.Mode, &a.Score, &a.Total,
			&a.XP, &a.Accuracy, &a.BestStreak, &a.Answers, &a.PlayedAt); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read attempts: %w", err)
	}
	return out, nil
}
