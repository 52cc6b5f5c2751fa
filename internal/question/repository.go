package question

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizzfoot/platform/internal/quiz"
)

// Repository reads and writes the curated question pool in Postgres.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a Postgres-backed question repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const selectColumns = `id, type, prompt, choices, answer, explanation, difficulty, category, tags, season, competition`

// Pool fetches up to limit questions, optionally filtered by category.
// Ordering is stable (by id) so deterministic daily selection stays
// reproducible across replicas.
func (r *Repository) Pool(ctx context.Context, category string, limit int32) ([]quiz.Question, error) {
	query := `SELECT ` + selectColumns + ` FROM questions ORDER BY id LIMIT $1`
	args := []any{limit}
	if category != "" {
		query = `SELECT ` + selectColumns + ` FROM questions WHERE category = $1 ORDER BY id LIMIT $2`
		args = []any{category, limit}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query question pool: %w", err)
	}
	defer rows.Close()

	var out []quiz.Question
	for rows.Next() {
		var q quiz.Question
		if err := rows.Scan(
			&q.ID, &q.Type, &q.Prompt, &q.Choices, &q.Answer, &q.Explanation,
			&q.Difficulty, &q.Category, &q.Tags, &q.Season, &q.Competition,
		); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read question pool: %w", err)
	}
	return out, nil
}

// Insert stores a curated question and returns its generated id.
func (r *Repository) Insert(ctx context.Context, q quiz.Question) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx,
		`INSERT INTO questions (type, prompt, choices, answer, explanation, difficulty, category, tags, season, competition)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		q.Type, q.Prompt, q.Choices, q.Answer, q.Explanation,
		q.Difficulty, q.Category, q.Tags, q.Season, q.Competition,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert question: %w", err)
	}
	return id, nil
}
