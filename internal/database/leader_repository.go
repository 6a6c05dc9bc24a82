package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/surveypulse/surveypulse/internal/domain"
)

type LeaderRepo struct {
	pool *pgxpool.Pool
}

func NewLeaderRepo(pool *pgxpool.Pool) *LeaderRepo {
	return &LeaderRepo{pool: pool}
}

func (r *LeaderRepo) Append(ctx context.Context, lr *domain.LeaderResponse) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO leader_responses (submitted_at, department, feedback)
		VALUES ($1, $2, $3)
		RETURNING id
	`, lr.SubmittedAt, lr.Department, lr.Feedback).Scan(&lr.ID)
	if err != nil {
		return fmt.Errorf("failed to insert leader response: %w", err)
	}
	return nil
}

func (r *LeaderRepo) ListAll(ctx context.Context) ([]domain.LeaderResponse, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, submitted_at, department, feedback
		FROM leader_responses
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query leader responses: %w", err)
	}
	defer rows.Close()

	var responses []domain.LeaderResponse
	for rows.Next() {
		var lr domain.LeaderResponse
		if err := rows.Scan(&lr.ID, &lr.SubmittedAt, &lr.Department, &lr.Feedback); err != nil {
			return nil, fmt.Errorf("failed to scan leader response: %w", err)
		}
		responses = append(responses, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leader responses: %w", err)
	}
	return responses, nil
}
