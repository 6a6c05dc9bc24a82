package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/surveypulse/surveypulse/internal/domain"
)

// responseDetail is the jsonb payload holding the branch-specific answers.
type responseDetail struct {
	Interview   *domain.Interview   `json:"interview,omitempty"`
	NoInterview *domain.NoInterview `json:"noInterview,omitempty"`
}

type ResponseRepo struct {
	pool *pgxpool.Pool
}

func NewResponseRepo(pool *pgxpool.Pool) *ResponseRepo {
	return &ResponseRepo{pool: pool}
}

func (r *ResponseRepo) Append(ctx context.Context, resp *domain.Response) error {
	detail, err := json.Marshal(responseDetail{Interview: resp.Interview, NoInterview: resp.NoInterview})
	if err != nil {
		return fmt.Errorf("failed to marshal response detail: %w", err)
	}

	err = r.pool.QueryRow(ctx, `
		INSERT INTO responses (submitted_at, department, rank, has_interview, detail)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, resp.SubmittedAt, resp.Department, resp.Rank, resp.HasInterview, detail).Scan(&resp.ID)
	if err != nil {
		return fmt.Errorf("failed to insert response: %w", err)
	}
	return nil
}

func (r *ResponseRepo) ListAll(ctx context.Context) ([]domain.Response, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, submitted_at, department, rank, has_interview, detail
		FROM responses
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses: %w", err)
	}
	defer rows.Close()

	var responses []domain.Response
	for rows.Next() {
		var (
			resp      domain.Response
			rawDetail []byte
		)
		if err := rows.Scan(&resp.ID, &resp.SubmittedAt, &resp.Department, &resp.Rank, &resp.HasInterview, &rawDetail); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		var detail responseDetail
		if err := json.Unmarshal(rawDetail, &detail); err != nil {
			return nil, fmt.Errorf("failed to unmarshal response detail: %w", err)
		}
		resp.Interview = detail.Interview
		resp.NoInterview = detail.NoInterview
		responses = append(responses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read responses: %w", err)
	}
	return responses, nil
}
