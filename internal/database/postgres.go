package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("Database connected", "min_conns", poolCfg.MinConns, "max_conns", poolCfg.MaxConns)
	return pool, nil
}

func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS responses (
			id BIGSERIAL PRIMARY KEY,
			submitted_at TIMESTAMPTZ NOT NULL,
			department TEXT NOT NULL,
			rank TEXT NOT NULL,
			has_interview BOOLEAN NOT NULL,
			detail JSONB NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_responses_department ON responses(department)`,
		`CREATE INDEX IF NOT EXISTS idx_responses_rank ON responses(rank)`,
		`CREATE TABLE IF NOT EXISTS leader_responses (
			id BIGSERIAL PRIMARY KEY,
			submitted_at TIMESTAMPTZ NOT NULL,
			department TEXT NOT NULL,
			feedback TEXT NOT NULL
		)`,
	}

	for _, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	slog.Info("Database migrations completed")
	return nil
}
