// Package database implements the record repositories on PostgreSQL.
//
// Records are append-only: inserts are single atomic rows, reads return the
// full collection ordered by creation. Branch-specific answers live in a
// jsonb column so the two response shapes share one table without a sparse
// column set.
package database
