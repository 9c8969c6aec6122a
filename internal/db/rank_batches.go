package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveRankBatch stores the ordered results of one ranking run.
func (db *DB) SaveRankBatch(ctx context.Context, id uuid.UUID, jdHash string, results any) error {
	jsonBytes, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal rank batch: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO rank_batches (id, jd_hash, results) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET jd_hash = $2, results = $3, created_at = NOW()`,
		id, jdHash, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save rank batch %s: %w", id, err)
	}
	return nil
}

// GetRankBatch retrieves a rank batch by ID. Returns nil, nil if not found.
func (db *DB) GetRankBatch(ctx context.Context, id uuid.UUID) (*RankBatch, error) {
	var b RankBatch
	err := db.pool.QueryRow(ctx,
		`SELECT id, jd_hash, results, created_at FROM rank_batches WHERE id = $1`,
		id,
	).Scan(&b.ID, &b.JDHash, &b.Results, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rank batch %s: %w", id, err)
	}
	return &b, nil
}
