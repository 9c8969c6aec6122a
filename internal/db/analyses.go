package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveAnalysis stores an analysis result and returns its generated ID.
func (db *DB) SaveAnalysis(ctx context.Context, resumeID string, result any) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO analyses (id, resume_id, result) VALUES ($1, $2, $3)`,
		id, resumeID, jsonBytes,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis for %s: %w", resumeID, err)
	}
	return id, nil
}

// GetAnalysis retrieves an analysis by ID. Returns nil, nil if not found.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*StoredAnalysis, error) {
	var a StoredAnalysis
	err := db.pool.QueryRow(ctx,
		`SELECT id, resume_id, result, created_at FROM analyses WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.ResumeID, &a.Result, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis %s: %w", id, err)
	}
	return &a, nil
}

// LatestAnalysisForResume returns the most recent analysis of a résumé. Returns nil, nil if none.
func (db *DB) LatestAnalysisForResume(ctx context.Context, resumeID string) (*StoredAnalysis, error) {
	var a StoredAnalysis
	err := db.pool.QueryRow(ctx,
		`SELECT id, resume_id, result, created_at FROM analyses
		 WHERE resume_id = $1 ORDER BY created_at DESC LIMIT 1`,
		resumeID,
	).Scan(&a.ID, &a.ResumeID, &a.Result, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest analysis for %s: %w", resumeID, err)
	}
	return &a, nil
}
