package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// StoredAnalysis is one persisted analysis result.
type StoredAnalysis struct {
	ID        uuid.UUID       `json:"id"`
	ResumeID  string          `json:"resume_id"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

// RankBatch is one persisted ranking run.
type RankBatch struct {
	ID        uuid.UUID       `json:"id"`
	JDHash    string          `json:"jd_hash"`
	Results   json.RawMessage `json:"results"`
	CreatedAt time.Time       `json:"created_at"`
}
