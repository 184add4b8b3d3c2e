package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveAnalysis stores a resume analysis as a JSONB document for a user
func (db *DB) SaveAnalysis(ctx context.Context, userID uuid.UUID, analysis any) error {
	jsonBytes, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resume_analyses (user_id, content)
		 VALUES ($1, $2)`,
		userID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// LatestAnalysis retrieves the most recent resume analysis for a user.
// Returns nil when the user has no stored analyses.
func (db *DB) LatestAnalysis(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM resume_analyses
		 WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT 1`,
		userID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest analysis: %w", err)
	}
	return content, nil
}

// SaveRoadmap stores a roadmap as a JSONB document for a user, keyed by
// target role. Saving again for the same role replaces the stored roadmap.
func (db *DB) SaveRoadmap(ctx context.Context, userID uuid.UUID, targetRole string, roadmap any) error {
	jsonBytes, err := json.Marshal(roadmap)
	if err != nil {
		return fmt.Errorf("failed to marshal roadmap: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO roadmaps (user_id, target_role, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, target_role) DO UPDATE SET content = $3, created_at = NOW()`,
		userID, targetRole, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save roadmap: %w", err)
	}
	return nil
}

// LatestRoadmap retrieves the most recently saved roadmap for a user.
// Returns nil when the user has no stored roadmaps.
func (db *DB) LatestRoadmap(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM roadmaps
		 WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT 1`,
		userID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest roadmap: %w", err)
	}
	return content, nil
}
