package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetProgress retrieves a user's course completion state.
// Returns nil when the user has no stored progress.
func (db *DB) GetProgress(ctx context.Context, userID uuid.UUID) (*ProgressRecord, error) {
	var rec ProgressRecord
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, completed_courses, phase_totals, updated_at
		 FROM course_progress WHERE user_id = $1`,
		userID,
	).Scan(&rec.UserID, &rec.CompletedCourses, &rec.PhaseTotals, &rec.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return &rec, nil
}

// SaveProgress upserts a user's course completion state
func (db *DB) SaveProgress(ctx context.Context, userID uuid.UUID, completedCourses []string, phaseTotals map[string]int) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO course_progress (user_id, completed_courses, phase_totals)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE SET
		     completed_courses = $2,
		     phase_totals = $3,
		     updated_at = NOW()`,
		userID, StringArray(completedCourses), IntMap(phaseTotals),
	)
	if err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}
