package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/flashcards/internal/infra/postgres"
)

// ResetRepository wipes a user's learning history while keeping their cards.
type ResetRepository struct {
	db postgres.DBTX
}

func NewResetRepository(db postgres.DBTX) *ResetRepository {
	return &ResetRepository{db: db}
}

func (r *ResetRepository) ResetUser(ctx context.Context, userID int64) error {
	db := postgres.Executor(ctx, r.db)

	if _, err := db.Exec(ctx, `DELETE FROM review_logs WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete review_logs: %w", err)
	}
	if _, err := db.Exec(ctx, `DELETE FROM review_states WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete review_states: %w", err)
	}

	return nil
}
