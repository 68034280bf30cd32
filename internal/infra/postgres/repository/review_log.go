package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
	"github.com/aliskhannn/flashcards/internal/infra/postgres"
)

// ReviewLogRepository appends rating history.
type ReviewLogRepository struct {
	db postgres.DBTX
}

func NewReviewLogRepository(db postgres.DBTX) *ReviewLogRepository {
	return &ReviewLogRepository{db: db}
}

func (r *ReviewLogRepository) Append(ctx context.Context, log *entities.ReviewLog) error {
	query := `
		INSERT INTO review_logs (
			user_id, flashcard_id, quality, previous_interval, interval_days, ease_factor, reviewed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := postgres.Executor(ctx, r.db).QueryRow(ctx, query,
		log.UserID,
		log.FlashcardID,
		int(log.Quality),
		log.PreviousInterval,
		log.IntervalDays,
		log.EaseFactor,
		log.ReviewedAt,
	).Scan(&log.ID)
	if err != nil {
		return fmt.Errorf("append review log: %w", err)
	}
	return nil
}

// ReviewDays returns the distinct UTC days on which the user rated at least one card.
func (r *ReviewLogRepository) ReviewDays(ctx context.Context, userID int64, since time.Time) ([]time.Time, error) {
	query := `
		SELECT DISTINCT date_trunc('day', reviewed_at AT TIME ZONE 'UTC') AS day
		FROM review_logs
		WHERE user_id = $1 AND reviewed_at >= $2
		ORDER BY day DESC
	`

	rows, err := postgres.Executor(ctx, r.db).Query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list review days: %w", err)
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan review day: %w", err)
		}
		days = append(days, time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC))
	}
	return days, rows.Err()
}
