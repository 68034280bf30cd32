package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
	"github.com/aliskhannn/flashcards/internal/infra/postgres"
)

// ReviewStateRepository persists per-user scheduling state.
type ReviewStateRepository struct {
	db postgres.DBTX
}

func NewReviewStateRepository(db postgres.DBTX) *ReviewStateRepository {
	return &ReviewStateRepository{db: db}
}

// Get returns entities.ErrReviewStateNotFound when the card was never rated by the user.
func (r *ReviewStateRepository) Get(ctx context.Context, userID int64, flashcardID uuid.UUID) (*entities.ReviewState, error) {
	query := `
		SELECT user_id, flashcard_id, ease_factor, repetitions, interval_days,
		       due_date, last_reviewed_at, review_count, lapse_count
		FROM review_states
		WHERE user_id = $1 AND flashcard_id = $2
	`

	var s entities.ReviewState
	err := postgres.Executor(ctx, r.db).QueryRow(ctx, query, userID, flashcardID).Scan(
		&s.UserID,
		&s.FlashcardID,
		&s.EaseFactor,
		&s.Repetitions,
		&s.IntervalDays,
		&s.DueDate,
		&s.LastReviewedAt,
		&s.ReviewCount,
		&s.LapseCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrReviewStateNotFound
		}
		return nil, fmt.Errorf("get review state: %w", err)
	}

	return &s, nil
}

// Upsert writes the state; concurrent ratings of the same card resolve as last write wins.
func (r *ReviewStateRepository) Upsert(ctx context.Context, s *entities.ReviewState) error {
	query := `
		INSERT INTO review_states (
			user_id, flashcard_id, ease_factor, repetitions, interval_days,
			due_date, last_reviewed_at, review_count, lapse_count
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, flashcard_id) DO UPDATE SET
			ease_factor = EXCLUDED.ease_factor,
			repetitions = EXCLUDED.repetitions,
			interval_days = EXCLUDED.interval_days,
			due_date = EXCLUDED.due_date,
			last_reviewed_at = EXCLUDED.last_reviewed_at,
			review_count = EXCLUDED.review_count,
			lapse_count = EXCLUDED.lapse_count
	`

	_, err := postgres.Executor(ctx, r.db).Exec(ctx, query,
		s.UserID,
		s.FlashcardID,
		s.EaseFactor,
		s.Repetitions,
		s.IntervalDays,
		s.DueDate,
		s.LastReviewedAt,
		s.ReviewCount,
		s.LapseCount,
	)
	if err != nil {
		switch {
		case violatesForeignKey(err, "review_states_user_id_fkey"):
			return entities.ErrUserNotFound
		case violatesForeignKey(err, "review_states_flashcard_id_fkey"):
			return entities.ErrFlashcardNotFound
		}
		return fmt.Errorf("upsert review state: %w", err)
	}
	return nil
}

// NextDue returns the user's card that has waited longest. Cards never
// rated count as due since their creation.
func (r *ReviewStateRepository) NextDue(ctx context.Context, userID int64, now time.Time) (*entities.Flashcard, error) {
	query := `
		SELECT f.id, f.owner_id, f.deck_id, f.front, f.back, f.created_at, f.updated_at
		FROM flashcards f
		LEFT JOIN review_states rs ON rs.flashcard_id = f.id AND rs.user_id = $1
		WHERE f.owner_id = $1
		  AND (rs.due_date IS NULL OR rs.due_date <= $2)
		ORDER BY COALESCE(rs.due_date, f.created_at), f.id
		LIMIT 1
	`

	card, err := scanFlashcard(postgres.Executor(ctx, r.db).QueryRow(ctx, query, userID, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrNoCardsDue
		}
		return nil, fmt.Errorf("next due card: %w", err)
	}
	return card, nil
}

func (r *ReviewStateRepository) CountDue(ctx context.Context, userID int64, now time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM flashcards f
		LEFT JOIN review_states rs ON rs.flashcard_id = f.id AND rs.user_id = $1
		WHERE f.owner_id = $1
		  AND (rs.due_date IS NULL OR rs.due_date <= $2)
	`

	var n int
	if err := postgres.Executor(ctx, r.db).QueryRow(ctx, query, userID, now).Scan(&n); err != nil {
		return 0, fmt.Errorf("count due cards: %w", err)
	}
	return n, nil
}

// GetStats aggregates card counters for the user's own cards and review
// counters over the full review history.
func (r *ReviewStateRepository) GetStats(ctx context.Context, userID int64, now time.Time) (*entities.ProgressStats, error) {
	query := `
		SELECT
			COUNT(f.id),
			COUNT(f.id) FILTER (WHERE rs.flashcard_id IS NULL),
			COUNT(f.id) FILTER (WHERE rs.flashcard_id IS NOT NULL AND rs.interval_days < $3),
			COUNT(f.id) FILTER (WHERE rs.interval_days >= $3),
			COUNT(f.id) FILTER (WHERE rs.due_date IS NULL OR rs.due_date <= $2),
			(SELECT COUNT(*) FROM review_logs WHERE user_id = $1),
			(SELECT COUNT(*) FROM review_logs WHERE user_id = $1 AND quality >= 3)
		FROM flashcards f
		LEFT JOIN review_states rs ON rs.flashcard_id = f.id AND rs.user_id = $1
		WHERE f.owner_id = $1
	`

	var s entities.ProgressStats
	err := postgres.Executor(ctx, r.db).QueryRow(ctx, query, userID, now, entities.MatureIntervalDays).Scan(
		&s.TotalCards,
		&s.NewCards,
		&s.LearningCards,
		&s.MatureCards,
		&s.DueToday,
		&s.TotalReviews,
		&s.CorrectReviews,
	)
	if err != nil {
		return nil, fmt.Errorf("get progress stats: %w", err)
	}
	return &s, nil
}
