package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
	"github.com/aliskhannn/flashcards/internal/srs"
)

// RateResult is what the caller shows after a rating.
type RateResult struct {
	FlashcardID  uuid.UUID
	DueDate      time.Time
	IntervalDays int
	EaseFactor   float64
	Repetitions  int
}

// ReviewService loads, schedules and persists review state.
type ReviewService struct {
	tr        Transactor
	cards     FlashcardRepository
	states    ReviewStateRepository
	logs      ReviewLogRepository
	scheduler *srs.Scheduler
	logger    *zap.Logger
	now       Clock
}

func NewReviewService(
	tr Transactor,
	cards FlashcardRepository,
	states ReviewStateRepository,
	logs ReviewLogRepository,
	scheduler *srs.Scheduler,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{
		tr:        tr,
		cards:     cards,
		states:    states,
		logs:      logs,
		scheduler: scheduler,
		logger:    logger,
		now:       utcNow,
	}
}

// WithClock replaces the time source.
func (s *ReviewService) WithClock(now Clock) *ReviewService {
	s.now = now
	return s
}

// Rate applies quality to the user's review state of the flashcard.
//
// The quality is validated before any storage access. Only the card's owner
// can rate it; anyone else gets entities.ErrFlashcardNotFound. A missing state is
// created with default values; the updated state and a review log entry are
// written in one transaction.
func (s *ReviewService) Rate(ctx context.Context, userID int64, flashcardID uuid.UUID, quality int) (*RateResult, error) {
	q, err := srs.ParseQuality(quality)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var state *entities.ReviewState

	err = s.tr.WithinTx(ctx, func(ctx context.Context) error {
		card, err := s.cards.Get(ctx, flashcardID)
		if err != nil {
			return err
		}
		// Cards of other users are invisible to NextDue and stats.
		if card.OwnerID != userID {
			return entities.ErrFlashcardNotFound
		}

		current, err := s.states.Get(ctx, userID, flashcardID)
		switch {
		case errors.Is(err, entities.ErrReviewStateNotFound):
			current = entities.NewReviewState(userID, flashcardID, s.scheduler, now)
		case err != nil:
			return err
		}
		state = current

		previousInterval := state.IntervalDays
		if err := state.Apply(s.scheduler, q, now); err != nil {
			return err
		}

		if err := s.states.Upsert(ctx, state); err != nil {
			return err
		}

		return s.logs.Append(ctx, entities.NewReviewLog(state, q, previousInterval))
	})
	if err != nil {
		return nil, fmt.Errorf("rate flashcard %s: %w", flashcardID, err)
	}

	s.logger.Debug("flashcard rated",
		zap.Int64("user_id", userID),
		zap.String("flashcard_id", flashcardID.String()),
		zap.Stringer("quality", q),
		zap.Int("interval_days", state.IntervalDays),
		zap.Float64("ease_factor", state.EaseFactor),
	)

	return &RateResult{
		FlashcardID:  flashcardID,
		DueDate:      state.DueDate,
		IntervalDays: state.IntervalDays,
		EaseFactor:   state.EaseFactor,
		Repetitions:  state.Repetitions,
	}, nil
}

// NextDue returns the card the user should review now, or entities.ErrNoCardsDue.
func (s *ReviewService) NextDue(ctx context.Context, userID int64) (*entities.Flashcard, error) {
	return s.states.NextDue(ctx, userID, s.now())
}

func (s *ReviewService) CountDue(ctx context.Context, userID int64) (int, error) {
	return s.states.CountDue(ctx, userID, s.now())
}
