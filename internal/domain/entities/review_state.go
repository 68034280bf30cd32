package entities

import (
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/flashcards/internal/srs"
)

// MatureIntervalDays is the interval from which a card counts as mature.
const MatureIntervalDays = 21

// ReviewState stores the scheduling state of one flashcard for one user.
type ReviewState struct {
	UserID      int64
	FlashcardID uuid.UUID

	// SRS fields.
	EaseFactor     float64
	Repetitions    int // consecutive passing reviews
	IntervalDays   int
	DueDate        time.Time
	LastReviewedAt *time.Time // nil until the first rating

	ReviewCount int
	LapseCount  int
}

// NewReviewState creates the implicit state a card has before its first rating.
func NewReviewState(userID int64, flashcardID uuid.UUID, scheduler *srs.Scheduler, now time.Time) *ReviewState {
	initial := scheduler.NewState()
	return &ReviewState{
		UserID:       userID,
		FlashcardID:  flashcardID,
		EaseFactor:   initial.EaseFactor,
		Repetitions:  initial.Repetitions,
		IntervalDays: initial.IntervalDays,
		DueDate:      now,
	}
}

// Apply rates the card and updates the state in place. The state is left
// untouched when the scheduler rejects the input.
func (r *ReviewState) Apply(scheduler *srs.Scheduler, quality srs.Quality, now time.Time) error {
	next, err := scheduler.Next(r.srsState(), quality, now)
	if err != nil {
		return err
	}

	r.EaseFactor = next.EaseFactor
	r.Repetitions = next.Repetitions
	r.IntervalDays = next.IntervalDays
	r.DueDate = next.DueDate
	reviewed := next.LastReviewedAt
	r.LastReviewedAt = &reviewed

	r.ReviewCount++
	if quality < scheduler.Params().PassThreshold {
		r.LapseCount++
	}

	return nil
}

// IsDue reports whether the card should be shown at now.
func (r *ReviewState) IsDue(now time.Time) bool {
	return !r.DueDate.After(now)
}

func (r *ReviewState) IsMature() bool {
	return r.IntervalDays >= MatureIntervalDays
}

func (r *ReviewState) srsState() srs.State {
	s := srs.State{
		EaseFactor:   r.EaseFactor,
		Repetitions:  r.Repetitions,
		IntervalDays: r.IntervalDays,
		DueDate:      r.DueDate,
	}
	if r.LastReviewedAt != nil {
		s.LastReviewedAt = *r.LastReviewedAt
	}
	return s
}
