package entities

import (
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/flashcards/internal/srs"
)

// ReviewLog is an append-only record of one rating.
type ReviewLog struct {
	ID               int64
	UserID           int64
	FlashcardID      uuid.UUID
	Quality          srs.Quality
	PreviousInterval int
	IntervalDays     int
	EaseFactor       float64
	ReviewedAt       time.Time
}

// NewReviewLog records the transition that produced state.
func NewReviewLog(state *ReviewState, quality srs.Quality, previousInterval int) *ReviewLog {
	log := &ReviewLog{
		UserID:           state.UserID,
		FlashcardID:      state.FlashcardID,
		Quality:          quality,
		PreviousInterval: previousInterval,
		IntervalDays:     state.IntervalDays,
		EaseFactor:       state.EaseFactor,
	}
	if state.LastReviewedAt != nil {
		log.ReviewedAt = *state.LastReviewedAt
	}
	return log
}
