package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
)

func TestProgressServiceSummary(t *testing.T) {
	cards := newFakeFlashcardRepo()
	states := newFakeReviewStateRepo(cards)
	states.stats = &entities.ProgressStats{
		TotalCards:     20,
		NewCards:       5,
		LearningCards:  10,
		MatureCards:    5,
		DueToday:       7,
		TotalReviews:   120,
		CorrectReviews: 90,
	}
	logs := &fakeReviewLogRepo{days: []time.Time{
		t0.AddDate(0, 0, -2),
		t0.AddDate(0, 0, -1),
		t0,
		t0.AddDate(-2, 0, 0), // outside the window
	}}

	svc := NewProgressService(states, logs).WithClock(fixedClock(t0))
	summary, err := svc.Summary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 20, summary.TotalCards)
	assert.InDelta(t, 75.0, summary.AccuracyPercent, 1e-9)
	assert.Equal(t, 3, summary.CurrentStreak)
	assert.Equal(t, 3, summary.LongestStreak)
	require.Len(t, summary.Achievements, 6)

	unlocked := 0
	for _, a := range summary.Achievements {
		if a.Unlocked {
			unlocked++
		}
	}
	assert.Equal(t, 2, unlocked) // first review and 100 reviews
}
