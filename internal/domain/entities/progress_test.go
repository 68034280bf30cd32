package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestReviewStreaks(t *testing.T) {
	today := day(2025, 5, 20, 18)

	tests := []struct {
		name        string
		days        []time.Time
		wantCurrent int
		wantLongest int
	}{
		{name: "no reviews"},
		{
			name:        "reviewed only today",
			days:        []time.Time{day(2025, 5, 20, 8), day(2025, 5, 20, 9)},
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name:        "run ending yesterday is still current",
			days:        []time.Time{day(2025, 5, 17, 8), day(2025, 5, 18, 8), day(2025, 5, 19, 23)},
			wantCurrent: 3,
			wantLongest: 3,
		},
		{
			name:        "broken streak keeps longest",
			days:        []time.Time{day(2025, 5, 1, 8), day(2025, 5, 2, 8), day(2025, 5, 3, 8), day(2025, 5, 4, 8), day(2025, 5, 15, 8)},
			wantCurrent: 0,
			wantLongest: 4,
		},
		{
			name:        "unordered input",
			days:        []time.Time{day(2025, 5, 20, 7), day(2025, 5, 18, 7), day(2025, 5, 19, 7), day(2025, 5, 10, 7)},
			wantCurrent: 3,
			wantLongest: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			current, longest := ReviewStreaks(tc.days, today)
			assert.Equal(t, tc.wantCurrent, current)
			assert.Equal(t, tc.wantLongest, longest)
		})
	}
}

func TestEvaluateAchievements(t *testing.T) {
	summary := ProgressSummary{
		ProgressStats: ProgressStats{TotalReviews: 150, MatureCards: 4},
		LongestStreak: 7,
	}

	got := make(map[AchievementCode]Achievement)
	for _, a := range EvaluateAchievements(summary) {
		got[a.Code] = a
	}

	assert.Len(t, got, 6)
	assert.True(t, got[AchievementFirstReview].Unlocked)
	assert.True(t, got[AchievementReviews100].Unlocked)
	assert.Equal(t, 100.0, got[AchievementReviews100].Progress)
	assert.False(t, got[AchievementReviews1000].Unlocked)
	assert.InDelta(t, 15.0, got[AchievementReviews1000].Progress, 1e-9)
	assert.InDelta(t, 40.0, got[AchievementMature10].Progress, 1e-9)
	assert.True(t, got[AchievementStreakWeek].Unlocked)
	assert.False(t, got[AchievementStreakMonth].Unlocked)
}

func TestProgressStatsAccuracy(t *testing.T) {
	assert.Zero(t, ProgressStats{}.Accuracy())
	assert.InDelta(t, 75.0, ProgressStats{TotalReviews: 8, CorrectReviews: 6}.Accuracy(), 1e-9)
}
