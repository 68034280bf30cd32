package entities

import (
	"sort"
	"time"
)

// ProgressStats holds raw counters aggregated by the storage layer.
type ProgressStats struct {
	TotalCards     int
	NewCards       int // no review state yet
	LearningCards  int
	MatureCards    int
	DueToday       int
	TotalReviews   int
	CorrectReviews int
}

// Accuracy returns the share of passing ratings in percent.
func (s ProgressStats) Accuracy() float64 {
	if s.TotalReviews == 0 {
		return 0
	}
	return float64(s.CorrectReviews) / float64(s.TotalReviews) * 100
}

// ProgressSummary is what front ends render on the statistics screen.
type ProgressSummary struct {
	ProgressStats
	AccuracyPercent float64
	CurrentStreak   int
	LongestStreak   int
	Achievements    []Achievement
}

// ReviewStreaks computes the current and longest runs of consecutive days
// with at least one review. days may be unordered and contain duplicates;
// the current streak survives until the end of the day after the last review.
func ReviewStreaks(days []time.Time, today time.Time) (current, longest int) {
	if len(days) == 0 {
		return 0, 0
	}

	loc := today.Location()
	seen := make(map[time.Time]struct{}, len(days))
	unique := make([]time.Time, 0, len(days))
	for _, d := range days {
		day := truncateDay(d.In(loc))
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		unique = append(unique, day)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i].After(unique[j]) })

	run := 1
	longest = 1
	for i := 1; i < len(unique); i++ {
		if unique[i-1].AddDate(0, 0, -1).Equal(unique[i]) {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}

	todayDay := truncateDay(today)
	latest := unique[0]
	if !latest.Equal(todayDay) && !latest.Equal(todayDay.AddDate(0, 0, -1)) {
		return 0, longest
	}

	current = 1
	for i := 1; i < len(unique); i++ {
		if !unique[i-1].AddDate(0, 0, -1).Equal(unique[i]) {
			break
		}
		current++
	}

	return current, longest
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
