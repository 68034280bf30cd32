package service

import (
	"context"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
)

// streakWindowDays bounds how far back review days are loaded for streaks.
const streakWindowDays = 400

type ProgressService struct {
	states ReviewStateRepository
	logs   ReviewLogRepository
	now    Clock
}

func NewProgressService(states ReviewStateRepository, logs ReviewLogRepository) *ProgressService {
	return &ProgressService{states: states, logs: logs, now: utcNow}
}

func (s *ProgressService) WithClock(now Clock) *ProgressService {
	s.now = now
	return s
}

// Summary collects card counters, accuracy, streaks and achievements.
func (s *ProgressService) Summary(ctx context.Context, userID int64) (*entities.ProgressSummary, error) {
	now := s.now()

	stats, err := s.states.GetStats(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	days, err := s.logs.ReviewDays(ctx, userID, now.AddDate(0, 0, -streakWindowDays))
	if err != nil {
		return nil, err
	}

	summary := &entities.ProgressSummary{
		ProgressStats:   *stats,
		AccuracyPercent: stats.Accuracy(),
	}
	summary.CurrentStreak, summary.LongestStreak = entities.ReviewStreaks(days, now)
	summary.Achievements = entities.EvaluateAchievements(*summary)

	return summary, nil
}
