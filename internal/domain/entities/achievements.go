package entities

// AchievementCode identifies a badge.
type AchievementCode string

const (
	AchievementFirstReview AchievementCode = "first_review"
	AchievementReviews100  AchievementCode = "reviews_100"
	AchievementReviews1000 AchievementCode = "reviews_1000"
	AchievementMature10    AchievementCode = "mature_10"
	AchievementStreakWeek  AchievementCode = "streak_7"
	AchievementStreakMonth AchievementCode = "streak_30"
)

// Achievement is a badge together with how close the user is to it.
type Achievement struct {
	Code     AchievementCode
	Title    string
	Target   int
	Current  int
	Unlocked bool
	Progress float64 // 0..100
}

type achievementRule struct {
	code   AchievementCode
	title  string
	target int
	value  func(s ProgressSummary) int
}

var achievementRules = []achievementRule{
	{AchievementFirstReview, "Primeira revisão", 1, func(s ProgressSummary) int { return s.TotalReviews }},
	{AchievementReviews100, "100 revisões", 100, func(s ProgressSummary) int { return s.TotalReviews }},
	{AchievementReviews1000, "1000 revisões", 1000, func(s ProgressSummary) int { return s.TotalReviews }},
	{AchievementMature10, "10 cartões maduros", 10, func(s ProgressSummary) int { return s.MatureCards }},
	{AchievementStreakWeek, "7 dias seguidos", 7, func(s ProgressSummary) int { return s.LongestStreak }},
	{AchievementStreakMonth, "30 dias seguidos", 30, func(s ProgressSummary) int { return s.LongestStreak }},
}

// EvaluateAchievements derives every badge from the summary counters.
func EvaluateAchievements(s ProgressSummary) []Achievement {
	out := make([]Achievement, 0, len(achievementRules))
	for _, rule := range achievementRules {
		current := rule.value(s)
		progress := float64(min(current, rule.target)) / float64(rule.target) * 100
		out = append(out, Achievement{
			Code:     rule.code,
			Title:    rule.title,
			Target:   rule.target,
			Current:  current,
			Unlocked: current >= rule.target,
			Progress: progress,
		})
	}
	return out
}
