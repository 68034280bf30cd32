package telegram

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
	"github.com/aliskhannn/flashcards/internal/service"
)

const dateLayout = "02/01/2006"

func renderFront(card *entities.Flashcard) string {
	return bold("❓ Pergunta") + "\n\n" + md(card.Front)
}

func renderBack(card *entities.Flashcard) string {
	return renderFront(card) + "\n\n" + bold("💡 Resposta") + "\n\n" + md(card.Back)
}

// renderRated replaces the rating keyboard once a card is rated.
func renderRated(card *entities.Flashcard, res *service.RateResult) string {
	return renderBack(card) + "\n\n" + md(formatNextReview(res))
}

func formatNextReview(res *service.RateResult) string {
	days := "dia"
	if res.IntervalDays != 1 {
		days = "dias"
	}
	return fmt.Sprintf("⏭ Próxima revisão em %d %s (%s)", res.IntervalDays, days, res.DueDate.Format(dateLayout))
}

func renderStats(s *entities.ProgressSummary) string {
	var sb strings.Builder

	sb.WriteString(bold("📊 Seu progresso"))
	sb.WriteString("\n\n")
	sb.WriteString(md(buildProgressBar(s.MatureCards, s.TotalCards, 20)))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("🗂 Cartões: %d", s.TotalCards)) + "\n")
	sb.WriteString(md(fmt.Sprintf("🆕 Novos: %d", s.NewCards)) + "\n")
	sb.WriteString(md(fmt.Sprintf("📖 Aprendendo: %d", s.LearningCards)) + "\n")
	sb.WriteString(md(fmt.Sprintf("🌳 Maduros: %d", s.MatureCards)) + "\n")
	sb.WriteString(md(fmt.Sprintf("⏰ Para hoje: %d", s.DueToday)) + "\n\n")
	sb.WriteString(md(fmt.Sprintf("🎯 Acertos: %.1f%% de %d revisões", s.AccuracyPercent, s.TotalReviews)) + "\n")
	sb.WriteString(md(fmt.Sprintf("🔥 Sequência: %d (recorde %d)", s.CurrentStreak, s.LongestStreak)))

	if len(s.Achievements) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(bold("🏆 Conquistas"))
		for _, a := range s.Achievements {
			sb.WriteString("\n")
			sb.WriteString(md(formatAchievement(a)))
		}
	}

	return sb.String()
}

func formatAchievement(a entities.Achievement) string {
	if a.Unlocked {
		return "✅ " + a.Title
	}
	return fmt.Sprintf("🔒 %s (%d/%d)", a.Title, min(a.Current, a.Target), a.Target)
}

func renderReminderSettings(r *entities.ReminderSettings) string {
	status := "desligados"
	if r.IsEnabled {
		status = "ligados"
	}
	return fmt.Sprintf("🔔 Lembretes %s\n⏰ Horário: %02d:00 (%s)\n\n%s", status, r.Hour, r.Timezone, msgRemindUsage)
}

func renderReminder(target *entities.ReminderTarget) string {
	if target.DueCount == 1 {
		return "📚 Você tem 1 cartão para revisar hoje."
	}
	return fmt.Sprintf("📚 Você tem %d cartões para revisar hoje.", target.DueCount)
}

// buildProgressBar creates ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total == 0 {
		return "[" + strings.Repeat("░", length) + "]"
	}

	filled := int(float64(current) / float64(total) * float64(length))
	if filled > length {
		filled = length
	}

	empty := length - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}
