package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/aliskhannn/flashcards/internal/srs"
)

// ratingButton maps a button label to the quality it submits.
type ratingButton struct {
	label   string
	quality srs.Quality
}

var ratingButtons = []ratingButton{
	{"❌ Errei", srs.QualityBlackout},
	{"😓 Difícil", srs.QualityHard},
	{"🙂 Médio", srs.QualityGood},
	{"😎 Fácil", srs.QualityPerfect},
}

// buildShowAnswerKeyboard is attached to the front of a card.
func buildShowAnswerKeyboard(id uuid.UUID) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👀 Mostrar resposta", buildShowCallback(id)),
		),
	)
}

// buildRatingKeyboard offers the four ratings once the answer is visible.
func buildRatingKeyboard(id uuid.UUID) tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(ratingButtons))
	for _, b := range ratingButtons {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(b.label, buildRateCallback(id, int(b.quality))))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

// buildReminderKeyboard is attached to reminder notifications.
func buildReminderKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📚 Revisar agora", buildReviewCallback()),
		),
	)
}

// buildDoneKeyboard is shown when nothing is left to review.
func buildDoneKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Meu progresso", buildStatsCallback()),
		),
	)
}
