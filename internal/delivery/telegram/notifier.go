package telegram

import (
	"context"
	"errors"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
	"github.com/aliskhannn/flashcards/internal/storage"
)

// SendReminder tells the user that cards are waiting. The previous reminder,
// if still unanswered, is removed from the chat. Users who blocked the bot are
// deactivated so they are skipped from now on.
func (h *Handler) SendReminder(ctx context.Context, target *entities.ReminderTarget) error {
	msg := newPlainMessage(target.ChatID, renderReminder(target))
	msg.ReplyMarkup = buildReminderKeyboard()

	sent, err := h.bot.Send(msg)
	if err != nil {
		var tgErr *tgbotapi.Error
		if errors.As(err, &tgErr) && tgErr.Code == http.StatusForbidden {
			h.logger.Info("user blocked the bot, deactivating", zap.Int64("user_id", target.UserID))
			if derr := h.userService.Deactivate(ctx, target.UserID); derr != nil {
				h.logger.Error("failed to deactivate user", zap.Int64("user_id", target.UserID), zap.Error(derr))
			}
		}
		return err
	}

	prev, ok := h.reminders.Swap(target.UserID, storage.ReminderMessage{
		ChatID:    target.ChatID,
		MessageID: sent.MessageID,
		SentAt:    time.Now(),
	})
	if ok {
		if _, err := h.bot.Request(tgbotapi.NewDeleteMessage(prev.ChatID, prev.MessageID)); err != nil {
			h.logger.Debug("failed to delete previous reminder",
				zap.Int64("user_id", target.UserID),
				zap.Error(err),
			)
		}
	}
	return nil
}
