package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Remove the user's "clock".
	defer func() {
		if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			h.logger.Warn("callback answer error", zap.Error(err))
		}
	}()

	if cb.Message == nil {
		return
	}

	chatID := cb.Message.Chat.ID
	msgID := cb.Message.MessageID
	userID := cb.From.ID
	data := decodeCallback(cb.Data)

	var fn HandlerFunc
	switch data.Action {
	case actionShow:
		fn = h.handleShowCallback(data, msgID)
	case actionRate:
		fn = h.handleRateCallback(data, userID, msgID)
	case actionReview:
		h.reminders.Forget(userID)
		fn = h.handleReview(userID)
	case actionStats:
		fn = h.handleStats(userID)
	default:
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
		return
	}

	_ = h.withErrorHandling(fn)(ctx, chatID)
}

// handleShowCallback reveals the back of the card and offers the ratings.
func (h *Handler) handleShowCallback(data callbackData, msgID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		id, err := data.flashcardID()
		if err != nil {
			return err
		}

		card, err := h.flashcardService.Get(ctx, id)
		if errors.Is(err, entities.ErrFlashcardNotFound) {
			return h.send(tgbotapi.NewEditMessageText(chatID, msgID, msgCardNotFound))
		}
		if err != nil {
			return err
		}

		edit := newEdit(chatID, msgID, renderBack(card))
		kb := buildRatingKeyboard(card.ID)
		edit.ReplyMarkup = &kb
		return h.send(edit)
	}
}

// handleRateCallback records the rating and moves on to the next card.
func (h *Handler) handleRateCallback(data callbackData, userID int64, msgID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		id, quality, err := data.rating()
		if err != nil {
			return err
		}

		card, err := h.flashcardService.Get(ctx, id)
		if errors.Is(err, entities.ErrFlashcardNotFound) {
			return h.send(tgbotapi.NewEditMessageText(chatID, msgID, msgCardNotFound))
		}
		if err != nil {
			return err
		}

		res, err := h.reviewService.Rate(ctx, userID, id, quality)
		if err != nil {
			return err
		}

		if err := h.send(newEdit(chatID, msgID, renderRated(card, res))); err != nil {
			return err
		}
		return h.sendNextCard(ctx, chatID, userID)
	}
}
