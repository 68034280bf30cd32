package telegram

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
	"github.com/aliskhannn/flashcards/internal/service"
)

func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newMessage(chatID, md(msgWelcome)))
	}
}

func (h *Handler) handleHelp() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newPlainMessage(chatID, msgHelp))
	}
}

func (h *Handler) handleUnknown() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}

// handleReview shows the front of the next due card.
func (h *Handler) handleReview(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.sendNextCard(ctx, chatID, userID)
	}
}

func (h *Handler) sendNextCard(ctx context.Context, chatID, userID int64) error {
	card, err := h.reviewService.NextDue(ctx, userID)
	if errors.Is(err, entities.ErrNoCardsDue) {
		msg := newMessage(chatID, md(msgNoCardsDue))
		msg.ReplyMarkup = buildDoneKeyboard()
		return h.send(msg)
	}
	if err != nil {
		return err
	}

	msg := newMessage(chatID, renderFront(card))
	msg.ReplyMarkup = buildShowAnswerKeyboard(card.ID)
	return h.send(msg)
}

// handleAdd creates a card from "/add front | back".
func (h *Handler) handleAdd(userID int64, args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		front, back, ok := strings.Cut(args, "|")
		front, back = strings.TrimSpace(front), strings.TrimSpace(back)
		if !ok || front == "" || back == "" {
			return h.send(newPlainMessage(chatID, msgAddUsage))
		}

		card, err := h.flashcardService.Create(ctx, service.FlashcardInput{
			OwnerID: userID,
			Front:   front,
			Back:    back,
		})
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return h.send(newPlainMessage(chatID, msgAddTooLong))
		}
		if err != nil {
			return err
		}

		text := bold("✅ Cartão criado") + "\n\n" + md(card.Front) + "\n" + md("— "+card.Back)
		return h.send(newMessage(chatID, text))
	}
}
