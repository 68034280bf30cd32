package telegram

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling turns handler failures into a reply. Known domain errors
// get their own message; anything else is logged and reported generically.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) (err error) {
		defer func() {
			if r := recover(); r != nil {
				h.logger.Error("handler panic",
					zap.Int64("chat_id", chatID),
					zap.String("panic", fmt.Sprint(r)),
				)
				h.sendError(chatID, msgInternalError)
				err = nil
			}
		}()

		err = fn(ctx, chatID)
		switch {
		case err == nil:
		case errors.Is(err, context.Canceled):
		case errors.Is(err, entities.ErrNoCardsDue):
			h.sendError(chatID, msgNoCardsDue)
		case errors.Is(err, entities.ErrFlashcardNotFound):
			h.sendError(chatID, msgCardNotFound)
		default:
			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, msgInternalError)
		}
		return nil
	}
}
