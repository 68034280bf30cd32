package telegram

import (
	"context"
)

func (h *Handler) handleStats(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		summary, err := h.progressService.Summary(ctx, userID)
		if err != nil {
			return err
		}
		return h.send(newMessage(chatID, renderStats(summary)))
	}
}
