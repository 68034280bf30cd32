package telegram

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
	"github.com/aliskhannn/flashcards/internal/service"
)

// handleRemind shows or changes reminder settings:
// "/remind", "/remind on", "/remind off", "/remind 20", "/remind tz UTC-3".
func (h *Handler) handleRemind(userID int64, args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		fields := strings.Fields(strings.ToLower(args))

		var (
			settings *entities.ReminderSettings
			err      error
		)

		switch {
		case len(fields) == 0:
			settings, err = h.settingsService.GetOrCreate(ctx, userID)
		case len(fields) == 1 && (fields[0] == "on" || fields[0] == "off"):
			settings, err = h.settingsService.SetEnabled(ctx, userID, fields[0] == "on")
		case len(fields) == 2 && fields[0] == "tz":
			// Keep the original case; IANA names are case-sensitive.
			tz := strings.Fields(args)[1]
			settings, err = h.settingsService.SetTimezone(ctx, userID, tz)
			if errors.Is(err, entities.ErrInvalidTimezone) {
				return h.send(newPlainMessage(chatID, msgBadTimezone))
			}
		case len(fields) == 1:
			hour, convErr := strconv.Atoi(fields[0])
			if convErr != nil {
				return h.send(newPlainMessage(chatID, msgRemindUsage))
			}
			settings, err = h.settingsService.SetHour(ctx, userID, hour)
			if errors.Is(err, service.ErrInvalidReminderHour) {
				return h.send(newPlainMessage(chatID, msgRemindUsage))
			}
		default:
			return h.send(newPlainMessage(chatID, msgRemindUsage))
		}

		if err != nil {
			return err
		}
		return h.send(newPlainMessage(chatID, renderReminderSettings(settings)))
	}
}
