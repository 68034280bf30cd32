package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
	"github.com/aliskhannn/flashcards/internal/service"
)

// Bot is the part of *tgbotapi.BotAPI the handler uses.
type Bot interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type UserService interface {
	EnsureUser(ctx context.Context, user *entities.User) error
	Deactivate(ctx context.Context, userID int64) error
}

type ReviewService interface {
	Rate(ctx context.Context, userID int64, flashcardID uuid.UUID, quality int) (*service.RateResult, error)
	NextDue(ctx context.Context, userID int64) (*entities.Flashcard, error)
	CountDue(ctx context.Context, userID int64) (int, error)
}

type FlashcardService interface {
	Create(ctx context.Context, in service.FlashcardInput) (*entities.Flashcard, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.Flashcard, error)
}

type ProgressService interface {
	Summary(ctx context.Context, userID int64) (*entities.ProgressSummary, error)
}

type SettingsService interface {
	GetOrCreate(ctx context.Context, userID int64) (*entities.ReminderSettings, error)
	SetEnabled(ctx context.Context, userID int64, enabled bool) (*entities.ReminderSettings, error)
	SetHour(ctx context.Context, userID int64, hour int) (*entities.ReminderSettings, error)
	SetTimezone(ctx context.Context, userID int64, tz string) (*entities.ReminderSettings, error)
}
