package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
)

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserRepository interface {
	Save(ctx context.Context, user *entities.User) (bool, error)
	GetByID(ctx context.Context, userID int64) (*entities.User, error)
	Deactivate(ctx context.Context, userID int64) error
}

type FlashcardRepository interface {
	Create(ctx context.Context, card *entities.Flashcard) error
	Get(ctx context.Context, id uuid.UUID) (*entities.Flashcard, error)
	Update(ctx context.Context, card *entities.Flashcard) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*entities.Flashcard, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*entities.Flashcard, error)

	CreateDeck(ctx context.Context, deck *entities.Deck) error
	GetDeck(ctx context.Context, id uuid.UUID) (*entities.Deck, error)
	ListDecks(ctx context.Context, ownerID int64) ([]*entities.Deck, error)
	DeleteDeck(ctx context.Context, id uuid.UUID) error
}

type ReviewStateRepository interface {
	Get(ctx context.Context, userID int64, flashcardID uuid.UUID) (*entities.ReviewState, error)
	Upsert(ctx context.Context, state *entities.ReviewState) error
	NextDue(ctx context.Context, userID int64, now time.Time) (*entities.Flashcard, error)
	CountDue(ctx context.Context, userID int64, now time.Time) (int, error)
	GetStats(ctx context.Context, userID int64, now time.Time) (*entities.ProgressStats, error)
}

type ReviewLogRepository interface {
	Append(ctx context.Context, log *entities.ReviewLog) error
	ReviewDays(ctx context.Context, userID int64, since time.Time) ([]time.Time, error)
}

type ReminderRepository interface {
	Get(ctx context.Context, userID int64) (*entities.ReminderSettings, error)
	Upsert(ctx context.Context, settings *entities.ReminderSettings) error
	ListTargetsBatch(ctx context.Context, now time.Time, afterUserID int64, limit int) ([]*entities.ReminderTarget, error)
	MarkSent(ctx context.Context, userID int64, sentAt time.Time) error
}

type ResetRepository interface {
	ResetUser(ctx context.Context, userID int64) error
}

// ReminderNotifier delivers reminder messages to users.
type ReminderNotifier interface {
	SendReminder(ctx context.Context, target *entities.ReminderTarget) error
}

// Clock returns the current time; tests substitute a fixed one.
type Clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}
