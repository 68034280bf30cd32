package httpapi

import (
	"context"

	"github.com/google/uuid"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
	"github.com/aliskhannn/flashcards/internal/service"
)

type ReviewService interface {
	Rate(ctx context.Context, userID int64, flashcardID uuid.UUID, quality int) (*service.RateResult, error)
	NextDue(ctx context.Context, userID int64) (*entities.Flashcard, error)
	CountDue(ctx context.Context, userID int64) (int, error)
}

type FlashcardService interface {
	Create(ctx context.Context, in service.FlashcardInput) (*entities.Flashcard, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.Flashcard, error)
	Update(ctx context.Context, id uuid.UUID, in service.FlashcardInput) (*entities.Flashcard, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*entities.Flashcard, error)
	CreateDeck(ctx context.Context, in service.DeckInput) (*entities.Deck, error)
	ListDecks(ctx context.Context, ownerID int64) ([]*entities.Deck, error)
	DeleteDeck(ctx context.Context, id uuid.UUID) error
}

type ProgressService interface {
	Summary(ctx context.Context, userID int64) (*entities.ProgressSummary, error)
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type UserService interface {
	EnsureUser(ctx context.Context, user *entities.User) error
	Get(ctx context.Context, userID int64) (*entities.User, error)
}

type ResetService interface {
	ResetUser(ctx context.Context, userID int64) error
}
