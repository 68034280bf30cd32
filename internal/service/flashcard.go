package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
)

// FlashcardInput carries the editable fields of a flashcard.
type FlashcardInput struct {
	OwnerID int64 `validate:"required,gt=0"`
	DeckID  *uuid.UUID
	Front   string `validate:"required,max=2000"`
	Back    string `validate:"required,max=4000"`
}

type DeckInput struct {
	OwnerID int64  `validate:"required,gt=0"`
	Title   string `validate:"required,max=200"`
}

// FlashcardService manages flashcards and decks.
type FlashcardService struct {
	repository FlashcardRepository
	validate   *validator.Validate
	now        Clock
}

func NewFlashcardService(repository FlashcardRepository, validate *validator.Validate) *FlashcardService {
	return &FlashcardService{
		repository: repository,
		validate:   validate,
		now:        utcNow,
	}
}

func (s *FlashcardService) Create(ctx context.Context, in FlashcardInput) (*entities.Flashcard, error) {
	in.Front = strings.TrimSpace(in.Front)
	in.Back = strings.TrimSpace(in.Back)
	if err := s.validate.StructCtx(ctx, in); err != nil {
		return nil, err
	}
	if err := s.checkDeck(ctx, in.OwnerID, in.DeckID); err != nil {
		return nil, err
	}

	card := entities.NewFlashcard(in.OwnerID, in.DeckID, in.Front, in.Back, s.now())
	if err := s.repository.Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *FlashcardService) Get(ctx context.Context, id uuid.UUID) (*entities.Flashcard, error) {
	return s.repository.Get(ctx, id)
}

// Update replaces the content of an existing card. The owner cannot change.
func (s *FlashcardService) Update(ctx context.Context, id uuid.UUID, in FlashcardInput) (*entities.Flashcard, error) {
	in.Front = strings.TrimSpace(in.Front)
	in.Back = strings.TrimSpace(in.Back)
	if err := s.validate.StructCtx(ctx, in); err != nil {
		return nil, err
	}

	card, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if card.OwnerID != in.OwnerID {
		return nil, entities.ErrFlashcardNotFound
	}
	if err := s.checkDeck(ctx, in.OwnerID, in.DeckID); err != nil {
		return nil, err
	}

	card.Front = in.Front
	card.Back = in.Back
	card.DeckID = in.DeckID
	card.UpdatedAt = s.now()

	if err := s.repository.Update(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *FlashcardService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repository.Delete(ctx, id)
}

func (s *FlashcardService) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*entities.Flashcard, error) {
	if _, err := s.repository.GetDeck(ctx, deckID); err != nil {
		return nil, err
	}
	return s.repository.ListByDeck(ctx, deckID)
}

func (s *FlashcardService) ListByOwner(ctx context.Context, ownerID int64) ([]*entities.Flashcard, error) {
	return s.repository.ListByOwner(ctx, ownerID)
}

func (s *FlashcardService) CreateDeck(ctx context.Context, in DeckInput) (*entities.Deck, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := s.validate.StructCtx(ctx, in); err != nil {
		return nil, err
	}

	deck := entities.NewDeck(in.OwnerID, in.Title, s.now())
	if err := s.repository.CreateDeck(ctx, deck); err != nil {
		return nil, err
	}
	return deck, nil
}

func (s *FlashcardService) ListDecks(ctx context.Context, ownerID int64) ([]*entities.Deck, error) {
	return s.repository.ListDecks(ctx, ownerID)
}

// DeleteDeck removes the deck together with its cards.
func (s *FlashcardService) DeleteDeck(ctx context.Context, id uuid.UUID) error {
	return s.repository.DeleteDeck(ctx, id)
}

func (s *FlashcardService) checkDeck(ctx context.Context, ownerID int64, deckID *uuid.UUID) error {
	if deckID == nil {
		return nil
	}
	deck, err := s.repository.GetDeck(ctx, *deckID)
	if err != nil {
		return err
	}
	if deck.OwnerID != ownerID {
		return fmt.Errorf("deck %s belongs to another user: %w", deck.ID, entities.ErrDeckNotFound)
	}
	return nil
}
