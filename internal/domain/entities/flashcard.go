package entities

import (
	"time"

	"github.com/google/uuid"
)

// Deck groups flashcards owned by one user.
type Deck struct {
	ID        uuid.UUID
	OwnerID   int64
	Title     string
	CreatedAt time.Time
}

// Flashcard is a single front/back pair.
type Flashcard struct {
	ID        uuid.UUID
	OwnerID   int64
	DeckID    *uuid.UUID // nil for cards outside any deck
	Front     string
	Back      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewDeck(ownerID int64, title string, now time.Time) *Deck {
	return &Deck{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     title,
		CreatedAt: now,
	}
}

func NewFlashcard(ownerID int64, deckID *uuid.UUID, front, back string, now time.Time) *Flashcard {
	return &Flashcard{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		DeckID:    deckID,
		Front:     front,
		Back:      back,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
