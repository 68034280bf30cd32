package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
	"github.com/aliskhannn/flashcards/internal/infra/postgres"
)

const flashcardColumns = `id, owner_id, deck_id, front, back, created_at, updated_at`

// FlashcardRepository stores flashcards and decks.
type FlashcardRepository struct {
	db postgres.DBTX
}

func NewFlashcardRepository(db postgres.DBTX) *FlashcardRepository {
	return &FlashcardRepository{db: db}
}

func (r *FlashcardRepository) Create(ctx context.Context, card *entities.Flashcard) error {
	query := `
		INSERT INTO flashcards (` + flashcardColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := postgres.Executor(ctx, r.db).Exec(ctx, query,
		card.ID,
		card.OwnerID,
		card.DeckID,
		card.Front,
		card.Back,
		card.CreatedAt,
		card.UpdatedAt,
	)
	if err != nil {
		switch {
		case violatesForeignKey(err, "flashcards_owner_id_fkey"):
			return entities.ErrUserNotFound
		case violatesForeignKey(err, "flashcards_deck_id_fkey"):
			return entities.ErrDeckNotFound
		}
		return fmt.Errorf("create flashcard: %w", err)
	}
	return nil
}

func (r *FlashcardRepository) Get(ctx context.Context, id uuid.UUID) (*entities.Flashcard, error) {
	query := `SELECT ` + flashcardColumns + ` FROM flashcards WHERE id = $1`

	card, err := scanFlashcard(postgres.Executor(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrFlashcardNotFound
		}
		return nil, fmt.Errorf("get flashcard: %w", err)
	}
	return card, nil
}

func (r *FlashcardRepository) Update(ctx context.Context, card *entities.Flashcard) error {
	query := `
		UPDATE flashcards
		SET front = $2, back = $3, deck_id = $4, updated_at = $5
		WHERE id = $1
	`

	tag, err := postgres.Executor(ctx, r.db).Exec(ctx, query,
		card.ID, card.Front, card.Back, card.DeckID, card.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update flashcard: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrFlashcardNotFound
	}
	return nil
}

// Delete removes the card; review state and logs go with it through ON DELETE CASCADE.
func (r *FlashcardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Executor(ctx, r.db).Exec(ctx, "DELETE FROM flashcards WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete flashcard: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrFlashcardNotFound
	}
	return nil
}

func (r *FlashcardRepository) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*entities.Flashcard, error) {
	query := `SELECT ` + flashcardColumns + ` FROM flashcards WHERE deck_id = $1 ORDER BY created_at`
	return r.list(ctx, query, deckID)
}

func (r *FlashcardRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*entities.Flashcard, error) {
	query := `SELECT ` + flashcardColumns + ` FROM flashcards WHERE owner_id = $1 ORDER BY created_at`
	return r.list(ctx, query, ownerID)
}

func (r *FlashcardRepository) list(ctx context.Context, query string, arg any) ([]*entities.Flashcard, error) {
	rows, err := postgres.Executor(ctx, r.db).Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	defer rows.Close()

	var cards []*entities.Flashcard
	for rows.Next() {
		card, err := scanFlashcard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan flashcard: %w", err)
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

func (r *FlashcardRepository) CreateDeck(ctx context.Context, deck *entities.Deck) error {
	_, err := postgres.Executor(ctx, r.db).Exec(ctx,
		"INSERT INTO decks (id, owner_id, title, created_at) VALUES ($1, $2, $3, $4)",
		deck.ID, deck.OwnerID, deck.Title, deck.CreatedAt)
	if violatesForeignKey(err, "decks_owner_id_fkey") {
		return entities.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("create deck: %w", err)
	}
	return nil
}

func (r *FlashcardRepository) GetDeck(ctx context.Context, id uuid.UUID) (*entities.Deck, error) {
	var deck entities.Deck
	err := postgres.Executor(ctx, r.db).
		QueryRow(ctx, "SELECT id, owner_id, title, created_at FROM decks WHERE id = $1", id).
		Scan(&deck.ID, &deck.OwnerID, &deck.Title, &deck.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDeckNotFound
		}
		return nil, fmt.Errorf("get deck: %w", err)
	}
	return &deck, nil
}

func (r *FlashcardRepository) ListDecks(ctx context.Context, ownerID int64) ([]*entities.Deck, error) {
	rows, err := postgres.Executor(ctx, r.db).Query(ctx,
		"SELECT id, owner_id, title, created_at FROM decks WHERE owner_id = $1 ORDER BY created_at", ownerID)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	defer rows.Close()

	var decks []*entities.Deck
	for rows.Next() {
		d := new(entities.Deck)
		if err := rows.Scan(&d.ID, &d.OwnerID, &d.Title, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan deck: %w", err)
		}
		decks = append(decks, d)
	}
	return decks, rows.Err()
}

func (r *FlashcardRepository) DeleteDeck(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Executor(ctx, r.db).Exec(ctx, "DELETE FROM decks WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrDeckNotFound
	}
	return nil
}

func scanFlashcard(row pgx.Row) (*entities.Flashcard, error) {
	var card entities.Flashcard
	if err := row.Scan(
		&card.ID,
		&card.OwnerID,
		&card.DeckID,
		&card.Front,
		&card.Back,
		&card.CreatedAt,
		&card.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &card, nil
}
