package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestViolatesForeignKey(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "flashcards_owner_id_fkey"}

	assert.True(t, violatesForeignKey(fmt.Errorf("create flashcard: %w", fk), ""))
	assert.True(t, violatesForeignKey(fk, "flashcards_owner_id_fkey"))
	assert.False(t, violatesForeignKey(fk, "flashcards_deck_id_fkey"))
	assert.False(t, violatesForeignKey(&pgconn.PgError{Code: "23505"}, ""))
	assert.False(t, violatesForeignKey(errors.New("boom"), ""))
}
