package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
	"github.com/aliskhannn/flashcards/internal/infra/postgres"
)

// ReminderRepository provides access to reminder settings.
type ReminderRepository struct {
	db postgres.DBTX
}

func NewReminderRepository(db postgres.DBTX) *ReminderRepository {
	return &ReminderRepository{db: db}
}

func (r *ReminderRepository) Get(ctx context.Context, userID int64) (*entities.ReminderSettings, error) {
	query := `
		SELECT user_id, is_enabled, hour, timezone, last_sent_at, updated_at
		FROM reminder_settings
		WHERE user_id = $1
	`

	var s entities.ReminderSettings
	var lastSent pgtype.Timestamptz
	err := postgres.Executor(ctx, r.db).QueryRow(ctx, query, userID).Scan(
		&s.UserID,
		&s.IsEnabled,
		&s.Hour,
		&s.Timezone,
		&lastSent,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrReminderNotFound
		}
		return nil, fmt.Errorf("get reminder settings: %w", err)
	}

	if lastSent.Valid {
		t := lastSent.Time
		s.LastSentAt = &t
	}
	return &s, nil
}

func (r *ReminderRepository) Upsert(ctx context.Context, s *entities.ReminderSettings) error {
	query := `
		INSERT INTO reminder_settings (user_id, is_enabled, hour, timezone, last_sent_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			is_enabled = EXCLUDED.is_enabled,
			hour = EXCLUDED.hour,
			timezone = EXCLUDED.timezone,
			updated_at = EXCLUDED.updated_at
	`

	_, err := postgres.Executor(ctx, r.db).Exec(ctx, query,
		s.UserID, s.IsEnabled, s.Hour, s.Timezone, s.LastSentAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert reminder settings: %w", err)
	}
	return nil
}

// ListTargetsBatch returns enabled reminders of active users together with
// their due-card count, paged by user id.
func (r *ReminderRepository) ListTargetsBatch(ctx context.Context, now time.Time, afterUserID int64, limit int) ([]*entities.ReminderTarget, error) {
	query := `
		SELECT rs.user_id, rs.is_enabled, rs.hour, rs.timezone, rs.last_sent_at, rs.updated_at,
		       u.chat_id,
		       (SELECT COUNT(*)
		          FROM flashcards f
		          LEFT JOIN review_states st ON st.flashcard_id = f.id AND st.user_id = rs.user_id
		         WHERE f.owner_id = rs.user_id
		           AND (st.due_date IS NULL OR st.due_date <= $1)) AS due_count
		FROM reminder_settings rs
		JOIN users u ON u.id = rs.user_id
		WHERE rs.is_enabled AND u.is_active AND rs.user_id > $2
		ORDER BY rs.user_id
		LIMIT $3
	`

	rows, err := postgres.Executor(ctx, r.db).Query(ctx, query, now, afterUserID, limit)
	if err != nil {
		return nil, fmt.Errorf("list reminder targets: %w", err)
	}
	defer rows.Close()

	var targets []*entities.ReminderTarget
	for rows.Next() {
		t := new(entities.ReminderTarget)
		var lastSent pgtype.Timestamptz
		if err := rows.Scan(
			&t.UserID,
			&t.IsEnabled,
			&t.Hour,
			&t.Timezone,
			&lastSent,
			&t.UpdatedAt,
			&t.ChatID,
			&t.DueCount,
		); err != nil {
			return nil, fmt.Errorf("scan reminder target: %w", err)
		}
		if lastSent.Valid {
			ts := lastSent.Time
			t.LastSentAt = &ts
		}
		targets = append(targets, t)
	}
	return targets, rows.Err()
}

func (r *ReminderRepository) MarkSent(ctx context.Context, userID int64, sentAt time.Time) error {
	_, err := postgres.Executor(ctx, r.db).Exec(ctx,
		"UPDATE reminder_settings SET last_sent_at = $2 WHERE user_id = $1", userID, sentAt)
	if err != nil {
		return fmt.Errorf("mark reminder sent: %w", err)
	}
	return nil
}
