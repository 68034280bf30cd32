package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
)

var ErrInvalidReminderHour = errors.New("reminder hour must be between 0 and 23")

// SettingsService manages reminder preferences.
type SettingsService struct {
	repository ReminderRepository
	now        Clock
}

func NewSettingsService(repository ReminderRepository) *SettingsService {
	return &SettingsService{repository: repository, now: utcNow}
}

func (s *SettingsService) GetOrCreate(ctx context.Context, userID int64) (*entities.ReminderSettings, error) {
	settings, err := s.repository.Get(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, entities.ErrReminderNotFound) {
		return nil, err
	}

	settings = entities.NewReminderSettings(userID)
	if err := s.repository.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *SettingsService) SetEnabled(ctx context.Context, userID int64, enabled bool) (*entities.ReminderSettings, error) {
	return s.update(ctx, userID, func(r *entities.ReminderSettings) error {
		r.IsEnabled = enabled
		return nil
	})
}

func (s *SettingsService) SetHour(ctx context.Context, userID int64, hour int) (*entities.ReminderSettings, error) {
	return s.update(ctx, userID, func(r *entities.ReminderSettings) error {
		if hour < 0 || hour > 23 {
			return fmt.Errorf("%w: got %d", ErrInvalidReminderHour, hour)
		}
		r.Hour = hour
		r.IsEnabled = true
		return nil
	})
}

func (s *SettingsService) SetTimezone(ctx context.Context, userID int64, tz string) (*entities.ReminderSettings, error) {
	return s.update(ctx, userID, func(r *entities.ReminderSettings) error {
		loc, err := entities.ParseTimezone(tz)
		if err != nil {
			return err
		}
		r.Timezone = loc.String()
		return nil
	})
}

func (s *SettingsService) update(
	ctx context.Context,
	userID int64,
	apply func(r *entities.ReminderSettings) error,
) (*entities.ReminderSettings, error) {
	settings, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := apply(settings); err != nil {
		return nil, err
	}

	settings.UpdatedAt = s.now()
	if err := s.repository.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
