package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
)

type UserService struct {
	repository UserRepository
	reminders  ReminderRepository
	logger     *zap.Logger
}

func NewUserService(repository UserRepository, reminders ReminderRepository, logger *zap.Logger) *UserService {
	return &UserService{repository: repository, reminders: reminders, logger: logger}
}

// EnsureUser stores the user profile and gives new users default reminder settings.
func (s *UserService) EnsureUser(ctx context.Context, user *entities.User) error {
	created, err := s.repository.Save(ctx, user)
	if err != nil {
		return err
	}
	if !created {
		return nil
	}

	s.logger.Info("new user registered", zap.Int64("user_id", user.ID))

	_, err = s.reminders.Get(ctx, user.ID)
	if errors.Is(err, entities.ErrReminderNotFound) {
		return s.reminders.Upsert(ctx, entities.NewReminderSettings(user.ID))
	}
	return err
}

func (s *UserService) Get(ctx context.Context, userID int64) (*entities.User, error) {
	return s.repository.GetByID(ctx, userID)
}

// Deactivate stops reminders for a user who blocked the bot.
func (s *UserService) Deactivate(ctx context.Context, userID int64) error {
	return s.repository.Deactivate(ctx, userID)
}
