package service

import (
	"context"

	"go.uber.org/zap"
)

type ResetService struct {
	tr         Transactor
	repository ResetRepository
	logger     *zap.Logger
}

func NewResetService(tr Transactor, repository ResetRepository, logger *zap.Logger) *ResetService {
	return &ResetService{tr: tr, repository: repository, logger: logger}
}

// ResetUser forgets all ratings of the user; every card becomes new again.
func (s *ResetService) ResetUser(ctx context.Context, userID int64) error {
	err := s.tr.WithinTx(ctx, func(ctx context.Context) error {
		return s.repository.ResetUser(ctx, userID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("user progress reset", zap.Int64("user_id", userID))
	return nil
}
