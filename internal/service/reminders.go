package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
)

// DefaultReminderSpec fires at the top of every hour; each user is matched
// against their own local hour.
const DefaultReminderSpec = "0 * * * *"

const (
	reminderBatchSize     = 100
	reminderMaxConcurrent = 10
)

// ReminderService sends "cards are due" notifications.
type ReminderService struct {
	repository ReminderRepository
	notifier   ReminderNotifier
	logger     *zap.Logger
	spec       string
	now        Clock
}

func NewReminderService(repository ReminderRepository, logger *zap.Logger, spec string) *ReminderService {
	if spec == "" {
		spec = DefaultReminderSpec
	}
	return &ReminderService{
		repository: repository,
		logger:     logger,
		spec:       spec,
		now:        utcNow,
	}
}

// SetNotifier sets the notifier (called after the delivery layer is created).
func (s *ReminderService) SetNotifier(notifier ReminderNotifier) {
	s.notifier = notifier
}

func (s *ReminderService) WithClock(now Clock) *ReminderService {
	s.now = now
	return s
}

// Start runs the cron loop until ctx is cancelled.
func (s *ReminderService) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(s.spec, func() {
		if _, err := s.SendDue(ctx); err != nil {
			s.logger.Error("failed to send reminders", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("add cron job %q: %w", s.spec, err)
	}

	c.Start()
	s.logger.Info("reminder scheduler started", zap.String("spec", s.spec))

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("reminder scheduler stopped")
	return nil
}

// SendDue walks all enabled reminders in batches and notifies users whose
// reminder is due. It returns the number of notifications sent.
func (s *ReminderService) SendDue(ctx context.Context) (int, error) {
	if s.notifier == nil {
		return 0, errors.New("reminder notifier not set")
	}

	now := s.now()
	var after int64
	total := 0

	for {
		targets, err := s.repository.ListTargetsBatch(ctx, now, after, reminderBatchSize)
		if err != nil {
			return total, fmt.Errorf("list reminder targets: %w", err)
		}
		if len(targets) == 0 {
			break
		}

		total += s.processBatch(ctx, targets, now)

		if len(targets) < reminderBatchSize {
			break
		}
		after = targets[len(targets)-1].UserID
	}

	s.logger.Info("reminders processed", zap.Int("total_sent", total))
	return total, nil
}

func (s *ReminderService) processBatch(ctx context.Context, targets []*entities.ReminderTarget, now time.Time) int {
	sem := make(chan struct{}, reminderMaxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex
	sent := 0

	for _, target := range targets {
		if !target.ShouldSend(now) {
			continue
		}

		target := target
		wg.Add(1)
		sem <- struct{}{}

		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			if err := s.notify(ctx, target, now); err != nil {
				s.logger.Error("failed to send reminder",
					zap.Int64("user_id", target.UserID),
					zap.Error(err),
				)
				return
			}

			mu.Lock()
			sent++
			mu.Unlock()
		}()
	}

	wg.Wait()
	return sent
}

func (s *ReminderService) notify(ctx context.Context, target *entities.ReminderTarget, now time.Time) error {
	if err := s.notifier.SendReminder(ctx, target); err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}
	if err := s.repository.MarkSent(ctx, target.UserID, now); err != nil {
		return fmt.Errorf("mark sent: %w", err)
	}

	s.logger.Debug("reminder sent",
		zap.Int64("user_id", target.UserID),
		zap.Int("due_count", target.DueCount),
	)
	return nil
}
