package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/flashcards/internal/config"
	"github.com/aliskhannn/flashcards/internal/delivery/httpapi"
	"github.com/aliskhannn/flashcards/internal/delivery/telegram"
	"github.com/aliskhannn/flashcards/internal/infra/postgres"
	"github.com/aliskhannn/flashcards/internal/infra/postgres/repository"
	"github.com/aliskhannn/flashcards/internal/logger"
	"github.com/aliskhannn/flashcards/internal/service"
	"github.com/aliskhannn/flashcards/internal/srs"
	"github.com/aliskhannn/flashcards/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	if err := run(cfg, lg); err != nil {
		lg.Fatal("application stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler, err := srs.NewScheduler(cfg.SRS.Params())
	if err != nil {
		return err
	}

	dsn, err := cfg.DB.DSN()
	if err != nil {
		return err
	}
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		return err
	}

	// Initialize repositories and services.
	tr := postgres.NewTransactor(pool)
	userRepo := repository.NewUserRepository(pool)
	flashcardRepo := repository.NewFlashcardRepository(pool)
	stateRepo := repository.NewReviewStateRepository(pool)
	logRepo := repository.NewReviewLogRepository(pool)
	reminderRepo := repository.NewReminderRepository(pool)
	resetRepo := repository.NewResetRepository(pool)

	validate := validation.New()

	userService := service.NewUserService(userRepo, reminderRepo, lg)
	reviewService := service.NewReviewService(tr, flashcardRepo, stateRepo, logRepo, scheduler, lg)
	flashcardService := service.NewFlashcardService(flashcardRepo, validate.Engine)
	progressService := service.NewProgressService(stateRepo, logRepo)
	settingsService := service.NewSettingsService(reminderRepo)
	resetService := service.NewResetService(tr, resetRepo, lg)
	reminderService := service.NewReminderService(reminderRepo, lg, cfg.Reminders.Spec)

	server := httpapi.NewServer(&httpapi.Options{
		Address:        cfg.HTTP.Address,
		DisableReqLogs: !cfg.HTTP.RequestLogs,
		Logger:         lg,
		Validator:      validate,
		Reviews:        reviewService,
		Flashcards:     flashcardService,
		Progress:       progressService,
		Users:          userService,
		Reset:          resetService,
		DB:             pool,
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return server.Stop(shutdownCtx)
	})

	if cfg.TelegramAPIToken == "" {
		lg.Warn("TELEGRAM_API_TOKEN is empty, telegram bot and reminders are disabled")
	} else {
		bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
		if err != nil {
			return err
		}
		bot.Debug = cfg.Env != "production"
		lg.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

		if _, err := bot.Request(tgbotapi.NewSetMyCommands(telegram.Commands()...)); err != nil {
			lg.Warn("failed to set bot commands", zap.Error(err))
		}

		handler := telegram.NewHandler(
			bot,
			lg,
			userService,
			reviewService,
			flashcardService,
			progressService,
			settingsService,
		)
		g.Go(func() error { return handler.Run(gctx) })

		if cfg.Reminders.Enabled {
			reminderService.SetNotifier(handler)
			g.Go(func() error { return reminderService.Start(gctx) })
		}
	}

	err = g.Wait()
	lg.Info("shutdown complete")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
