package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
	"github.com/aliskhannn/flashcards/internal/storage"
)

type Handler struct {
	bot              Bot
	logger           *zap.Logger
	userService      UserService
	reviewService    ReviewService
	flashcardService FlashcardService
	progressService  ProgressService
	settingsService  SettingsService
	reminders        *storage.ReminderMessages
}

func NewHandler(
	bot Bot,
	logger *zap.Logger,
	userService UserService,
	reviewService ReviewService,
	flashcardService FlashcardService,
	progressService ProgressService,
	settingsService SettingsService,
) *Handler {
	return &Handler{
		bot:              bot,
		logger:           logger,
		userService:      userService,
		reviewService:    reviewService,
		flashcardService: flashcardService,
		progressService:  progressService,
		settingsService:  settingsService,
		reminders:        storage.NewReminderMessages(),
	}
}

// Commands is the command menu registered with Telegram on start.
func Commands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: "start", Description: "Começar"},
		{Command: "review", Description: "Revisar cartões pendentes"},
		{Command: "add", Description: "Criar cartão: /add frente | verso"},
		{Command: "stats", Description: "Progresso e conquistas"},
		{Command: "remind", Description: "Lembretes: /remind on|off|hora"},
		{Command: "help", Description: "Ajuda"},
	}
}

// Run polls updates until ctx is cancelled.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	from := update.Message.From
	chatID := update.Message.Chat.ID

	user := entities.NewUser(from.ID, chatID)
	user.FirstName = from.FirstName
	user.LastName = from.LastName
	user.Username = from.UserName
	user.LanguageCode = from.LanguageCode
	if err := h.userService.EnsureUser(ctx, user); err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}

	if !update.Message.IsCommand() {
		_ = h.send(newMessage(chatID, md(msgUseCommands)))
		return
	}

	args := update.Message.CommandArguments()

	var fn HandlerFunc
	switch update.Message.Command() {
	case "start":
		fn = h.handleStart()
	case "help":
		fn = h.handleHelp()
	case "review":
		fn = h.handleReview(from.ID)
	case "add":
		fn = h.handleAdd(from.ID, args)
	case "stats":
		fn = h.handleStats(from.ID)
	case "remind":
		fn = h.handleRemind(from.ID, args)
	default:
		fn = h.handleUnknown()
	}

	_ = h.withErrorHandling(fn)(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message", zap.Error(err))
		return err
	}
	return nil
}
