package notification

import (
	"context"
	"fmt"

	"github.com/Cod-Harsh/college-events/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const eventDateFormat = "02.01.2006 15:04"

// TelegramNotifier pushes registration activity to a configured admin chat.
// With an empty token or chat id it degrades to a no-op.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyRegistrationCreated(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*New registration*\n\n"+"Student: %s\n"+"Event: %s\n"+"Date (UTC): %s",
		user.Name, event.Title, event.EventDate.Format(eventDateFormat),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyRegistrationDecided(ctx context.Context, user *domain.User, event *domain.Event, status domain.RegistrationStatus) {
	text := fmt.Sprintf(
		"*Registration %s*\n\n"+"Student: %s\n"+"Event: %s\n"+"Date (UTC): %s",
		status, user.Name, event.Title, event.EventDate.Format(eventDateFormat),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyRegistrationExpired(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*Registration cancelled (event date passed)*\n\n"+"Student: %s\n"+"Event: %s\n"+"Date (UTC): %s",
		user.Name, event.Title, event.EventDate.Format(eventDateFormat),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no admin chat configured)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
