package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"task-manager-bot/internal/chat"
)

// Bot bridges Telegram private chats to the chat interpreter. Every message
// is handled statelessly: the same command language as the WhatsApp channel,
// one reply per message, no conversation state.
type Bot struct {
	api         *tgbotapi.BotAPI
	interpreter *chat.Interpreter
	logger      *zap.Logger
}

func New(token string, interpreter *chat.Interpreter, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	logger.Info("telegram bot authorized", zap.String("account", api.Self.UserName))

	return &Bot{
		api:         api,
		interpreter: interpreter,
		logger:      logger,
	}, nil
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	b.logger.Info("telegram polling started")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		if update.Message == nil {
			continue
		}
		msg := update.Message
		if msg.Chat == nil || !msg.Chat.IsPrivate() || msg.Text == "" {
			continue
		}
		if err := b.handleMessage(ctx, msg); err != nil {
			b.logger.Error("handle message", zap.Int64("chat", msg.Chat.ID), zap.Error(err))
		}
	}

	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	reply := b.interpreter.HandleMessage(ctx, normalize(msg.Text))
	return b.sendText(msg.Chat.ID, reply)
}

// normalize maps Telegram command syntax onto the shared command language.
func normalize(text string) string {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "/start", "/help":
		return "help"
	}
	return strings.TrimPrefix(text, "/")
}

// SendText pushes one message to a chat; the digest job uses this too.
func (b *Bot) SendText(chatID int64, text string) error {
	return b.sendText(chatID, text)
}

func (b *Bot) sendText(chatID int64, text string) error {
	_, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
