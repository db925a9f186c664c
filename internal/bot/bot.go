package bot

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vishureddy24/safelens/internal/analysis"
)

// Bot watches chats it has been added to and replies with a warning whenever
// a message looks like pump-and-dump promotion.
type Bot struct {
	api      *tgbotapi.BotAPI
	analyzer *analysis.Analyzer
}

func New(token string, analyzer *analysis.Analyzer) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	slog.Info("bot authorized", "username", api.Self.UserName)

	return &Bot{api: api, analyzer: analyzer}, nil
}

func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		go b.handleMessage(update.Message)
	}

	return nil
}

func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	if message.Chat.IsChannel() || message.Text == "" {
		return
	}

	if message.IsCommand() {
		b.handleCommand(message)
		return
	}

	result := b.analyzer.Analyze(message.Text)

	slog.Info("message analyzed",
		"username", message.From.UserName,
		"chat_id", message.Chat.ID,
		"is_fraud", result.IsFraud,
		"confidence", result.Confidence)

	if !result.IsFraud {
		return
	}

	warning := fmt.Sprintf("🚨 *Possible Fraud Detected!* 🚨\n\n*Reason:*\n%s\n\n"+
		"⚠️ This message appears to be part of a potential pump-and-dump scheme. "+
		"Please verify information before making any investment decisions.", result.Reason)

	reply := tgbotapi.NewMessage(message.Chat.ID, warning)
	reply.ParseMode = tgbotapi.ModeMarkdown
	reply.ReplyToMessageID = message.MessageID

	if _, err := b.api.Send(reply); err != nil {
		slog.Error("error sending warning", "error", err, "chat_id", message.Chat.ID)
	}
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	var text string

	switch message.Command() {
	case "start", "help":
		text = "I watch this chat for pump-and-dump promotion and warn when a message looks suspicious.\n" +
			"Add me to a group or forward me a message to have it scored."
	default:
		return
	}

	reply := tgbotapi.NewMessage(message.Chat.ID, text)
	if _, err := b.api.Send(reply); err != nil {
		slog.Error("error sending command reply", "error", err, "chat_id", message.Chat.ID)
	}
}
