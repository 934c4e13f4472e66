package notify

import (
	"context"
	"fmt"
	"sync"

	"paper_trader/pkg/logger"

	tgbot "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier delivers trade-event messages. Delivery is best-effort: callers
// must never depend on it succeeding.
type Notifier interface {
	Send(msg string)
	Sendf(format string, args ...any)
}

// Telegram — passive notifier plus a single /status command.
type Telegram struct {
	bot    *tgbot.BotAPI
	chatID int64

	mu     sync.Mutex
	status func() string
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	b, err := tgbot.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Telegram{bot: b, chatID: chatID}, nil
}

// SetStatus registers the payload for /status. Wired late from main to
// avoid a notifier<->executor cycle.
func (t *Telegram) SetStatus(fn func() string) {
	t.mu.Lock()
	t.status = fn
	t.mu.Unlock()
}

func (t *Telegram) Send(msg string) {
	if t == nil || t.bot == nil || t.chatID == 0 {
		return
	}
	m := tgbot.NewMessage(t.chatID, msg)
	m.ParseMode = tgbot.ModeMarkdown
	if _, err := t.bot.Send(m); err != nil {
		logger.Error("telegram send failed: %v", err)
	}
}

func (t *Telegram) Sendf(format string, args ...any) { t.Send(fmt.Sprintf(format, args...)) }

// Start: long-polling for the /status command only.
func (t *Telegram) Start(ctx context.Context) {
	if t == nil || t.bot == nil {
		return
	}

	u := tgbot.NewUpdate(0)
	u.Timeout = 30
	u.AllowedUpdates = []string{"message"}

	updates := t.bot.GetUpdatesChan(u)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case upd := <-updates:
				if upd.Message == nil || upd.Message.Chat == nil ||
					upd.Message.Chat.ID != t.chatID || !upd.Message.IsCommand() {
					continue
				}
				if upd.Message.Command() == "status" {
					t.handleStatus()
				}
			}
		}
	}()
}

func (t *Telegram) handleStatus() {
	t.mu.Lock()
	fn := t.status
	t.mu.Unlock()
	if fn == nil {
		t.Send("status unavailable")
		return
	}
	t.Send(fn())
}

func (t *Telegram) Stop() {
	if t != nil && t.bot != nil {
		t.bot.StopReceivingUpdates()
	}
}

// Stdout logs every message locally; used when Telegram is unconfigured.
type Stdout struct{}

func NewStdout() *Stdout                           { return &Stdout{} }
func (s *Stdout) Send(msg string)                  { logger.Info("[NOTIFY] %s", msg) }
func (s *Stdout) Sendf(format string, args ...any) { s.Send(fmt.Sprintf(format, args...)) }
