package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"opsboard/internal/model"
	"opsboard/internal/service"
)

type locationLister interface {
	ListAll(ctx context.Context) ([]model.Location, error)
}

// TelegramNotifier pushes daily digests to each location's Telegram channel.
type TelegramNotifier struct {
	api       *tgbotapi.BotAPI
	locations locationLister
	digestSvc *service.DigestService
}

func NewTelegramNotifier(token string, locations locationLister, digestSvc *service.DigestService) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Printf("[info] notifier authorized on account %s", api.Self.UserName)

	return &TelegramNotifier{api: api, locations: locations, digestSvc: digestSvc}, nil
}

// SendDailyDigests sends a digest to every location with a configured chat.
// Failures for one location are logged and do not block the rest.
func (n *TelegramNotifier) SendDailyDigests(ctx context.Context, now time.Time) error {
	locations, err := n.locations.ListAll(ctx)
	if err != nil {
		return err
	}
	for _, loc := range locations {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if loc.TelegramChatID == 0 {
			continue
		}
		text, err := n.digestSvc.DailyDigest(ctx, loc.ID, loc.Name, now)
		if err != nil {
			log.Printf("build digest for location %d: %v", loc.ID, err)
			continue
		}
		if err := n.sendText(loc.TelegramChatID, text); err != nil {
			log.Printf("send digest to chat %d: %v", loc.TelegramChatID, err)
		}
	}
	return nil
}

func (n *TelegramNotifier) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}
