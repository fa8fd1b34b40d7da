package telegram

import (
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"nextgear/internal/domain"
)

// Notifier pushes order events to the admin chat through the Bot API. It is
// fire-and-forget: send failures are logged, never surfaced to the store.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *log.Logger
}

func NewNotifier(bot *tgbotapi.BotAPI, chatID int64, logger *log.Logger) *Notifier {
	return &Notifier{bot: bot, chatID: chatID, logger: logger}
}

func (n *Notifier) OrderPlaced(order domain.Order) {
	n.send(formatPlaced(order))
}

func (n *Notifier) OrderProcessed(order domain.Order) {
	n.send(formatProcessed(order))
}

func (n *Notifier) send(text string) {
	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Printf("telegram notify failed: %v", err)
	}
}

func formatPlaced(order domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🛒 *New order* #%s from @%s\n", shortID(order.ID), order.Username)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "• %s x%d — %s\n", item.Name, item.Quantity, formatAmount(item.TotalCents()))
	}
	fmt.Fprintf(&b, "*Total:* %s", formatAmount(order.TotalCents))
	return b.String()
}

func formatProcessed(order domain.Order) string {
	switch order.Status {
	case domain.OrderConfirmed:
		return fmt.Sprintf("✅ Order #%s confirmed, %d listing(s) removed from sale", shortID(order.ID), len(order.ProductIDs()))
	case domain.OrderCanceled:
		return fmt.Sprintf("❌ Order #%s rejected", shortID(order.ID))
	default:
		return fmt.Sprintf("Order #%s is %s", shortID(order.ID), order.Status)
	}
}

// shortID mirrors the Mini App, which shows the last six digits of an order id.
func shortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}

func formatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d ₽", cents/100, cents%100)
}
