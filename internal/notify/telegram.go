package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront/internal/i18n"
	"storefront/internal/metrics"
	"storefront/models"

	tele "gopkg.in/telebot.v3"
)

// TelegramNotifier отправляет уведомление о заказе одним сообщением
// в настроенный чат. Одна попытка, без ретраев: дубликаты при повторной
// отправке формы — принятый риск.
type TelegramNotifier struct {
	bot    *tele.Bot
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("не удалось создать телеграм-бота: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

// SendOrder форматирует заявку и отправляет её получателю.
func (n *TelegramNotifier) SendOrder(ctx context.Context, req *models.OrderRequest) error {
	text := FormatOrder(req)

	_, err := n.bot.Send(&tele.Chat{ID: n.chatID}, text)
	if err != nil {
		metrics.NotificationsSent.WithLabelValues("error").Inc()
		return fmt.Errorf("телеграм не принял сообщение: %w", err)
	}

	metrics.NotificationsSent.WithLabelValues("success").Inc()
	return nil
}

// FormatOrder собирает текст уведомления на языке заявки.
func FormatOrder(req *models.OrderRequest) string {
	lang := req.Language

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", i18n.NewOrder(lang))
	fmt.Fprintf(&b, "%s: %s\n", i18n.Customer(lang), req.Name)
	fmt.Fprintf(&b, "%s: %s\n", i18n.Phone(lang), req.Phone)
	fmt.Fprintf(&b, "%s: %s\n\n", i18n.ContactVia(lang), req.ContactType)

	fmt.Fprintf(&b, "%s:\n", i18n.OrderLines(lang))
	for i, item := range req.Items {
		fmt.Fprintf(&b, "%d. %s — %d x %.0f = %.0f\n",
			i+1, item.Name, item.Quantity, item.Price, item.LineTotal())
	}

	fmt.Fprintf(&b, "\n%s: %.0f", i18n.Total(lang), req.TotalSum)
	return b.String()
}
