package bot

import (
	"context"
	"encoding/json"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Heaven123321/tekbir-backend/internal/domain/orders"
)

/*** ПРИЁМ ЗАКАЗОВ ***/

// handleWebAppOrder — заказ из mini-app (web_app_data).
func (b *Bot) handleWebAppOrder(ctx context.Context, msg *tgbotapi.Message) {
	var ord orders.Order
	if err := json.Unmarshal([]byte(msg.WebAppData.Data), &ord); err != nil {
		b.log.Error("разбор web_app_data", "err", err)
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "Ошибка заказа ⚠️"))
		return
	}

	b.send(tgbotapi.NewMessage(b.adminID, ord.WebAppSummary()))

	if id := ord.FirstItemID(); id != "" {
		m := tgbotapi.NewMessage(b.adminID, fmt.Sprintf("Что делаем с заказом по товару ID: %s?", id))
		m.ReplyMarkup = orderActionKeyboard(id)
		b.send(m)
	}

	b.send(tgbotapi.NewMessage(msg.Chat.ID, "Спасибо! Ваш заказ отправлен!"))

	b.reserve.Reserve(ctx, ord, orders.SourceWebApp)
}

// SubmitOrder — заказ с сайта (POST /order). Реализует http.OrderService.
func (b *Bot) SubmitOrder(ctx context.Context, ord orders.Order) error {
	if _, err := b.api.Send(tgbotapi.NewMessage(b.adminID, ord.SiteSummary())); err != nil {
		return fmt.Errorf("уведомление оператора: %w", err)
	}

	if id := ord.FirstItemID(); id != "" {
		m := tgbotapi.NewMessage(b.adminID, fmt.Sprintf("ID товара: %s\nЧто делаем с заказом?", id))
		m.ReplyMarkup = orderActionKeyboard(id)
		b.send(m)
	}

	b.reserve.Reserve(ctx, ord, orders.SourceSite)
	return nil
}
