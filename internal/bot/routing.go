package bot

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Heaven123321/tekbir-backend/internal/domain/products"
)

func (b *Bot) onMessage(ctx context.Context, msg *tgbotapi.Message) {
	switch {
	case msg.IsCommand():
		b.handleCommand(msg)
	case msg.WebAppData != nil:
		b.handleWebAppOrder(ctx, msg)
	case len(msg.Photo) > 0:
		b.handlePhoto(msg)
	case msg.Text != "":
		b.handleText(msg)
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		m := tgbotapi.NewMessage(msg.Chat.ID, "Добро пожаловать в TekBir!")
		m.ReplyMarkup = startKeyboard(b.webAppURL, b.isAdmin(msg.From.ID))
		b.send(m)
	default:
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "Не знаю такую команду. Наберите /start"))
	}
}

func (b *Bot) onCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	data := cb.Data

	// Точные совпадения раньше префиксов: cancel_add и delete_product_list
	// иначе перехватятся обработчиками cancel_<id> и delete_<id>.
	switch {
	case data == "add_product":
		b.startAddProduct(cb)
	case data == "confirm_add":
		b.confirmAdd(ctx, cb)
	case data == "cancel_add":
		b.cancelAdd(cb)
	case data == "delete_product_list":
		b.showDeleteList(ctx, cb)
	case data == "confirm_order_list":
		b.showReservedList(ctx, cb)
	case data == "export_products":
		b.exportCatalog(ctx, cb)
	case strings.HasPrefix(data, "approve_"):
		b.handleApprove(ctx, cb, strings.TrimPrefix(data, "approve_"))
	case strings.HasPrefix(data, "cancel_"):
		b.handleRelease(ctx, cb, strings.TrimPrefix(data, "cancel_"))
	case strings.HasPrefix(data, "delete_"):
		b.handleDelete(ctx, cb, strings.TrimPrefix(data, "delete_"))
	}
}

/*** ПОДТВЕРЖДЕНИЕ / ОТМЕНА ЗАКАЗА ***/

func (b *Bot) handleApprove(ctx context.Context, cb *tgbotapi.CallbackQuery, id string) {
	chatID := cb.Message.Chat.ID
	b.answerCallback(cb, "Подтверждаю...")

	_, err := b.reserve.Approve(ctx, id)
	if errors.Is(err, products.ErrNotFound) {
		b.editText(chatID, cb.Message.MessageID, "❌ Товар не найден")
		return
	}
	if err != nil {
		b.log.Error("подтверждение заказа", "id", id, "err", err)
		b.send(tgbotapi.NewMessage(chatID, "⚠️ Ошибка при подтверждении заказа"))
		return
	}
	b.editText(chatID, cb.Message.MessageID, "✅ Заказ подтверждён. Товар продан.")
}

func (b *Bot) handleRelease(ctx context.Context, cb *tgbotapi.CallbackQuery, id string) {
	chatID := cb.Message.Chat.ID
	b.answerCallback(cb, "Отменяю...")

	_, err := b.reserve.Release(ctx, id)
	if errors.Is(err, products.ErrNotFound) {
		b.editText(chatID, cb.Message.MessageID, "❌ Товар не найден")
		return
	}
	if err != nil {
		b.log.Error("снятие резерва", "id", id, "err", err)
		b.send(tgbotapi.NewMessage(chatID, "⚠️ Ошибка при отмене заказа"))
		return
	}
	b.editText(chatID, cb.Message.MessageID, "🔄 Резерв снят. Товар снова свободен.")
}

/*** СПИСОК РЕЗЕРВОВ ***/

func (b *Bot) showReservedList(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	if !b.isAdmin(cb.From.ID) {
		b.send(tgbotapi.NewMessage(chatID, "⛔ Нет доступа"))
		return
	}
	b.answerCallback(cb, "")

	reserved, err := b.reserve.Reserved(ctx)
	if err != nil {
		b.log.Error("список резервов", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "⚠️ Не удалось получить список резервов"))
		return
	}
	if len(reserved) == 0 {
		b.send(tgbotapi.NewMessage(chatID, "Нет заказов в резерве."))
		return
	}

	m := tgbotapi.NewMessage(chatID, "Выберите заказ для подтверждения:")
	m.ReplyMarkup = reservedListKeyboard(reserved)
	b.send(m)
}

/*** УДАЛЕНИЕ ТОВАРА ***/

func (b *Bot) showDeleteList(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	if !b.isAdmin(cb.From.ID) {
		b.send(tgbotapi.NewMessage(chatID, "⛔ Нет доступа"))
		return
	}
	b.answerCallback(cb, "")

	list, err := b.products.List(ctx)
	if err != nil {
		b.log.Error("список товаров", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "⚠️ Не удалось получить список товаров"))
		return
	}
	if len(list) == 0 {
		b.send(tgbotapi.NewMessage(chatID, "⚠️ Товаров нет"))
		return
	}

	m := tgbotapi.NewMessage(chatID, "🗑 Выберите товар для удаления:")
	m.ReplyMarkup = deleteListKeyboard(list)
	sent, err := b.sendReturning(m)
	if err == nil {
		b.dialogs.TrackDeleteList(cb.From.ID, sent.MessageID)
	}
}

func (b *Bot) handleDelete(ctx context.Context, cb *tgbotapi.CallbackQuery, id string) {
	chatID := cb.Message.Chat.ID
	if !b.isAdmin(cb.From.ID) {
		b.send(tgbotapi.NewMessage(chatID, "⛔ Нет доступа"))
		return
	}
	b.answerCallback(cb, "")

	// сначала убираем сообщение со списком
	b.deleteMessages(chatID, b.dialogs.TakeDeleteList(cb.From.ID))

	err := b.reserve.Delete(ctx, id)
	if errors.Is(err, products.ErrNotFound) {
		b.send(tgbotapi.NewMessage(chatID, "❌ Товар не найден"))
		return
	}
	if err != nil {
		b.log.Error("удаление товара", "id", id, "err", err)
		b.send(tgbotapi.NewMessage(chatID, "⚠️ Ошибка удаления товара"))
		return
	}

	banner, err := b.sendReturning(tgbotapi.NewMessage(chatID, "🗑 Товар удалён!"))
	if err == nil {
		b.deleteLater(chatID, banner.MessageID)
	}
}
