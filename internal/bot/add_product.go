package bot

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Heaven123321/tekbir-backend/internal/dialog"
)

/*** СЦЕНАРИЙ «ДОБАВИТЬ ТОВАР» ***/

func (b *Bot) startAddProduct(cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	if !b.isAdmin(cb.From.ID) {
		b.send(tgbotapi.NewMessage(chatID, "⛔ Нет доступа"))
		return
	}
	b.answerCallback(cb, "")

	b.dialogs.Start(cb.From.ID)
	b.sendTracked(cb.From.ID, chatID, dialog.StartPrompt, false)
}

// handleText скармливает ввод активной сессии. Для пользователей без
// сессии — no-op, чтобы не мешать переписке обычных покупателей.
func (b *Bot) handleText(msg *tgbotapi.Message) {
	uid := msg.From.ID
	sess := b.dialogs.Get(uid)
	if sess == nil {
		return
	}

	// ответ админа — тоже часть следа диалога
	b.dialogs.Track(uid, msg.MessageID)

	reply := sess.Advance(msg.Text)
	if reply.Text == "" {
		return
	}
	b.sendTracked(uid, msg.Chat.ID, reply.Text, reply.Confirm)
}

func (b *Bot) handlePhoto(msg *tgbotapi.Message) {
	uid := msg.From.ID
	sess := b.dialogs.Get(uid)
	if sess == nil || sess.Step != dialog.StepPhotos {
		return
	}

	b.dialogs.Track(uid, msg.MessageID)

	// Telegram шлёт несколько размеров, последний — самый крупный
	biggest := msg.Photo[len(msg.Photo)-1]
	url, err := b.api.GetFileDirectURL(biggest.FileID)
	if err != nil {
		b.log.Error("получение ссылки на фото", "err", err)
		b.sendTracked(uid, msg.Chat.ID, "⚠️ Не удалось обработать фото, попробуйте ещё раз.", false)
		return
	}

	count, _ := sess.AddPhoto(url)
	b.sendTracked(uid, msg.Chat.ID,
		fmt.Sprintf("Фото добавлено (%d). Можете отправить ещё или напишите «готово».", count), false)
}

func (b *Bot) confirmAdd(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	uid := cb.From.ID
	chatID := cb.Message.Chat.ID
	if !b.isAdmin(uid) {
		b.send(tgbotapi.NewMessage(chatID, "⛔ Нет доступа"))
		return
	}
	b.answerCallback(cb, "")

	sess := b.dialogs.Get(uid)
	if sess == nil {
		b.send(tgbotapi.NewMessage(chatID, "Ошибка: нет данных для добавления"))
		return
	}

	p := sess.Product(time.Now())
	if err := b.products.Append(ctx, p); err != nil {
		// сессию не трогаем: админ может нажать «Добавить» ещё раз
		b.log.Error("запись товара в таблицу", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "⚠️ Ошибка при добавлении товара в таблицу"))
		return
	}
	b.log.Info("товар добавлен", "id", p.ID, "name", p.Name)

	b.deleteMessages(chatID, b.dialogs.End(uid))

	banner, err := b.sendReturning(tgbotapi.NewMessage(chatID, "✅ Товар успешно добавлен!"))
	if err == nil {
		b.deleteLater(chatID, banner.MessageID)
	}
}

func (b *Bot) cancelAdd(cb *tgbotapi.CallbackQuery) {
	uid := cb.From.ID
	chatID := cb.Message.Chat.ID
	if !b.isAdmin(uid) {
		b.send(tgbotapi.NewMessage(chatID, "⛔ Нет доступа"))
		return
	}
	b.answerCallback(cb, "")

	b.deleteMessages(chatID, b.dialogs.End(uid))

	banner, err := b.sendReturning(tgbotapi.NewMessage(chatID, "❌ Добавление товара отменено."))
	if err == nil {
		b.deleteLater(chatID, banner.MessageID)
	}
}

// sendTracked отправляет реплику сценария и записывает её в след диалога.
func (b *Bot) sendTracked(uid, chatID int64, text string, confirm bool) {
	m := tgbotapi.NewMessage(chatID, text)
	if confirm {
		m.ReplyMarkup = confirmAddKeyboard()
	}
	sent, err := b.sendReturning(m)
	if err == nil {
		b.dialogs.Track(uid, sent.MessageID)
	}
}
