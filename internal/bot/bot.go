package bot

import (
	"context"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Heaven123321/tekbir-backend/internal/dialog"
	"github.com/Heaven123321/tekbir-backend/internal/domain/products"
	"github.com/Heaven123321/tekbir-backend/internal/reservation"
)

// bannerTTL — сколько живут служебные баннеры («Товар добавлен» и т.п.)
// до автоудаления.
const bannerTTL = 2 * time.Second

type Bot struct {
	api       *tgbotapi.BotAPI
	log       *slog.Logger
	adminID   int64
	webAppURL string

	dialogs  *dialog.Store
	products *products.Repo
	reserve  *reservation.Service
}

func New(api *tgbotapi.BotAPI, log *slog.Logger, adminID int64, webAppURL string,
	dialogs *dialog.Store, productsRepo *products.Repo, reserve *reservation.Service) *Bot {

	return &Bot{
		api: api, log: log, adminID: adminID, webAppURL: webAppURL,
		dialogs: dialogs, products: productsRepo, reserve: reserve,
	}
}

func (b *Bot) Run(ctx context.Context, timeoutSec int) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeoutSec
	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd := <-updates:
			if upd.Message != nil {
				b.onMessage(ctx, upd.Message)
			} else if upd.CallbackQuery != nil {
				b.onCallback(ctx, upd.CallbackQuery)
			}
		}
	}
}

func (b *Bot) isAdmin(userID int64) bool {
	return userID == b.adminID
}

/*** HELPERS ***/

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send failed", "err", err)
	}
}

// sendReturning — как send, но с результатом: id нужен для следа диалога.
func (b *Bot) sendReturning(msg tgbotapi.Chattable) (tgbotapi.Message, error) {
	sent, err := b.api.Send(msg)
	if err != nil {
		b.log.Error("send failed", "err", err)
	}
	return sent, err
}

func (b *Bot) answerCallback(cb *tgbotapi.CallbackQuery, text string) {
	resp := tgbotapi.NewCallback(cb.ID, text)
	if _, err := b.api.Request(resp); err != nil {
		b.log.Error("answer callback failed", "err", err)
	}
}

func (b *Bot) editText(chatID int64, messageID int, text string) {
	b.send(tgbotapi.NewEditMessageText(chatID, messageID, text))
}

// deleteMessages — best-effort зачистка: сообщение могло быть удалено
// вручную или протухнуть, такие ошибки глотаем.
func (b *Bot) deleteMessages(chatID int64, ids []int) {
	for _, id := range ids {
		_, _ = b.api.Request(tgbotapi.NewDeleteMessage(chatID, id))
	}
}

// deleteLater убирает служебный баннер после паузы, fire-and-forget.
func (b *Bot) deleteLater(chatID int64, messageID int) {
	time.AfterFunc(bannerTTL, func() {
		_, _ = b.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
	})
}
