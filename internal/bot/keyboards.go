package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Heaven123321/tekbir-backend/internal/domain/products"
)

func startKeyboard(webAppURL string, isAdmin bool) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		{{Text: "🛍 Открыть магазин", WebApp: &tgbotapi.WebAppInfo{URL: webAppURL}}},
	}
	if isAdmin {
		rows = append(rows,
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("➕ Добавить товар", "add_product")),
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🗑 Удалить товар", "delete_product_list")),
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📦 Заказы в резерве", "confirm_order_list")),
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📊 Выгрузка каталога", "export_products")),
		)
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func confirmAddKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("✅ Добавить", "confirm_add")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("❌ Отмена", "cancel_add")),
	)
}

// orderActionKeyboard — пара Подтвердить/Отменить по конкретному товару.
func orderActionKeyboard(productID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Подтвердить", "approve_"+productID),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Отменить", "cancel_"+productID),
		),
	)
}

func deleteListKeyboard(list []products.Product) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(list))
	for _, p := range list {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(p.Name, "delete_"+p.ID),
		))
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func reservedListKeyboard(list []products.Product) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(list))
	for _, p := range list {
		buyer := p.BuyerName
		if buyer == "" {
			buyer = "без имени"
		}
		qty := p.Quantity
		if qty == 0 {
			qty = 1
		}
		label := fmt.Sprintf("%s (%s, кол-во: %d)", p.Name, buyer, qty)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "approve_"+p.ID),
		))
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}
