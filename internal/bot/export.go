package bot

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xuri/excelize/v2"
)

var catalogHeader = []string{
	"ID", "Название", "Цена", "Категория", "Бренд", "Состояние", "Память",
	"Фото", "Описание", "Цвет", "Количество", "Статус",
	"Имя покупателя", "Телефон", "Username",
}

// exportCatalog выгружает каталог в .xlsx и отправляет админу документом.
func (b *Bot) exportCatalog(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	if !b.isAdmin(cb.From.ID) {
		b.send(tgbotapi.NewMessage(chatID, "⛔ Нет доступа"))
		return
	}
	b.answerCallback(cb, "Формирую файл...")

	list, err := b.products.List(ctx)
	if err != nil {
		b.log.Error("выгрузка каталога", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "⚠️ Не удалось выгрузить каталог"))
		return
	}
	if len(list) == 0 {
		b.send(tgbotapi.NewMessage(chatID, "⚠️ Товаров нет"))
		return
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	if err := f.SetSheetRow(sheet, "A1", &catalogHeader); err != nil {
		b.send(tgbotapi.NewMessage(chatID, "⚠️ Ошибка формирования файла"))
		return
	}
	for i, p := range list {
		excelRow := []interface{}{
			p.ID, p.Name, p.Price, p.Category, p.Brand, p.Condition, p.Capacity,
			strings.Join(p.PhotoURLs, " "), p.Description, p.Color,
			p.Quantity, p.Status, p.BuyerName, p.BuyerPhone, p.BuyerUsername,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			b.send(tgbotapi.NewMessage(chatID, "⚠️ Ошибка формирования файла"))
			return
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			b.send(tgbotapi.NewMessage(chatID, "⚠️ Ошибка формирования файла"))
			return
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		b.log.Error("запись xlsx", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "⚠️ Ошибка записи файла"))
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("catalog_%s.xlsx", time.Now().Format("20060102_150405")),
		Bytes: buf.Bytes(),
	})
	doc.Caption = fmt.Sprintf("Каталог товаров, %d позиций", len(list))
	b.send(doc)
}
