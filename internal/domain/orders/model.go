package orders

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Order — заявка из mini-app (web_app_data) или с сайта (POST /order).
// Форматы почти совпадают, различия только в тексте для оператора.
type Order struct {
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	ContactMethod  string  `json:"contactMethod"`
	TgUsername     string  `json:"tg_username"`
	DeliveryMethod string  `json:"deliveryMethod"`
	DeliveryType   string  `json:"deliveryType"`
	Address        string  `json:"address"`
	Comment        string  `json:"comment"`
	Items          []Item  `json:"items"`
	Total          float64 `json:"total"`
}

type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Capacity string  `json:"capacity"`
	Price    float64 `json:"price"`
	Qty      int     `json:"qty"`
}

var (
	ErrNoItems = errors.New("в заказе нет позиций")
	ErrNoTotal = errors.New("в заказе не указана сумма")
)

func (o Order) Validate() error {
	if len(o.Items) == 0 {
		return ErrNoItems
	}
	if o.Total == 0 {
		return ErrNoTotal
	}
	return nil
}

// FirstItemID — id первой позиции, к которой привязываются кнопки
// Подтвердить/Отменить. Для многопозиционных заказов кнопки остаются
// только по первой позиции: оператор разбирает остальные вручную.
func (o Order) FirstItemID() string {
	if len(o.Items) == 0 {
		return ""
	}
	return o.Items[0].ID
}

// WebAppSummary — текст заказа для оператора, вариант mini-app.
func (o Order) WebAppSummary() string {
	var b strings.Builder
	b.WriteString("🛒 Новый заказ!\n\n")
	fmt.Fprintf(&b, "Имя: %s\n", o.Name)
	fmt.Fprintf(&b, "Телефон: %s\n", o.Phone)
	if o.ContactMethod != "" {
		fmt.Fprintf(&b, "Как связаться: %s\n", o.ContactMethod)
	}
	if o.ContactMethod == "telegram" && o.TgUsername != "" {
		fmt.Fprintf(&b, "Username: @%s\n", o.TgUsername)
	}
	fmt.Fprintf(&b, "Доставка: %s (%s)\n", o.DeliveryMethod, o.DeliveryType)
	fmt.Fprintf(&b, "Адрес: %s\n", o.Address)
	fmt.Fprintf(&b, "Комментарий: %s\n\n", o.Comment)
	b.WriteString("Товары:\n")
	for _, it := range o.Items {
		capacity := it.Capacity
		if capacity == "" {
			capacity = "-"
		}
		fmt.Fprintf(&b, "• %s (%s) x%d = %s₽\n", it.Name, capacity, it.Qty, rub(float64(it.Qty)*it.Price))
	}
	fmt.Fprintf(&b, "\n💰 Итого: %s₽", rub(o.Total))
	return b.String()
}

// SiteSummary — текст заказа для оператора, вариант сайта.
func (o Order) SiteSummary() string {
	var b strings.Builder
	b.WriteString("🛒 Новый заказ (сайта)!\n\n")
	fmt.Fprintf(&b, "Имя: %s\n", o.Name)
	fmt.Fprintf(&b, "Телефон: %s\n", o.Phone)
	fmt.Fprintf(&b, "Как связаться: %s\n", o.ContactMethod)
	if o.TgUsername != "" {
		fmt.Fprintf(&b, "Username: @%s\n", o.TgUsername)
	}
	fmt.Fprintf(&b, "Доставка: %s (%s)\n", o.DeliveryMethod, o.DeliveryType)
	fmt.Fprintf(&b, "Адрес: %s\n", o.Address)
	comment := o.Comment
	if comment == "" {
		comment = "-"
	}
	fmt.Fprintf(&b, "Комментарий: %s\n\n", comment)
	b.WriteString("Товары:\n")
	parts := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		parts = append(parts, fmt.Sprintf("📱 %s\nОбъём: %s\nЦена: %s₽\nКол-во: %d\nСумма: %s₽",
			it.Name, it.Capacity, rub(it.Price), it.Qty, rub(float64(it.Qty)*it.Price)))
	}
	b.WriteString(strings.Join(parts, "\n\n"))
	fmt.Fprintf(&b, "\n\n💰 Итого: %s₽", rub(o.Total))
	return b.String()
}

func rub(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
