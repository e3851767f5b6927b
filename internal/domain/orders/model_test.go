package orders

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

const samplePayload = `{
	"name": "A",
	"phone": "+1",
	"contactMethod": "telegram",
	"tg_username": "a",
	"deliveryMethod": "Курьер",
	"deliveryType": "Сегодня",
	"address": "ул. Ленина, 1",
	"comment": "",
	"items": [{"id": "1700000000000", "name": "iPhone 13", "capacity": "128GB", "qty": 2, "price": 500}],
	"total": 1000
}`

func TestDecodeAndValidate(t *testing.T) {
	var ord Order
	if err := json.Unmarshal([]byte(samplePayload), &ord); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := ord.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if ord.Items[0].Qty != 2 || ord.Items[0].Price != 500 || ord.Total != 1000 {
		t.Fatalf("decoded order: %+v", ord)
	}
	if ord.FirstItemID() != "1700000000000" {
		t.Fatalf("first item id = %q", ord.FirstItemID())
	}
}

func TestValidateRejectsEmpty(t *testing.T) {
	if err := (Order{Total: 10}).Validate(); !errors.Is(err, ErrNoItems) {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}
	ord := Order{Items: []Item{{ID: "1"}}}
	if err := ord.Validate(); !errors.Is(err, ErrNoTotal) {
		t.Fatalf("expected ErrNoTotal, got %v", err)
	}
}

func TestWebAppSummary(t *testing.T) {
	var ord Order
	_ = json.Unmarshal([]byte(samplePayload), &ord)

	text := ord.WebAppSummary()
	for _, want := range []string{
		"🛒 Новый заказ!",
		"Имя: A",
		"Телефон: +1",
		"Username: @a",
		"• iPhone 13 (128GB) x2 = 1000₽",
		"💰 Итого: 1000₽",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("summary missing %q:\n%s", want, text)
		}
	}
}

func TestWebAppSummaryHidesUsernameForOtherContact(t *testing.T) {
	var ord Order
	_ = json.Unmarshal([]byte(samplePayload), &ord)
	ord.ContactMethod = "phone"

	if strings.Contains(ord.WebAppSummary(), "Username:") {
		t.Fatal("username shown for non-telegram contact")
	}
}

func TestSiteSummary(t *testing.T) {
	var ord Order
	_ = json.Unmarshal([]byte(samplePayload), &ord)
	ord.Comment = ""

	text := ord.SiteSummary()
	for _, want := range []string{
		"🛒 Новый заказ (сайта)!",
		"Комментарий: -",
		"📱 iPhone 13",
		"Объём: 128GB",
		"Кол-во: 2",
		"Сумма: 1000₽",
		"💰 Итого: 1000₽",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("summary missing %q:\n%s", want, text)
		}
	}
}

func TestFirstItemIDEmptyOrder(t *testing.T) {
	if got := (Order{}).FirstItemID(); got != "" {
		t.Fatalf("got %q", got)
	}
}
