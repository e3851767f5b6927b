package reservation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/Heaven123321/tekbir-backend/internal/domain/orders"
	"github.com/Heaven123321/tekbir-backend/internal/domain/products"
)

func newService(rows ...[]string) (*Service, *products.MemoryStore) {
	store := products.NewMemoryStore(rows...)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(products.NewRepo(store), log), store
}

func freeRow(id, name string) []string {
	return products.Product{ID: id, Name: name, Status: products.StatusFree, Quantity: 1}.ToRow()
}

func TestReserveWebAppOrder(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(freeRow("1700000000000", "iPhone 13"))

	ord := orders.Order{
		Name:          "A",
		Phone:         "+1",
		ContactMethod: "telegram",
		TgUsername:    "a",
		Items:         []orders.Item{{ID: "1700000000000", Qty: 2, Price: 500}},
		Total:         1000,
	}

	results := svc.Reserve(ctx, ord, orders.SourceWebApp)
	if len(results) != 1 || !results[0].Reserved {
		t.Fatalf("results = %+v", results)
	}

	rows, _ := store.ListRows(ctx)
	p := products.FromRow(rows[0])
	if p.Status != products.StatusReserved {
		t.Fatalf("status = %q", p.Status)
	}
	if p.BuyerName != "A" || p.BuyerPhone != "+1" || p.BuyerUsername != "a" {
		t.Fatalf("buyer fields: %+v", p)
	}
}

func TestReserveUsernameOnlyForTelegramContact(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(freeRow("1", "iPhone"))

	ord := orders.Order{
		Name: "B", Phone: "+2", ContactMethod: "phone", TgUsername: "b",
		Items: []orders.Item{{ID: "1", Qty: 1, Price: 100}}, Total: 100,
	}
	svc.Reserve(ctx, ord, orders.SourceWebApp)

	rows, _ := store.ListRows(ctx)
	if p := products.FromRow(rows[0]); p.BuyerUsername != "" {
		t.Fatalf("username must stay empty for non-telegram contact, got %q", p.BuyerUsername)
	}

	// сайт пишет username независимо от способа связи
	svc2, store2 := newService(freeRow("1", "iPhone"))
	svc2.Reserve(ctx, ord, orders.SourceSite)
	rows2, _ := store2.ListRows(ctx)
	if p := products.FromRow(rows2[0]); p.BuyerUsername != "b" {
		t.Fatalf("site path must write username, got %q", p.BuyerUsername)
	}
}

func TestReserveSkipsMissingItems(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(freeRow("1", "iPhone"))

	before, _ := store.ListRows(ctx)
	ord := orders.Order{
		Name: "A", Phone: "+1",
		Items: []orders.Item{
			{ID: "999", Qty: 1, Price: 100},
			{ID: "1", Qty: 1, Price: 100},
		},
		Total: 200,
	}
	results := svc.Reserve(ctx, ord, orders.SourceSite)

	if results[0].Reserved {
		t.Fatal("missing item must not be reserved")
	}
	if !results[1].Reserved {
		t.Fatal("present item must be reserved despite the miss before it")
	}
	// строка отсутствующего товара ничего не изменила в хранилище
	after, _ := store.ListRows(ctx)
	if len(after) != len(before) {
		t.Fatalf("store size changed: %d -> %d", len(before), len(after))
	}
}

func TestReserveMissLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(freeRow("1", "iPhone"))

	before, _ := store.ListRows(ctx)
	svc.Reserve(ctx, orders.Order{
		Name: "A", Phone: "+1",
		Items: []orders.Item{{ID: "404", Qty: 1, Price: 1}},
		Total: 1,
	}, orders.SourceWebApp)
	after, _ := store.ListRows(ctx)

	if !reflect.DeepEqual(before, after) {
		t.Fatalf("store mutated on miss:\nbefore %v\nafter  %v", before, after)
	}
}

func TestApprove(t *testing.T) {
	ctx := context.Background()
	row := products.Product{
		ID: "1", Name: "iPhone", Status: products.StatusReserved, Quantity: 1,
		BuyerName: "A", BuyerPhone: "+1", BuyerUsername: "a",
	}.ToRow()
	svc, store := newService(row)

	p, err := svc.Approve(ctx, "1")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if p.Status != products.StatusSold || p.Quantity != 0 {
		t.Fatalf("approve result: %+v", p)
	}
	// контакты покупателя остаются как след сделки
	rows, _ := store.ListRows(ctx)
	got := products.FromRow(rows[0])
	if got.BuyerName != "A" || got.BuyerPhone != "+1" || got.BuyerUsername != "a" {
		t.Fatalf("buyer fields must survive approve: %+v", got)
	}

	// идемпотентность
	if _, err := svc.Approve(ctx, "1"); err != nil {
		t.Fatalf("second approve: %v", err)
	}
	rows, _ = store.ListRows(ctx)
	again := products.FromRow(rows[0])
	if !reflect.DeepEqual(got, again) {
		t.Fatalf("approve is not idempotent:\n first %+v\nsecond %+v", got, again)
	}
}

func TestRelease(t *testing.T) {
	ctx := context.Background()
	row := products.Product{
		ID: "1", Name: "iPhone", Status: products.StatusReserved, Quantity: 1,
		BuyerName: "A", BuyerPhone: "+1", BuyerUsername: "a",
	}.ToRow()
	svc, store := newService(row)

	p, err := svc.Release(ctx, "1")
	if err != nil {
		t.Fatalf("release: %v", err)
	}
	if p.Status != products.StatusFree {
		t.Fatalf("status = %q", p.Status)
	}
	if p.BuyerName != "" || p.BuyerPhone != "" || p.BuyerUsername != "" {
		t.Fatalf("buyer fields must be cleared: %+v", p)
	}

	// идемпотентность
	first, _ := store.ListRows(ctx)
	if _, err := svc.Release(ctx, "1"); err != nil {
		t.Fatalf("second release: %v", err)
	}
	second, _ := store.ListRows(ctx)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("release is not idempotent")
	}
}

func TestApproveAndReleaseNotFound(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(freeRow("1", "iPhone"))
	before, _ := store.ListRows(ctx)

	if _, err := svc.Approve(ctx, "404"); !errors.Is(err, products.ErrNotFound) {
		t.Fatalf("approve: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Release(ctx, "404"); !errors.Is(err, products.ErrNotFound) {
		t.Fatalf("release: expected ErrNotFound, got %v", err)
	}

	after, _ := store.ListRows(ctx)
	if !reflect.DeepEqual(before, after) {
		t.Fatal("store mutated on not-found transition")
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(freeRow("1", "iPhone"), freeRow("2", "AirPods"))

	if err := svc.Delete(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	rows, _ := store.ListRows(ctx)
	if len(rows) != 1 || rows[0][0] != "2" {
		t.Fatalf("remaining rows: %v", rows)
	}

	if err := svc.Delete(ctx, "404"); !errors.Is(err, products.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
