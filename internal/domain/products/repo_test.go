package products

import (
	"context"
	"errors"
	"testing"
)

func seedStore() *MemoryStore {
	return NewMemoryStore(
		Product{ID: "101", Name: "iPhone 12", Status: StatusFree, Quantity: 1}.ToRow(),
		Product{ID: "102", Name: "iPhone 13", Status: StatusReserved, Quantity: 1, BuyerName: "A"}.ToRow(),
		Product{ID: "103", Name: "AirPods", Status: StatusFree, Quantity: 1}.ToRow(),
	)
}

func TestFindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(seedStore())

	p, idx, err := repo.FindByID(ctx, "102")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if idx != 1 || p.Name != "iPhone 13" {
		t.Fatalf("got idx=%d product=%+v", idx, p)
	}

	_, _, err = repo.FindByID(ctx, "999")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteByIDReresolvesPosition(t *testing.T) {
	ctx := context.Background()
	store := seedStore()
	repo := NewRepo(store)

	// конкурентное удаление сдвинуло строки: "101" исчез до нашего вызова
	if err := store.DeleteRow(ctx, 0); err != nil {
		t.Fatalf("setup delete: %v", err)
	}

	// позиция "103" теперь 1, а не 2 — удаление обязано пересчитать её
	if err := repo.DeleteByID(ctx, "103"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	rows, _ := store.ListRows(ctx)
	if len(rows) != 1 || rows[0][ColID] != "102" {
		t.Fatalf("wrong row deleted, remaining: %v", rows)
	}
}

func TestDeleteByIDNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(seedStore())
	if err := repo.DeleteByID(ctx, "999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReserved(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(seedStore())

	got, err := repo.Reserved(ctx)
	if err != nil {
		t.Fatalf("reserved: %v", err)
	}
	if len(got) != 1 || got[0].ID != "102" {
		t.Fatalf("reserved = %+v", got)
	}
}

func TestWithLookupSeam(t *testing.T) {
	ctx := context.Background()
	called := false
	repo := NewRepo(seedStore()).WithLookup(func(rows [][]string, id string) int {
		called = true
		return ScanLookup(rows, id)
	})

	if _, _, err := repo.FindByID(ctx, "101"); err != nil {
		t.Fatalf("find: %v", err)
	}
	if !called {
		t.Fatal("custom lookup was not used")
	}
}
