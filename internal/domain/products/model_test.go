package products

import (
	"reflect"
	"testing"
	"time"
)

func TestFromRowPadsShortRows(t *testing.T) {
	// Sheets обрезает хвостовые пустые ячейки — строка может прийти короче A..O
	p := FromRow([]string{"1700000000000", "iPhone 13"})
	if p.ID != "1700000000000" || p.Name != "iPhone 13" {
		t.Fatalf("unexpected product: %+v", p)
	}
	if p.Status != "" || p.Quantity != 0 || len(p.PhotoURLs) != 0 {
		t.Fatalf("expected zero values for missing cells: %+v", p)
	}
}

func TestRowRoundTrip(t *testing.T) {
	p := Product{
		ID:            "1700000000000",
		Name:          "iPhone 13",
		Price:         "45000",
		Category:      "Phones",
		Brand:         "Apple",
		Condition:     "Б/У",
		Capacity:      "128GB",
		PhotoURLs:     []string{"https://files.example/a.jpg", "https://files.example/b.jpg"},
		Description:   "как новый",
		Color:         "Black",
		Quantity:      1,
		Status:        StatusFree,
		BuyerName:     "",
		BuyerPhone:    "",
		BuyerUsername: "",
	}

	row := p.ToRow()
	if len(row) != columnCount {
		t.Fatalf("row length = %d, want %d", len(row), columnCount)
	}
	if row[ColPhotoURLs] != "https://files.example/a.jpg https://files.example/b.jpg" {
		t.Fatalf("photos not space-joined: %q", row[ColPhotoURLs])
	}

	back := FromRow(row)
	if !reflect.DeepEqual(p, back) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", back, p)
	}
}

func TestFromRowBadQuantity(t *testing.T) {
	row := Product{ID: "1", Quantity: 5, Status: StatusFree}.ToRow()
	row[ColQuantity] = "много"
	if got := FromRow(row).Quantity; got != 0 {
		t.Fatalf("quantity = %d, want 0 for unparsable cell", got)
	}
}

func TestNewID(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	if got := NewID(now); got != "1700000000000" {
		t.Fatalf("NewID = %q", got)
	}
}
