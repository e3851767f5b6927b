package products

import (
	"strconv"
	"strings"
	"time"
)

// Статусы товара в таблице (колонка L).
const (
	StatusFree     = "Свободен"
	StatusReserved = "Резерв"
	StatusSold     = "Продан"
)

// Колонки листа, A..O. Порядок зафиксирован таблицей,
// менять нельзя — на него завязан фронт и ручные правки админа.
const (
	ColID = iota
	ColName
	ColPrice
	ColCategory
	ColBrand
	ColCondition
	ColCapacity
	ColPhotoURLs
	ColDescription
	ColColor
	ColQuantity
	ColStatus
	ColBuyerName
	ColBuyerPhone
	ColBuyerUsername

	columnCount
)

type Product struct {
	ID          string
	Name        string
	Price       string
	Category    string
	Brand       string
	Condition   string
	Capacity    string
	PhotoURLs   []string
	Description string
	Color       string
	Quantity    int
	Status      string

	BuyerName     string
	BuyerPhone    string
	BuyerUsername string
}

// NewID генерирует id товара: unix-время в миллисекундах.
// Фронт и таблица ждут числовые id, uuid сюда не подходит.
func NewID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// FromRow разбирает строку листа. Короткие строки дополняются пустыми
// ячейками: Sheets обрезает хвостовые пустые значения при чтении.
func FromRow(row []string) Product {
	cells := make([]string, columnCount)
	copy(cells, row)

	qty := 0
	if n, err := strconv.Atoi(strings.TrimSpace(cells[ColQuantity])); err == nil {
		qty = n
	}

	var photos []string
	if cells[ColPhotoURLs] != "" {
		photos = strings.Fields(cells[ColPhotoURLs])
	}

	return Product{
		ID:            cells[ColID],
		Name:          cells[ColName],
		Price:         cells[ColPrice],
		Category:      cells[ColCategory],
		Brand:         cells[ColBrand],
		Condition:     cells[ColCondition],
		Capacity:      cells[ColCapacity],
		PhotoURLs:     photos,
		Description:   cells[ColDescription],
		Color:         cells[ColColor],
		Quantity:      qty,
		Status:        cells[ColStatus],
		BuyerName:     cells[ColBuyerName],
		BuyerPhone:    cells[ColBuyerPhone],
		BuyerUsername: cells[ColBuyerUsername],
	}
}

// ToRow сериализует товар в строку A..O.
func (p Product) ToRow() []string {
	row := make([]string, columnCount)
	row[ColID] = p.ID
	row[ColName] = p.Name
	row[ColPrice] = p.Price
	row[ColCategory] = p.Category
	row[ColBrand] = p.Brand
	row[ColCondition] = p.Condition
	row[ColCapacity] = p.Capacity
	row[ColPhotoURLs] = strings.Join(p.PhotoURLs, " ")
	row[ColDescription] = p.Description
	row[ColColor] = p.Color
	row[ColQuantity] = strconv.Itoa(p.Quantity)
	row[ColStatus] = p.Status
	row[ColBuyerName] = p.BuyerName
	row[ColBuyerPhone] = p.BuyerPhone
	row[ColBuyerUsername] = p.BuyerUsername
	return row
}
