package products

import "context"

// RowStore — строчный доступ к листу товаров. Индексы — позиции
// внутри данных (без строки заголовка), нумерация с нуля.
//
// Реализации: Google Sheets (internal/infra/sheets) и in-memory для тестов.
type RowStore interface {
	// ListRows возвращает все строки данных (A2:O).
	ListRows(ctx context.Context) ([][]string, error)
	AppendRow(ctx context.Context, row []string) error
	UpdateRow(ctx context.Context, index int, row []string) error
	DeleteRow(ctx context.Context, index int) error
}
