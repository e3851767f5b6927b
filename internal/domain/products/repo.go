package products

import (
	"context"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("товар не найден")

// Lookup находит позицию строки с данным id, -1 если нет.
// Вынесен в отдельный тип, чтобы линейный проход можно было заменить
// индексированным поиском, не трогая стейт-машину резервов.
type Lookup func(rows [][]string, id string) int

// ScanLookup — полный проход по свежевыбранным строкам.
// На каталоге в пару сотен позиций этого достаточно.
func ScanLookup(rows [][]string, id string) int {
	for i, r := range rows {
		if len(r) > ColID && r[ColID] == id {
			return i
		}
	}
	return -1
}

type Repo struct {
	store  RowStore
	lookup Lookup
}

func NewRepo(store RowStore) *Repo {
	return &Repo{store: store, lookup: ScanLookup}
}

// WithLookup подменяет стратегию поиска строки.
func (r *Repo) WithLookup(l Lookup) *Repo {
	r.lookup = l
	return r
}

func (r *Repo) List(ctx context.Context) ([]Product, error) {
	rows, err := r.store.ListRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rows: %w", err)
	}
	out := make([]Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromRow(row))
	}
	return out, nil
}

// FindByID возвращает товар и его позицию в данных листа.
// Позиция валидна только до следующей мутации листа.
func (r *Repo) FindByID(ctx context.Context, id string) (Product, int, error) {
	rows, err := r.store.ListRows(ctx)
	if err != nil {
		return Product{}, -1, fmt.Errorf("list rows: %w", err)
	}
	idx := r.lookup(rows, id)
	if idx == -1 {
		return Product{}, -1, ErrNotFound
	}
	return FromRow(rows[idx]), idx, nil
}

func (r *Repo) Append(ctx context.Context, p Product) error {
	if err := r.store.AppendRow(ctx, p.ToRow()); err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return nil
}

func (r *Repo) Update(ctx context.Context, index int, p Product) error {
	if err := r.store.UpdateRow(ctx, index, p.ToRow()); err != nil {
		return fmt.Errorf("update row: %w", err)
	}
	return nil
}

// DeleteByID удаляет строку товара. Позиция пересчитывается по свежей
// выборке прямо перед удалением: параллельное удаление сдвигает строки,
// и сохранённый индекс снёс бы соседний товар.
func (r *Repo) DeleteByID(ctx context.Context, id string) error {
	rows, err := r.store.ListRows(ctx)
	if err != nil {
		return fmt.Errorf("list rows: %w", err)
	}
	idx := r.lookup(rows, id)
	if idx == -1 {
		return ErrNotFound
	}
	if err := r.store.DeleteRow(ctx, idx); err != nil {
		return fmt.Errorf("delete row: %w", err)
	}
	return nil
}

// Reserved — товары в статусе «Резерв», для списка подтверждения заказов.
func (r *Repo) Reserved(ctx context.Context) ([]Product, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []Product
	for _, p := range all {
		if p.Status == StatusReserved {
			out = append(out, p)
		}
	}
	return out, nil
}
