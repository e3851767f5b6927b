// Package reservation — стейт-машина статусов товара:
// Свободен → Резерв (заказ), Резерв → Продан (подтверждение),
// Резерв → Свободен (снятие резерва), плюс удаление строки целиком.
//
// Все переходы работают по схеме read-modify-write без блокировок и
// версионирования: при одновременных переходах по одной строке побеждает
// последняя запись. Таблицу параллельно правят руками, строгая блокировка
// здесь не нужна.
package reservation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Heaven123321/tekbir-backend/internal/domain/orders"
	"github.com/Heaven123321/tekbir-backend/internal/domain/products"
)

type Service struct {
	products *products.Repo
	log      *slog.Logger
}

func New(repo *products.Repo, log *slog.Logger) *Service {
	return &Service{products: repo, log: log}
}

// ItemResult — судьба одной позиции заказа при резервировании.
type ItemResult struct {
	ID       string
	Reserved bool
}

// Reserve помечает каждую позицию заказа как «Резерв» и записывает контакты
// покупателя. Позиции без совпадения по id пропускаются с записью в лог —
// заказ продолжает обрабатываться. Строки перечитываются перед каждой
// позицией, чтобы не работать по устаревшим индексам.
func (s *Service) Reserve(ctx context.Context, ord orders.Order, src orders.Source) []ItemResult {
	results := make([]ItemResult, 0, len(ord.Items))
	for _, item := range ord.Items {
		p, idx, err := s.products.FindByID(ctx, item.ID)
		if err != nil {
			if errors.Is(err, products.ErrNotFound) {
				s.log.Warn("товар из заказа не найден в таблице", "id", item.ID)
			} else {
				s.log.Error("поиск товара по заказу", "id", item.ID, "err", err)
			}
			results = append(results, ItemResult{ID: item.ID})
			continue
		}

		p.Status = products.StatusReserved
		p.BuyerName = ord.Name
		p.BuyerPhone = ord.Phone
		switch src {
		case orders.SourceWebApp:
			// username пишем только если покупатель выбрал связь через Telegram
			if ord.ContactMethod == "telegram" {
				p.BuyerUsername = ord.TgUsername
			}
		case orders.SourceSite:
			p.BuyerUsername = ord.TgUsername
		}

		if err := s.products.Update(ctx, idx, p); err != nil {
			s.log.Error("запись резерва", "id", item.ID, "err", err)
			results = append(results, ItemResult{ID: item.ID})
			continue
		}
		s.log.Info("товар зарезервирован", "id", item.ID)
		results = append(results, ItemResult{ID: item.ID, Reserved: true})
	}
	return results
}

// Approve подтверждает заказ: статус «Продан», количество 0.
// Контакты покупателя намеренно не трогаем — они остаются в строке
// как след сделки. Повторный вызов даёт тот же результат.
func (s *Service) Approve(ctx context.Context, id string) (products.Product, error) {
	p, idx, err := s.products.FindByID(ctx, id)
	if err != nil {
		return products.Product{}, err
	}
	p.Status = products.StatusSold
	p.Quantity = 0
	if err := s.products.Update(ctx, idx, p); err != nil {
		return products.Product{}, err
	}
	return p, nil
}

// Release снимает резерв: статус «Свободен», контакты покупателя очищаются.
// Идемпотентен.
func (s *Service) Release(ctx context.Context, id string) (products.Product, error) {
	p, idx, err := s.products.FindByID(ctx, id)
	if err != nil {
		return products.Product{}, err
	}
	p.Status = products.StatusFree
	p.BuyerName = ""
	p.BuyerPhone = ""
	p.BuyerUsername = ""
	if err := s.products.Update(ctx, idx, p); err != nil {
		return products.Product{}, err
	}
	return p, nil
}

// Delete удаляет строку товара целиком (не переход статуса).
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.products.DeleteByID(ctx, id)
}

// Reserved — текущие резервы для списка подтверждения.
func (s *Service) Reserved(ctx context.Context) ([]products.Product, error) {
	return s.products.Reserved(ctx)
}
