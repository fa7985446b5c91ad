package repository

import (
	"context"

	"github.com/jhoicas/drone-inventory/internal/domain/entity"
	"github.com/jhoicas/drone-inventory/internal/domain/filter"
)

// StockItemRepository define el puerto de persistencia para StockItem.
type StockItemRepository interface {
	// Create inserta el artículo y asigna item.ID.
	Create(ctx context.Context, item *entity.StockItem) error
	GetByID(ctx context.Context, id int64) (*entity.StockItem, error)
	Update(ctx context.Context, item *entity.StockItem) error
	Find(ctx context.Context, pred *filter.Predicate[entity.StockItem]) ([]*entity.StockItem, error)
}
