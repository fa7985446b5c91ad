package repository

import (
	"context"

	"github.com/jhoicas/drone-inventory/internal/domain/entity"
	"github.com/jhoicas/drone-inventory/internal/domain/filter"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// GetByID y GetByName devuelven (nil, nil) cuando no hay fila.
type CategoryRepository interface {
	// Create inserta la categoría y asigna category.ID.
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	// GetByName busca por nombre exacto sin importar DeleteFlag.
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Find(ctx context.Context, pred *filter.Predicate[entity.Category]) ([]*entity.Category, error)
}
