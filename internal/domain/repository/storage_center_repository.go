package repository

import (
	"context"

	"github.com/jhoicas/drone-inventory/internal/domain/entity"
	"github.com/jhoicas/drone-inventory/internal/domain/filter"
)

// StorageCenterRepository puerto de lectura de centros de almacenamiento.
type StorageCenterRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.StorageCenter, error)
	Find(ctx context.Context, pred *filter.Predicate[entity.StorageCenter]) ([]*entity.StorageCenter, error)
}
