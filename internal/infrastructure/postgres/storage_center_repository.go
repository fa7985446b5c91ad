package postgres

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/drone-inventory/internal/domain"
	"github.com/jhoicas/drone-inventory/internal/domain/entity"
	"github.com/jhoicas/drone-inventory/internal/domain/filter"
	"github.com/jhoicas/drone-inventory/internal/domain/repository"
)

var _ repository.StorageCenterRepository = (*StorageCenterRepo)(nil)

var centerColumns = []string{"id", "name", "region", "current_capacity", "operational_status", "created_at", "updated_at"}

// StorageCenterRepo lectura de centros de almacenamiento. Las altas llegan por migraciones o seed.
type StorageCenterRepo struct {
	q Querier
}

// NewStorageCenterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStorageCenterRepository(q Querier) *StorageCenterRepo {
	return &StorageCenterRepo{q: q}
}

func (r *StorageCenterRepo) GetByID(ctx context.Context, id int64) (*entity.StorageCenter, error) {
	query, args, err := builder.Select(centerColumns...).From("storage_centers").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, domain.StoreError("get center", err)
	}
	c, err := scanCenter(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("get center", err)
	}
	return c, nil
}

func (r *StorageCenterRepo) Find(ctx context.Context, pred *filter.Predicate[entity.StorageCenter]) ([]*entity.StorageCenter, error) {
	query, args, err := selectWhere("storage_centers", centerColumns, pred)
	if err != nil {
		return nil, domain.StoreError("find centers", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("find centers", err)
	}
	defer rows.Close()
	list := []*entity.StorageCenter{}
	for rows.Next() {
		c, err := scanCenter(rows)
		if err != nil {
			return nil, mapError("scan center", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("find centers", err)
	}
	return list, nil
}

func scanCenter(row pgx.Row) (*entity.StorageCenter, error) {
	var (
		c      entity.StorageCenter
		status int
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Region, &c.CurrentCapacity, &status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.OperationalStatus = entity.OperationalStatus(status)
	return &c, nil
}
