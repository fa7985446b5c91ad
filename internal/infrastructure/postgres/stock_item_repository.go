package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/drone-inventory/internal/domain"
	"github.com/jhoicas/drone-inventory/internal/domain/entity"
	"github.com/jhoicas/drone-inventory/internal/domain/filter"
	"github.com/jhoicas/drone-inventory/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

var stockColumns = []string{
	"id", "category_id", "center_id", "name", "description", "amount", "delete_flag", "created_at", "updated_at",
}

// StockItemRepo implementación del puerto StockItemRepository sobre PostgreSQL (usable con pool o tx).
// Las claves foráneas rotas se reportan como ErrNotFound.
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

func (r *StockItemRepo) Create(ctx context.Context, item *entity.StockItem) error {
	query, args, err := builder.
		Insert("stock_items").
		Columns("category_id", "center_id", "name", "description", "amount", "delete_flag", "created_at", "updated_at").
		Values(item.CategoryID, item.CenterID, item.Name, item.Description, item.Amount,
			int(item.DeleteFlag), item.CreatedAt, item.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return domain.StoreError("insert stock item", err)
	}
	if err := r.q.QueryRow(ctx, query, args...).Scan(&item.ID); err != nil {
		return mapError("insert stock item", err)
	}
	return nil
}

func (r *StockItemRepo) GetByID(ctx context.Context, id int64) (*entity.StockItem, error) {
	query, args, err := builder.Select(stockColumns...).From("stock_items").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, domain.StoreError("get stock item", err)
	}
	s, err := scanStockItem(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("get stock item", err)
	}
	return s, nil
}

// Update reemplaza todos los campos editables; created_at no cambia.
func (r *StockItemRepo) Update(ctx context.Context, item *entity.StockItem) error {
	query, args, err := builder.
		Update("stock_items").
		SetMap(sq.Eq{
			"category_id": item.CategoryID,
			"center_id":   item.CenterID,
			"name":        item.Name,
			"description": item.Description,
			"amount":      item.Amount,
			"delete_flag": int(item.DeleteFlag),
			"updated_at":  item.UpdatedAt,
		}).
		Where(sq.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return domain.StoreError("update stock item", err)
	}
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return mapError("update stock item", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: artículo %d", domain.ErrNotFound, item.ID)
	}
	return nil
}

func (r *StockItemRepo) Find(ctx context.Context, pred *filter.Predicate[entity.StockItem]) ([]*entity.StockItem, error) {
	query, args, err := selectWhere("stock_items", stockColumns, pred)
	if err != nil {
		return nil, domain.StoreError("find stock items", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("find stock items", err)
	}
	defer rows.Close()
	list := []*entity.StockItem{}
	for rows.Next() {
		s, err := scanStockItem(rows)
		if err != nil {
			return nil, mapError("scan stock item", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("find stock items", err)
	}
	return list, nil
}

func scanStockItem(row pgx.Row) (*entity.StockItem, error) {
	var (
		s    entity.StockItem
		flag int
	)
	err := row.Scan(&s.ID, &s.CategoryID, &s.CenterID, &s.Name, &s.Description, &s.Amount, &flag, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.DeleteFlag = entity.DeleteFlag(flag)
	return &s, nil
}
