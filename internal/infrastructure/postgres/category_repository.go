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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

var categoryColumns = []string{"id", "name", "delete_flag", "created_at", "updated_at"}

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create inserta la categoría; la restricción UNIQUE(name) se reporta como ErrDuplicate.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query, args, err := builder.
		Insert("categories").
		Columns("name", "delete_flag", "created_at", "updated_at").
		Values(category.Name, int(category.DeleteFlag), category.CreatedAt, category.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return domain.StoreError("insert category", err)
	}
	if err := r.q.QueryRow(ctx, query, args...).Scan(&category.ID); err != nil {
		return mapError("insert category", err)
	}
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	return r.getOne(ctx, "get category", sq.Eq{"id": id})
}

func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	return r.getOne(ctx, "get category by name", sq.Eq{"name": name})
}

func (r *CategoryRepo) getOne(ctx context.Context, op string, where sq.Eq) (*entity.Category, error) {
	query, args, err := builder.Select(categoryColumns...).From("categories").Where(where).ToSql()
	if err != nil {
		return nil, domain.StoreError(op, err)
	}
	c, err := scanCategory(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError(op, err)
	}
	return c, nil
}

// Update reemplaza nombre, marca y updated_at.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	query, args, err := builder.
		Update("categories").
		SetMap(sq.Eq{
			"name":        category.Name,
			"delete_flag": int(category.DeleteFlag),
			"updated_at":  category.UpdatedAt,
		}).
		Where(sq.Eq{"id": category.ID}).
		ToSql()
	if err != nil {
		return domain.StoreError("update category", err)
	}
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return mapError("update category", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: categoría %d", domain.ErrNotFound, category.ID)
	}
	return nil
}

func (r *CategoryRepo) Find(ctx context.Context, pred *filter.Predicate[entity.Category]) ([]*entity.Category, error) {
	query, args, err := selectWhere("categories", categoryColumns, pred)
	if err != nil {
		return nil, domain.StoreError("find categories", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("find categories", err)
	}
	defer rows.Close()
	list := []*entity.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, mapError("scan category", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("find categories", err)
	}
	return list, nil
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var (
		c    entity.Category
		flag int
	)
	if err := row.Scan(&c.ID, &c.Name, &flag, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.DeleteFlag = entity.DeleteFlag(flag)
	return &c, nil
}
