package postgres

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/drone-inventory/internal/domain"
	"github.com/jhoicas/drone-inventory/internal/domain/entity"
	"github.com/jhoicas/drone-inventory/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación del puerto AdminRepository sobre PostgreSQL.
type AdminRepo struct {
	q Querier
}

// NewAdminRepository construye el adaptador de persistencia para administradores.
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

// Create persiste un nuevo administrador.
func (r *AdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	query, args, err := builder.
		Insert("admins").
		Columns("admin_id", "name", "password_hash", "created_at", "updated_at").
		Values(admin.AdminID, admin.Name, admin.PasswordHash, admin.CreatedAt, admin.UpdatedAt).
		ToSql()
	if err != nil {
		return domain.StoreError("insert admin", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return mapError("insert admin", err)
	}
	return nil
}

// GetByAdminID obtiene un administrador por su identificador de login.
func (r *AdminRepo) GetByAdminID(ctx context.Context, adminID string) (*entity.Admin, error) {
	query, args, err := builder.
		Select("admin_id", "name", "password_hash", "created_at", "updated_at").
		From("admins").
		Where(sq.Eq{"admin_id": adminID}).
		ToSql()
	if err != nil {
		return nil, domain.StoreError("get admin", err)
	}
	var a entity.Admin
	err = r.q.QueryRow(ctx, query, args...).Scan(&a.AdminID, &a.Name, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("get admin", err)
	}
	return &a, nil
}
