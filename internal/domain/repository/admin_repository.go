package repository

import (
	"context"

	"github.com/jhoicas/drone-inventory/internal/domain/entity"
)

// AdminRepository puerto de persistencia para administradores.
type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	GetByAdminID(ctx context.Context, adminID string) (*entity.Admin, error)
}
