package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/drone-inventory/internal/application/dto"
	"github.com/jhoicas/drone-inventory/internal/domain"
	"github.com/jhoicas/drone-inventory/internal/domain/entity"
	"github.com/jhoicas/drone-inventory/internal/domain/repository"
	"github.com/jhoicas/drone-inventory/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login de administradores y alta del administrador inicial.
type AuthUseCase struct {
	adminRepo repository.AdminRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(adminRepo repository.AdminRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{adminRepo: adminRepo, jwtCfg: jwtCfg}
}

// Login verifica admin_id/password, genera JWT y retorna token + administrador.
// Un admin inexistente y una contraseña incorrecta devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.AdminID == "" || in.Password == "" {
		return nil, domain.NewValidationError("", "admin_id y password son requeridos")
	}
	admin, err := uc.adminRepo.GetByAdminID(ctx, in.AdminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.AdminID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Admin: *toAdminResponse(admin),
	}, nil
}

// EnsureAdmin crea el administrador si no existe. Se usa al arrancar con ADMIN_BOOTSTRAP_*.
// Devuelve true si lo creó.
func (uc *AuthUseCase) EnsureAdmin(ctx context.Context, adminID, name, password string) (bool, error) {
	if adminID == "" || password == "" {
		return false, fmt.Errorf("%w: admin_id y password son requeridos", domain.ErrInvalidInput)
	}
	existing, err := uc.adminRepo.GetByAdminID(ctx, adminID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	if name == "" {
		name = adminID
	}
	now := time.Now()
	admin := &entity.Admin{
		AdminID:      adminID,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.adminRepo.Create(ctx, admin); err != nil {
		return false, err
	}
	return true, nil
}

func toAdminResponse(a *entity.Admin) *dto.AdminResponse {
	if a == nil {
		return nil
	}
	return &dto.AdminResponse{
		AdminID:   a.AdminID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
