package auth_test

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/drone-inventory/internal/application/auth"
	"github.com/jhoicas/drone-inventory/internal/application/dto"
	"github.com/jhoicas/drone-inventory/internal/domain"
	"github.com/jhoicas/drone-inventory/internal/infrastructure/memory"
	"github.com/jhoicas/drone-inventory/pkg/jwt"
)

var testJWT = auth.JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 5, Issuer: "drone-inventory"}

func TestEnsureAdmin_CreaUnaSolaVez(t *testing.T) {
	ctx := context.Background()
	uc := auth.NewAuthUseCase(memory.NewStore().Admins(), testJWT)

	created, err := uc.EnsureAdmin(ctx, "admin01", "", "clave")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = uc.EnsureAdmin(ctx, "admin01", "", "otra")
	require.NoError(t, err)
	assert.False(t, created)

	_, err = uc.EnsureAdmin(ctx, "", "", "clave")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	uc := auth.NewAuthUseCase(memory.NewStore().Admins(), testJWT)
	password := gofakeit.Password(true, true, true, false, false, 16)
	_, err := uc.EnsureAdmin(ctx, "admin01", "Operador", password)
	require.NoError(t, err)

	t.Run("credenciales correctas", func(t *testing.T) {
		out, err := uc.Login(ctx, dto.LoginRequest{AdminID: "admin01", Password: password})
		require.NoError(t, err)
		assert.Equal(t, "Operador", out.Admin.Name)

		adminID, err := jwt.Parse(testJWT.Secret, out.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin01", adminID)
	})

	t.Run("contraseña incorrecta", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{AdminID: "admin01", Password: password + "x"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("admin inexistente", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{AdminID: "nadie", Password: password})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("campos vacíos", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{AdminID: "admin01"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
