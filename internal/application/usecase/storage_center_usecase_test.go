package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/drone-inventory/internal/application/dto"
	"github.com/jhoicas/drone-inventory/internal/application/usecase"
	"github.com/jhoicas/drone-inventory/internal/application/usecase/mocks"
	"github.com/jhoicas/drone-inventory/internal/domain"
	"github.com/jhoicas/drone-inventory/internal/domain/entity"
	"github.com/jhoicas/drone-inventory/internal/infrastructure/memory"
)

func seededCenters() *memory.Store {
	store := memory.NewStore()
	store.SeedCenters(
		entity.StorageCenter{Name: "Centro Tokio", Region: "東京都", CurrentCapacity: 0},
		entity.StorageCenter{Name: "Centro Osaka", Region: "大阪府", CurrentCapacity: 500},
		entity.StorageCenter{Name: "Centro Sapporo", Region: "北海道", CurrentCapacity: 800, OperationalStatus: entity.OperationalStatusInactive},
	)
	return store
}

func TestCenterSearch_FormularioVacioNoLlegaAlAlmacen(t *testing.T) {
	repo := &mocks.MockStorageCenterRepository{}
	uc := usecase.NewStorageCenterUseCase(repo)

	_, err := uc.Search(context.Background(), dto.CenterSearchForm{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestCenterSearch_Filtros(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewStorageCenterUseCase(seededCenters().Repositories().Centers)

	found, err := uc.Search(ctx, dto.CenterSearchForm{Name: "Centro"})
	require.NoError(t, err)
	require.Len(t, found, 2, "solo centros operativos")
	assert.Equal(t, "Centro Tokio", found[0].Name)

	found, err = uc.Search(ctx, dto.CenterSearchForm{Region: "大阪"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Centro Osaka", found[0].Name)

	found, err = uc.Search(ctx, dto.CenterSearchForm{CapacityTo: intPtr(100)})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, 0, found[0].CurrentCapacity)

	found, err = uc.Search(ctx, dto.CenterSearchForm{Region: "北海道"})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestCenterList_YGetByID(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewStorageCenterUseCase(seededCenters().Repositories().Centers)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3, "el listado incluye los centros inactivos")
	assert.Equal(t, int64(3), list[2].ID)
	assert.Equal(t, int(entity.OperationalStatusInactive), list[2].OperationalStatus)

	got, err := uc.GetByID(ctx, 3)
	require.NoError(t, err, "un centro inactivo sigue accesible por ID")
	assert.Equal(t, int(entity.OperationalStatusInactive), got.OperationalStatus)

	_, err = uc.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
