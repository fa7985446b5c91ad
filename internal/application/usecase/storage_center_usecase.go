package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/drone-inventory/internal/application/dto"
	"github.com/jhoicas/drone-inventory/internal/application/search"
	"github.com/jhoicas/drone-inventory/internal/application/validator"
	"github.com/jhoicas/drone-inventory/internal/domain"
	"github.com/jhoicas/drone-inventory/internal/domain/entity"
	"github.com/jhoicas/drone-inventory/internal/domain/repository"
)

// StorageCenterUseCase consultas sobre centros de almacenamiento (solo lectura).
type StorageCenterUseCase struct {
	repo repository.StorageCenterRepository
}

// NewStorageCenterUseCase construye el caso de uso.
func NewStorageCenterUseCase(repo repository.StorageCenterRepository) *StorageCenterUseCase {
	return &StorageCenterUseCase{repo: repo}
}

// List devuelve todos los centros registrados; el filtro por estado operativo es cosa de Search.
func (uc *StorageCenterUseCase) List(ctx context.Context) ([]dto.CenterResponse, error) {
	list, err := uc.repo.Find(ctx, search.AllCenters())
	if err != nil {
		return nil, err
	}
	return toCenterResponses(list), nil
}

// Search rechaza el formulario vacío y filtra los centros operativos.
func (uc *StorageCenterUseCase) Search(ctx context.Context, form dto.CenterSearchForm) ([]dto.CenterResponse, error) {
	if err := validator.ValidateCenterSearch(form); err != nil {
		return nil, err
	}
	list, err := uc.repo.Find(ctx, search.CenterPredicate(form))
	if err != nil {
		return nil, err
	}
	return toCenterResponses(list), nil
}

// GetByID obtiene un centro por ID sin importar su estado operativo.
func (uc *StorageCenterUseCase) GetByID(ctx context.Context, id int64) (*dto.CenterResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: centro %d", domain.ErrNotFound, id)
	}
	return toCenterResponse(c), nil
}

func toCenterResponses(list []*entity.StorageCenter) []dto.CenterResponse {
	items := make([]dto.CenterResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCenterResponse(c))
	}
	return items
}

func toCenterResponse(c *entity.StorageCenter) *dto.CenterResponse {
	return &dto.CenterResponse{
		ID:                c.ID,
		Name:              c.Name,
		Region:            c.Region,
		CurrentCapacity:   c.CurrentCapacity,
		OperationalStatus: int(c.OperationalStatus),
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
