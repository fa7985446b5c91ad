package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/drone-inventory/internal/application/dto"
	"github.com/jhoicas/drone-inventory/internal/application/search"
	"github.com/jhoicas/drone-inventory/internal/application/validator"
	"github.com/jhoicas/drone-inventory/internal/domain"
	"github.com/jhoicas/drone-inventory/internal/domain/entity"
	"github.com/jhoicas/drone-inventory/internal/domain/repository"
)

// CategoryUseCase listado, búsqueda y ciclo de vida de categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	tx   TxRunner
	now  func() time.Time
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, tx TxRunner) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, tx: tx, now: time.Now}
}

// SetClock reemplaza el reloj usado para las marcas de tiempo.
func (uc *CategoryUseCase) SetClock(now func() time.Time) { uc.now = now }

// List devuelve las categorías activas.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.Find(ctx, search.ActiveCategories())
	if err != nil {
		return nil, err
	}
	return toCategoryResponses(list), nil
}

// Search valida el formulario y filtra las categorías activas por nombre.
func (uc *CategoryUseCase) Search(ctx context.Context, form dto.CategorySearchForm) ([]dto.CategoryResponse, error) {
	if err := validator.ValidateCategorySearch(form); err != nil {
		return nil, err
	}
	list, err := uc.repo.Find(ctx, search.CategoryPredicate(form))
	if err != nil {
		return nil, err
	}
	return toCategoryResponses(list), nil
}

// GetByID obtiene una categoría, borrada o no.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: categoría %d", domain.ErrNotFound, id)
	}
	return toCategoryResponse(c), nil
}

// Create da de alta una categoría activa. El nombre no puede repetirse ni siquiera
// respecto de categorías borradas, y el ID lo asigna el almacén.
func (uc *CategoryUseCase) Create(ctx context.Context, form dto.CategoryForm) (int64, error) {
	form.DeleteFlag = false
	if err := validator.ValidateCategoryForm(form); err != nil {
		return 0, err
	}

	var id int64
	err := uc.tx.Run(ctx, func(repos Repositories) error {
		existing, err := repos.Categories.GetByName(ctx, form.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: la categoría %q ya existe", domain.ErrDuplicate, form.Name)
		}
		if form.ID != nil {
			return fmt.Errorf("%w: el ID de la categoría lo asigna el sistema", domain.ErrInvalidInput)
		}

		now := uc.now()
		category := &entity.Category{
			Name:       form.Name,
			DeleteFlag: entity.DeleteFlagActive,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := repos.Categories.Create(ctx, category); err != nil {
			return err
		}
		id = category.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update renombra la categoría o la borra lógicamente según form.DeleteFlag.
// En el borrado el nombre recibido se ignora; en la edición la categoría vuelve a quedar activa.
func (uc *CategoryUseCase) Update(ctx context.Context, form dto.CategoryForm) (*dto.CategoryResponse, error) {
	if err := validator.ValidateCategoryForm(form); err != nil {
		return nil, err
	}
	if form.ID == nil {
		return nil, fmt.Errorf("%w: id es requerido", domain.ErrInvalidInput)
	}

	var out *entity.Category
	err := uc.tx.Run(ctx, func(repos Repositories) error {
		category, err := repos.Categories.GetByID(ctx, *form.ID)
		if err != nil {
			return err
		}
		if category == nil {
			return fmt.Errorf("%w: categoría %d", domain.ErrNotFound, *form.ID)
		}

		if form.DeleteFlag {
			category.DeleteFlag = entity.DeleteFlagDeleted
		} else {
			category.Name = form.Name
			category.DeleteFlag = entity.DeleteFlagActive
		}
		category.UpdatedAt = uc.now()

		if err := repos.Categories.Update(ctx, category); err != nil {
			return err
		}
		out = category
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(out), nil
}

func toCategoryResponses(list []*entity.Category) []dto.CategoryResponse {
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:         c.ID,
		Name:       c.Name,
		DeleteFlag: int(c.DeleteFlag),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
