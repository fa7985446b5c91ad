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
)

// StockUseCase listado, búsqueda, exportación y ciclo de vida de artículos de stock.
type StockUseCase struct {
	repos  Repositories
	tx     TxRunner
	report StockReportGenerator
	now    func() time.Time
}

// NewStockUseCase construye el caso de uso. repos se usa para las lecturas fuera de transacción.
func NewStockUseCase(repos Repositories, tx TxRunner, report StockReportGenerator) *StockUseCase {
	return &StockUseCase{repos: repos, tx: tx, report: report, now: time.Now}
}

// SetClock reemplaza el reloj usado para las marcas de tiempo.
func (uc *StockUseCase) SetClock(now func() time.Time) { uc.now = now }

// List devuelve los artículos activos.
func (uc *StockUseCase) List(ctx context.Context) ([]dto.StockResponse, error) {
	items, err := uc.repos.Stocks.Find(ctx, search.ActiveStocks())
	if err != nil {
		return nil, err
	}
	return uc.toStockResponses(ctx, items)
}

// Search valida el formulario y filtra los artículos activos.
func (uc *StockUseCase) Search(ctx context.Context, form dto.StockSearchForm) ([]dto.StockResponse, error) {
	if err := validator.ValidateStockSearch(form); err != nil {
		return nil, err
	}
	items, err := uc.repos.Stocks.Find(ctx, search.StockPredicate(form))
	if err != nil {
		return nil, err
	}
	return uc.toStockResponses(ctx, items)
}

// GetByID obtiene un artículo, borrado o no, con sus nombres resueltos.
func (uc *StockUseCase) GetByID(ctx context.Context, id int64) (*dto.StockResponse, error) {
	item, err := uc.repos.Stocks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: artículo %d", domain.ErrNotFound, id)
	}
	out, err := uc.toStockResponses(ctx, []*entity.StockItem{item})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// Options categorías activas y centros operativos para los formularios de alta y edición.
func (uc *StockUseCase) Options(ctx context.Context) (*dto.StockOptionsResponse, error) {
	cats, err := uc.repos.Categories.Find(ctx, search.ActiveCategories())
	if err != nil {
		return nil, err
	}
	centers, err := uc.repos.Centers.Find(ctx, search.ActiveCenters())
	if err != nil {
		return nil, err
	}
	out := &dto.StockOptionsResponse{
		Categories: make([]dto.OptionItem, 0, len(cats)),
		Centers:    make([]dto.OptionItem, 0, len(centers)),
	}
	for _, c := range cats {
		out.Categories = append(out.Categories, dto.OptionItem{ID: c.ID, Name: c.Name})
	}
	for _, c := range centers {
		out.Centers = append(out.Centers, dto.OptionItem{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// Create da de alta un artículo activo. Categoría y centro se resuelven dentro de la
// transacción; si alguno no existe no se inserta nada.
func (uc *StockUseCase) Create(ctx context.Context, form dto.StockForm) (int64, error) {
	form.DeleteFlag = false
	if err := validator.ValidateStockForm(form); err != nil {
		return 0, err
	}
	if form.ID != nil {
		return 0, fmt.Errorf("%w: el ID del artículo lo asigna el sistema", domain.ErrInvalidInput)
	}

	var id int64
	err := uc.tx.Run(ctx, func(repos Repositories) error {
		if err := resolveReferences(ctx, repos, *form.CategoryID, *form.CenterID); err != nil {
			return err
		}
		now := uc.now()
		item := &entity.StockItem{
			CategoryID:  *form.CategoryID,
			CenterID:    *form.CenterID,
			Name:        form.Name,
			Description: form.Description,
			Amount:      *form.Amount,
			DeleteFlag:  entity.DeleteFlagActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := repos.Stocks.Create(ctx, item); err != nil {
			return err
		}
		id = item.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update edita o borra lógicamente un artículo según form.DeleteFlag.
// El borrado solo cambia la marca; la edición reemplaza todos los campos y reactiva el artículo.
func (uc *StockUseCase) Update(ctx context.Context, form dto.StockForm) (*dto.StockResponse, error) {
	if err := validator.ValidateStockForm(form); err != nil {
		return nil, err
	}
	if form.ID == nil {
		return nil, fmt.Errorf("%w: id es requerido", domain.ErrInvalidInput)
	}

	err := uc.tx.Run(ctx, func(repos Repositories) error {
		item, err := repos.Stocks.GetByID(ctx, *form.ID)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("%w: artículo %d", domain.ErrNotFound, *form.ID)
		}

		if form.DeleteFlag {
			item.DeleteFlag = entity.DeleteFlagDeleted
		} else {
			if err := resolveReferences(ctx, repos, *form.CategoryID, *form.CenterID); err != nil {
				return err
			}
			item.CategoryID = *form.CategoryID
			item.CenterID = *form.CenterID
			item.Name = form.Name
			item.Description = form.Description
			item.Amount = *form.Amount
			item.DeleteFlag = entity.DeleteFlagActive
		}
		item.UpdatedAt = uc.now()
		return repos.Stocks.Update(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, *form.ID)
}

// ExportPDF genera el listado en PDF. Con form nil exporta todos los artículos activos.
func (uc *StockUseCase) ExportPDF(ctx context.Context, form *dto.StockSearchForm) ([]byte, error) {
	var (
		items []dto.StockResponse
		err   error
	)
	if form == nil {
		items, err = uc.List(ctx)
	} else {
		items, err = uc.Search(ctx, *form)
	}
	if err != nil {
		return nil, err
	}
	return uc.report.GenerateStockReport(ctx, StockReport{
		Title:       "Listado de stock",
		GeneratedAt: uc.now(),
		Filters:     describeFilters(form),
		Items:       items,
	})
}

func resolveReferences(ctx context.Context, repos Repositories, categoryID, centerID int64) error {
	category, err := repos.Categories.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("%w: categoría %d", domain.ErrNotFound, categoryID)
	}
	center, err := repos.Centers.GetByID(ctx, centerID)
	if err != nil {
		return err
	}
	if center == nil {
		return fmt.Errorf("%w: centro %d", domain.ErrNotFound, centerID)
	}
	return nil
}

// toStockResponses resuelve los nombres de categoría y centro en cada llamada, sin caché
// entre peticiones. Una referencia inexistente deja el nombre vacío.
func (uc *StockUseCase) toStockResponses(ctx context.Context, items []*entity.StockItem) ([]dto.StockResponse, error) {
	categoryNames := map[int64]string{}
	centerNames := map[int64]string{}
	out := make([]dto.StockResponse, 0, len(items))
	for _, s := range items {
		catName, ok := categoryNames[s.CategoryID]
		if !ok {
			c, err := uc.repos.Categories.GetByID(ctx, s.CategoryID)
			if err != nil {
				return nil, err
			}
			if c != nil {
				catName = c.Name
			}
			categoryNames[s.CategoryID] = catName
		}
		centerName, ok := centerNames[s.CenterID]
		if !ok {
			c, err := uc.repos.Centers.GetByID(ctx, s.CenterID)
			if err != nil {
				return nil, err
			}
			if c != nil {
				centerName = c.Name
			}
			centerNames[s.CenterID] = centerName
		}
		out = append(out, dto.StockResponse{
			ID:           s.ID,
			CategoryID:   s.CategoryID,
			CategoryName: catName,
			CenterID:     s.CenterID,
			CenterName:   centerName,
			Name:         s.Name,
			Description:  s.Description,
			Amount:       s.Amount,
			DeleteFlag:   int(s.DeleteFlag),
			CreatedAt:    s.CreatedAt,
			UpdatedAt:    s.UpdatedAt,
		})
	}
	return out, nil
}

func describeFilters(form *dto.StockSearchForm) []string {
	if form == nil {
		return nil
	}
	var out []string
	if form.CategoryID != nil {
		out = append(out, fmt.Sprintf("categoría: %d", *form.CategoryID))
	}
	if form.Name != "" {
		out = append(out, fmt.Sprintf("nombre contiene: %s", form.Name))
	}
	if form.Amount != nil {
		switch form.AmountCondition {
		case dto.AmountConditionGreater:
			out = append(out, fmt.Sprintf("cantidad >= %d", *form.Amount))
		case dto.AmountConditionLess:
			out = append(out, fmt.Sprintf("cantidad <= %d", *form.Amount))
		}
	}
	return out
}
