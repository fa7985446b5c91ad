package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/drone-inventory/internal/application/dto"
	"github.com/jhoicas/drone-inventory/internal/domain/repository"
)

// Repositories repositorios atados a una misma unidad de trabajo.
type Repositories struct {
	Categories repository.CategoryRepository
	Centers    repository.StorageCenterRepository
	Stocks     repository.StockItemRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback en otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repositories) error) error
}

// StockReportGenerator genera el listado de stock en PDF.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, report StockReport) ([]byte, error)
}

// StockReport datos del listado exportado.
type StockReport struct {
	Title       string
	GeneratedAt time.Time
	Filters     []string // descripción legible de los filtros aplicados
	Items       []dto.StockResponse
}
