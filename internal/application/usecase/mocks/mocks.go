// Package mocks dobles de prueba basados en testify/mock para los puertos de los casos de uso.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/drone-inventory/internal/application/usecase"
	"github.com/jhoicas/drone-inventory/internal/domain/entity"
	"github.com/jhoicas/drone-inventory/internal/domain/filter"
)

// MockCategoryRepository mock de repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	ret := m.Called(ctx, id)
	c, _ := ret.Get(0).(*entity.Category)
	return c, ret.Error(1)
}

func (m *MockCategoryRepository) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	ret := m.Called(ctx, name)
	c, _ := ret.Get(0).(*entity.Category)
	return c, ret.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) Find(ctx context.Context, pred *filter.Predicate[entity.Category]) ([]*entity.Category, error) {
	ret := m.Called(ctx, pred)
	list, _ := ret.Get(0).([]*entity.Category)
	return list, ret.Error(1)
}

// MockStorageCenterRepository mock de repository.StorageCenterRepository.
type MockStorageCenterRepository struct {
	mock.Mock
}

func (m *MockStorageCenterRepository) GetByID(ctx context.Context, id int64) (*entity.StorageCenter, error) {
	ret := m.Called(ctx, id)
	c, _ := ret.Get(0).(*entity.StorageCenter)
	return c, ret.Error(1)
}

func (m *MockStorageCenterRepository) Find(ctx context.Context, pred *filter.Predicate[entity.StorageCenter]) ([]*entity.StorageCenter, error) {
	ret := m.Called(ctx, pred)
	list, _ := ret.Get(0).([]*entity.StorageCenter)
	return list, ret.Error(1)
}

// MockStockItemRepository mock de repository.StockItemRepository.
type MockStockItemRepository struct {
	mock.Mock
}

func (m *MockStockItemRepository) Create(ctx context.Context, item *entity.StockItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockStockItemRepository) GetByID(ctx context.Context, id int64) (*entity.StockItem, error) {
	ret := m.Called(ctx, id)
	s, _ := ret.Get(0).(*entity.StockItem)
	return s, ret.Error(1)
}

func (m *MockStockItemRepository) Update(ctx context.Context, item *entity.StockItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockStockItemRepository) Find(ctx context.Context, pred *filter.Predicate[entity.StockItem]) ([]*entity.StockItem, error) {
	ret := m.Called(ctx, pred)
	list, _ := ret.Get(0).([]*entity.StockItem)
	return list, ret.Error(1)
}

// MockStockReportGenerator mock de usecase.StockReportGenerator.
type MockStockReportGenerator struct {
	mock.Mock
}

func (m *MockStockReportGenerator) GenerateStockReport(ctx context.Context, report usecase.StockReport) ([]byte, error) {
	ret := m.Called(ctx, report)
	b, _ := ret.Get(0).([]byte)
	return b, ret.Error(1)
}

// PassthroughTx TxRunner que invoca fn con Repos, sin transacción real.
type PassthroughTx struct {
	Repos usecase.Repositories
	Calls int
}

func (t *PassthroughTx) Run(_ context.Context, fn func(repos usecase.Repositories) error) error {
	t.Calls++
	return fn(t.Repos)
}
