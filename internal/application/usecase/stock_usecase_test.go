package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
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

// stockFixture almacén con dos categorías y dos centros operativos.
type stockFixture struct {
	store      *memory.Store
	categories *usecase.CategoryUseCase
	stocks     *usecase.StockUseCase
	report     *mocks.MockStockReportGenerator
	motorsID   int64
	sensorsID  int64
	centerA    int64
	centerB    int64
}

func newStockFixture(t *testing.T) *stockFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	store.SeedCenters(
		entity.StorageCenter{Name: "Centro Tokio", Region: "東京都", CurrentCapacity: 100},
		entity.StorageCenter{Name: "Centro Nagoya", Region: "愛知県", CurrentCapacity: 200},
	)
	f := &stockFixture{
		store:      store,
		categories: newCategoryUC(store),
		report:     &mocks.MockStockReportGenerator{},
		centerA:    1,
		centerB:    2,
	}
	f.stocks = usecase.NewStockUseCase(store.Repositories(), store, f.report)
	f.stocks.SetClock(tickingClock())

	var err error
	f.motorsID, err = f.categories.Create(ctx, dto.CategoryForm{Name: "Motores"})
	require.NoError(t, err)
	f.sensorsID, err = f.categories.Create(ctx, dto.CategoryForm{Name: "Sensores"})
	require.NoError(t, err)
	return f
}

func (f *stockFixture) form(categoryID, centerID int64, name string, amount int) dto.StockForm {
	return dto.StockForm{
		CategoryID:  idPtr(categoryID),
		CenterID:    idPtr(centerID),
		Name:        name,
		Description: gofakeit.LetterN(20),
		Amount:      intPtr(amount),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta
// ──────────────────────────────────────────────────────────────────────────────

func TestStockCreate_DosAltasIgualesDanDosFilas(t *testing.T) {
	ctx := context.Background()
	f := newStockFixture(t)
	form := f.form(f.motorsID, f.centerA, "Motor 2207", gofakeit.IntRange(0, 10000))

	id1, err := f.stocks.Create(ctx, form)
	require.NoError(t, err)
	id2, err := f.stocks.Create(ctx, form)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2, "el stock no tiene restricción de nombre único")

	got, err := f.stocks.GetByID(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, "Motores", got.CategoryName)
	assert.Equal(t, "Centro Tokio", got.CenterName)
	assert.Equal(t, *form.Amount, got.Amount)
	assert.Equal(t, int(entity.DeleteFlagActive), got.DeleteFlag)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
}

func TestStockCreate_CategoriaInexistenteNoInserta(t *testing.T) {
	ctx := context.Background()
	f := newStockFixture(t)

	_, err := f.stocks.Create(ctx, f.form(999, f.centerA, "Motor", 1))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.stocks.Create(ctx, f.form(f.motorsID, 999, "Motor", 1))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := f.stocks.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStockCreate_IDDelCliente(t *testing.T) {
	f := newStockFixture(t)
	form := f.form(f.motorsID, f.centerA, "Motor", 1)
	form.ID = idPtr(7)

	_, err := f.stocks.Create(context.Background(), form)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockCreate_LimitesDeCantidad(t *testing.T) {
	ctx := context.Background()
	f := newStockFixture(t)

	for _, ok := range []int{0, 10000} {
		_, err := f.stocks.Create(ctx, f.form(f.motorsID, f.centerA, "Motor", ok))
		assert.NoError(t, err, "cantidad %d", ok)
	}
	for _, bad := range []int{-1, 10001} {
		_, err := f.stocks.Create(ctx, f.form(f.motorsID, f.centerA, "Motor", bad))
		assert.ErrorIs(t, err, domain.ErrValidation, "cantidad %d", bad)
	}
}

func TestStockCreate_ErrorDeAlmacenSePropaga(t *testing.T) {
	ctx := context.Background()
	categories := &mocks.MockCategoryRepository{}
	centers := &mocks.MockStorageCenterRepository{}
	stocks := &mocks.MockStockItemRepository{}
	repos := usecase.Repositories{Categories: categories, Centers: centers, Stocks: stocks}
	uc := usecase.NewStockUseCase(repos, &mocks.PassthroughTx{Repos: repos}, &mocks.MockStockReportGenerator{})

	categories.On("GetByID", ctx, int64(1)).Return(&entity.Category{ID: 1, Name: "Motores"}, nil).Once()
	centers.On("GetByID", ctx, int64(2)).Return(&entity.StorageCenter{ID: 2, Name: "Centro"}, nil).Once()
	storeErr := domain.StoreError("stock_items.Create", errors.New("disco lleno"))
	stocks.On("Create", ctx, mock.AnythingOfType("*entity.StockItem")).Return(storeErr).Once()

	_, err := uc.Create(ctx, dto.StockForm{
		CategoryID: idPtr(1),
		CenterID:   idPtr(2),
		Name:       "Motor",
		Amount:     intPtr(3),
	})
	assert.ErrorIs(t, err, domain.ErrStore)
	categories.AssertExpectations(t)
	centers.AssertExpectations(t)
	stocks.AssertExpectations(t)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición y borrado lógico
// ──────────────────────────────────────────────────────────────────────────────

func TestStockUpdate_BorradoLogicoIdaYVuelta(t *testing.T) {
	ctx := context.Background()
	f := newStockFixture(t)
	id, err := f.stocks.Create(ctx, f.form(f.sensorsID, f.centerA, "Sensor óptico", 5))
	require.NoError(t, err)

	out, err := f.stocks.Update(ctx, dto.StockForm{ID: idPtr(id), DeleteFlag: true})
	require.NoError(t, err)
	assert.Equal(t, int(entity.DeleteFlagDeleted), out.DeleteFlag)
	assert.Equal(t, "Sensor óptico", out.Name)
	assert.True(t, out.UpdatedAt.After(out.CreatedAt))

	found, err := f.stocks.Search(ctx, dto.StockSearchForm{Name: "Sensor"})
	require.NoError(t, err)
	assert.Empty(t, found)

	got, err := f.stocks.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int(entity.DeleteFlagDeleted), got.DeleteFlag)
}

func TestStockUpdate_EdicionReemplazaCamposYReactiva(t *testing.T) {
	ctx := context.Background()
	f := newStockFixture(t)
	id, err := f.stocks.Create(ctx, f.form(f.motorsID, f.centerA, "Motor", 5))
	require.NoError(t, err)
	_, err = f.stocks.Update(ctx, dto.StockForm{ID: idPtr(id), DeleteFlag: true})
	require.NoError(t, err)

	form := f.form(f.sensorsID, f.centerB, "Sensor GPS", 42)
	form.ID = idPtr(id)
	out, err := f.stocks.Update(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, "Sensor GPS", out.Name)
	assert.Equal(t, form.Description, out.Description)
	assert.Equal(t, 42, out.Amount)
	assert.Equal(t, "Sensores", out.CategoryName)
	assert.Equal(t, "Centro Nagoya", out.CenterName)
	assert.Equal(t, int(entity.DeleteFlagActive), out.DeleteFlag)
}

func TestStockUpdate_ReferenciaInexistenteNoModifica(t *testing.T) {
	ctx := context.Background()
	f := newStockFixture(t)
	id, err := f.stocks.Create(ctx, f.form(f.motorsID, f.centerA, "Motor", 5))
	require.NoError(t, err)
	before, err := f.stocks.GetByID(ctx, id)
	require.NoError(t, err)

	form := f.form(f.motorsID, 999, "Motor nuevo", 6)
	form.ID = idPtr(id)
	_, err = f.stocks.Update(ctx, form)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	after, err := f.stocks.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, before, after, "sin escrituras parciales")
}

func TestStockUpdate_Inexistente(t *testing.T) {
	f := newStockFixture(t)
	form := f.form(f.motorsID, f.centerA, "Motor", 5)
	form.ID = idPtr(404)
	_, err := f.stocks.Update(context.Background(), form)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda, opciones y exportación
// ──────────────────────────────────────────────────────────────────────────────

func TestStockSearch_NombreSinOtrosFiltrosIgnoraCategoria(t *testing.T) {
	ctx := context.Background()
	f := newStockFixture(t)
	for _, in := range []struct {
		cat  int64
		name string
	}{
		{f.sensorsID, "Sensor óptico"},
		{f.motorsID, "Sensor de temperatura"},
		{f.motorsID, "Motor 2306"},
	} {
		_, err := f.stocks.Create(ctx, f.form(in.cat, f.centerA, in.name, 10))
		require.NoError(t, err)
	}

	found, err := f.stocks.Search(ctx, dto.StockSearchForm{Name: "Sensor"})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Sensor óptico", found[0].Name)
	assert.Equal(t, "Sensor de temperatura", found[1].Name)

	found, err = f.stocks.Search(ctx, dto.StockSearchForm{CategoryID: idPtr(f.motorsID), Name: "Sensor"})
	require.NoError(t, err)
	require.Len(t, found, 1)
}

func TestStockSearch_NombresResueltosEnCadaLlamada(t *testing.T) {
	ctx := context.Background()
	f := newStockFixture(t)
	id, err := f.stocks.Create(ctx, f.form(f.motorsID, f.centerA, "Motor", 1))
	require.NoError(t, err)

	_, err = f.categories.Update(ctx, dto.CategoryForm{ID: idPtr(f.motorsID), Name: "Motores BLDC"})
	require.NoError(t, err)

	got, err := f.stocks.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Motores BLDC", got.CategoryName)
}

func TestStockOptions(t *testing.T) {
	ctx := context.Background()
	f := newStockFixture(t)
	_, err := f.categories.Update(ctx, dto.CategoryForm{ID: idPtr(f.sensorsID), DeleteFlag: true})
	require.NoError(t, err)

	opts, err := f.stocks.Options(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dto.OptionItem{{ID: f.motorsID, Name: "Motores"}}, opts.Categories)
	assert.Len(t, opts.Centers, 2)
}

func TestStockExportPDF(t *testing.T) {
	ctx := context.Background()
	f := newStockFixture(t)
	_, err := f.stocks.Create(ctx, f.form(f.motorsID, f.centerA, "Motor 2207", 120))
	require.NoError(t, err)
	_, err = f.stocks.Create(ctx, f.form(f.motorsID, f.centerA, "Motor 1404", 5))
	require.NoError(t, err)

	pdf := []byte("%PDF-1.4")
	f.report.On("GenerateStockReport", ctx, mock.MatchedBy(func(r usecase.StockReport) bool {
		return len(r.Items) == 1 && r.Items[0].Name == "Motor 2207" && len(r.Filters) == 1
	})).Return(pdf, nil).Once()

	out, err := f.stocks.ExportPDF(ctx, &dto.StockSearchForm{Amount: intPtr(100), AmountCondition: dto.AmountConditionGreater})
	require.NoError(t, err)
	assert.Equal(t, pdf, out)
	f.report.AssertExpectations(t)
}

func TestStockExportPDF_FormularioInvalido(t *testing.T) {
	f := newStockFixture(t)
	_, err := f.stocks.ExportPDF(context.Background(), &dto.StockSearchForm{Name: "$"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	f.report.AssertNotCalled(t, "GenerateStockReport", mock.Anything, mock.Anything)
}
