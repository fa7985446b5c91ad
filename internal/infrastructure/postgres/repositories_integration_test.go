//go:build integration

package postgres_test

import (
	"errors"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jhoicas/drone-inventory/internal/application/dto"
	"github.com/jhoicas/drone-inventory/internal/application/search"
	"github.com/jhoicas/drone-inventory/internal/application/usecase"
	"github.com/jhoicas/drone-inventory/internal/domain"
	"github.com/jhoicas/drone-inventory/internal/domain/entity"
	"github.com/jhoicas/drone-inventory/internal/infrastructure/postgres"
)

var _ = Describe("Repositorios PostgreSQL", func() {
	var (
		repos usecase.Repositories
		tx    *postgres.TxRunner
		now   time.Time
	)

	BeforeEach(func() {
		repos = postgres.Repositories(pool)
		tx = postgres.NewTxRunner(pool)
		now = time.Now().UTC().Truncate(time.Microsecond)
	})

	newCategory := func(name string) *entity.Category {
		c := &entity.Category{Name: name, CreatedAt: now, UpdatedAt: now}
		Expect(repos.Categories.Create(ctx, c)).To(Succeed())
		return c
	}

	Context("categorías", func() {
		It("asigna IDs y rechaza nombres repetidos incluso borrados", func() {
			By("creando la categoría")
			c := newCategory("Motores")
			Expect(c.ID).To(Equal(int64(1)))

			By("borrándola lógicamente")
			c.DeleteFlag = entity.DeleteFlagDeleted
			Expect(repos.Categories.Update(ctx, c)).To(Succeed())

			By("intentando reutilizar el nombre")
			err := repos.Categories.Create(ctx, &entity.Category{Name: "Motores", CreatedAt: now, UpdatedAt: now})
			Expect(errors.Is(err, domain.ErrDuplicate)).To(BeTrue())

			got, err := repos.Categories.GetByName(ctx, "Motores")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.DeleteFlag).To(Equal(entity.DeleteFlagDeleted))
		})

		It("devuelve nil sin error cuando no hay fila", func() {
			got, err := repos.Categories.GetByID(ctx, 404)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeNil())
		})

		It("indica el ID al actualizar una categoría inexistente", func() {
			err := repos.Categories.Update(ctx, &entity.Category{ID: 999, Name: "Fantasma", UpdatedAt: now})
			Expect(errors.Is(err, domain.ErrNotFound)).To(BeTrue())
			Expect(err).To(MatchError(ContainSubstring("categoría 999")))
		})

		It("filtra por subcadena sin interpretar comodines", func() {
			newCategory("100%")
			newCategory("1000")
			found, err := repos.Categories.Find(ctx, search.CategoryPredicate(dto.CategorySearchForm{Name: "0%"}))
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(HaveLen(1))
			Expect(found[0].Name).To(Equal("100%"))
		})
	})

	Context("centros", func() {
		It("aplica las cotas de capacidad solo cuando vienen informadas", func() {
			seedCenter("Centro Tokio", "東京都", 0, 0)
			seedCenter("Centro Osaka", "大阪府", 500, 0)
			seedCenter("Centro Sapporo", "北海道", 800, 1)

			from := 100
			found, err := repos.Centers.Find(ctx, search.CenterPredicate(dto.CenterSearchForm{CapacityFrom: &from}))
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(HaveLen(1))
			Expect(found[0].Region).To(Equal("大阪府"))
		})
	})

	Context("stock", func() {
		var cat *entity.Category
		var centerID int64

		BeforeEach(func() {
			cat = newCategory("Sensores")
			centerID = seedCenter("Centro Tokio", "東京都", 10, 0)
		})

		It("traduce la clave foránea rota a ErrNotFound", func() {
			err := repos.Stocks.Create(ctx, &entity.StockItem{
				CategoryID: cat.ID, CenterID: 999, Name: "Sensor", Amount: 1, CreatedAt: now, UpdatedAt: now,
			})
			Expect(errors.Is(err, domain.ErrNotFound)).To(BeTrue())
		})

		It("indica el ID al actualizar un artículo inexistente", func() {
			err := repos.Stocks.Update(ctx, &entity.StockItem{
				ID: 999, CategoryID: cat.ID, CenterID: centerID, Name: "Sensor", Amount: 1, UpdatedAt: now,
			})
			Expect(errors.Is(err, domain.ErrNotFound)).To(BeTrue())
			Expect(err).To(MatchError(ContainSubstring("artículo 999")))
		})

		It("revierte la transacción si el callback falla", func() {
			boom := errors.New("boom")
			err := tx.Run(ctx, func(r usecase.Repositories) error {
				Expect(r.Stocks.Create(ctx, &entity.StockItem{
					CategoryID: cat.ID, CenterID: centerID, Name: "Sensor", Amount: 1, CreatedAt: now, UpdatedAt: now,
				})).To(Succeed())
				return boom
			})
			Expect(err).To(MatchError(boom))

			found, err := repos.Stocks.Find(ctx, search.ActiveStocks())
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeEmpty())
		})

		It("filtra por cantidad con la condición indicada", func() {
			for _, amount := range []int{0, 50, 10000} {
				Expect(repos.Stocks.Create(ctx, &entity.StockItem{
					CategoryID: cat.ID, CenterID: centerID, Name: gofakeit.LetterN(8), Amount: amount,
					CreatedAt: now, UpdatedAt: now,
				})).To(Succeed())
			}
			amount := 50
			found, err := repos.Stocks.Find(ctx, search.StockPredicate(dto.StockSearchForm{
				Amount: &amount, AmountCondition: dto.AmountConditionGreater,
			}))
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(HaveLen(2))
			Expect(found[0].ID).To(BeNumerically("<", found[1].ID))

			found, err = repos.Stocks.Find(ctx, search.StockPredicate(dto.StockSearchForm{
				Amount: &amount, AmountCondition: "igual",
			}))
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(HaveLen(3))
		})
	})

	Context("administradores", func() {
		It("guarda y recupera por admin_id", func() {
			admins := postgres.NewAdminRepository(pool)
			Expect(admins.Create(ctx, &entity.Admin{
				AdminID: "root", Name: "Root", PasswordHash: "x", CreatedAt: now, UpdatedAt: now,
			})).To(Succeed())
			err := admins.Create(ctx, &entity.Admin{AdminID: "root", Name: "Root", PasswordHash: "x"})
			Expect(errors.Is(err, domain.ErrDuplicate)).To(BeTrue())

			got, err := admins.GetByAdminID(ctx, "root")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("Root"))
		})
	})
})
