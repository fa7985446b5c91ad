package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/drone-inventory/internal/application/auth"
	"github.com/jhoicas/drone-inventory/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CategoryUC *usecase.CategoryUseCase
	CenterUC   *usecase.StorageCenterUseCase
	StockUC    *usecase.StockUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/search", categoryHandler.Search)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", categoryHandler.Create)
	categories.Patch("/:id", categoryHandler.Update)

	centers := protected.Group("/centers")
	centerHandler := NewCenterHandler(deps.CenterUC)
	centers.Get("/", centerHandler.List)
	centers.Get("/search", centerHandler.Search)
	centers.Get("/:id", centerHandler.GetByID)

	stocks := protected.Group("/stocks")
	stockHandler := NewStockHandler(deps.StockUC)
	stocks.Get("/", stockHandler.List)
	stocks.Get("/options", stockHandler.Options)
	stocks.Get("/search", stockHandler.Search)
	stocks.Get("/export", stockHandler.Export)
	stocks.Get("/:id", stockHandler.GetByID)
	stocks.Post("/", stockHandler.Create)
	stocks.Patch("/:id", stockHandler.Update)
}
