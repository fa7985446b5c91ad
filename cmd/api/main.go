package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/jhoicas/drone-inventory/internal/application/auth"
	"github.com/jhoicas/drone-inventory/internal/application/usecase"
	"github.com/jhoicas/drone-inventory/internal/domain/repository"
	"github.com/jhoicas/drone-inventory/internal/infrastructure/centercsv"
	"github.com/jhoicas/drone-inventory/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/drone-inventory/internal/infrastructure/pdf"
	"github.com/jhoicas/drone-inventory/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/drone-inventory/internal/interfaces/http"
	"github.com/jhoicas/drone-inventory/pkg/config"
	"github.com/jhoicas/drone-inventory/pkg/logger"
)

// store almacén elegido por STORE_DRIVER.
type store struct {
	repos  usecase.Repositories
	tx     usecase.TxRunner
	admins repository.AdminRepository
	close  func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store.Driver).Msg("inicializar almacén")
	}
	defer st.close()

	authUC := auth.NewAuthUseCase(st.admins, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if cfg.Admin.ID != "" {
		created, err := authUC.EnsureAdmin(ctx, cfg.Admin.ID, cfg.Admin.Name, cfg.Admin.Password)
		if err != nil {
			log.Fatal().Err(err).Str("admin_id", cfg.Admin.ID).Msg("crear administrador inicial")
		}
		if created {
			log.Info().Str("admin_id", cfg.Admin.ID).Msg("administrador inicial creado")
		}
	}

	categoryUC := usecase.NewCategoryUseCase(st.repos.Categories, st.tx)
	centerUC := usecase.NewStorageCenterUseCase(st.repos.Centers)
	report := infrapdf.NewMarotoStockReport(cfg.App.Name)
	if cfg.PDF.FontFile != "" {
		if err := report.LoadUTF8FontFile(cfg.PDF.FontFile); err != nil {
			log.Fatal().Err(err).Str("file", cfg.PDF.FontFile).Msg("cargar fuente del PDF")
		}
	} else {
		log.Warn().Msg("PDF_FONT_FILE vacío: el listado PDF usa helvetica y no muestra japonés")
	}
	stockUC := usecase.NewStockUseCase(st.repos, st.tx, report)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Swagger.File); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.File,
			Path:     "docs",
			Title:    "Drone Inventory API",
		}))
	} else {
		log.Debug().Str("file", cfg.Swagger.File).Msg("swagger deshabilitado: archivo no encontrado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CategoryUC: categoryUC,
		CenterUC:   centerUC,
		StockUC:    stockUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*store, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		mem := memory.NewStore()
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		if err := seedMemoryCenters(mem, cfg.Store.SeedCenters, log); err != nil {
			return nil, err
		}
		return &store{
			repos:  mem.Repositories(),
			tx:     mem,
			admins: mem.Admins(),
			close:  func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.Store.AutoMigrate {
		// El *sql.DB comparte el pool; no se cierra aquí.
		if err := postgres.NewMigrator(stdlib.OpenDBFromPool(pool)).Up(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("migraciones aplicadas")
	}

	return &store{
		repos:  postgres.Repositories(pool),
		tx:     postgres.NewTxRunner(pool),
		admins: postgres.NewAdminRepository(pool),
		close:  pool.Close,
	}, nil
}

// seedMemoryCenters carga los centros del CSV; sin ellos no se puede dar de alta stock.
func seedMemoryCenters(mem *memory.Store, path string, log *logger.Logger) error {
	if path == "" {
		log.Warn().Msg("STORE_SEED_CENTERS vacío: el almacén en memoria arranca sin centros")
		return nil
	}
	centers, err := centercsv.Load(path)
	if err != nil {
		return err
	}
	now := time.Now()
	for i := range centers {
		centers[i].CreatedAt = now
		centers[i].UpdatedAt = now
	}
	mem.SeedCenters(centers...)
	log.Info().Str("file", path).Int("centers", len(centers)).Msg("centros cargados")
	return nil
}
