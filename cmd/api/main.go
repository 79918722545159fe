package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tu-usuario/almacen-pro/internal/application/auth"
	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
	infraexcel "github.com/tu-usuario/almacen-pro/internal/infrastructure/excel"
	infrapdf "github.com/tu-usuario/almacen-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/almacen-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/almacen-pro/internal/interfaces/http"
	"github.com/tu-usuario/almacen-pro/pkg/config"
	"github.com/tu-usuario/almacen-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Msg("migraciones aplicadas")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo, supplierRepo, warehouseRepo)
	movementQueryUC := inventory.NewMovementQueryUseCase(
		movementRepo, productRepo,
		infraexcel.NewMovementExporter(),
		infrapdf.NewKardexGenerator(),
	)
	productUC := usecase.NewProductUseCase(productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, productRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo)
	reportUC := usecase.NewReportUseCase(reportRepo)
	authUC := auth.NewUseCase(userRepo, auth.TokenConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if cfg.Metrics.Enabled {
		app.Get(cfg.Metrics.Path, adaptor.HTTPHandler(promhttp.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		SupplierUC:       supplierUC,
		WarehouseUC:      warehouseUC,
		CatalogUC:        catalogUC,
		ReportUC:         reportUC,
		RegisterMovement: registerMovementUC,
		MovementQuery:    movementQueryUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
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
