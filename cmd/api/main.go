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

	"github.com/jhoicas/Abasto-api/internal/application/alerts"
	"github.com/jhoicas/Abasto-api/internal/application/auth"
	"github.com/jhoicas/Abasto-api/internal/application/catalog"
	"github.com/jhoicas/Abasto-api/internal/application/inventory"
	"github.com/jhoicas/Abasto-api/internal/application/reports"
	"github.com/jhoicas/Abasto-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Abasto-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Abasto-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Abasto-api/internal/interfaces/http"
	"github.com/jhoicas/Abasto-api/pkg/config"
	"github.com/jhoicas/Abasto-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	changeRepo := postgres.NewInventoryChangeRepository(pool)

	txRunner := postgres.NewTxRunner(pool)
	catalogTxRunner := postgres.NewCatalogTxRunner(pool)

	createProductUC := catalog.NewCreateProductUseCase(catalogTxRunner, productRepo, warehouseRepo)
	registerChangeUC := inventory.NewRegisterChangeUseCase(txRunner, productRepo, warehouseRepo)

	// Motor de alertas de stock bajo: actividad reciente + foto de inventario
	// + umbral en cadena (producto → categoría → global) + proveedor primario.
	activityAnalyzer, err := alerts.NewSalesActivityAnalyzer(changeRepo, cfg.Alerts.WindowDays)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración del analizador de actividad")
	}
	alertEngine := alerts.NewLowStockAlertEngine(
		productRepo,
		activityAnalyzer,
		alerts.NewInventorySnapshotProvider(inventoryRepo),
		alerts.NewChainThresholdResolver(productRepo, categoryRepo, cfg.Alerts.DefaultThreshold),
		alerts.NewPrimarySupplierResolver(supplierRepo),
	)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	lowStockReportUC := reports.NewLowStockReportUseCase(alertEngine, pdfGenerator, companyRepo)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, productRepo)
	moduleSvc := usecase.NewModuleService(companyRepo)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	alertHandler := httpRouter.NewAlertHandler(alertEngine, lowStockReportUC, companyRepo, log)

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
		Title:    "Abasto API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:      companyUC,
		WarehouseUC:    warehouseUC,
		CategoryUC:     categoryUC,
		ProductUC:      productUC,
		SupplierUC:     supplierUC,
		CreateProduct:  createProductUC,
		RegisterChange: registerChangeUC,
		AuthUC:         authUC,
		Modules:        moduleSvc,
		AlertHandler:   alertHandler,
		JWTSecret:      cfg.JWT.Secret,
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

	log.Info().Msg("servidor detenido")
}
