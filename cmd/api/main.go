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
	"github.com/tu-usuario/resto-crm/internal/application/analytics"
	"github.com/tu-usuario/resto-crm/internal/application/auth"
	"github.com/tu-usuario/resto-crm/internal/application/ledger"
	"github.com/tu-usuario/resto-crm/internal/application/usecase"
	infrapdf "github.com/tu-usuario/resto-crm/internal/infrastructure/pdf"
	"github.com/tu-usuario/resto-crm/internal/infrastructure/postgres"
	"github.com/tu-usuario/resto-crm/internal/infrastructure/storage"
	httpRouter "github.com/tu-usuario/resto-crm/internal/interfaces/http"
	"github.com/tu-usuario/resto-crm/pkg/config"
	"github.com/tu-usuario/resto-crm/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: "resto-crm",
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

	if err := postgres.ApplyMigrations(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	stockItemRepo := postgres.NewStockItemRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	balanceRepo := postgres.NewStockBalanceRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	writeOffRepo := postgres.NewWriteOffRepository(pool)
	inventoryRepo := postgres.NewInventoryDocRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	tableRepo := postgres.NewTableRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	deliveryRepo := postgres.NewDeliveryOrderRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	jobAppRepo := postgres.NewJobApplicationRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	stockItemUC := usecase.NewStockItemUseCase(stockItemRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	movementUC := ledger.NewMovementUseCase(txRunner, stockItemRepo, warehouseRepo, balanceRepo, movementRepo)
	documentsUC := ledger.NewDocumentsUseCase(
		txRunner, purchaseRepo, transferRepo, writeOffRepo, inventoryRepo,
		stockItemRepo, warehouseRepo, supplierRepo, balanceRepo,
	)
	catalogUC := usecase.NewCatalogUseCase(categoryRepo, productRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, tableRepo, productRepo)
	deliveryUC := usecase.NewDeliveryUseCase(deliveryRepo, productRepo, employeeRepo, customerRepo)
	cartUC := usecase.NewCartUseCase(cartRepo, productRepo, txRunner)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	jobAppUC := usecase.NewJobApplicationUseCase(jobAppRepo)
	reviewUC := usecase.NewReviewUseCase(reviewRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)

	photos, err := storage.NewLocalStore(cfg.Uploads)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de archivos")
	}
	receipts := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)

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
		Title:    cfg.App.Name + " API",
	}))

	// Archivos subidos (imágenes de productos, fotos)
	app.Static(cfg.Uploads.PublicURL, photos.Dir())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		StockItemUC: stockItemUC,
		WarehouseUC: warehouseUC,
		SupplierUC:  supplierUC,
		MovementUC:  movementUC,
		DocumentsUC: documentsUC,
		CatalogUC:   catalogUC,
		OrderUC:     orderUC,
		DeliveryUC:  deliveryUC,
		CartUC:      cartUC,
		CustomerUC:  customerUC,
		JobAppUC:    jobAppUC,
		ReviewUC:    reviewUC,
		EmployeeUC:  employeeUC,
		UserUC:      userUC,
		DashboardUC: dashboardUC,
		Receipts:    receipts,
		Photos:      photos,
		JWTSecret:   cfg.JWT.Secret,
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
