package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jhoicas/turnover-api/docs" // spec generado por swag init
	"github.com/jhoicas/turnover-api/internal/application/analytics"
	appsync "github.com/jhoicas/turnover-api/internal/application/sync"
	"github.com/jhoicas/turnover-api/internal/infrastructure/postgres"
	"github.com/jhoicas/turnover-api/internal/infrastructure/wms"
	httpRouter "github.com/jhoicas/turnover-api/internal/interfaces/http"
	"github.com/jhoicas/turnover-api/pkg/config"
	"github.com/jhoicas/turnover-api/pkg/logger"
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

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	capacityRepo := postgres.NewCapacityRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	feeRepo := postgres.NewFeeRepository(pool)
	syncLogRepo := postgres.NewSyncLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	wmsClient := wms.NewClient(cfg.WMS)
	orchestrator := appsync.NewOrchestrator(
		wmsClient, txRunner, syncLogRepo, productRepo, cfg.WMS, cfg.Sync, log,
	)
	scheduler := appsync.NewScheduler(orchestrator, cfg.Sync, log)

	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)
	analyticsUC := analytics.NewAnalyticsUseCase(analyticsRepo, cfg.Warehouses)
	warehouseUC := analytics.NewWarehouseUseCase(analyticsRepo, capacityRepo, cfg.Warehouses)
	feeUC := analytics.NewFeeReportUseCase(feeRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	// CORS abierto: el tablero web consume este API desde otro origen.
	app.Use(cors.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Turnover API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC:  dashboardUC,
		AnalyticsUC:  analyticsUC,
		WarehouseUC:  warehouseUC,
		FeeUC:        feeUC,
		Orchestrator: orchestrator,
		UploadDir:    cfg.Sync.UploadDir,
	})

	schedCtx, stopScheduler := context.WithCancel(ctx)
	defer stopScheduler()
	go scheduler.Run(schedCtx)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopScheduler()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
