package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/turnover-api/internal/application/analytics"
	appsync "github.com/jhoicas/turnover-api/internal/application/sync"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC  *analytics.DashboardUseCase
	AnalyticsUC  *analytics.AnalyticsUseCase
	WarehouseUC  *analytics.WarehouseUseCase
	FeeUC        *analytics.FeeReportUseCase
	Orchestrator *appsync.Orchestrator
	UploadDir    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Analítica (lectura)
	analyticsGroup := api.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.DashboardUC, deps.AnalyticsUC, deps.FeeUC)
	analyticsGroup.Get("/dashboard", analyticsHandler.GetDashboard)
	analyticsGroup.Get("/volume", analyticsHandler.GetVolume)
	analyticsGroup.Get("/turnover", analyticsHandler.GetTurnover)
	analyticsGroup.Get("/customers", analyticsHandler.GetCustomers)
	analyticsGroup.Get("/skus", analyticsHandler.GetSKUs)
	analyticsGroup.Get("/warehouses", analyticsHandler.GetWarehouses)
	analyticsGroup.Get("/fees", analyticsHandler.GetFees)

	// Sincronización (disparos + bitácora)
	syncGroup := api.Group("/sync")
	syncHandler := NewSyncHandler(deps.Orchestrator, deps.UploadDir)
	syncGroup.Post("/outbound", syncHandler.StartOutbound)
	syncGroup.Post("/inbound", syncHandler.StartInbound)
	syncGroup.Post("/products", syncHandler.StartProducts)
	syncGroup.Post("/invlog", syncHandler.StartInvLog)
	syncGroup.Post("/daily", syncHandler.StartDaily)
	syncGroup.Post("/excel-upload", syncHandler.UploadExcel)
	syncGroup.Get("/logs", syncHandler.GetLogs)

	// Bodegas (capacidad y ocupación)
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/capacities", warehouseHandler.ListCapacities)
	warehouses.Put("/capacities", warehouseHandler.SetCapacity)
	warehouses.Get("/utilization", warehouseHandler.GetUtilization)
}
