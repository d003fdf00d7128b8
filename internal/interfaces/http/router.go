package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/reports"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC         *usecase.ItemUseCase
	LedgerUC       *inventory.LedgerUseCase
	ReportsUC      *reports.ReportsUseCase
	MetricsEnabled bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	itemHandler := NewItemHandler(deps.ItemUC, deps.LedgerUC)
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	reportHandler := NewReportHandler(deps.ReportsUC)

	// Items
	items := api.Group("/items")
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Get("/:id/history", reportHandler.ItemHistory)

	// Libro de movimientos
	api.Post("/additions", ledgerHandler.RecordAddition)
	api.Post("/withdrawals", ledgerHandler.RecordWithdrawal)

	// Reportes
	rep := api.Group("/reports")
	rep.Get("/transactions", reportHandler.ListTransactions)
	rep.Get("/transactions/xlsx", reportHandler.ExportTransactionsXLSX)
	rep.Get("/purchase-needs", reportHandler.ListPurchaseNeeds)
	rep.Get("/purchase-needs/pdf", reportHandler.PurchaseNeedsPDF)

	if deps.MetricsEnabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}
}
