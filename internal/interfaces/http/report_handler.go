package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/reports"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// ReportHandler maneja las peticiones HTTP de reportes (solo lectura).
type ReportHandler struct {
	reports *reports.ReportsUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportsUseCase) *ReportHandler {
	return &ReportHandler{reports: uc}
}

// ListTransactions godoc
// @Summary      Reporte de transacciones (entradas y salidas)
// @Tags         reports
// @Produce      json
// @Param        item_id  query  string  false  "Filtrar por ítem"
// @Success      200  {array}  dto.TransactionDTO
// @Router       /api/reports/transactions [get]
func (h *ReportHandler) ListTransactions(c *fiber.Ctx) error {
	out, err := h.reports.ListTransactions(c.Context(), c.Query("item_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportTransactionsXLSX godoc
// @Summary      Reporte de transacciones como Excel
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        item_id  query  string  false  "Filtrar por ítem"
// @Success      200  {file}  binary
// @Router       /api/reports/transactions/xlsx [get]
func (h *ReportHandler) ExportTransactionsXLSX(c *fiber.Ctx) error {
	data, err := h.reports.ExportTransactionsXLSX(c.Context(), c.Query("item_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="transacciones.xlsx"`)
	return c.Send(data)
}

// ListPurchaseNeeds godoc
// @Summary      Reporte de compras pendientes
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.PurchaseNeedDTO
// @Router       /api/reports/purchase-needs [get]
func (h *ReportHandler) ListPurchaseNeeds(c *fiber.Ctx) error {
	out, err := h.reports.ListPurchaseNeeds(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PurchaseNeedsPDF godoc
// @Summary      Lista de compras imprimible (PDF)
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/purchase-needs/pdf [get]
func (h *ReportHandler) PurchaseNeedsPDF(c *fiber.Ctx) error {
	data, err := h.reports.PurchaseNeedsPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="lista-compras.pdf"`)
	return c.Send(data)
}

// ItemHistory godoc
// @Summary      Historial de cambios de un ítem
// @Tags         reports
// @Produce      json
// @Param        id   path  string  true  "ID del ítem"
// @Success      200  {array}   dto.HistoryEntryDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/history [get]
func (h *ReportHandler) ItemHistory(c *fiber.Ctx) error {
	out, err := h.reports.ListItemHistory(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
