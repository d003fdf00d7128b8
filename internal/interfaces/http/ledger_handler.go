package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// LedgerHandler maneja las peticiones HTTP de entradas y salidas de stock.
type LedgerHandler struct {
	ledger *inventory.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(ledger *inventory.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

// RecordAddition godoc
// @Summary      Registrar entrada de stock
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdditionRequest  true  "item_id, quantity_added (> 0), purchase_date (YYYY-MM-DD), received_by"
// @Success      201   {object}  dto.AdditionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/additions [post]
func (h *LedgerHandler) RecordAddition(c *fiber.Ctx) error {
	var in dto.AdditionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ledger.RecordAddition(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RecordWithdrawal godoc
// @Summary      Registrar salida de stock
// @Description  Falla con 409 si la cantidad pedida supera el stock actual;
//               en ese caso no se persiste nada.
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WithdrawalRequest  true  "item_id, quantity_withdrawn (> 0), withdrawal_date (YYYY-MM-DD), withdrawn_by, department"
// @Success      201   {object}  dto.WithdrawalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/withdrawals [post]
func (h *LedgerHandler) RecordWithdrawal(c *fiber.Ctx) error {
	var in dto.WithdrawalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ledger.RecordWithdrawal(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
