package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/electrostock-api/internal/application/dto"
	"github.com/jhoicas/electrostock-api/internal/application/sale"
)

// SaleHandler maneja las peticiones HTTP de ventas (protegido). El vendedor
// se toma del token.
type SaleHandler struct {
	uc *sale.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sale.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Sell registra una venta: descuenta el stock y congela el total.
func (h *SaleHandler) Sell(c *fiber.Ctx) error {
	var in dto.SellRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Sell(c.UserContext(), GetUserID(c), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "venta registrada"})
}

// Records lista las ventas, más recientes primero.
func (h *SaleHandler) Records(c *fiber.Ctx) error {
	out, err := h.uc.SaleRecords()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update corrige la cantidad de una venta; el stock se compensa y el total se
// recalcula con el precio vigente.
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateSale(c.UserContext(), id, in.Quantity); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "venta corregida"})
}

// Delete elimina una venta devolviendo la mercancía al stock.
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.DeleteSale(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "venta eliminada"})
}
