package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/electrostock-api/internal/application/dto"
	"github.com/jhoicas/electrostock-api/internal/application/stock"
)

// StockHandler maneja las peticiones HTTP de entradas y salidas de mercancía
// (protegido). El operador se toma del token, nunca del body.
type StockHandler struct {
	uc *stock.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// StockIn registra una entrada de mercancía y suma el stock.
func (h *StockHandler) StockIn(c *fiber.Ctx) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.StockIn(c.UserContext(), GetUserID(c), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "entrada registrada"})
}

// StockOut registra una salida de mercancía y descuenta el stock.
func (h *StockHandler) StockOut(c *fiber.Ctx) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.StockOut(c.UserContext(), GetUserID(c), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "salida registrada"})
}

// StockInRecords lista las entradas, más recientes primero.
func (h *StockHandler) StockInRecords(c *fiber.Ctx) error {
	out, err := h.uc.StockInRecords()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockOutRecords lista las salidas, más recientes primero.
func (h *StockHandler) StockOutRecords(c *fiber.Ctx) error {
	out, err := h.uc.StockOutRecords()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStockIn corrige la cantidad de una entrada; el stock se compensa por
// la diferencia.
func (h *StockHandler) UpdateStockIn(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateStockIn(c.UserContext(), id, in.Quantity); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "entrada corregida"})
}

// DeleteStockIn elimina una entrada revirtiendo su efecto en el stock.
func (h *StockHandler) DeleteStockIn(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.DeleteStockIn(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "entrada eliminada"})
}

// UpdateStockOut corrige la cantidad de una salida; el stock se compensa con
// signo invertido.
func (h *StockHandler) UpdateStockOut(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateStockOut(c.UserContext(), id, in.Quantity); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "salida corregida"})
}

// DeleteStockOut elimina una salida devolviendo la mercancía al stock.
func (h *StockHandler) DeleteStockOut(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.DeleteStockOut(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "salida eliminada"})
}
