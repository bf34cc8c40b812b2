package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/electrostock-api/internal/application/dto"
	"github.com/jhoicas/electrostock-api/internal/application/usecase"
)

// ProductTypeHandler maneja las peticiones HTTP de tipos de producto (protegido).
type ProductTypeHandler struct {
	uc *usecase.ProductTypeUseCase
}

// NewProductTypeHandler construye el handler.
func NewProductTypeHandler(uc *usecase.ProductTypeUseCase) *ProductTypeHandler {
	return &ProductTypeHandler{uc: uc}
}

// Create crea un tipo de producto.
func (h *ProductTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.TypeName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type_name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devuelve todos los tipos.
func (h *ProductTypeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update renombra un tipo existente.
func (h *ProductTypeHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ProductTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un tipo de producto.
func (h *ProductTypeHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "tipo eliminado"})
}
