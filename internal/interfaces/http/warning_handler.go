package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/electrostock-api/internal/application/dto"
	"github.com/jhoicas/electrostock-api/internal/application/warning"
)

// WarningHandler maneja las peticiones HTTP de advertencias de stock (protegido).
type WarningHandler struct {
	uc *warning.WarningUseCase
}

// NewWarningHandler construye el handler.
func NewWarningHandler(uc *warning.WarningUseCase) *WarningHandler {
	return &WarningHandler{uc: uc}
}

// List devuelve los productos con stock en o por debajo del umbral.
// ?threshold=N sobrescribe el umbral configurado.
func (h *WarningHandler) List(c *fiber.Ctx) error {
	var threshold *int
	if raw := c.Query("threshold"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "threshold debe ser un entero"})
		}
		threshold = &n
	}
	out, err := h.uc.GetWarningList(threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
