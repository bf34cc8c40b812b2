package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/electrostock-api/internal/application/dto"
	"github.com/jhoicas/electrostock-api/internal/application/statistics"
)

// StatisticsHandler maneja las consultas de estadísticas (protegido, solo lectura).
type StatisticsHandler struct {
	uc *statistics.StatisticsUseCase
}

// NewStatisticsHandler construye el handler.
func NewStatisticsHandler(uc *statistics.StatisticsUseCase) *StatisticsHandler {
	return &StatisticsHandler{uc: uc}
}

// StockIn estadísticas de entradas; ?start=YYYY-MM-DD y ?end=YYYY-MM-DD opcionales.
func (h *StatisticsHandler) StockIn(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato de fecha: YYYY-MM-DD"})
	}
	out, err := h.uc.StockInStats(c.UserContext(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockOut estadísticas de salidas en un rango de fechas.
func (h *StatisticsHandler) StockOut(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato de fecha: YYYY-MM-DD"})
	}
	out, err := h.uc.StockOutStats(c.UserContext(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Sales estadísticas de ventas en un rango de fechas.
func (h *StatisticsHandler) Sales(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato de fecha: YYYY-MM-DD"})
	}
	out, err := h.uc.SaleStats(c.UserContext(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// parseDateRange lee ?start y ?end (YYYY-MM-DD). end es inclusivo: se
// traslada al inicio del día siguiente.
func parseDateRange(c *fiber.Ctx) (from, to *time.Time, err error) {
	if raw := c.Query("start"); raw != "" {
		t, perr := time.Parse("2006-01-02", raw)
		if perr != nil {
			return nil, nil, perr
		}
		from = &t
	}
	if raw := c.Query("end"); raw != "" {
		t, perr := time.Parse("2006-01-02", raw)
		if perr != nil {
			return nil, nil, perr
		}
		next := t.AddDate(0, 0, 1)
		to = &next
	}
	return from, to, nil
}
