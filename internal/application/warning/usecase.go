package warning

import (
	"github.com/jhoicas/electrostock-api/internal/application/dto"
	"github.com/jhoicas/electrostock-api/internal/domain/entity"
	"github.com/jhoicas/electrostock-api/internal/domain/repository"
)

// WarningUseCase evalúa advertencias de stock bajo: lectura pura sobre el
// catálogo, sin estado propio ni escrituras.
type WarningUseCase struct {
	productRepo      repository.ProductRepository
	defaultThreshold int
}

// NewWarningUseCase construye el evaluador. defaultThreshold viene de
// configuración (STOCK_WARNING_THRESHOLD) y se usa cuando la petición no
// envía umbral o envía uno negativo.
func NewWarningUseCase(productRepo repository.ProductRepository, defaultThreshold int) *WarningUseCase {
	return &WarningUseCase{productRepo: productRepo, defaultThreshold: defaultThreshold}
}

// GetWarningList devuelve los productos con stock <= umbral.
// Nivel 2 cuando el producto está agotado, nivel 1 cuando está bajo.
func (uc *WarningUseCase) GetWarningList(threshold *int) ([]dto.StockWarningResponse, error) {
	th := uc.defaultThreshold
	if threshold != nil && *threshold >= 0 {
		th = *threshold
	}
	products, err := uc.productRepo.ListAtOrBelowStock(th)
	if err != nil {
		return nil, err
	}
	warnings := make([]dto.StockWarningResponse, 0, len(products))
	for _, p := range products {
		level := entity.WarningLevelLow
		if p.Stock == 0 {
			level = entity.WarningLevelEmpty
		}
		warnings = append(warnings, dto.StockWarningResponse{
			ProductID:   p.ID,
			ProductName: p.Name,
			Stock:       p.Stock,
			Threshold:   th,
			Level:       level,
		})
	}
	return warnings, nil
}
