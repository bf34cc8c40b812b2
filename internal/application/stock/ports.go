package stock

import (
	"context"

	"github.com/jhoicas/electrostock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la escritura del registro y el
// ajuste de stock se confirmen (o reviertan) como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		stockInRepo repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
	) error) error
}
