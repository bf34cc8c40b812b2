package sale

import (
	"context"

	"github.com/jhoicas/electrostock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de venta atados a esa tx.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
