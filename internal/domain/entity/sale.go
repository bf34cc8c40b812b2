package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta de producto.
// TotalPrice es una instantánea de precio unitario × cantidad tomada al crear
// la venta; al editar la cantidad se recalcula con el precio vigente del catálogo.
type Sale struct {
	ID         string
	ProductID  string
	Quantity   int // siempre > 0
	TotalPrice decimal.Decimal
	SalesmanID string
	SaleTime   time.Time
}

// SaleRecord vista enriquecida de una venta para listados.
type SaleRecord struct {
	ID          string
	ProductName string
	Quantity    int
	TotalPrice  decimal.Decimal
	Salesman    string
	SaleTime    time.Time
}
