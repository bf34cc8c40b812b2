package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de producto. El estado no bloquea movimientos de inventario;
// solo controla la visibilidad en el catálogo.
const (
	ProductStatusInactive = 0
	ProductStatusActive   = 1
)

// Product representa un electrodoméstico del catálogo con su stock actual.
// Stock es la única fuente de verdad de existencias y se muta exclusivamente
// a través de ProductRepository.AdjustStock; el resto de campos son del catálogo.
type Product struct {
	ID        string
	Name      string
	TypeID    string
	TypeName  string // se rellena con JOIN a product_types, no se persiste aquí
	Price     decimal.Decimal
	Stock     int
	Status    int
	CreatedAt time.Time
}
