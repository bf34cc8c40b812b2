package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// Stock es el inventario inicial (baseline); después de creado solo se
// muta vía movimientos.
type CreateProductRequest struct {
	Name   string          `json:"name"`
	TypeID string          `json:"type_id"`
	Price  decimal.Decimal `json:"price"`
	Stock  int             `json:"stock"`
	Status *int            `json:"status,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. No incluye stock:
// el stock solo cambia por movimientos del inventario.
type UpdateProductRequest struct {
	Name   string           `json:"name"`
	TypeID string           `json:"type_id"`
	Price  *decimal.Decimal `json:"price,omitempty"`
	Status *int             `json:"status,omitempty"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	TypeID    string          `json:"type_id"`
	TypeName  string          `json:"type_name,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Status    int             `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// ProductTypeRequest body para crear/actualizar un tipo de producto.
type ProductTypeRequest struct {
	TypeName string `json:"type_name"`
}

// ProductTypeResponse representación de un tipo de producto.
type ProductTypeResponse struct {
	ID       string `json:"id"`
	TypeName string `json:"type_name"`
}
