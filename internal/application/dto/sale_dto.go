package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SellRequest body para POST /api/sales.
type SellRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// SaleRecordResponse una venta enriquecida para listados.
type SaleRecordResponse struct {
	ID          string          `json:"id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Salesman    string          `json:"salesman"`
	SaleTime    time.Time       `json:"sale_time"`
}
