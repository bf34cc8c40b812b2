package dto

import "github.com/shopspring/decimal"

// StatisticsEntryResponse una fila de estadística (un registro del libro).
type StatisticsEntryResponse struct {
	Label       string          `json:"label"` // fecha ISO del movimiento
	ProductName string          `json:"product_name"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
