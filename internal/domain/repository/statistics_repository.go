package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerStatResult una fila de estadística por registro del libro
// (cada movimiento individual, sin agregación por fecha).
type LedgerStatResult struct {
	Label       string // fecha ISO del movimiento
	ProductName string
	Count       int
	TotalAmount decimal.Decimal // 0 para entradas/salidas, total de la venta para ventas
}

// StatisticsRepository consultas de solo lectura sobre los libros de inventario.
// Consumidor puro de los ledgers: nunca escribe stock.
type StatisticsRepository interface {
	StockInStats(ctx context.Context, from, to *time.Time) ([]LedgerStatResult, error)
	StockOutStats(ctx context.Context, from, to *time.Time) ([]LedgerStatResult, error)
	SaleStats(ctx context.Context, from, to *time.Time) ([]LedgerStatResult, error)
}
