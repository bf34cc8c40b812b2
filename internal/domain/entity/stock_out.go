package entity

import "time"

// StockOut representa una salida de mercancía del inventario (no ligada a venta).
// Simétrico a StockIn pero con efecto negativo sobre el stock.
type StockOut struct {
	ID         string
	ProductID  string
	Quantity   int // siempre > 0
	OperatorID string
	OutTime    time.Time
}

// StockOutRecord vista enriquecida de una salida para listados.
type StockOutRecord struct {
	ID          string
	ProductName string
	Quantity    int
	Operator    string
	OutTime     time.Time
}
