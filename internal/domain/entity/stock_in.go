package entity

import "time"

// StockIn representa una entrada de mercancía al inventario.
// El único campo editable después de creado es Quantity; editarlo o borrar
// la fila aplica un ajuste compensatorio sobre el stock del producto.
type StockIn struct {
	ID         string
	ProductID  string
	Quantity   int // siempre > 0
	OperatorID string
	InTime     time.Time
}

// StockInRecord vista enriquecida de una entrada para listados
// (nombre de producto y de operador resueltos por JOIN).
type StockInRecord struct {
	ID          string
	ProductName string
	Quantity    int
	Operator    string
	InTime      time.Time
}
