package dto

import "time"

// StockMovementRequest body para POST /api/stock/in y /api/stock/out.
type StockMovementRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// UpdateQuantityRequest body para corregir la cantidad de un registro existente.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// StockInRecordResponse una entrada enriquecida para listados.
type StockInRecordResponse struct {
	ID          string    `json:"id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Operator    string    `json:"operator"`
	InTime      time.Time `json:"in_time"`
}

// StockOutRecordResponse una salida enriquecida para listados.
type StockOutRecordResponse struct {
	ID          string    `json:"id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Operator    string    `json:"operator"`
	OutTime     time.Time `json:"out_time"`
}
