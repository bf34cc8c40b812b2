package dto

// StockWarningResponse advertencia de stock bajo o agotado.
type StockWarningResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Stock       int    `json:"stock"`
	Threshold   int    `json:"threshold"`
	Level       int    `json:"level"` // 1 = stock bajo, 2 = agotado
}
