package repository

import "github.com/jhoicas/electrostock-api/internal/domain/entity"

// StockOutRepository define el puerto de persistencia para salidas de inventario.
type StockOutRepository interface {
	Create(entry *entity.StockOut) error
	GetByID(id string) (*entity.StockOut, error)
	UpdateQuantity(id string, quantity int) error
	Delete(id string) error
	ListRecords() ([]*entity.StockOutRecord, error)
}
