package repository

import "github.com/jhoicas/electrostock-api/internal/domain/entity"

// StockInRepository define el puerto de persistencia para entradas de inventario.
type StockInRepository interface {
	Create(entry *entity.StockIn) error
	GetByID(id string) (*entity.StockIn, error)
	// UpdateQuantity reescribe solo la cantidad; el resto de la fila es inmutable.
	UpdateQuantity(id string, quantity int) error
	Delete(id string) error
	// ListRecords devuelve las entradas enriquecidas con nombres, más recientes primero.
	ListRecords() ([]*entity.StockInRecord, error)
}
