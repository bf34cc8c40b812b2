package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/electrostock-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// UpdateQuantity reescribe cantidad y total; ambos cambian juntos o ninguno.
	UpdateQuantity(id string, quantity int, totalPrice decimal.Decimal) error
	Delete(id string) error
	ListRecords() ([]*entity.SaleRecord, error)
}
