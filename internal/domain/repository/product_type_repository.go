package repository

import "github.com/jhoicas/electrostock-api/internal/domain/entity"

// ProductTypeRepository define el puerto de persistencia para tipos de producto.
type ProductTypeRepository interface {
	Create(t *entity.ProductType) error
	GetByID(id string) (*entity.ProductType, error)
	List() ([]*entity.ProductType, error)
	Update(t *entity.ProductType) error
	Delete(id string) error
}
