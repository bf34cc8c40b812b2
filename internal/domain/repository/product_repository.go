package repository

import "github.com/jhoicas/electrostock-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// AdjustStock es la ÚNICA primitiva de escritura de stock: todo movimiento
// (entrada, salida, venta, corrección) pasa por ella para preservar el
// invariante stock >= 0; ningún otro método toca la columna stock.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListAll() ([]*entity.Product, error)
	Search(name, typeID string) ([]*entity.Product, error)
	// Update actualiza solo campos de catálogo (nombre, tipo, precio, estado).
	Update(product *entity.Product) error
	Delete(id string) error
	// AdjustStock aplica stock += delta en una sola sentencia condicional.
	// Retorna ErrNotFound si el producto no existe, o *InsufficientStockError
	// si delta < 0 dejaría el stock en negativo; en ese caso no muta nada.
	AdjustStock(productID string, delta int) error
	// ListAtOrBelowStock devuelve los productos con stock <= threshold.
	ListAtOrBelowStock(threshold int) ([]*entity.Product, error)
}
