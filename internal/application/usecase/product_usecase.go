package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/electrostock-api/internal/application/dto"
	"github.com/jhoicas/electrostock-api/internal/domain"
	"github.com/jhoicas/electrostock-api/internal/domain/entity"
	"github.com/jhoicas/electrostock-api/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo de productos. El stock inicial (baseline)
// se fija al crear; después solo cambia vía movimientos de inventario, por lo
// que Update nunca escribe la columna stock.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	typeRepo    repository.ProductTypeRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, typeRepo repository.ProductTypeRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, typeRepo: typeRepo}
}

// Create valida y persiste un producto nuevo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.TypeID != "" {
		t, err := uc.typeRepo.GetByID(in.TypeID)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, domain.ErrNotFound
		}
	}
	status := entity.ProductStatusActive
	if in.Status != nil {
		status = *in.Status
	}
	p := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TypeID:    in.TypeID,
		Price:     in.Price,
		Stock:     in.Stock,
		Status:    status,
		CreatedAt: time.Now(),
	}
	if err := uc.productRepo.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID devuelve un producto o nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// List devuelve todos los productos con el nombre de tipo resuelto.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Search filtra por nombre (parcial) y/o tipo.
func (uc *ProductUseCase) Search(name, typeID string) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.Search(name, typeID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Update modifica campos de catálogo de un producto existente. Devuelve nil
// si el producto no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Name != "" {
		p.Name = in.Name
	}
	if in.TypeID != "" {
		p.TypeID = in.TypeID
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		p.Price = *in.Price
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if err := uc.productRepo.Update(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Delete elimina un producto. Devuelve ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(id string) error {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		TypeID:    p.TypeID,
		TypeName:  p.TypeName,
		Price:     p.Price,
		Stock:     p.Stock,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out
}
