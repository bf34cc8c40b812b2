package usecase

import (
	"github.com/google/uuid"

	"github.com/jhoicas/electrostock-api/internal/application/dto"
	"github.com/jhoicas/electrostock-api/internal/domain"
	"github.com/jhoicas/electrostock-api/internal/domain/entity"
	"github.com/jhoicas/electrostock-api/internal/domain/repository"
)

// ProductTypeUseCase CRUD de tipos de producto.
type ProductTypeUseCase struct {
	typeRepo repository.ProductTypeRepository
}

// NewProductTypeUseCase construye el caso de uso.
func NewProductTypeUseCase(typeRepo repository.ProductTypeRepository) *ProductTypeUseCase {
	return &ProductTypeUseCase{typeRepo: typeRepo}
}

// Create persiste un tipo nuevo.
func (uc *ProductTypeUseCase) Create(in dto.ProductTypeRequest) (*dto.ProductTypeResponse, error) {
	if in.TypeName == "" {
		return nil, domain.ErrInvalidInput
	}
	t := &entity.ProductType{ID: uuid.New().String(), TypeName: in.TypeName}
	if err := uc.typeRepo.Create(t); err != nil {
		return nil, err
	}
	return &dto.ProductTypeResponse{ID: t.ID, TypeName: t.TypeName}, nil
}

// List devuelve todos los tipos.
func (uc *ProductTypeUseCase) List() ([]dto.ProductTypeResponse, error) {
	types, err := uc.typeRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, dto.ProductTypeResponse{ID: t.ID, TypeName: t.TypeName})
	}
	return out, nil
}

// Update renombra un tipo existente.
func (uc *ProductTypeUseCase) Update(id string, in dto.ProductTypeRequest) (*dto.ProductTypeResponse, error) {
	if in.TypeName == "" {
		return nil, domain.ErrInvalidInput
	}
	t, err := uc.typeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	t.TypeName = in.TypeName
	if err := uc.typeRepo.Update(t); err != nil {
		return nil, err
	}
	return &dto.ProductTypeResponse{ID: t.ID, TypeName: t.TypeName}, nil
}

// Delete elimina un tipo.
func (uc *ProductTypeUseCase) Delete(id string) error {
	t, err := uc.typeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return uc.typeRepo.Delete(id)
}
