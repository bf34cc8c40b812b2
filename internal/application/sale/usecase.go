package sale

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/electrostock-api/internal/application/dto"
	"github.com/jhoicas/electrostock-api/internal/domain"
	"github.com/jhoicas/electrostock-api/internal/domain/entity"
	"github.com/jhoicas/electrostock-api/internal/domain/repository"
)

// SaleUseCase registra ventas y sus correcciones manteniendo el stock en
// consistencia con el libro de ventas. TotalPrice se congela al crear la venta
// (precio unitario vigente × cantidad); al corregir la cantidad se recalcula
// con el precio vigente del catálogo en ese momento, sobrescribiendo la
// instantánea original.
type SaleUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner TxRunner, productRepo repository.ProductRepository, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, productRepo: productRepo, saleRepo: saleRepo}
}

// Sell registra una venta: descuenta el stock (falla con stock insuficiente si
// no alcanza) y escribe el registro con el total congelado, en una transacción.
func (uc *SaleUseCase) Sell(ctx context.Context, salesmanID string, in dto.SellRequest) error {
	if salesmanID == "" || in.ProductID == "" {
		return domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	now := time.Now()
	return uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := productRepo.AdjustStock(in.ProductID, -in.Quantity); err != nil {
			return err
		}
		s := &entity.Sale{
			ID:         uuid.New().String(),
			ProductID:  in.ProductID,
			Quantity:   in.Quantity,
			TotalPrice: product.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
			SalesmanID: salesmanID,
			SaleTime:   now,
		}
		return saleRepo.Create(s)
	})
}

// UpdateSale corrige la cantidad de una venta. El stock cambia exactamente en
// -(newQuantity - cantidad original): vender más descuenta, vender menos
// devuelve. El total se recalcula con el precio vigente del producto.
func (uc *SaleUseCase) UpdateSale(ctx context.Context, id string, newQuantity int) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if newQuantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	return uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		s, err := saleRepo.GetByID(id)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetByID(s.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if delta := newQuantity - s.Quantity; delta != 0 {
			if err := productRepo.AdjustStock(s.ProductID, -delta); err != nil {
				return err
			}
		}
		total := product.Price.Mul(decimal.NewFromInt(int64(newQuantity)))
		return saleRepo.UpdateQuantity(id, newQuantity, total)
	})
}

// DeleteSale elimina una venta devolviendo la mercancía al stock.
func (uc *SaleUseCase) DeleteSale(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		s, err := saleRepo.GetByID(id)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		if err := productRepo.AdjustStock(s.ProductID, s.Quantity); err != nil {
			return err
		}
		return saleRepo.Delete(id)
	})
}

// SaleRecords lista las ventas enriquecidas con nombres, más recientes primero.
func (uc *SaleUseCase) SaleRecords() ([]dto.SaleRecordResponse, error) {
	records, err := uc.saleRepo.ListRecords()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.SaleRecordResponse{
			ID:          r.ID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			TotalPrice:  r.TotalPrice,
			Salesman:    r.Salesman,
			SaleTime:    r.SaleTime,
		})
	}
	return out, nil
}
