package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/electrostock-api/internal/application/dto"
	"github.com/jhoicas/electrostock-api/internal/domain"
	"github.com/jhoicas/electrostock-api/internal/domain/entity"
	"github.com/jhoicas/electrostock-api/internal/domain/repository"
)

// StockUseCase mantiene los libros de entradas y salidas en consistencia con el
// stock de productos. Cada operación (alta, corrección o borrado de un registro)
// ejecuta en una transacción: la fila del libro y el ajuste de stock se
// confirman juntos o ninguno. El ajuste es siempre UNA sola llamada a
// AdjustStock con la diferencia con signo, nunca un par sumar/restar.
type StockUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	inRepo      repository.StockInRepository
	outRepo     repository.StockOutRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	inRepo repository.StockInRepository,
	outRepo repository.StockOutRepository,
) *StockUseCase {
	return &StockUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		inRepo:      inRepo,
		outRepo:     outRepo,
	}
}

// StockIn registra una entrada de mercancía: inserta el registro y suma la
// cantidad al stock del producto en la misma transacción.
func (uc *StockUseCase) StockIn(ctx context.Context, operatorID string, in dto.StockMovementRequest) error {
	if operatorID == "" || in.ProductID == "" {
		return domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inRepo repository.StockInRepository,
		_ repository.StockOutRepository,
	) error {
		entry := &entity.StockIn{
			ID:         uuid.New().String(),
			ProductID:  in.ProductID,
			Quantity:   in.Quantity,
			OperatorID: operatorID,
			InTime:     now,
		}
		if err := inRepo.Create(entry); err != nil {
			return err
		}
		return productRepo.AdjustStock(in.ProductID, in.Quantity)
	})
}

// StockOut registra una salida de mercancía: descuenta el stock (puede fallar
// con stock insuficiente) y escribe el registro, todo en una transacción.
func (uc *StockUseCase) StockOut(ctx context.Context, operatorID string, in dto.StockMovementRequest) error {
	if operatorID == "" || in.ProductID == "" {
		return domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.StockInRepository,
		outRepo repository.StockOutRepository,
	) error {
		if err := productRepo.AdjustStock(in.ProductID, -in.Quantity); err != nil {
			return err
		}
		entry := &entity.StockOut{
			ID:         uuid.New().String(),
			ProductID:  in.ProductID,
			Quantity:   in.Quantity,
			OperatorID: operatorID,
			OutTime:    now,
		}
		return outRepo.Create(entry)
	})
}

// UpdateStockIn corrige la cantidad de una entrada existente. El efecto neto
// sobre el stock es exactamente newQuantity - cantidad original; reducir una
// entrada ya consumida por movimientos posteriores falla con stock insuficiente
// y no toca ni el registro ni el stock.
func (uc *StockUseCase) UpdateStockIn(ctx context.Context, id string, newQuantity int) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if newQuantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inRepo repository.StockInRepository,
		_ repository.StockOutRepository,
	) error {
		entry, err := inRepo.GetByID(id)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}
		if delta := newQuantity - entry.Quantity; delta != 0 {
			if err := productRepo.AdjustStock(entry.ProductID, delta); err != nil {
				return err
			}
		}
		return inRepo.UpdateQuantity(id, newQuantity)
	})
}

// DeleteStockIn elimina una entrada revirtiendo por completo su efecto:
// resta la cantidad original del stock. Se rechaza si el stock actual ya no
// alcanza (la mercancía fue consumida por movimientos posteriores).
func (uc *StockUseCase) DeleteStockIn(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inRepo repository.StockInRepository,
		_ repository.StockOutRepository,
	) error {
		entry, err := inRepo.GetByID(id)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}
		if err := productRepo.AdjustStock(entry.ProductID, -entry.Quantity); err != nil {
			return err
		}
		return inRepo.Delete(id)
	})
}

// UpdateStockOut corrige la cantidad de una salida. Signo invertido respecto a
// las entradas: si la salida corregida es menor se devuelve stock, si es mayor
// se descuenta más (y puede fallar con stock insuficiente).
func (uc *StockUseCase) UpdateStockOut(ctx context.Context, id string, newQuantity int) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if newQuantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.StockInRepository,
		outRepo repository.StockOutRepository,
	) error {
		entry, err := outRepo.GetByID(id)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}
		if delta := entry.Quantity - newQuantity; delta != 0 {
			if err := productRepo.AdjustStock(entry.ProductID, delta); err != nil {
				return err
			}
		}
		return outRepo.UpdateQuantity(id, newQuantity)
	})
}

// DeleteStockOut elimina una salida devolviendo al stock la cantidad que
// había salido.
func (uc *StockUseCase) DeleteStockOut(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.StockInRepository,
		outRepo repository.StockOutRepository,
	) error {
		entry, err := outRepo.GetByID(id)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}
		if err := productRepo.AdjustStock(entry.ProductID, entry.Quantity); err != nil {
			return err
		}
		return outRepo.Delete(id)
	})
}

// StockInRecords lista las entradas enriquecidas con nombres de producto y
// operador, más recientes primero.
func (uc *StockUseCase) StockInRecords() ([]dto.StockInRecordResponse, error) {
	records, err := uc.inRepo.ListRecords()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockInRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.StockInRecordResponse{
			ID:          r.ID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			Operator:    r.Operator,
			InTime:      r.InTime,
		})
	}
	return out, nil
}

// StockOutRecords lista las salidas enriquecidas, más recientes primero.
func (uc *StockUseCase) StockOutRecords() ([]dto.StockOutRecordResponse, error) {
	records, err := uc.outRepo.ListRecords()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockOutRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.StockOutRecordResponse{
			ID:          r.ID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			Operator:    r.Operator,
			OutTime:     r.OutTime,
		})
	}
	return out, nil
}
