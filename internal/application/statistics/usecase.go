package statistics

import (
	"context"
	"time"

	"github.com/jhoicas/electrostock-api/internal/application/dto"
	"github.com/jhoicas/electrostock-api/internal/domain/repository"
)

// StatisticsUseCase consultas de solo lectura sobre los libros de entradas,
// salidas y ventas. Consumidor puro: nunca escribe stock.
type StatisticsUseCase struct {
	repo repository.StatisticsRepository
}

// NewStatisticsUseCase construye el caso de uso.
func NewStatisticsUseCase(repo repository.StatisticsRepository) *StatisticsUseCase {
	return &StatisticsUseCase{repo: repo}
}

// StockInStats estadísticas de entradas en un rango de fechas (ambos opcionales).
func (uc *StatisticsUseCase) StockInStats(ctx context.Context, from, to *time.Time) ([]dto.StatisticsEntryResponse, error) {
	rows, err := uc.repo.StockInStats(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

// StockOutStats estadísticas de salidas en un rango de fechas.
func (uc *StatisticsUseCase) StockOutStats(ctx context.Context, from, to *time.Time) ([]dto.StatisticsEntryResponse, error) {
	rows, err := uc.repo.StockOutStats(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

// SaleStats estadísticas de ventas en un rango de fechas, con el total vendido.
func (uc *StatisticsUseCase) SaleStats(ctx context.Context, from, to *time.Time) ([]dto.StatisticsEntryResponse, error) {
	rows, err := uc.repo.SaleStats(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

func toResponses(rows []repository.LedgerStatResult) []dto.StatisticsEntryResponse {
	out := make([]dto.StatisticsEntryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StatisticsEntryResponse{
			Label:       r.Label,
			ProductName: r.ProductName,
			Count:       r.Count,
			TotalAmount: r.TotalAmount,
		})
	}
	return out
}
